package services

import (
	"time"

	"github.com/adnanjillani/zaviya/models"
	"github.com/adnanjillani/zaviya/store"
)

const pickupTimeLayout = "2006-01-02T15:04"

// CustomerInfo carries the contact part of the pre-order form.
type CustomerInfo struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PickupTime string `json:"pickupTime"`
}

type PreOrderService struct {
	Store   store.RecordStore
	Catalog []models.CatalogItem
}

func NewPreOrderService(rs store.RecordStore) *PreOrderService {
	return &PreOrderService{Store: rs, Catalog: models.PreOrderCatalog()}
}

// AdjustQuantity applies a +/- delta to one item of the in-memory selection.
// The quantity never goes negative; when it would drop to zero or below the
// key is removed outright, the map never holds a zero entry.
func AdjustQuantity(items map[string]int, itemID string, delta int) {
	quantity := items[itemID] + delta
	if quantity <= 0 {
		delete(items, itemID)
		return
	}
	items[itemID] = quantity
}

// ComputeTotal sums unit price times quantity over the selection. An item id
// the catalog does not know contributes zero rather than failing the order.
func ComputeTotal(items map[string]int, catalog []models.CatalogItem) float64 {
	total := 0.0
	for itemID, quantity := range items {
		for _, item := range catalog {
			if item.ID == itemID {
				total += item.Price * float64(quantity)
				break
			}
		}
	}
	return total
}

// SubmitOrder validates the customer details and the item selection, computes
// the total against the static catalog and appends the order with pending
// status. Nothing is written when validation fails.
func (s *PreOrderService) SubmitOrder(info CustomerInfo, items map[string]int) (models.PreOrder, error) {
	if err := validateCustomerInfo(info, time.Now()); err != nil {
		return models.PreOrder{}, err
	}

	// Drop non-positive quantities a caller may have posted directly; the
	// stored items map only ever holds counts >= 1.
	selection := make(map[string]int, len(items))
	for itemID, quantity := range items {
		if quantity > 0 {
			selection[itemID] = quantity
		}
	}
	if len(selection) == 0 {
		return models.PreOrder{}, newValidationError("items", "select at least one item")
	}

	order := models.PreOrder{
		ID:         nextRecordID(),
		Name:       info.Name,
		Email:      info.Email,
		Phone:      info.Phone,
		PickupTime: info.PickupTime,
		Items:      selection,
		Total:      ComputeTotal(selection, s.Catalog),
		Status:     models.StatusPending,
	}

	orders := store.LoadPreOrders(s.Store)
	orders = append(orders, order)
	if err := store.SavePreOrders(s.Store, orders); err != nil {
		return models.PreOrder{}, err
	}
	return order, nil
}

func validateCustomerInfo(info CustomerInfo, now time.Time) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", info.Name},
		{"email", info.Email},
		{"phone", info.Phone},
		{"pickupTime", info.PickupTime},
	}
	for _, f := range fields {
		if f.value == "" {
			return newValidationError(f.name, "is required")
		}
	}

	pickup, err := time.ParseInLocation(pickupTimeLayout, info.PickupTime, now.Location())
	if err != nil {
		return newValidationError("pickupTime", "must be a valid time (YYYY-MM-DDTHH:MM)")
	}
	if pickup.Before(now.Truncate(time.Minute)) {
		return newValidationError("pickupTime", "must not be in the past")
	}
	return nil
}
