package models

// PreOrder is an advance food order placed for pickup. Items maps a catalog
// item id to its quantity; quantities are always >= 1, an item the customer
// removed again never appears with a zero count.
type PreOrder struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	PickupTime string         `json:"pickupTime"` // YYYY-MM-DDTHH:MM
	Items      map[string]int `json:"items"`
	Total      float64        `json:"total"`
	Status     string         `json:"status"`
}
