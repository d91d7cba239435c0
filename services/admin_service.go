package services

import (
	"github.com/adnanjillani/zaviya/models"
	"github.com/adnanjillani/zaviya/store"
)

// Collection kinds accepted by SetStatus.
const (
	KindBooking = "booking"
	KindOrder   = "order"
)

// AdminService backs the admin dashboard: list everything, flip statuses.
type AdminService struct {
	Store store.RecordStore
}

func NewAdminService(rs store.RecordStore) *AdminService {
	return &AdminService{Store: rs}
}

// ListAll reads both collections fresh from the store. There is no change
// subscription; a caller re-invokes to observe updates made elsewhere.
func (s *AdminService) ListAll() ([]models.Booking, []models.PreOrder) {
	return store.LoadBookings(s.Store), store.LoadPreOrders(s.Store)
}

// SetStatus replaces the status of the record with the given id and persists
// the whole collection. Any status may follow any other status; there is no
// transition table. An id that matches no record is a silent no-op, the store
// is written back unchanged.
func (s *AdminService) SetStatus(kind string, id int64, status string) error {
	if !models.IsValidStatus(status) {
		return newValidationError("status", "must be pending, confirmed, completed or cancelled")
	}

	switch kind {
	case KindBooking:
		bookings := store.LoadBookings(s.Store)
		for i := range bookings {
			if bookings[i].ID == id {
				bookings[i].Status = status
			}
		}
		return store.SaveBookings(s.Store, bookings)
	case KindOrder:
		orders := store.LoadPreOrders(s.Store)
		for i := range orders {
			if orders[i].ID == id {
				orders[i].Status = status
			}
		}
		return store.SavePreOrders(s.Store, orders)
	default:
		return newValidationError("kind", "must be booking or order")
	}
}
