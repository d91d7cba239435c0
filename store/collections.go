package store

import (
	"encoding/json"

	"github.com/adnanjillani/zaviya/models"
)

// Typed accessors for the two record collections. A missing key or a value
// that no longer parses as the expected array both read as an empty
// collection; malformed data is never a fatal condition here.

func LoadBookings(rs RecordStore) []models.Booking {
	raw, ok := rs.Load(BookingsKey)
	if !ok {
		return nil
	}
	var bookings []models.Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		return nil
	}
	return bookings
}

func SaveBookings(rs RecordStore, bookings []models.Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return err
	}
	return rs.Save(BookingsKey, data)
}

func LoadPreOrders(rs RecordStore) []models.PreOrder {
	raw, ok := rs.Load(PreOrdersKey)
	if !ok {
		return nil
	}
	var orders []models.PreOrder
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil
	}
	return orders
}

func SavePreOrders(rs RecordStore, orders []models.PreOrder) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return rs.Save(PreOrdersKey, data)
}
