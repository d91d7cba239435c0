package models

// Booking is a table reservation submitted from the booking form. It lives in
// the "bookings" collection of the record store, not in a SQL table.
type Booking struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Date   string `json:"date"` // YYYY-MM-DD
	Time   string `json:"time"` // one of the fixed reservation slots, e.g. "19:00"
	Guests int    `json:"guests"`
	Area   string `json:"area"`
	Status string `json:"status"`
}

// Dining areas offered on the booking form.
const (
	AreaCasual    = "casual"
	AreaFamily    = "family"
	AreaExecutive = "executive"
)
