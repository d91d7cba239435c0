package services

import (
	"strconv"
	"time"

	"github.com/adnanjillani/zaviya/models"
	"github.com/adnanjillani/zaviya/store"
)

const dateLayout = "2006-01-02"

// Reservation slots offered on the booking form.
var bookingTimeSlots = []string{
	"11:00", "12:00", "13:00", "14:00",
	"18:00", "19:00", "20:00", "21:00",
}

// BookingInput carries the raw booking form values. Everything arrives as
// text; guests is parsed during validation.
type BookingInput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests string `json:"guests"`
	Area   string `json:"area"`
}

type BookingService struct {
	Store store.RecordStore
}

func NewBookingService(rs store.RecordStore) *BookingService {
	return &BookingService{Store: rs}
}

// SubmitBooking validates the form, assigns an id and pending status, appends
// the booking to the stored collection and returns it. Nothing is written when
// validation fails. Two identical submissions produce two distinct records.
func (s *BookingService) SubmitBooking(in BookingInput) (models.Booking, error) {
	guests, err := validateBooking(in, time.Now())
	if err != nil {
		return models.Booking{}, err
	}

	booking := models.Booking{
		ID:     nextRecordID(),
		Name:   in.Name,
		Email:  in.Email,
		Phone:  in.Phone,
		Date:   in.Date,
		Time:   in.Time,
		Guests: guests,
		Area:   in.Area,
		Status: models.StatusPending,
	}

	bookings := store.LoadBookings(s.Store)
	bookings = append(bookings, booking)
	if err := store.SaveBookings(s.Store, bookings); err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

// validateBooking checks the seven form fields and returns the parsed guest
// count. today is truncated to its calendar date before the comparison, a
// booking for later the same day is fine.
func validateBooking(in BookingInput, today time.Time) (int, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"name", in.Name},
		{"email", in.Email},
		{"phone", in.Phone},
		{"date", in.Date},
		{"time", in.Time},
		{"guests", in.Guests},
		{"area", in.Area},
	}
	for _, f := range fields {
		if f.value == "" {
			return 0, newValidationError(f.name, "is required")
		}
	}

	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return 0, newValidationError("date", "must be a valid date (YYYY-MM-DD)")
	}
	if date.Before(startOfDay(today)) {
		return 0, newValidationError("date", "must not be in the past")
	}

	if !containsString(bookingTimeSlots, in.Time) {
		return 0, newValidationError("time", "must be one of the offered reservation slots")
	}

	guests, err := strconv.Atoi(in.Guests)
	if err != nil || guests < 1 || guests > 8 {
		return 0, newValidationError("guests", "must be between 1 and 8")
	}

	switch in.Area {
	case models.AreaCasual, models.AreaFamily, models.AreaExecutive:
	default:
		return 0, newValidationError("area", "must be casual, family or executive")
	}

	return guests, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
