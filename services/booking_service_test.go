package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adnanjillani/zaviya/models"
	"github.com/adnanjillani/zaviya/services"
	"github.com/adnanjillani/zaviya/store"
)

func validBookingInput() services.BookingInput {
	return services.BookingInput{
		Name:   "Jane",
		Email:  "j@x.com",
		Phone:  "555",
		Date:   "2030-01-01",
		Time:   "19:00",
		Guests: "2",
		Area:   "family",
	}
}

func TestSubmitBookingAppendsPendingRecord(t *testing.T) {
	rs := store.NewMemoryStore()
	svc := services.NewBookingService(rs)

	booking, err := svc.SubmitBooking(validBookingInput())
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, booking.Status)
	assert.Equal(t, 2, booking.Guests)
	assert.NotZero(t, booking.ID)

	stored := store.LoadBookings(rs)
	assert.Len(t, stored, 1)
	assert.Equal(t, booking, stored[0])
}

func TestSubmitBookingAssignsUniqueIncreasingIDs(t *testing.T) {
	rs := store.NewMemoryStore()
	svc := services.NewBookingService(rs)

	first, err := svc.SubmitBooking(validBookingInput())
	assert.NoError(t, err)
	second, err := svc.SubmitBooking(validBookingInput())
	assert.NoError(t, err)

	// Identical forms are two distinct records, no duplicate detection.
	assert.Greater(t, second.ID, first.ID)
	assert.Len(t, store.LoadBookings(rs), 2)
}

func TestSubmitBookingMissingFieldWritesNothing(t *testing.T) {
	cases := map[string]func(*services.BookingInput){
		"name":   func(in *services.BookingInput) { in.Name = "" },
		"email":  func(in *services.BookingInput) { in.Email = "" },
		"phone":  func(in *services.BookingInput) { in.Phone = "" },
		"date":   func(in *services.BookingInput) { in.Date = "" },
		"time":   func(in *services.BookingInput) { in.Time = "" },
		"guests": func(in *services.BookingInput) { in.Guests = "" },
		"area":   func(in *services.BookingInput) { in.Area = "" },
	}

	for field, clear := range cases {
		t.Run(field, func(t *testing.T) {
			rs := store.NewMemoryStore()
			svc := services.NewBookingService(rs)

			in := validBookingInput()
			clear(&in)

			_, err := svc.SubmitBooking(in)
			assert.True(t, services.IsValidationError(err))
			assert.Empty(t, store.LoadBookings(rs))

			_, ok := rs.Load(store.BookingsKey)
			assert.False(t, ok, "nothing should be written on a rejected submission")
		})
	}
}

func TestSubmitBookingRejectsBadValues(t *testing.T) {
	cases := map[string]func(*services.BookingInput){
		"past date":        func(in *services.BookingInput) { in.Date = "2001-01-01" },
		"malformed date":   func(in *services.BookingInput) { in.Date = "01/01/2030" },
		"unknown slot":     func(in *services.BookingInput) { in.Time = "03:00" },
		"zero guests":      func(in *services.BookingInput) { in.Guests = "0" },
		"too many guests":  func(in *services.BookingInput) { in.Guests = "9" },
		"guests not a num": func(in *services.BookingInput) { in.Guests = "two" },
		"unknown area":     func(in *services.BookingInput) { in.Area = "rooftop" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			rs := store.NewMemoryStore()
			svc := services.NewBookingService(rs)

			in := validBookingInput()
			mutate(&in)

			_, err := svc.SubmitBooking(in)
			assert.True(t, services.IsValidationError(err), "expected validation error, got %v", err)
			assert.Empty(t, store.LoadBookings(rs))
		})
	}
}

func TestBookingThenConfirmScenario(t *testing.T) {
	rs := store.NewMemoryStore()
	bookingSvc := services.NewBookingService(rs)
	adminSvc := services.NewAdminService(rs)

	booking, err := bookingSvc.SubmitBooking(validBookingInput())
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, booking.Status)

	err = adminSvc.SetStatus(services.KindBooking, booking.ID, models.StatusConfirmed)
	assert.NoError(t, err)

	stored := store.LoadBookings(rs)
	assert.Len(t, stored, 1)
	assert.Equal(t, models.StatusConfirmed, stored[0].Status)
}
