package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adnanjillani/zaviya/models"
	"github.com/adnanjillani/zaviya/services"
	"github.com/adnanjillani/zaviya/store"
)

func seedAdminStore(t *testing.T) (store.RecordStore, models.Booking, models.PreOrder) {
	t.Helper()
	rs := store.NewMemoryStore()

	booking, err := services.NewBookingService(rs).SubmitBooking(validBookingInput())
	assert.NoError(t, err)
	order, err := services.NewPreOrderService(rs).SubmitOrder(validCustomerInfo(), map[string]int{"2": 1})
	assert.NoError(t, err)

	return rs, booking, order
}

func TestListAllReadsFreshState(t *testing.T) {
	rs, booking, order := seedAdminStore(t)
	svc := services.NewAdminService(rs)

	bookings, orders := svc.ListAll()
	assert.Len(t, bookings, 1)
	assert.Len(t, orders, 1)
	assert.Equal(t, booking.ID, bookings[0].ID)
	assert.Equal(t, order.ID, orders[0].ID)

	// Not a subscription: a record added elsewhere shows up on the next call.
	_, err := services.NewBookingService(rs).SubmitBooking(validBookingInput())
	assert.NoError(t, err)
	bookings, _ = svc.ListAll()
	assert.Len(t, bookings, 2)
}

func TestSetStatusReplacesStatus(t *testing.T) {
	rs, booking, order := seedAdminStore(t)
	svc := services.NewAdminService(rs)

	assert.NoError(t, svc.SetStatus(services.KindBooking, booking.ID, models.StatusConfirmed))
	assert.NoError(t, svc.SetStatus(services.KindOrder, order.ID, models.StatusCompleted))

	bookings, orders := svc.ListAll()
	assert.Equal(t, models.StatusConfirmed, bookings[0].Status)
	assert.Equal(t, models.StatusCompleted, orders[0].Status)
}

func TestSetStatusIsIdempotent(t *testing.T) {
	rs, booking, _ := seedAdminStore(t)
	svc := services.NewAdminService(rs)

	assert.NoError(t, svc.SetStatus(services.KindBooking, booking.ID, models.StatusConfirmed))
	first, _ := rs.Load(store.BookingsKey)

	assert.NoError(t, svc.SetStatus(services.KindBooking, booking.ID, models.StatusConfirmed))
	second, _ := rs.Load(store.BookingsKey)

	assert.Equal(t, first, second)
}

func TestSetStatusAllowsAnyTransition(t *testing.T) {
	rs, booking, _ := seedAdminStore(t)
	svc := services.NewAdminService(rs)

	// No transition table: completed back to pending is allowed.
	assert.NoError(t, svc.SetStatus(services.KindBooking, booking.ID, models.StatusCompleted))
	assert.NoError(t, svc.SetStatus(services.KindBooking, booking.ID, models.StatusPending))

	bookings, _ := svc.ListAll()
	assert.Equal(t, models.StatusPending, bookings[0].Status)
}

func TestSetStatusUnknownIDIsNoOp(t *testing.T) {
	rs, _, _ := seedAdminStore(t)
	svc := services.NewAdminService(rs)

	before, _ := rs.Load(store.PreOrdersKey)
	assert.NoError(t, svc.SetStatus(services.KindOrder, 999999, models.StatusCompleted))
	after, _ := rs.Load(store.PreOrdersKey)

	assert.Equal(t, before, after, "store must be unchanged when the id matches nothing")
}

func TestSetStatusRejectsBadInput(t *testing.T) {
	rs, booking, _ := seedAdminStore(t)
	svc := services.NewAdminService(rs)

	err := svc.SetStatus(services.KindBooking, booking.ID, "archived")
	assert.True(t, services.IsValidationError(err))

	err = svc.SetStatus("table", booking.ID, models.StatusConfirmed)
	assert.True(t, services.IsValidationError(err))

	bookings, _ := svc.ListAll()
	assert.Equal(t, models.StatusPending, bookings[0].Status)
}
