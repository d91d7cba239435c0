package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adnanjillani/zaviya/services"
	"github.com/adnanjillani/zaviya/utils"
)

type BookingController struct {
	Service *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Service: svc}
}

// CreateBooking -> POST /bookings, the table reservation form.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var in services.BookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	booking, err := bc.Service.SubmitBooking(in)
	if err != nil {
		if services.IsValidationError(err) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New booking (ID=%d) for %d guests on %s %s", booking.ID, booking.Guests, booking.Date, booking.Time)

	utils.RespondJSON(c, http.StatusCreated, "Table booked successfully! We'll send you a confirmation email.", booking)
}
