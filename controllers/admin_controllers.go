package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adnanjillani/zaviya/services"
	"github.com/adnanjillani/zaviya/utils"
)

type AdminController struct {
	Service *services.AdminService
}

func NewAdminController(svc *services.AdminService) *AdminController {
	return &AdminController{Service: svc}
}

// GetAllBookings -> GET /admin/bookings
func (ac *AdminController) GetAllBookings(c *gin.Context) {
	bookings, _ := ac.Service.ListAll()
	utils.RespondJSON(c, http.StatusOK, "List of bookings", bookings)
}

// GetAllPreOrders -> GET /admin/preorders
func (ac *AdminController) GetAllPreOrders(c *gin.Context) {
	_, orders := ac.Service.ListAll()
	utils.RespondJSON(c, http.StatusOK, "List of pre-orders", orders)
}

// UpdateBookingStatus -> PATCH /admin/bookings/:booking_id/status
func (ac *AdminController) UpdateBookingStatus(c *gin.Context) {
	ac.updateStatus(c, services.KindBooking, c.Param("booking_id"), "Booking status updated")
}

// UpdatePreOrderStatus -> PATCH /admin/preorders/:order_id/status
func (ac *AdminController) UpdatePreOrderStatus(c *gin.Context) {
	ac.updateStatus(c, services.KindOrder, c.Param("order_id"), "Order status updated")
}

// updateStatus applies a status change to one record. An id that matches no
// record still answers 200: the dashboard treats the update as applied and the
// store keeps its previous contents.
func (ac *AdminController) updateStatus(c *gin.Context, kind, idParam, message string) {
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	type reqBody struct {
		Status string `json:"status" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := ac.Service.SetStatus(kind, id, req.Status); err != nil {
		if services.IsValidationError(err) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Status of %s %d set to %s", kind, id, req.Status)

	utils.RespondJSON(c, http.StatusOK, message, gin.H{"id": id, "status": req.Status})
}
