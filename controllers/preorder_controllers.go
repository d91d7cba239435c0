package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adnanjillani/zaviya/services"
	"github.com/adnanjillani/zaviya/utils"
)

type PreOrderController struct {
	Service *services.PreOrderService
}

func NewPreOrderController(svc *services.PreOrderService) *PreOrderController {
	return &PreOrderController{Service: svc}
}

// CreatePreOrder -> POST /preorders, the pickup order form.
func (pc *PreOrderController) CreatePreOrder(c *gin.Context) {
	type reqBody struct {
		Name       string         `json:"name"`
		Email      string         `json:"email"`
		Phone      string         `json:"phone"`
		PickupTime string         `json:"pickupTime"`
		Items      map[string]int `json:"items"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	info := services.CustomerInfo{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		PickupTime: req.PickupTime,
	}

	order, err := pc.Service.SubmitOrder(info, req.Items)
	if err != nil {
		if services.IsValidationError(err) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New pre-order (ID=%d), %d items, total %.2f", order.ID, len(order.Items), order.Total)

	utils.RespondJSON(c, http.StatusCreated, "Order placed successfully! We'll have it ready for you.", order)
}

// GetCatalog -> GET /preorder/catalog, the fixed item list the form offers.
func (pc *PreOrderController) GetCatalog(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Pre-order catalog", pc.Service.Catalog)
}
