package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adnanjillani/zaviya/models"
	"github.com/adnanjillani/zaviya/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenus -> GET /menu, the full item list in insertion order. An optional
// ?category= narrows the list.
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	var menus []models.Menu

	query := mc.DB.Order("id")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of menus", menus)
}

// GetMenuCategories -> GET /menu/categories
func (mc *MenuController) GetMenuCategories(c *gin.Context) {
	var categories []string

	err := mc.DB.Model(&models.Menu{}).
		Distinct().
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of categories", categories)
}
