package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adnanjillani/zaviya/controllers"
	"github.com/adnanjillani/zaviya/middlewares"
	"github.com/adnanjillani/zaviya/services"
	"github.com/adnanjillani/zaviya/store"
)

func SetupRouter(db *gorm.DB, rs store.RecordStore) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	bookingCtrl := controllers.NewBookingController(services.NewBookingService(rs))
	preOrderCtrl := controllers.NewPreOrderController(services.NewPreOrderService(rs))
	adminCtrl := controllers.NewAdminController(services.NewAdminService(rs))
	menuCtrl := controllers.NewMenuController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// -- PUBLIC --
	r.GET("/menu", menuCtrl.GetAllMenus)
	r.GET("/menu/categories", menuCtrl.GetMenuCategories)
	r.GET("/preorder/catalog", preOrderCtrl.GetCatalog)

	// Form submissions get the stricter limiter
	forms := r.Group("/")
	forms.Use(middlewares.NewStrictRateLimiter())
	{
		forms.POST("/bookings", bookingCtrl.CreateBooking)
		forms.POST("/preorders", preOrderCtrl.CreatePreOrder)
	}

	// -- ADMIN (dashboard runs on the restaurant's own machine, no auth) --
	admin := r.Group("/admin")
	{
		admin.GET("/bookings", adminCtrl.GetAllBookings)
		admin.GET("/preorders", adminCtrl.GetAllPreOrders)
		admin.PATCH("/bookings/:booking_id/status", adminCtrl.UpdateBookingStatus)
		admin.PATCH("/preorders/:order_id/status", adminCtrl.UpdatePreOrderStatus)
	}

	return r
}
