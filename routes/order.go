package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/sneakpick/sneakpick-api/controllers/order"
	"github.com/sneakpick/sneakpick-api/middleware"
)

// SetupOrderRoutes registers the order history and the admin feed.
// Orders are only ever created by the payment webhook.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/orders", middleware.ValidateToken, orderControllers.GetOrders(db))

	// Feed carries every customer's orders, so it sits behind the admin key.
	r.GET("/admin/orders/ws", middleware.ValidateAPIKey, orderControllers.OrderWebSocketHandler)
}
