package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/sneakpick/sneakpick-api/controllers/cart"
	"github.com/sneakpick/sneakpick-api/middleware"
)

// SetupCartRoutes registers the JWT-protected cart endpoints. Deleting
// one line and clearing the cart are distinct routes.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.POST("", cartControllers.AddCartItem(db))
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.PUT("", cartControllers.UpdateCartQuantity(db))
		cartGroup.DELETE("/:id", cartControllers.DeleteCartItem(db))
		cartGroup.DELETE("", cartControllers.ClearCart(db))
	}
}
