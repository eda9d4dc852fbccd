package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	addressControllers "github.com/sneakpick/sneakpick-api/controllers/address"
	"github.com/sneakpick/sneakpick-api/middleware"
)

// SetupAddressRoutes registers the JWT-protected address book.
func SetupAddressRoutes(r *gin.Engine, db *gorm.DB) {
	addressGroup := r.Group("/address")
	addressGroup.Use(middleware.ValidateToken)
	{
		addressGroup.POST("", addressControllers.AddAddress(db))
		addressGroup.GET("", addressControllers.GetAddresses(db))
		addressGroup.PUT("", addressControllers.UpdateAddress(db))
		addressGroup.DELETE("", addressControllers.DeleteAddress(db))
	}
}
