package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/sneakpick/sneakpick-api/controllers/user"
	"github.com/sneakpick/sneakpick-api/middleware"
)

// SetupUserRoutes registers the JWT-protected profile endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("", userControllers.GetUser(db))
		userGroup.PUT("", userControllers.UpdateUser(db))
		userGroup.PUT("/password", userControllers.UpdatePassword(db))
		userGroup.DELETE("", userControllers.DeleteUser(db))
	}
}
