package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/sneakpick/sneakpick-api/controllers/user"
)

// SetupAuthRoutes registers the public signup and login endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/signup", userControllers.Signup(db))
	r.POST("/login", userControllers.Login(db))
}
