package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	checkoutControllers "github.com/sneakpick/sneakpick-api/controllers/checkout"
	"github.com/sneakpick/sneakpick-api/middleware"
)

// SetupCheckoutRoutes registers the payment bridge. The webhook is
// reachable without a token; it authenticates via the Stripe signature.
func SetupCheckoutRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/create-checkout-session", middleware.ValidateToken, checkoutControllers.CreateCheckoutSession(db))
	r.POST("/webhook", checkoutControllers.Webhook(db))
}
