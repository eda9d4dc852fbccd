package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sneakpick/sneakpick-api/middleware"
	"github.com/sneakpick/sneakpick-api/models"
)

// GET /orders — the caller's order history joined with product data.
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := models.UserByUsername(db, c.GetString(middleware.UsernameKey))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var orders []models.OrderLine
		err = db.Table("orders").
			Select("products.title, products.price, orders.id AS order_id, orders.order_quantity, "+
				"orders.order_size, orders.order_image, "+
				"orders.order_quantity * products.price AS total_price, orders.status, orders.order_date").
			Joins("JOIN products ON products.id = orders.product_id").
			Where("orders.user_id = ?", user.ID).
			Scan(&orders).Error
		if err != nil {
			log.Error().Err(err).Msg("failed to list orders")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
