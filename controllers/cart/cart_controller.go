package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sneakpick/sneakpick-api/middleware"
	"github.com/sneakpick/sneakpick-api/models"
)

type AddCartInput struct {
	ProductID uint   `json:"product_id"`
	Size      string `json:"size"`
	CartImage string `json:"cart_image"`
}

type UpdateCartInput struct {
	ID       uint `json:"id"`
	Quantity int  `json:"quantity"`
}

// POST /cart
//
// A new line always starts at quantity 1; any quantity in the payload
// is ignored. Clients change quantities through PUT /cart.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := models.UserByUsername(db, c.GetString(middleware.UsernameKey))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input AddCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			log.Error().Err(err).Msg("failed to validate product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		item := models.Cart{
			ProductID: product.ID,
			UserID:    user.ID,
			Quantity:  1,
			Size:      input.Size,
			CartImage: input.CartImage,
		}
		if err := db.Create(&item).Error; err != nil {
			log.Error().Err(err).Msg("failed to add cart item")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := models.UserByUsername(db, c.GetString(middleware.UsernameKey))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		lines, err := models.CartLinesForUser(db, user.ID)
		if err != nil {
			log.Error().Err(err).Msg("failed to load cart")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, lines)
	}
}

// PUT /cart — update the quantity of one of the caller's lines.
func UpdateCartQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := models.UserByUsername(db, c.GetString(middleware.UsernameKey))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input UpdateCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if input.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be greater than or equal to 1"})
			return
		}

		var item models.Cart
		if err := db.Where("id = ? AND user_id = ?", input.ID, user.ID).First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		item.Quantity = input.Quantity
		if err := db.Save(&item).Error; err != nil {
			log.Error().Err(err).Msg("failed to update cart item")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /cart/:id — remove one line.
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := models.UserByUsername(db, c.GetString(middleware.UsernameKey))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		result := db.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Cart{})
		if result.Error != nil {
			log.Error().Err(result.Error).Msg("failed to delete cart item")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "The item was deleted from cart."})
	}
}

// DELETE /cart — clear every line belonging to the caller.
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := models.UserByUsername(db, c.GetString(middleware.UsernameKey))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		if err := db.Where("user_id = ?", user.ID).Delete(&models.Cart{}).Error; err != nil {
			log.Error().Err(err).Msg("failed to clear cart")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Your cart was cleared."})
	}
}
