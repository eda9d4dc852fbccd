package addressControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sneakpick/sneakpick-api/middleware"
	"github.com/sneakpick/sneakpick-api/models"
	"github.com/sneakpick/sneakpick-api/validation"
)

type AddressInput struct {
	ID       uint   `json:"id"` // only used by update/delete
	Zip      string `json:"zip"`
	Address  string `json:"address"`
	Locality string `json:"locality"`
	City     string `json:"city"`
	State    string `json:"state"`
}

// POST /address
func AddAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := models.UserByUsername(db, c.GetString(middleware.UsernameKey))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if err := validation.Address(input.Address, input.Locality, input.City, input.State, input.Zip); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		address := models.Address{
			Zip:      input.Zip,
			Address:  input.Address,
			Locality: input.Locality,
			City:     input.City,
			State:    input.State,
			UserID:   user.ID,
		}
		if err := db.Create(&address).Error; err != nil {
			log.Error().Err(err).Msg("failed to add address")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add address"})
			return
		}
		c.JSON(http.StatusOK, address)
	}
}

// GET /address
func GetAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := models.UserByUsername(db, c.GetString(middleware.UsernameKey))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var addresses []models.Address
		if err := db.Where("user_id = ?", user.ID).Find(&addresses).Error; err != nil {
			log.Error().Err(err).Msg("failed to list addresses")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}

// PUT /address — the id and user must both match, so nobody can edit
// another user's address book.
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := models.UserByUsername(db, c.GetString(middleware.UsernameKey))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if err := validation.Address(input.Address, input.Locality, input.City, input.State, input.Zip); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var address models.Address
		if err := db.Where("id = ? AND user_id = ?", input.ID, user.ID).First(&address).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}

		address.Zip = input.Zip
		address.Address = input.Address
		address.Locality = input.Locality
		address.City = input.City
		address.State = input.State

		if err := db.Save(&address).Error; err != nil {
			log.Error().Err(err).Msg("failed to update address")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address"})
			return
		}
		c.JSON(http.StatusOK, address)
	}
}

// DELETE /address
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := models.UserByUsername(db, c.GetString(middleware.UsernameKey))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		result := db.Where("id = ? AND user_id = ?", input.ID, user.ID).Delete(&models.Address{})
		if result.Error != nil {
			log.Error().Err(result.Error).Msg("failed to delete address")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "The address was deleted."})
	}
}
