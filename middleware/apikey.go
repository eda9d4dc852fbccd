package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sneakpick/sneakpick-api/config"
)

// ValidateAPIKey guards the admin-only surface (catalog writes, export,
// order feed) with a shared X-API-KEY header.
func ValidateAPIKey(c *gin.Context) {
	apiKey := c.GetHeader("X-API-KEY")
	if apiKey == "" || apiKey != config.AdminAPIKey() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
		c.Abort()
		return
	}
	c.Next()
}
