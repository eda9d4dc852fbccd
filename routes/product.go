package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/sneakpick/sneakpick-api/controllers/product"
	"github.com/sneakpick/sneakpick-api/middleware"
)

// SetupProductRoutes registers the catalog. Reads are public, writes
// and the export are behind the admin API key.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productControllers.GetProducts(db))
	r.GET("/products/:id", productControllers.GetProductByID(db))

	r.POST("/products", middleware.ValidateAPIKey, productControllers.CreateProduct(db))
	r.PUT("/products/:id", middleware.ValidateAPIKey, productControllers.UpdateProduct(db))
	r.DELETE("/products/:id", middleware.ValidateAPIKey, productControllers.DeleteProduct(db))

	r.GET("/admin/products/export", middleware.ValidateAPIKey, productControllers.ExportProductsToExcel(db))
}
