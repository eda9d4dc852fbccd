package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sneakpick/sneakpick-api/models"
	"github.com/sneakpick/sneakpick-api/validation"
)

type ProductInput struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Label       *string `json:"label"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Image1      string  `json:"image1"`
	Image2      *string `json:"image2"`
	Image3      *string `json:"image3"`
	Image4      *string `json:"image4"`
	BtnColor1   string  `json:"btn_color1"`
	BtnColor2   string  `json:"btn_color2"`
	BtnColor3   string  `json:"btn_color3"`
	BtnColor4   string  `json:"btn_color4"`
}

// POST /products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if err := validation.Product(input.Title, input.Price, input.Quantity, input.Description, input.Category, input.Image1); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product := models.Product{
			Title:       input.Title,
			Price:       input.Price,
			Category:    input.Category,
			Label:       input.Label,
			Description: input.Description,
			Quantity:    input.Quantity,
			Image1:      input.Image1,
			Image2:      input.Image2,
			Image3:      input.Image3,
			Image4:      input.Image4,
			BtnColor1:   input.BtnColor1,
			BtnColor2:   input.BtnColor2,
			BtnColor3:   input.BtnColor3,
			BtnColor4:   input.BtnColor4,
		}
		if err := db.Create(&product).Error; err != nil {
			log.Error().Err(err).Msg("failed to create product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			log.Error().Err(err).Msg("failed to list products")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/:id
//
// The id is parsed as an integer before it goes anywhere near a query,
// and the lookup itself is parameterized.
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			log.Error().Err(err).Msg("failed to fetch product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// PUT /products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			log.Error().Err(err).Msg("failed to fetch product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		product.Title = input.Title
		product.Price = input.Price
		product.Category = input.Category
		product.Label = input.Label
		product.Description = input.Description
		product.Quantity = input.Quantity
		product.Image1 = input.Image1
		product.Image2 = input.Image2
		product.Image3 = input.Image3
		product.Image4 = input.Image4
		product.BtnColor1 = input.BtnColor1
		product.BtnColor2 = input.BtnColor2
		product.BtnColor3 = input.BtnColor3
		product.BtnColor4 = input.BtnColor4

		if err := db.Save(&product).Error; err != nil {
			log.Error().Err(err).Msg("failed to update product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		result := db.Delete(&models.Product{}, id)
		if result.Error != nil {
			log.Error().Err(result.Error).Msg("failed to delete product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "The product was deleted."})
	}
}
