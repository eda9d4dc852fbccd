package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/sneakpick/sneakpick-api/models"
)

// GET /admin/products/export — download the catalog as a spreadsheet.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			log.Error().Err(err).Msg("failed to fetch products for export")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Title", "Price", "Category", "Label", "Description", "Quantity", "Image1"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Title)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Category)
			if p.Label != nil {
				row.AddCell().SetValue(*p.Label)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Quantity)
			row.AddCell().SetValue(p.Image1)
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			log.Error().Err(err).Msg("failed to write Excel file")
		}
	}
}
