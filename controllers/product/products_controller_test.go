package productControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sneakpick/sneakpick-api/middleware"
	"github.com/sneakpick/sneakpick-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", GetProducts(db))
	r.GET("/products/:id", GetProductByID(db))
	r.POST("/products", middleware.ValidateAPIKey, CreateProduct(db))
	r.PUT("/products/:id", middleware.ValidateAPIKey, UpdateProduct(db))
	r.DELETE("/products/:id", middleware.ValidateAPIKey, DeleteProduct(db))
	return r
}

func seedProduct(t *testing.T, db *gorm.DB, title string) models.Product {
	t.Helper()
	product := models.Product{
		Title: title, Price: 149.99, Category: "running",
		Description: "Lightweight running shoe", Quantity: 10, Image1: "https://img/1.png",
		BtnColor1: "red", BtnColor2: "blue", BtnColor3: "green", BtnColor4: "black",
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func productPayload() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Air Zoom Pegasus",
		"price":       149.99,
		"category":    "running",
		"description": "Lightweight running shoe",
		"quantity":    10,
		"image1":      "https://img/1.png",
		"btn_color1":  "red",
		"btn_color2":  "blue",
		"btn_color3":  "green",
		"btn_color4":  "black",
	}
}

func TestGetProductByID(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	product := seedProduct(t, db, "Air Zoom Pegasus")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), product.Title)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Ids carrying SQL metacharacters must never change query semantics;
// anything that is not an integer is rejected up front.
func TestGetProductByIDRejectsInjection(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedProduct(t, db, "Air Zoom Pegasus")
	seedProduct(t, db, "Jordan Retro High")

	for _, id := range []string{
		"1 OR 1=1",
		"1; DROP TABLE products",
		"1' --",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/"+url.PathEscape(id), nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, "id %q", id)
	}

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestCreateProductRequiresAPIKey(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "admin-key")
	r := setupRouter(setupTestDB(t))

	body, _ := json.Marshal(productPayload())
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", "admin-key")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateProductValidation(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "admin-key")
	r := setupRouter(setupTestDB(t))

	payload := productPayload()
	payload["title"] = "Air"
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", "admin-key")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title must be at least 6 characters long")
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "admin-key")
	db := setupTestDB(t)
	r := setupRouter(db)
	seedProduct(t, db, "Air Zoom Pegasus")

	payload := productPayload()
	payload["price"] = 99.99
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPut, "/products/1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", "admin-key")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var product models.Product
	require.NoError(t, db.First(&product, 1).Error)
	assert.Equal(t, 99.99, product.Price)

	req = httptest.NewRequest(http.MethodDelete, "/products/1", nil)
	req.Header.Set("X-API-KEY", "admin-key")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Zero(t, count)
}
