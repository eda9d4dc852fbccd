package cartControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userControllers "github.com/sneakpick/sneakpick-api/controllers/user"
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
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Cart{}))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.POST("", AddCartItem(db))
		cartGroup.GET("", GetCart(db))
		cartGroup.PUT("", UpdateCartQuantity(db))
		cartGroup.DELETE("/:id", DeleteCartItem(db))
		cartGroup.DELETE("", ClearCart(db))
	}
	return r
}

func seedUser(t *testing.T, db *gorm.DB, username string) (models.User, string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := models.User{
		Username: username, Email: username + "@example.com",
		Password: string(hashed), Firstname: "Test", Lastname: "User",
	}
	require.NoError(t, db.Create(&user).Error)
	token, err := userControllers.GenerateToken(username)
	require.NoError(t, err)
	return user, token
}

func seedProduct(t *testing.T, db *gorm.DB, title string, price float64) models.Product {
	t.Helper()
	product := models.Product{
		Title: title, Price: price, Category: "running",
		Description: "Lightweight running shoe", Quantity: 10, Image1: "https://img/1.png",
		BtnColor1: "red", BtnColor2: "blue", BtnColor3: "green", BtnColor4: "black",
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Adding a line always starts it at quantity 1, whatever the payload asks for.
func TestAddCartItemForcesQuantityOne(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	r := setupRouter(db)
	_, token := seedUser(t, db, "johndoe")
	product := seedProduct(t, db, "Air Zoom Pegasus", 149.99)

	w := doJSON(r, http.MethodPost, "/cart", token, map[string]interface{}{
		"product_id": product.ID,
		"size":       "9",
		"cart_image": "https://img/1.png",
		"quantity":   5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var item models.Cart
	require.NoError(t, db.First(&item).Error)
	assert.Equal(t, 1, item.Quantity)
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	r := setupRouter(db)
	_, token := seedUser(t, db, "johndoe")

	w := doJSON(r, http.MethodPost, "/cart", token, map[string]interface{}{
		"product_id": 42,
		"size":       "9",
		"cart_image": "https://img/1.png",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Product does not exist")
}

func TestGetCartComputesLineTotals(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	r := setupRouter(db)
	user, token := seedUser(t, db, "johndoe")
	product := seedProduct(t, db, "Air Zoom Pegasus", 150)

	require.NoError(t, db.Create(&models.Cart{
		ProductID: product.ID, UserID: user.ID, Quantity: 3, Size: "9", CartImage: "https://img/1.png",
	}).Error)

	w := doJSON(r, http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var lines []models.CartLine
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lines))
	require.Len(t, lines, 1)
	assert.Equal(t, product.ID, lines[0].ProductID)
	assert.Equal(t, 3, lines[0].CartQuantity)
	assert.Equal(t, float64(450), lines[0].TotalPrice)
}

func TestUpdateCartQuantity(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	r := setupRouter(db)
	user, token := seedUser(t, db, "johndoe")
	product := seedProduct(t, db, "Air Zoom Pegasus", 150)

	item := models.Cart{ProductID: product.ID, UserID: user.ID, Quantity: 1, Size: "9", CartImage: "img"}
	require.NoError(t, db.Create(&item).Error)

	w := doJSON(r, http.MethodPut, "/cart", token, map[string]interface{}{"id": item.ID, "quantity": 4})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.First(&item, item.ID).Error)
	assert.Equal(t, 4, item.Quantity)

	// Another user cannot touch the line.
	_, otherToken := seedUser(t, db, "janedoe")
	w = doJSON(r, http.MethodPut, "/cart", otherToken, map[string]interface{}{"id": item.ID, "quantity": 9})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearCartIsUserIsolated(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	r := setupRouter(db)
	userA, tokenA := seedUser(t, db, "johndoe")
	userB, _ := seedUser(t, db, "janedoe")
	product := seedProduct(t, db, "Air Zoom Pegasus", 150)

	for _, uid := range []uint{userA.ID, userB.ID} {
		require.NoError(t, db.Create(&models.Cart{
			ProductID: product.ID, UserID: uid, Quantity: 1, Size: "9", CartImage: "img",
		}).Error)
	}

	w := doJSON(r, http.MethodDelete, "/cart", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var countA, countB int64
	db.Model(&models.Cart{}).Where("user_id = ?", userA.ID).Count(&countA)
	db.Model(&models.Cart{}).Where("user_id = ?", userB.ID).Count(&countB)
	assert.Zero(t, countA)
	assert.EqualValues(t, 1, countB)
}

func TestDeleteSingleCartItem(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	r := setupRouter(db)
	user, token := seedUser(t, db, "johndoe")
	product := seedProduct(t, db, "Air Zoom Pegasus", 150)

	first := models.Cart{ProductID: product.ID, UserID: user.ID, Quantity: 1, Size: "9", CartImage: "img"}
	second := models.Cart{ProductID: product.ID, UserID: user.ID, Quantity: 1, Size: "10", CartImage: "img"}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	w := doJSON(r, http.MethodDelete, "/cart/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	w = doJSON(r, http.MethodDelete, "/cart/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
