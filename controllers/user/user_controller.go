package userControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sneakpick/sneakpick-api/config"
	"github.com/sneakpick/sneakpick-api/middleware"
	"github.com/sneakpick/sneakpick-api/models"
	"github.com/sneakpick/sneakpick-api/validation"
)

type SignupInput struct {
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateUserInput struct {
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
	Email     *string `json:"email"`
	Phone     *int64  `json:"phone"`
}

type UpdatePasswordInput struct {
	Password string `json:"password"`
}

// POST /signup
func Signup(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if err := validation.Registration(input.Username, input.Firstname, input.Lastname, input.Email, input.Password); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Fast-path duplicate checks. These race with concurrent signups;
		// the unique indexes on username and email are the real guarantee.
		var existing models.User
		if err := db.Where("username = ?", input.Username).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken!"})
			return
		}
		if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists!"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error().Err(err).Msg("failed to hash password")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		user := models.User{
			Username:  input.Username,
			Firstname: input.Firstname,
			Lastname:  input.Lastname,
			Email:     input.Email,
			Password:  string(hashed),
		}
		if err := db.Create(&user).Error; err != nil {
			// A concurrent signup may have won the race; the unique index
			// rejects the second insert.
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already taken!"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// POST /login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if err := validation.Login(input.Username, input.Password); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := models.UserByUsername(db, input.Username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Username is not found"})
				return
			}
			log.Error().Err(err).Msg("failed to look up user for login")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid password"})
			return
		}

		token, err := GenerateToken(user.Username)
		if err != nil {
			log.Error().Err(err).Msg("failed to sign token")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			return
		}

		c.Header("auth-token", token)
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// GenerateToken signs a credential carrying the username claim, valid
// for the configured number of days from issuance.
func GenerateToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(time.Duration(config.TokenValidDays()) * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret()))
}

// GET /user
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := models.UserByUsername(db, c.GetString(middleware.UsernameKey))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /user — profile fields only. Password changes go through
// UpdatePassword so a plain profile update never rehashes anything.
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := models.UserByUsername(db, c.GetString(middleware.UsernameKey))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		updates := make(map[string]interface{})
		if input.Firstname != nil {
			updates["firstname"] = *input.Firstname
		}
		if input.Lastname != nil {
			updates["lastname"] = *input.Lastname
		}
		if input.Email != nil {
			updates["email"] = *input.Email
		}
		if input.Phone != nil {
			updates["phone"] = *input.Phone
		}

		if len(updates) > 0 {
			if err := db.Model(user).Updates(updates).Error; err != nil {
				log.Error().Err(err).Msg("failed to update user")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
				return
			}
		}

		c.JSON(http.StatusOK, user)
	}
}

// PUT /user/password
func UpdatePassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := models.UserByUsername(db, c.GetString(middleware.UsernameKey))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input UpdatePasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if err := validation.Password(input.Password); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error().Err(err).Msg("failed to hash password")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
			return
		}

		if err := db.Model(user).Update("password", string(hashed)).Error; err != nil {
			log.Error().Err(err).Msg("failed to update password")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
	}
}

// DELETE /user — removes the account and everything it owns.
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := models.UserByUsername(db, c.GetString(middleware.UsernameKey))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_id = ?", user.ID).Delete(&models.Cart{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", user.ID).Delete(&models.Address{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", user.ID).Delete(&models.Order{}).Error; err != nil {
				return err
			}
			return tx.Delete(user).Error
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to delete user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Your account was deleted."})
	}
}
