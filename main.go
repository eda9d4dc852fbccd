package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v76"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sneakpick/sneakpick-api/config"
	"github.com/sneakpick/sneakpick-api/middleware"
	"github.com/sneakpick/sneakpick-api/models"
	"github.com/sneakpick/sneakpick-api/routes"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zlog.Logger = logger

	logger.Info().Msg("starting sneakpick api")

	stripe.Key = config.StripeSecretKey()

	db := initDatabase(logger)

	// Schema manager: ensure the five tables plus the webhook guard
	// table exist. Idempotent per start; no migration versioning.
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Address{},
		&models.Cart{},
		&models.Order{},
		&models.CheckoutSession{},
	); err != nil {
		logger.Fatal().Err(err).Msg("auto-migrate failed")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "auth-token", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, db)

	port := config.Port()
	logger.Info().Str("port", port).Msg("server listening")
	if err := r.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

// initDatabase opens the shared GORM connection pool.
func initDatabase(logger zerolog.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(config.DatabaseDSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	return db
}
