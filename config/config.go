package config

import (
	"fmt"
	"os"
	"strconv"
)

// Env accessors with defaults. godotenv loads .env in main, after that
// everything goes through plain environment lookups.

func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}

// DatabaseDSN prefers a full DATABASE_URL and otherwise assembles a DSN
// from the individual DB_* variables.
func DatabaseDSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getenv("DB_HOST", "localhost"),
		getenv("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		getenv("DB_NAME", "sneakpick"),
		getenv("DB_PORT", "5432"),
	)
}

func JWTSecret() string { return os.Getenv("JWT_SECRET") }

// TokenValidDays is the credential lifetime from issuance.
func TokenValidDays() int {
	if v := os.Getenv("TOKEN_VALID_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			return days
		}
	}
	return 10
}

func FrontendDomainURL() string { return getenv("FRONTEND_DOMAIN_URL", "http://localhost:3000") }

func StripeSecretKey() string { return os.Getenv("STRIPE_SECRET_KEY") }

func StripeWebhookSecret() string { return os.Getenv("STRIPE_WEBHOOK_SECRET") }

func AdminAPIKey() string { return os.Getenv("ADMIN_API_KEY") }

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
