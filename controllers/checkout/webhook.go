package checkoutControllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"gorm.io/gorm"

	"github.com/sneakpick/sneakpick-api/config"
	orderControllers "github.com/sneakpick/sneakpick-api/controllers/order"
	"github.com/sneakpick/sneakpick-api/models"
)

var errSessionProcessed = errors.New("checkout session already processed")

// POST /webhook — Stripe-invoked. The signature check over the raw body
// is the only authentication this endpoint has, so it is not optional.
func Webhook(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
			return
		}

		// Accounts pin their own API versions, so a version mismatch is
		// not an authenticity problem; only the signature is.
		event, err := webhook.ConstructEventWithOptions(
			payload, c.GetHeader("Stripe-Signature"), config.StripeWebhookSecret(),
			webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
		)
		if err != nil {
			log.Warn().Err(err).Msg("webhook signature verification failed")
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid webhook signature"})
			return
		}

		switch string(event.Type) {
		case "checkout.session.completed":
			var checkoutSession stripe.CheckoutSession
			if err := json.Unmarshal(event.Data.Raw, &checkoutSession); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed event payload"})
				return
			}

			if checkoutSession.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
				log.Warn().Str("session_id", checkoutSession.ID).
					Str("payment_status", string(checkoutSession.PaymentStatus)).
					Msg("checkout completed without payment")
				c.JSON(http.StatusOK, gin.H{"message": "Payment not completed"})
				return
			}

			userID, err := strconv.ParseUint(checkoutSession.Metadata["user_id"], 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user metadata"})
				return
			}

			orders, err := materializeOrders(db, checkoutSession.ID, uint(userID))
			if err != nil {
				if errors.Is(err, errSessionProcessed) {
					c.JSON(http.StatusOK, gin.H{"message": "Event already processed"})
					return
				}
				log.Error().Err(err).Str("session_id", checkoutSession.ID).Msg("failed to place orders")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place orders"})
				return
			}

			for _, order := range orders {
				orderControllers.BroadcastNewOrder(order)
			}
			c.JSON(http.StatusOK, gin.H{"message": "Orders placed"})

		default:
			log.Info().Str("type", string(event.Type)).Msg("unhandled event type")
			c.JSON(http.StatusOK, gin.H{"message": "Event ignored"})
		}
	}
}

// materializeOrders turns the user's live cart into order rows and
// clears the cart, all in one transaction. The guard row's unique index
// is the idempotency gate: whichever delivery creates it first wins,
// and every later one (replay or concurrent duplicate) rolls back and
// maps to errSessionProcessed.
func materializeOrders(db *gorm.DB, sessionID string, userID uint) ([]models.Order, error) {
	var orders []models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		guard := models.CheckoutSession{
			SessionID:   sessionID,
			UserID:      userID,
			ProcessedAt: time.Now(),
		}
		if err := tx.Create(&guard).Error; err != nil {
			return err
		}

		lines, err := models.CartLinesForUser(tx, userID)
		if err != nil {
			return err
		}

		for _, line := range lines {
			order := models.Order{
				ProductID:     line.ProductID,
				UserID:        userID,
				OrderQuantity: line.CartQuantity,
				OrderSize:     line.Size,
				OrderImage:    line.CartImage,
				Status:        models.OrderStatusOrdered,
				OrderDate:     time.Now(),
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			orders = append(orders, order)
		}

		return tx.Where("user_id = ?", userID).Delete(&models.Cart{}).Error
	})
	if err != nil {
		// The create can only collide with an existing guard row, so
		// confirm and report the session as processed rather than
		// surfacing a driver-specific constraint error.
		var processed models.CheckoutSession
		if lookupErr := db.Where("session_id = ?", sessionID).First(&processed).Error; lookupErr == nil {
			return nil, errSessionProcessed
		}
		return nil, err
	}
	return orders, nil
}
