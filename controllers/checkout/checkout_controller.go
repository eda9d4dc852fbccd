package checkoutControllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"gorm.io/gorm"

	"github.com/sneakpick/sneakpick-api/config"
	"github.com/sneakpick/sneakpick-api/middleware"
	"github.com/sneakpick/sneakpick-api/models"
)

// POST /create-checkout-session
//
// Builds one Stripe price line per cart entry and returns the hosted
// session id; the frontend redirects the customer to Stripe from there.
// The user id rides along as session metadata so the webhook can find
// the cart again.
func CreateCheckoutSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := models.UserByUsername(db, c.GetString(middleware.UsernameKey))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		lines, err := models.CartLinesForUser(db, user.ID)
		if err != nil {
			log.Error().Err(err).Msg("failed to load cart for checkout")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
			return
		}
		if len(lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(lines))
		for _, line := range lines {
			lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("usd"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:   stripe.String(line.Title),
						Images: stripe.StringSlice([]string{line.CartImage}),
					},
					// Full minor units; the old backend truncated prices to
					// whole dollars first and undercharged on cents.
					UnitAmount: stripe.Int64(int64(math.Round(line.Price * 100))),
				},
				Quantity: stripe.Int64(int64(line.CartQuantity)),
			})
		}

		domainURL := config.FrontendDomainURL()
		params := &stripe.CheckoutSessionParams{
			CustomerEmail:            stripe.String(user.Email),
			SubmitType:               stripe.String("pay"),
			BillingAddressCollection: stripe.String("auto"),
			PaymentMethodTypes:       stripe.StringSlice([]string{"card"}),
			LineItems:                lineItems,
			Mode:                     stripe.String(string(stripe.CheckoutSessionModePayment)),
			SuccessURL:               stripe.String(domainURL + "/success"),
			CancelURL:                stripe.String(domainURL + "/canceled"),
		}
		params.AddMetadata("user_id", strconv.FormatUint(uint64(user.ID), 10))

		s, err := session.New(params)
		if err != nil {
			log.Error().Err(err).Msg("failed to create checkout session")
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create checkout session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": s.ID})
	}
}
