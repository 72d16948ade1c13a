// File: /controllers/payment_controller.go
package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
	"gorm.io/gorm"

	"peerza-api/config"
	"peerza-api/repositories"
)

const maxWebhookBodyBytes = 65536

type PaymentController struct {
	users *repositories.UserRepository
	cfg   *config.Config
}

func NewPaymentController(users *repositories.UserRepository, cfg *config.Config) *PaymentController {
	stripe.Key = cfg.StripeSecretKey
	return &PaymentController{users: users, cfg: cfg}
}

// CreateCheckoutSession creates a one-time Stripe Checkout session for
// the Pro upgrade. The user id rides along as session metadata so the
// webhook can resolve who paid.
func (pc *PaymentController) CreateCheckoutSession(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := pc.users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("usd"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String("Peerza Pro Plan"),
				},
				UnitAmount: stripe.Int64(499), // $4.99
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL: stripe.String(pc.cfg.CheckoutSuccessURL),
		CancelURL:  stripe.String(pc.cfg.CheckoutCancelURL),
	}
	if user.Email != "" {
		params.CustomerEmail = stripe.String(user.Email)
	}
	params.AddMetadata("user_id", user.ID)
	params.AddMetadata("username", user.Username)

	sess, err := session.New(params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessionId": sess.ID})
}

// HandleWebhook flips the Pro flag when Stripe confirms the payment.
// Signature verification requires the webhook secret; without one the
// payload is parsed directly (dev fallback).
func (pc *PaymentController) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read payload"})
		return
	}

	var event stripe.Event
	if pc.cfg.StripeWebhookSecret != "" {
		event, err = webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), pc.cfg.StripeWebhookSecret)
	} else {
		err = json.Unmarshal(payload, &event)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if event.Type == "checkout.session.completed" {
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if userID := sess.Metadata["user_id"]; userID != "" {
			if err := pc.users.SetPro(userID); err != nil && err != gorm.ErrRecordNotFound {
				logrus.WithError(err).WithField("user_id", userID).Error("failed to flip pro flag")
			}
		}
	}

	c.Status(http.StatusOK)
}
