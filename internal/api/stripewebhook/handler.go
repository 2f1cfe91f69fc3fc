package stripewebhooks

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"shambala-backend/config"
	"shambala-backend/database"
	"shambala-backend/internal/domain/forms"
	stripeinfra "shambala-backend/internal/infra/stripe"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/webhook"
)

// StripeWebhook reconciles payment records from processor events. The
// client-driven confirm endpoint remains the primary path; this covers
// clients that never come back after the charge.
func StripeWebhook(c *gin.Context) {
	endpointSecret := config.STRIPE_WEBHOOK_SECRET
	if endpointSecret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "STRIPE_WEBHOOK_SECRET not configured"})
		return
	}

	payload, err := readStripeBody(c, 65536)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		c.GetHeader("Stripe-Signature"),
		endpointSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		log.Println("stripe signature verification failed:", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signature verification failed"})
		return
	}

	switch event.Type {
	case "payment_intent.succeeded", "payment_intent.payment_failed":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse payment intent"})
			return
		}
		if err := reconcileIntent(&intent); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "received"})

	default:
		// Acknowledge unknown events to avoid retries
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
	}
}

// reconcileIntent applies the event's status to the local record through the
// same transition rules the confirm endpoint uses. A missing record is
// acknowledged, not retried: the create step may have failed after the
// intent was made.
func reconcileIntent(intent *stripe.PaymentIntent) error {
	var submission forms.PaymentFormSubmission
	err := database.DB.Where("transaction_id = ?", intent.ID).First(&submission).Error
	if err != nil {
		log.Println("webhook: no payment record for intent", intent.ID)
		return nil
	}

	submission.PaymentStatus = submission.PaymentStatus.Transition(
		stripeinfra.StatusFromIntent(string(intent.Status)))

	return database.DB.Save(&submission).Error
}

func readStripeBody(c *gin.Context, maxBytes int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	return io.ReadAll(c.Request.Body)
}
