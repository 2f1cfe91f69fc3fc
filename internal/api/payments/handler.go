package payments

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"

	"shambala-backend/database"
	"shambala-backend/internal/domain/forms"
	stripeinfra "shambala-backend/internal/infra/stripe"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Processor is the payment-processor client. Package-level so tests can
// substitute a stub, same as handlers reach database.DB.
var Processor stripeinfra.Client = stripeinfra.New()

var paymentRequiredFields = []string{
	"fullName", "email", "phone", "amount",
	"address", "city", "postalCode", "country",
}

// POST /api/submit-payment-form/
// Phase 1 of the payment workflow: validate, create a processor intent, and
// store a pending local record keyed by the intent id. The caller completes
// the charge out-of-band with the returned client secret.
func SubmitPaymentForm(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}

	for _, field := range paymentRequiredFields {
		if getString(data, field) == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Missing required field: " + field,
			})
			return
		}
	}

	amount, errMsg := resolveAmount(getString(data, "amount"), getString(data, "customAmount"))
	if errMsg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": errMsg})
		return
	}

	intent, err := Processor.CreateIntent(
		int64(math.Round(amount*100)), // minor currency units
		"usd",
		map[string]string{
			"customer_name":  getString(data, "fullName"),
			"customer_email": getString(data, "email"),
			"customer_phone": getString(data, "phone"),
		},
	)
	if err != nil {
		if msg, ok := stripeinfra.ErrorMessage(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Payment processing error: " + msg,
			})
			return
		}
		log.Println("payment intent creation failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "An error occurred while processing your payment",
		})
		return
	}

	submission := forms.PaymentFormSubmission{
		FullName:   getString(data, "fullName"),
		Email:      getString(data, "email"),
		Phone:      getString(data, "phone"),
		Address:    getString(data, "address"),
		City:       getString(data, "city"),
		PostalCode: getString(data, "postalCode"),
		Country:    getString(data, "country"),

		// Back-filled from the processor after confirmation.
		CardLast4:  "****",
		CardName:   getString(data, "cardName"),
		ExpiryDate: "****",

		TransactionID: intent.ID,
		PaymentStatus: forms.StatusPending,
		Amount:        amount,
		Currency:      "USD",

		IPAddress: clientIP(c),
		UserAgent: c.GetHeader("User-Agent"),
	}

	if err := database.DB.Create(&submission).Error; err != nil {
		log.Println("payment submission insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "An error occurred while processing your payment",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Payment intent created successfully",
		"transaction_id": intent.ID,
		"client_secret":  intent.ClientSecret,
		"amount":         amount,
		"currency":       "USD",
		"data": gin.H{
			"customer": gin.H{
				"name":  getString(data, "fullName"),
				"email": getString(data, "email"),
				"phone": getString(data, "phone"),
			},
			"billing": gin.H{
				"address":    getString(data, "address"),
				"city":       getString(data, "city"),
				"postalCode": getString(data, "postalCode"),
				"country":    getString(data, "country"),
			},
		},
	})
}

// POST /api/confirm-payment/
// Phase 2: re-derive the payment state from the processor and reconcile the
// local record. Safe to call repeatedly; a terminal state is re-asserted.
func ConfirmPayment(c *gin.Context) {
	var body struct {
		PaymentIntentID string `json:"payment_intent_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}
	if body.PaymentIntentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Payment intent ID is required"})
		return
	}

	intent, err := Processor.GetIntent(body.PaymentIntentID)
	if err != nil {
		if msg, ok := stripeinfra.ErrorMessage(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Stripe error: " + msg})
			return
		}
		log.Println("payment intent lookup failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "An error occurred while confirming payment",
		})
		return
	}

	var submission forms.PaymentFormSubmission
	if err := database.DB.Where("transaction_id = ?", body.PaymentIntentID).First(&submission).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Payment record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "An error occurred while confirming payment",
		})
		return
	}

	submission.PaymentStatus = submission.PaymentStatus.Transition(
		stripeinfra.StatusFromIntent(intent.Status))

	if intent.PaymentMethodID != "" {
		pm, err := Processor.GetPaymentMethod(intent.PaymentMethodID)
		if err != nil {
			if msg, ok := stripeinfra.ErrorMessage(err); ok {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Stripe error: " + msg})
				return
			}
			log.Println("payment method lookup failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "An error occurred while confirming payment",
			})
			return
		}
		if pm.IsCard {
			submission.CardLast4 = "****" + pm.Last4
			submission.CardName = pm.Name
			submission.ExpiryDate = fmt.Sprintf("%02d/%d", pm.ExpMonth, pm.ExpYear)
		}
	}

	if err := database.DB.Save(&submission).Error; err != nil {
		log.Println("payment submission update failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "An error occurred while confirming payment",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Payment confirmed successfully",
		"payment_status": submission.PaymentStatus,
		"transaction_id": submission.TransactionID,
	})
}
