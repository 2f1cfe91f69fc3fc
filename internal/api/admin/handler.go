package admin

import (
	"net/http"
	"time"

	"shambala-backend/database"
	"shambala-backend/internal/domain/forms"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminBasicSubmission struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	IPAddress   string `json:"ip_address"`
	SubmittedAt string `json:"submitted_at"`
}

type AdminPaymentSubmission struct {
	ID            uint    `json:"id"`
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"payment_status"`
	TransactionID string  `json:"transaction_id"`
	MaskedCard    string  `json:"masked_card"`
	SubmittedAt   string  `json:"submitted_at"`
}

type AdminStats struct {
	BasicSubmissions   int     `json:"basic_submissions"`
	PaymentSubmissions int     `json:"payment_submissions"`
	CompletedPayments  int     `json:"completed_payments"`
	CompletedRevenue   float64 `json:"completed_revenue"`
	RecentRevenue      float64 `json:"recent_revenue"`
}

// GET /admin/submissions/basic
func ListBasicSubmissions(c *gin.Context) {
	var submissions []forms.BasicFormSubmission
	if err := database.DB.Order("submitted_at DESC").Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submissions"})
		return
	}

	out := make([]AdminBasicSubmission, 0, len(submissions))
	for _, s := range submissions {
		out = append(out, AdminBasicSubmission{
			ID:          s.ID,
			Name:        s.Name,
			Email:       s.Email,
			Phone:       s.Phone,
			Message:     s.Message,
			IPAddress:   s.IPAddress,
			SubmittedAt: s.SubmittedAt.Format("2006-01-02 15:04"),
		})
	}
	c.JSON(http.StatusOK, out)
}

// GET /admin/submissions/payments
func ListPaymentSubmissions(c *gin.Context) {
	var submissions []forms.PaymentFormSubmission
	if err := database.DB.Order("submitted_at DESC").Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submissions"})
		return
	}

	out := make([]AdminPaymentSubmission, 0, len(submissions))
	for _, s := range submissions {
		out = append(out, AdminPaymentSubmission{
			ID:            s.ID,
			FullName:      s.FullName,
			Email:         s.Email,
			Amount:        s.Amount,
			Currency:      s.Currency,
			Status:        string(s.PaymentStatus),
			TransactionID: s.TransactionID,
			MaskedCard:    s.MaskedCardNumber(),
			SubmittedAt:   s.SubmittedAt.Format("2006-01-02 15:04"),
		})
	}
	c.JSON(http.StatusOK, out)
}

// GET /admin/dashboard
func AdminDashboard(c *gin.Context) {
	var stats AdminStats

	var basicCount, paymentCount, completedCount int64
	database.DB.Model(&forms.BasicFormSubmission{}).Count(&basicCount)
	database.DB.Model(&forms.PaymentFormSubmission{}).Count(&paymentCount)
	database.DB.Model(&forms.PaymentFormSubmission{}).
		Where("payment_status = ?", forms.StatusCompleted).
		Count(&completedCount)

	database.DB.Model(&forms.PaymentFormSubmission{}).
		Where("payment_status = ?", forms.StatusCompleted).
		Select("COALESCE(SUM(amount), 0)").Scan(&stats.CompletedRevenue)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&forms.PaymentFormSubmission{}).
		Where("payment_status = ? AND submitted_at >= ?", forms.StatusCompleted, thirtyDaysAgo).
		Select("COALESCE(SUM(amount), 0)").Scan(&stats.RecentRevenue)

	stats.BasicSubmissions = int(basicCount)
	stats.PaymentSubmissions = int(paymentCount)
	stats.CompletedPayments = int(completedCount)

	c.JSON(http.StatusOK, stats)
}

// POST /admin/payments/:id/refund
// Marks a completed payment refunded. The refund itself happens on the
// processor's dashboard; this only records the terminal state locally.
func RefundPayment(c *gin.Context) {
	id := c.Param("id")

	var submission forms.PaymentFormSubmission
	if err := database.DB.First(&submission, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payment record"})
		return
	}

	if !submission.PaymentStatus.CanTransition(forms.StatusRefunded) {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Cannot refund a payment in status " + string(submission.PaymentStatus),
		})
		return
	}

	submission.PaymentStatus = forms.StatusRefunded
	if err := database.DB.Save(&submission).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payment_status": submission.PaymentStatus,
		"transaction_id": submission.TransactionID,
	})
}
