package routes

import (
	adminapi "shambala-backend/internal/api/admin"
	authapi "shambala-backend/internal/api/auth"
	contentapi "shambala-backend/internal/api/content"
	formsapi "shambala-backend/internal/api/forms"
	mediaapi "shambala-backend/internal/api/media"
	"shambala-backend/internal/api/payments"
	stripewebhooks "shambala-backend/internal/api/stripewebhook"
	"shambala-backend/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Webhook stays outside the sanitizer: its body is signature-verified raw bytes.
	r.POST("/webhook/stripe", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public read API
	r.GET("/api/pages", contentapi.ListPages)
	r.GET("/api/pages/:slug", contentapi.GetPage)
	r.GET("/api/payments-page", formsapi.GetPaymentsPage)
	r.GET("/api/images", mediaapi.ListImages)
	r.GET("/api/images/:id", mediaapi.GetImage)

	// Public form submissions, sanitized
	public := r.Group("/api")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/submit-basic-form/", formsapi.SubmitBasicForm)
	public.POST("/submit-payment-form/", payments.SubmitPaymentForm)
	public.POST("/confirm-payment/", payments.ConfirmPayment)

	// Editor sign-in
	r.POST("/admin/login", authapi.Login)
	r.GET("/admin/auth/google", authapi.GoogleStart)
	r.GET("/admin/auth/google/callback", authapi.GoogleCallback)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/submissions/basic", adminapi.ListBasicSubmissions)
	admin.GET("/submissions/payments", adminapi.ListPaymentSubmissions)
	admin.POST("/payments/:id/refund", adminapi.RefundPayment)
	admin.POST("/change-password", authapi.ChangePassword)
}
