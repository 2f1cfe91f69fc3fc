package formsapi

import (
	"net/http"

	"shambala-backend/config"
	"shambala-backend/database"
	"shambala-backend/internal/domain/forms"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/payments-page
// Projects the editable payments-page configuration for the front-end:
// intro copy, featured image, per-form config, processor config and the
// success/error messages.
func GetPaymentsPage(c *gin.Context) {
	var page forms.PaymentsPage
	err := database.DB.Preload("FeaturedImage").First(&page).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payments page not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments page"})
		return
	}

	var featuredImage gin.H
	if page.FeaturedImage != nil {
		featuredImage = gin.H{
			"url":    page.FeaturedImage.URL(config.MEDIA_BASE_URL),
			"title":  page.FeaturedImage.Title,
			"width":  page.FeaturedImage.Width,
			"height": page.FeaturedImage.Height,
		}
	}

	// The publishable key is only meaningful when a real processor is set.
	var publishKey any
	if page.PaymentProcessor != forms.ProcessorManual {
		publishKey = page.PublishKey
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                 page.ID,
		"title":              page.Title,
		"slug":               page.Slug,
		"intro_title":        page.IntroTitle,
		"intro_text":         page.IntroText,
		"featured_image":     featuredImage,
		"seo_title":          page.SEOTitle,
		"search_description": page.SearchDescription,
		"form_config": gin.H{
			"basic_form": gin.H{
				"enabled":     page.BasicFormEnabled,
				"title":       page.BasicFormTitle,
				"description": page.BasicFormDescription,
			},
			"payment_form": gin.H{
				"enabled":     page.PaymentFormEnabled,
				"title":       page.PaymentFormTitle,
				"description": page.PaymentFormDescription,
				"steps": []gin.H{
					{"step": 1, "title": page.Step1Title, "description": page.Step1Description},
					{"step": 2, "title": page.Step2Title, "description": page.Step2Description},
					{"step": 3, "title": page.Step3Title, "description": page.Step3Description},
				},
			},
		},
		"payment_config": gin.H{
			"processor":               page.PaymentProcessor,
			"publish_key":             publishKey,
			"currency":                "USD",
			"requires_payment_method": page.PaymentProcessor != forms.ProcessorManual,
		},
		"messages": gin.H{
			"success": page.SuccessMessage,
			"error":   page.ErrorMessage,
		},
	})
}
