package forms

import (
	"time"

	"shambala-backend/internal/domain/media"
)

const (
	ProcessorStripe = "stripe"
	ProcessorPayPal = "paypal"
	ProcessorSquare = "square"
	ProcessorManual = "manual"
)

// PaymentsPage holds the editor-configurable copy and processor settings for
// the payments page. A singleton in practice; the API serves the first row.
type PaymentsPage struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"not null;default:'Payments'" json:"title"`
	Slug  string `gorm:"not null;default:'payments'" json:"slug"`

	IntroTitle string `gorm:"not null;default:'Payments'" json:"intro_title"`
	IntroText  string `json:"intro_text"`

	FeaturedImageID *string      `gorm:"type:uuid" json:"-"`
	FeaturedImage   *media.Image `gorm:"foreignKey:FeaturedImageID" json:"-"`

	SEOTitle          string `gorm:"column:seo_title" json:"seo_title"`
	SearchDescription string `json:"search_description"`

	BasicFormEnabled     bool   `gorm:"not null;default:true" json:"basic_form_enabled"`
	BasicFormTitle       string `gorm:"not null;default:'Basic Information Form'" json:"basic_form_title"`
	BasicFormDescription string `json:"basic_form_description"`

	PaymentFormEnabled     bool   `gorm:"not null;default:true" json:"payment_form_enabled"`
	PaymentFormTitle       string `gorm:"not null;default:'Payment Form'" json:"payment_form_title"`
	PaymentFormDescription string `json:"payment_form_description"`

	Step1Title       string `gorm:"not null;default:'Personal Information'" json:"step1_title"`
	Step1Description string `json:"step1_description"`
	Step2Title       string `gorm:"not null;default:'Billing Address'" json:"step2_title"`
	Step2Description string `json:"step2_description"`
	Step3Title       string `gorm:"not null;default:'Payment Information'" json:"step3_title"`
	Step3Description string `json:"step3_description"`

	PaymentProcessor string `gorm:"not null;default:'manual'" json:"payment_processor"`
	PublishKey       string `json:"publish_key"`

	SuccessMessage string `gorm:"not null;default:'Thank you for your payment! We will process your request shortly.'" json:"success_message"`
	ErrorMessage   string `gorm:"not null;default:'There was an error processing your payment. Please try again.'" json:"error_message"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
