package forms

import "time"

// PaymentFormSubmission tracks one payment attempt. Created pending with
// masked card placeholders at intent-creation time; the confirm step (or the
// webhook) moves it to completed/failed and back-fills the masked card
// details from the processor.
type PaymentFormSubmission struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName string `gorm:"not null" json:"full_name"`
	Email    string `gorm:"not null" json:"email"`
	Phone    string `gorm:"not null" json:"phone"`

	Address    string `gorm:"not null" json:"address"`
	City       string `gorm:"not null" json:"city"`
	PostalCode string `gorm:"not null" json:"postal_code"`
	Country    string `gorm:"not null" json:"country"`

	// Masked card fields only; the processor owns the real card data.
	CardLast4  string `gorm:"column:card_last4" json:"card_last4"`
	CardName   string `json:"card_name"`
	ExpiryDate string `json:"expiry_date"`

	TransactionID string        `gorm:"not null;uniqueIndex" json:"transaction_id"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	Amount        float64       `json:"amount"`
	Currency      string        `gorm:"not null;default:'USD'" json:"currency"`

	IPAddress string `gorm:"column:ip_address" json:"ip_address"`
	UserAgent string `json:"user_agent"`

	SubmittedAt time.Time `gorm:"autoCreateTime;index" json:"submitted_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MaskedCardNumber is the display form of the stored last-4.
func (p *PaymentFormSubmission) MaskedCardNumber() string {
	if p.CardLast4 != "" && p.CardLast4 != "****" {
		return "****-****-****-" + p.CardLast4
	}
	return "N/A"
}
