package forms

import "time"

// BasicFormSubmission is an immutable record of a contact-form POST. Created
// once, read by admins, never mutated or deleted by the system.
type BasicFormSubmission struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Phone   string `gorm:"not null" json:"phone"`
	Message string `json:"message"`

	IPAddress string `gorm:"column:ip_address" json:"ip_address"`
	UserAgent string `json:"user_agent"`

	SubmittedAt time.Time `gorm:"autoCreateTime;index" json:"submitted_at"`
}
