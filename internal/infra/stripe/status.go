package stripe

import (
	"strings"

	"shambala-backend/internal/domain/forms"
)

const IntentSucceeded = "succeeded"

// StatusFromIntent maps a processor intent status onto the local payment
// state: completed iff the charge succeeded, failed for everything else the
// confirm step can observe.
func StatusFromIntent(intentStatus string) forms.PaymentStatus {
	if strings.TrimSpace(intentStatus) == IntentSucceeded {
		return forms.StatusCompleted
	}
	return forms.StatusFailed
}
