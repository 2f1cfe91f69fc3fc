package forms

// PaymentStatus is the lifecycle state of a PaymentFormSubmission.
//
//	pending -> completed | failed
//	failed  -> completed            (client retried the charge)
//	completed -> refunded           (admin only, out-of-band)
//
// Self-transitions are allowed so a re-confirm can idempotently re-assert a
// terminal state. Nothing ever goes back to pending; refunded is terminal.
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "pending"
	StatusCompleted PaymentStatus = "completed"
	StatusFailed    PaymentStatus = "failed"
	StatusRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) CanTransition(to PaymentStatus) bool {
	if s == to {
		return true
	}
	switch s {
	case StatusPending:
		return to == StatusCompleted || to == StatusFailed
	case StatusFailed:
		return to == StatusCompleted
	case StatusCompleted:
		return to == StatusRefunded
	}
	return false
}

// Transition returns the state the record should hold after attempting to
// move to target: the target when allowed, the current state otherwise.
func (s PaymentStatus) Transition(to PaymentStatus) PaymentStatus {
	if s.CanTransition(to) {
		return to
	}
	return s
}
