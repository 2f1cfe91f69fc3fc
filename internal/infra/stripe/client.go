package stripe

import (
	"errors"

	"shambala-backend/config"

	stripesdk "github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/paymentintent"
	"github.com/stripe/stripe-go/v75/paymentmethod"
)

// Intent is the slice of a processor payment intent the workflow needs.
type Intent struct {
	ID              string
	ClientSecret    string
	Status          string
	PaymentMethodID string
}

// PaymentMethod carries the masked card details back-filled on confirm.
type PaymentMethod struct {
	IsCard   bool
	Last4    string
	Name     string
	ExpMonth int64
	ExpYear  int64
}

// Client is the narrow processor surface the handlers call. Tests substitute
// a stub; production uses New().
type Client interface {
	CreateIntent(amountCents int64, currency string, metadata map[string]string) (*Intent, error)
	GetIntent(id string) (*Intent, error)
	GetPaymentMethod(id string) (*PaymentMethod, error)
}

type liveClient struct{}

// New returns a Client backed by the Stripe SDK. The secret key is read from
// config at call time so handlers can report a missing key as their own 500.
func New() Client {
	return &liveClient{}
}

func (lc *liveClient) CreateIntent(amountCents int64, currency string, metadata map[string]string) (*Intent, error) {
	stripesdk.Key = config.STRIPE_SECRET_KEY

	params := &stripesdk.PaymentIntentParams{
		Amount:             stripesdk.Int64(amountCents),
		Currency:           stripesdk.String(currency),
		PaymentMethodTypes: stripesdk.StringSlice([]string{"card"}),
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}
	return intentFromSDK(pi), nil
}

func (lc *liveClient) GetIntent(id string) (*Intent, error) {
	stripesdk.Key = config.STRIPE_SECRET_KEY

	pi, err := paymentintent.Get(id, nil)
	if err != nil {
		return nil, err
	}
	return intentFromSDK(pi), nil
}

func (lc *liveClient) GetPaymentMethod(id string) (*PaymentMethod, error) {
	stripesdk.Key = config.STRIPE_SECRET_KEY

	pm, err := paymentmethod.Get(id, nil)
	if err != nil {
		return nil, err
	}

	out := &PaymentMethod{}
	if pm.Type == stripesdk.PaymentMethodTypeCard && pm.Card != nil {
		out.IsCard = true
		out.Last4 = pm.Card.Last4
		out.ExpMonth = pm.Card.ExpMonth
		out.ExpYear = pm.Card.ExpYear
	}
	if pm.BillingDetails != nil {
		out.Name = pm.BillingDetails.Name
	}
	return out, nil
}

func intentFromSDK(pi *stripesdk.PaymentIntent) *Intent {
	out := &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}
	if pi.PaymentMethod != nil {
		out.PaymentMethodID = pi.PaymentMethod.ID
	}
	return out
}

// ErrorMessage extracts the processor's own message when err came from the
// Stripe API, so handlers can wrap it in a 400 without leaking internals for
// other error kinds.
func ErrorMessage(err error) (string, bool) {
	var sErr *stripesdk.Error
	if errors.As(err, &sErr) {
		if sErr.Msg != "" {
			return sErr.Msg, true
		}
		return string(sErr.Code), true
	}
	return "", false
}
