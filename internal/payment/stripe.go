package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/paymentintent"
	"github.com/stripe/stripe-go/v78/paymentmethod"
)

// ErrNotConfigured is returned when no Stripe API key was provided.
var ErrNotConfigured = errors.New("payment: stripe api key not configured")

// StripeConfirmer confirms payment intents against Stripe using the client
// secret issued by the backend at order placement.
type StripeConfirmer struct{}

// NewStripeConfirmer sets the package-level Stripe key and returns a
// confirmer. An empty key is rejected so checkout fails fast with a
// configuration error instead of an opaque processor error.
func NewStripeConfirmer(apiKey string) (*StripeConfirmer, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	stripe.Key = apiKey
	return &StripeConfirmer{}, nil
}

func (s *StripeConfirmer) Confirm(ctx context.Context, clientSecret string, card Card) error {
	intentID, err := intentIDFromSecret(clientSecret)
	if err != nil {
		return err
	}

	pm, err := paymentmethod.New(&stripe.PaymentMethodParams{
		Params: stripe.Params{Context: ctx},
		Type:   stripe.String(string(stripe.PaymentMethodTypeCard)),
		Card: &stripe.PaymentMethodCardParams{
			Number:   stripe.String(card.Number),
			ExpMonth: stripe.Int64(card.ExpMonth),
			ExpYear:  stripe.Int64(card.ExpYear),
			CVC:      stripe.String(card.CVC),
		},
	})
	if err != nil {
		return fmt.Errorf("payment: create payment method: %w", err)
	}

	pi, err := paymentintent.Confirm(intentID, &stripe.PaymentIntentConfirmParams{
		Params:        stripe.Params{Context: ctx},
		PaymentMethod: stripe.String(pm.ID),
	})
	if err != nil {
		return fmt.Errorf("payment: confirm: %w", err)
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return fmt.Errorf("payment: intent status %s", pi.Status)
	}
	return nil
}

// intentIDFromSecret extracts the payment intent ID from a client secret of
// the form "pi_XXX_secret_YYY".
func intentIDFromSecret(clientSecret string) (string, error) {
	id, _, found := strings.Cut(clientSecret, "_secret_")
	if !found || !strings.HasPrefix(id, "pi_") {
		return "", fmt.Errorf("payment: malformed client secret")
	}
	return id, nil
}
