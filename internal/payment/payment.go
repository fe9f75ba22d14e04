// Package payment wraps the third-party payment processor. The rest of the
// storefront treats it as opaque: hand it the client secret from "place
// order" plus card details, get back success or an error.
package payment

import "context"

// Card holds the details collected from the user for one payment attempt.
// They are passed straight to the processor and never stored.
type Card struct {
	Number   string
	ExpMonth int64
	ExpYear  int64
	CVC      string
}

// Confirmer confirms a single payment attempt identified by its client
// secret. Implementations must not retry: a failed confirmation surfaces to
// the user and checkout stops.
type Confirmer interface {
	Confirm(ctx context.Context, clientSecret string, card Card) error
}
