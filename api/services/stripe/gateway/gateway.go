package gateway

import (
	"context"
	"errors"

	stripe "github.com/stripe/stripe-go/v82"
)

// ErrNotConfigured indicates the API key or webhook signing secret is missing.
var ErrNotConfigured = errors.New("stripe not configured")

// CheckoutSessionInput describes a hosted checkout session to create.
type CheckoutSessionInput struct {
	PriceID    string
	Mode       stripe.CheckoutSessionMode
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

//go:generate mockgen -source=gateway.go -destination=mock/mock_gateway.go

// StripeGateway abstracts Stripe SDK operations needed by the app layer.
// Methods return values (not pointers) to respect the project's preference
// to avoid pointer types in public interfaces.
type StripeGateway interface {
	CreateCheckoutSession(ctx context.Context, in CheckoutSessionInput) (stripe.CheckoutSession, error)
	// VerifyEvent checks the signature header against the exact payload bytes and decodes the event.
	VerifyEvent(payload []byte, signatureHeader string) (stripe.Event, error)
}
