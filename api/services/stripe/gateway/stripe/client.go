package stripegw

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"

	config "github.com/tbeaudouin05/stripe-fivem-relay/api/config"
	gw "github.com/tbeaudouin05/stripe-fivem-relay/api/services/stripe/gateway"
)

// sdkClient is the Stripe SDK-backed implementation of the gateway.
// It owns its API client instead of relying on the global stripe.Key.
type sdkClient struct {
	api           *client.API
	secretKey     string
	webhookSecret string
}

// New returns a StripeGateway backed by the official Stripe SDK.
// backends may be nil; tests pass backends pointing at a local server.
func New(cfg config.Stripe, backends *stripe.Backends) gw.StripeGateway {
	c := sdkClient{secretKey: cfg.SecretKey, webhookSecret: cfg.WebhookSecret}
	if cfg.SecretKey != "" {
		c.api = client.New(cfg.SecretKey, backends)
	}
	return c
}

func (c sdkClient) CreateCheckoutSession(ctx context.Context, in gw.CheckoutSessionInput) (stripe.CheckoutSession, error) {
	if c.api == nil {
		return stripe.CheckoutSession{}, fmt.Errorf("%w: STRIPE_SECRET_KEY is empty", gw.ErrNotConfigured)
	}
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(in.Mode)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(in.PriceID), Quantity: stripe.Int64(1)},
		},
		SuccessURL: stripe.String(in.SuccessURL),
		CancelURL:  stripe.String(in.CancelURL),
	}
	params.Context = ctx
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}
	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return stripe.CheckoutSession{}, err
	}
	if sess == nil {
		return stripe.CheckoutSession{}, nil
	}
	return *sess, nil
}

// VerifyEvent requires both the API key and the signing secret.
// API version mismatches are ignored: only session metadata is read from the event.
func (c sdkClient) VerifyEvent(payload []byte, signatureHeader string) (stripe.Event, error) {
	if c.api == nil {
		return stripe.Event{}, fmt.Errorf("%w: STRIPE_SECRET_KEY is empty", gw.ErrNotConfigured)
	}
	if c.webhookSecret == "" {
		return stripe.Event{}, fmt.Errorf("%w: STRIPE_WEBHOOK_SECRET is empty", gw.ErrNotConfigured)
	}
	return webhook.ConstructEventWithOptions(payload, signatureHeader, c.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
}
