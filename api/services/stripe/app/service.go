package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	stripe "github.com/stripe/stripe-go/v82"
	fivemgw "github.com/tbeaudouin05/stripe-fivem-relay/api/services/fivem/gateway"
	gw "github.com/tbeaudouin05/stripe-fivem-relay/api/services/stripe/gateway"
)

// Service defines the business operations for the Stripe domain.
type Service interface {
	CreateCheckoutSession(ctx context.Context, code, productType string) (CheckoutSessionResponse, error)
	HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) error
	HandleCheckoutSessionCompleted(ctx context.Context, event stripe.Event) error
}

// serviceImpl is a concrete implementation.
type serviceImpl struct {
	gw    gw.StripeGateway
	fwd   fivemgw.Forwarder
	plans map[ProductType]plan
	opts  Options
}

func NewService(g gw.StripeGateway, f fivemgw.Forwarder, opts Options) Service {
	return serviceImpl{
		gw:  g,
		fwd: f,
		plans: map[ProductType]plan{
			ProductTypeMonthly:  {priceID: opts.PriceMonthly, mode: stripe.CheckoutSessionModeSubscription},
			ProductTypeLifetime: {priceID: opts.PriceLifetime, mode: stripe.CheckoutSessionModePayment},
		},
		opts: opts,
	}
}

// HandleWebhook verifies a raw Stripe delivery and dispatches it by event type.
// A failed forward is logged and still acknowledged so that Stripe does not redeliver.
func (s serviceImpl) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) error {
	if strings.TrimSpace(signatureHeader) == "" {
		return fmt.Errorf("%w: missing Stripe-Signature header", ErrBadRequest)
	}
	event, err := s.gw.VerifyEvent(payload, signatureHeader)
	if err != nil {
		if errors.Is(err, gw.ErrNotConfigured) {
			return fmt.Errorf("%w: %v", ErrNotConfigured, err)
		}
		return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		if err := s.HandleCheckoutSessionCompleted(ctx, event); err != nil {
			if !errors.Is(err, ErrDownstream) {
				return err
			}
			slog.Error("activation forward failed, acknowledging webhook", "event_id", event.ID, "err", err)
		}
	default:
		slog.Debug("ignoring stripe event", "event_id", event.ID, "type", event.Type)
	}
	return nil
}

// HandleCheckoutSessionCompleted processes the checkout.session.completed event
func (s serviceImpl) HandleCheckoutSessionCompleted(ctx context.Context, event stripe.Event) error {
	if event.Data == nil {
		return fmt.Errorf("%w: event has no data", ErrBadEvent)
	}
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("%w: error unmarshaling into CheckoutSession: %v", ErrBadEvent, err)
	}

	code := session.Metadata[MetadataCode]
	productType := session.Metadata[MetadataType]
	if code == "" {
		slog.Info("checkout session completed without activation code", "session_id", session.ID)
		return nil
	}
	if !isKnownProductType(productType) {
		slog.Warn("unrecognised product type, defaulting to subscription", "session_id", session.ID, "type", productType)
	}

	cmd := fivemgw.ActivationCommand{Action: ActionFor(productType), Code: code}
	if err := s.fwd.SendActivation(ctx, cmd); err != nil {
		return fmt.Errorf("%w: %v", ErrDownstream, err)
	}
	slog.Info("activation forwarded", "session_id", session.ID, "code", code, "action", cmd.Action)
	return nil
}
