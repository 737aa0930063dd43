package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	gw "github.com/tbeaudouin05/stripe-fivem-relay/api/services/stripe/gateway"
)

// CreateCheckoutSession creates a hosted checkout session for the product type and returns its URL.
// The code and type are attached as metadata so the completion webhook can route the activation.
func (s serviceImpl) CreateCheckoutSession(ctx context.Context, code, productType string) (CheckoutSessionResponse, error) {
	if strings.TrimSpace(code) == "" || strings.TrimSpace(productType) == "" {
		return CheckoutSessionResponse{}, fmt.Errorf("%w: missing code or type", ErrBadRequest)
	}
	p, ok := s.plans[ProductType(productType)]
	if !ok {
		return CheckoutSessionResponse{}, fmt.Errorf("%w: invalid type %q", ErrBadRequest, productType)
	}
	if p.priceID == "" {
		return CheckoutSessionResponse{}, fmt.Errorf("%w: no price configured for %s", ErrNotConfigured, productType)
	}

	sess, err := s.gw.CreateCheckoutSession(ctx, gw.CheckoutSessionInput{
		PriceID:    p.priceID,
		Mode:       p.mode,
		SuccessURL: s.opts.SuccessURL,
		CancelURL:  s.opts.CancelURL,
		Metadata:   map[string]string{MetadataCode: code, MetadataType: productType},
	})
	if err != nil {
		if errors.Is(err, gw.ErrNotConfigured) {
			return CheckoutSessionResponse{}, fmt.Errorf("%w: %v", ErrNotConfigured, err)
		}
		return CheckoutSessionResponse{}, fmt.Errorf("%w: %s", ErrGateway, providerMessage(err))
	}
	if sess.URL == "" {
		return CheckoutSessionResponse{}, fmt.Errorf("%w: checkout session %s has no url", ErrGateway, sess.ID)
	}
	slog.Info("checkout session created", "session_id", sess.ID, "code", code, "type", productType)
	return CheckoutSessionResponse{URL: sess.URL}, nil
}
