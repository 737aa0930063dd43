package app

import "errors"

// Typed errors for the Stripe app layer. These enable HTTP mapping without
// relying on SDK-specific error types at the transport layer.
var (
	// ErrBadRequest indicates missing or invalid caller input.
	ErrBadRequest = errors.New("bad request")
	// ErrSignatureInvalid indicates the webhook signature did not verify against the raw body.
	ErrSignatureInvalid = errors.New("signature invalid")
	// ErrBadEvent indicates the incoming event payload is invalid or missing required fields.
	ErrBadEvent = errors.New("bad event")
	// ErrGateway indicates a failure from the Stripe gateway / API calls.
	ErrGateway = errors.New("gateway error")
	// ErrNotConfigured indicates a Stripe key, signing secret or price id is missing.
	ErrNotConfigured = errors.New("payment provider not configured")
	// ErrDownstream indicates the activation could not be forwarded to the game server.
	ErrDownstream = errors.New("downstream error")
)
