package gateway

import (
	"context"
	"encoding/json"
	"errors"
)

// Action is the activation verb understood by the game-server receiver.
type Action string

const (
	ActionActivateSub      Action = "activate_sub"
	ActionActivateLifetime Action = "activate_lifetime"
)

// ActivationCommand is sent downstream for payment-originated activations.
type ActivationCommand struct {
	Secret string `json:"secret"`
	Action Action `json:"action"`
	Code   string `json:"code"`
}

// EventCommand is sent downstream for externally originated events.
// Metric fields are opaque and omitted when the caller did not send them.
type EventCommand struct {
	Secret   string          `json:"secret"`
	Code     string          `json:"code"`
	Event    json.RawMessage `json:"event,omitempty"`
	Amount   json.RawMessage `json:"amount,omitempty"`
	Distance json.RawMessage `json:"distance,omitempty"`
	Duration json.RawMessage `json:"duration,omitempty"`
}

var (
	// ErrNotConfigured indicates the receiver URL or shared secret is missing; nothing was sent.
	ErrNotConfigured = errors.New("forwarder not configured")
	// ErrDownstream indicates the receiver could not be reached or answered with a non-2xx status.
	ErrDownstream = errors.New("downstream forward failed")
)

//go:generate mockgen -source=gateway.go -destination=mock/mock_gateway.go

// Forwarder abstracts delivery to the game-server receiver.
// Implementations stamp the configured shared secret on every command.
type Forwarder interface {
	SendActivation(ctx context.Context, cmd ActivationCommand) error
	SendEvent(ctx context.Context, cmd EventCommand) error
}
