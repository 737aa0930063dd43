package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	gw "github.com/tbeaudouin05/stripe-fivem-relay/api/services/fivem/gateway"
)

// EventBody carries the metrics of an external event. Values are not interpreted.
type EventBody struct {
	Event    json.RawMessage `json:"event"`
	Amount   json.RawMessage `json:"amount"`
	Distance json.RawMessage `json:"distance"`
	Duration json.RawMessage `json:"duration"`
}

// Service relays externally originated events to the game server.
type Service interface {
	RelayEvent(ctx context.Context, code string, body EventBody) error
}

type serviceImpl struct{ fwd gw.Forwarder }

func NewService(f gw.Forwarder) Service { return serviceImpl{fwd: f} }

// RelayEvent forwards the event verbatim. Authentication of the caller is left to the receiver,
// which checks the shared secret stamped by the forwarder.
func (s serviceImpl) RelayEvent(ctx context.Context, code string, body EventBody) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: missing code", ErrBadRequest)
	}
	cmd := gw.EventCommand{
		Code:     code,
		Event:    body.Event,
		Amount:   body.Amount,
		Distance: body.Distance,
		Duration: body.Duration,
	}
	if err := s.fwd.SendEvent(ctx, cmd); err != nil {
		slog.Error("event forward failed", "code", code, "err", err)
		return fmt.Errorf("%w: %v", ErrForward, err)
	}
	slog.Info("event forwarded", "code", code)
	return nil
}
