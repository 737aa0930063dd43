package fivemhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	config "github.com/tbeaudouin05/stripe-fivem-relay/api/config"
	gw "github.com/tbeaudouin05/stripe-fivem-relay/api/services/fivem/gateway"
)

const userAgent = "stripe-fivem-relay/1.0"

// client posts commands as JSON to the configured receiver URL.
type client struct {
	url        string
	secret     string
	httpClient *http.Client
}

// New returns a Forwarder sharing a single http.Client across requests.
func New(cfg config.FiveM) gw.Forwarder {
	return client{
		url:        strings.TrimSpace(cfg.URL),
		secret:     cfg.Secret,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c client) SendActivation(ctx context.Context, cmd gw.ActivationCommand) error {
	cmd.Secret = c.secret
	return c.post(ctx, cmd)
}

func (c client) SendEvent(ctx context.Context, cmd gw.EventCommand) error {
	cmd.Secret = c.secret
	return c.post(ctx, cmd)
}

func (c client) post(ctx context.Context, payload any) error {
	if c.url == "" {
		return fmt.Errorf("%w: receiver URL is empty", gw.ErrNotConfigured)
	}
	if c.secret == "" {
		return fmt.Errorf("%w: shared secret is empty", gw.ErrNotConfigured)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", gw.ErrDownstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", gw.ErrDownstream, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected status code %d after %s", gw.ErrDownstream, resp.StatusCode, time.Since(start).Round(time.Millisecond))
	}
	return nil
}
