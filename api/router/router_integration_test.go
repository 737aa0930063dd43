package router

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	bootstrap "github.com/tbeaudouin05/stripe-fivem-relay/api/bootstrap"
	config "github.com/tbeaudouin05/stripe-fivem-relay/api/config"
)

func loadConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func newIntegrationServer(t *testing.T) *httptest.Server {
	// Use the real bootstrap wiring against the environment configuration.
	cfg := loadConfig(t)
	return httptest.NewServer(NewRouter(cfg, bootstrap.Init(cfg)))
}

func TestCreateCheckoutSessionHTTP_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in -short mode")
	}
	ts := newIntegrationServer(t)
	defer ts.Close()

	// Send an unknown product type to assert endpoint responds (non-200)
	resp, err := http.Post(ts.URL+"/create-checkout-session", "application/json", bytes.NewReader([]byte(`{"code":"it-code","type":"yearly"}`)))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid type, got %d", resp.StatusCode)
	}
}

func TestReceiveStripeWebhookHTTP_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in -short mode")
	}
	ts := newIntegrationServer(t)
	defer ts.Close()

	// No Stripe-Signature header on purpose, should fail
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, ts.URL+"/stripe-webhook", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		t.Fatalf("expected failure status when missing Stripe-Signature, got %d", resp.StatusCode)
	}
}

func TestEventWebhookHTTP_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in -short mode")
	}
	ts := newIntegrationServer(t)
	defer ts.Close()

	// Missing code must be rejected before anything reaches the game server
	resp, err := http.Post(ts.URL+"/webhook", "application/json", bytes.NewReader([]byte(`{"event":"it"}`)))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 when code is missing, got %d", resp.StatusCode)
	}
}
