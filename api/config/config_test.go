package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := parse(env.Options{Environment: map[string]string{}})
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "50051", cfg.GRPCPort)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.FiveM.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.FiveM.Secret, "forward secret must not have a fallback value")
}

func TestParse_FromEnvironment(t *testing.T) {
	cfg, err := parse(env.Options{Environment: map[string]string{
		"PORT":                  "3000",
		"BASE_URL":              "https://shop.example.com/",
		"ALLOWED_ORIGINS":       "https://a.example.com,https://b.example.com",
		"STRIPE_SECRET_KEY":     "sk_test_123",
		"STRIPE_WEBHOOK_SECRET": "whsec_123",
		"STRIPE_PRICE_MONTHLY":  "price_month",
		"STRIPE_PRICE_LIFETIME": "price_life",
		"FIVEM_HTTP_URL":        "http://127.0.0.1:30120/relay/activate",
		"FIVEM_HTTP_SECRET":     "s3cret",
		"FIVEM_HTTP_TIMEOUT":    "3s",
		"LOG_LEVEL":             "debug",
	}})
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.HTTPPort)
	assert.Equal(t, "https://shop.example.com", cfg.BaseURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "sk_test_123", cfg.Stripe.SecretKey)
	assert.Equal(t, "whsec_123", cfg.Stripe.WebhookSecret)
	assert.Equal(t, "price_month", cfg.Stripe.PriceMonthly)
	assert.Equal(t, "price_life", cfg.Stripe.PriceLifetime)
	assert.Equal(t, "http://127.0.0.1:30120/relay/activate", cfg.FiveM.URL)
	assert.Equal(t, "s3cret", cfg.FiveM.Secret)
	assert.Equal(t, 3*time.Second, cfg.FiveM.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Missing())
}

func TestParse_InvalidTimeout(t *testing.T) {
	_, err := parse(env.Options{Environment: map[string]string{"FIVEM_HTTP_TIMEOUT": "soon"}})
	assert.Error(t, err)
}

func TestRedirectURLs(t *testing.T) {
	cfg := Config{BaseURL: "https://shop.example.com"}
	assert.Equal(t, "https://shop.example.com/success", cfg.SuccessURL())
	assert.Equal(t, "https://shop.example.com/cancel", cfg.CancelURL())
}

func TestMissing(t *testing.T) {
	cfg := Config{Stripe: Stripe{SecretKey: "sk_test_123", PriceMonthly: "price_month"}}
	assert.Equal(t, []string{
		"STRIPE_WEBHOOK_SECRET",
		"STRIPE_PRICE_LIFETIME",
		"FIVEM_HTTP_URL",
		"FIVEM_HTTP_SECRET",
	}, cfg.Missing())
}
