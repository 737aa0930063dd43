package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration.
// It is loaded once at startup and passed by value to the components that need it.
type Config struct {
	// Server ports
	HTTPPort string `env:"PORT" envDefault:"8080"`
	GRPCPort string `env:"GRPC_PORT" envDefault:"50051"`

	// BaseURL is the public origin used to build checkout redirect targets.
	BaseURL        string   `env:"BASE_URL" envDefault:"http://localhost:8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	Stripe Stripe `envPrefix:"STRIPE_"`
	FiveM  FiveM  `envPrefix:"FIVEM_HTTP_"`
	Log    Log

	// Optional: base URL for running remote HTTP integration tests (e.g., https://relay.example.com)
	IntegrationBaseURL string `env:"INTEGRATION_BASE_URL"`
}

type Stripe struct {
	SecretKey     string `env:"SECRET_KEY"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
	PriceMonthly  string `env:"PRICE_MONTHLY"`
	PriceLifetime string `env:"PRICE_LIFETIME"`
}

// FiveM describes the game-server receiver that activations and events are forwarded to.
type FiveM struct {
	URL     string        `env:"URL"`
	Secret  string        `env:"SECRET"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg, nil
}

// loadDotEnv loads the first .env file found in the current directory or one of its parents.
// Variables already present in the environment win.
func loadDotEnv() error {
	currentDir, _ := os.Getwd()
	for currentDir != "/" && currentDir != "." && currentDir != "" {
		envPath := filepath.Join(currentDir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("failed to load .env file: %v", err)
			}
			return nil
		}
		currentDir = filepath.Dir(currentDir)
	}
	return nil
}

// SuccessURL is the checkout redirect target after a completed payment.
func (c Config) SuccessURL() string { return c.BaseURL + "/success" }

// CancelURL is the checkout redirect target after an abandoned payment.
func (c Config) CancelURL() string { return c.BaseURL + "/cancel" }

// Missing lists the settings whose absence makes an endpoint fail closed.
func (c Config) Missing() []string {
	checks := []struct {
		envVar string
		value  string
	}{
		{"STRIPE_SECRET_KEY", c.Stripe.SecretKey},
		{"STRIPE_WEBHOOK_SECRET", c.Stripe.WebhookSecret},
		{"STRIPE_PRICE_MONTHLY", c.Stripe.PriceMonthly},
		{"STRIPE_PRICE_LIFETIME", c.Stripe.PriceLifetime},
		{"FIVEM_HTTP_URL", c.FiveM.URL},
		{"FIVEM_HTTP_SECRET", c.FiveM.Secret},
	}
	var missing []string
	for _, v := range checks {
		if strings.TrimSpace(v.value) == "" {
			missing = append(missing, v.envVar)
		}
	}
	return missing
}
