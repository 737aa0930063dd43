package bootstrap

import (
	"log/slog"

	"github.com/tbeaudouin05/stripe-fivem-relay/api/config"
	fivemapp "github.com/tbeaudouin05/stripe-fivem-relay/api/services/fivem/app"
	fivemhttp "github.com/tbeaudouin05/stripe-fivem-relay/api/services/fivem/gateway/http"
	stripeapp "github.com/tbeaudouin05/stripe-fivem-relay/api/services/stripe/app"
	stripegw "github.com/tbeaudouin05/stripe-fivem-relay/api/services/stripe/gateway/stripe"
)

// Services groups the app-layer services the router depends on.
// Tests build it directly with stub gateways.
type Services struct {
	Stripe stripeapp.Service
	Events fivemapp.Service
}

// Init wires third-party clients and services from the loaded configuration.
// Missing settings are reported but do not fail startup: the affected endpoints fail closed instead.
func Init(cfg *config.Config) Services {
	for _, name := range cfg.Missing() {
		slog.Warn("configuration missing, dependent endpoints will fail closed", "env", name)
	}

	// One forwarder (and so one http.Client) is shared by both services.
	fwd := fivemhttp.New(cfg.FiveM)

	stripeService := stripeapp.NewService(stripegw.New(cfg.Stripe, nil), fwd, stripeapp.Options{
		PriceMonthly:  cfg.Stripe.PriceMonthly,
		PriceLifetime: cfg.Stripe.PriceLifetime,
		SuccessURL:    cfg.SuccessURL(),
		CancelURL:     cfg.CancelURL(),
	})
	return Services{
		Stripe: stripeService,
		Events: fivemapp.NewService(fwd),
	}
}
