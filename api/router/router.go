package router

import (
	"log/slog"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/justinas/alice"
	"github.com/rs/cors"

	bootstrap "github.com/tbeaudouin05/stripe-fivem-relay/api/bootstrap"
	config "github.com/tbeaudouin05/stripe-fivem-relay/api/config"
)

// NewRouter returns the central HTTP router for the API.
// Routes are registered on a grpc-gateway ServeMux; the bare root path is matched exactly in front of it.
func NewRouter(cfg *config.Config, svc bootstrap.Services) http.Handler {
	h := handlers{stripe: svc.Stripe, events: svc.Events}

	routes := []struct {
		method  string
		pattern string
		handler runtime.HandlerFunc
	}{
		{http.MethodGet, "/health", h.handleOK},
		{http.MethodGet, "/ping", h.handlePing},
		{http.MethodGet, "/success", h.handleSuccess},
		{http.MethodGet, "/cancel", h.handleCancel},
		{http.MethodPost, "/create-checkout-session", h.handleCreateCheckoutSession},
		{http.MethodPost, "/stripe-webhook", h.handleStripeWebhook},
		{http.MethodPost, "/webhook", h.handleEventWebhook},
	}

	mux := runtime.NewServeMux()
	for _, r := range routes {
		if err := mux.HandlePath(r.method, r.pattern, r.handler); err != nil {
			slog.Error("failed to register route", "method", r.method, "pattern", r.pattern, "err", err)
		}
	}

	root := http.NewServeMux()
	root.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) { h.handleOK(w, r, nil) })
	root.Handle("/", mux)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	chain := alice.New(recoverPanic, requestID, logRequest, secureHeaders, c.Handler)
	return chain.Then(root)
}
