package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	fivemapp "github.com/tbeaudouin05/stripe-fivem-relay/api/services/fivem/app"
	stripeapp "github.com/tbeaudouin05/stripe-fivem-relay/api/services/stripe/app"
)

const (
	maxWebhookBytes = int64(1 << 20)
	maxJSONBytes    = int64(1 << 20)
)

type handlers struct {
	stripe stripeapp.Service
	events fivemapp.Service
}

func (h handlers) handleOK(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	writeText(w, http.StatusOK, "OK")
}

func (h handlers) handlePing(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	writeText(w, http.StatusOK, "pong")
}

func (h handlers) handleSuccess(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	writeText(w, http.StatusOK, "Payment successful! Your purchase will be activated in game shortly. You can close this page.")
}

func (h handlers) handleCancel(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	writeText(w, http.StatusOK, "Payment cancelled. No charge was made. You can close this page.")
}

type createCheckoutSessionRequest struct {
	Code string `json:"code"`
	Type string `json:"type"`
}

func (h handlers) handleCreateCheckoutSession(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req createCheckoutSessionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBytes)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return
	}

	resp, err := h.stripe.CreateCheckoutSession(context.WithoutCancel(r.Context()), req.Code, req.Type)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, stripeapp.ErrBadRequest):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		slog.Error("create checkout session failed", "request_id", RequestID(r), "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

// handleStripeWebhook is the only route that reads the body raw: the signature covers the exact bytes.
func (h handlers) handleStripeWebhook(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	if mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mt != "application/json" {
		writeText(w, http.StatusBadRequest, "Webhook Error: Content-Type must be application/json")
		return
	}
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			// Stripe redelivers these until it gives up.
			slog.Error("stripe webhook body too large", "request_id", RequestID(r), "limit", tooLarge.Limit)
			writeText(w, http.StatusRequestEntityTooLarge, "Webhook Error: "+err.Error())
			return
		}
		writeText(w, http.StatusBadRequest, "Webhook Error: "+err.Error())
		return
	}

	err = h.stripe.HandleWebhook(context.WithoutCancel(r.Context()), payload, r.Header.Get("Stripe-Signature"))
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]bool{"received": true})
	case errors.Is(err, stripeapp.ErrBadRequest), errors.Is(err, stripeapp.ErrSignatureInvalid), errors.Is(err, stripeapp.ErrBadEvent):
		slog.Warn("stripe webhook rejected", "request_id", RequestID(r), "err", err)
		writeText(w, http.StatusBadRequest, "Webhook Error: "+err.Error())
	default:
		slog.Error("stripe webhook failed", "request_id", RequestID(r), "err", err)
		writeText(w, http.StatusInternalServerError, "Webhook Error: "+err.Error())
	}
}

func (h handlers) handleEventWebhook(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBytes))
	if err != nil {
		writeText(w, http.StatusBadRequest, "Invalid body")
		return
	}
	var body fivemapp.EventBody
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			writeText(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
	}

	err = h.events.RelayEvent(context.WithoutCancel(r.Context()), r.URL.Query().Get("code"), body)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, fivemapp.ErrBadRequest):
		writeText(w, http.StatusBadRequest, "Missing code")
	default:
		writeText(w, http.StatusInternalServerError, "Failed to forward event")
	}
}
