package handlers

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"tableside/backend/internal/config"
	"tableside/backend/internal/httpjson"
	"tableside/backend/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v78"
	checkoutsession "github.com/stripe/stripe-go/v78/checkout/session"
	"github.com/stripe/stripe-go/v78/webhook"
)

// Payments takes card payments for orders through Stripe Checkout.
// The POS itself settles cash orders by saving status=paid directly;
// this path exists for the self-order client and pay-at-table links.
type Payments struct {
	cfg   config.Config
	store *store.Store
	log   zerolog.Logger
}

func NewPayments(cfg config.Config, st *store.Store, log zerolog.Logger) *Payments {
	stripe.Key = cfg.StripeSecretKey
	return &Payments{cfg: cfg, store: st, log: log.With().Str("component", "payments").Logger()}
}

func (h *Payments) Enabled() bool {
	return h.cfg.StripeSecretKey != ""
}

// minorUnits converts a currency amount to Stripe's integer minor
// units. Rounding rather than truncating matters: 19.99 has no exact
// float64 representation and truncation turns it into 1998 cents.
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

type checkoutReq struct {
	SuccessURL string `json:"successUrl"`
	CancelURL  string `json:"cancelUrl"`
}

type checkoutResp struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// Checkout creates a Stripe Checkout session for the order's total.
func (h *Payments) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutReq
	if err := httpjson.Read(r, &req); err != nil || req.SuccessURL == "" || req.CancelURL == "" {
		httpjson.Error(w, http.StatusBadRequest, "successUrl and cancelUrl are required")
		return
	}

	orderID := chi.URLParam(r, "id")
	order, err := h.store.GetOrder(r.Context(), orderID)
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if order == nil {
		httpjson.Error(w, http.StatusNotFound, "order not found")
		return
	}
	if order.Status == "paid" {
		httpjson.Error(w, http.StatusConflict, "order already paid")
		return
	}
	if order.Total <= 0 {
		httpjson.Error(w, http.StatusBadRequest, "order total must be positive")
		return
	}

	currency := "usd"
	if set, err := h.store.LoadSettings(r.Context()); err == nil && set != nil && set.Currency != "" {
		currency = strings.ToLower(set.Currency)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(currency),
				UnitAmount: stripe.Int64(minorUnits(order.Total)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String("Order " + order.ID),
				},
			},
		}},
	}
	params.AddMetadata("orderId", order.ID)

	sess, err := checkoutsession.New(params)
	if err != nil {
		httpjson.Error(w, http.StatusBadGateway, "failed to create checkout session")
		return
	}
	httpjson.Write(w, http.StatusOK, checkoutResp{SessionID: sess.ID, URL: sess.URL})
}

// Webhook marks orders paid on checkout.session.completed. Handler
// failures after signature verification are acknowledged anyway so
// Stripe does not retry forever; the order subscription is the source
// of truth for payment state either way.
func (h *Payments) Webhook(w http.ResponseWriter, r *http.Request) {
	if h.cfg.StripeWebhookSecret == "" {
		http.Error(w, "stripe webhook not configured", http.StatusNotImplemented)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 65536)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusServiceUnavailable)
		return
	}

	event, err := webhook.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), h.cfg.StripeWebhookSecret)
	if err != nil {
		http.Error(w, "signature verification failed", http.StatusBadRequest)
		return
	}

	if event.Type == "checkout.session.completed" {
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			http.Error(w, "malformed checkout session payload", http.StatusBadRequest)
			return
		}
		if err := h.markPaid(r, sess); err != nil {
			h.log.Error().Err(err).Str("session", sess.ID).Msg("failed to mark order paid")
		}
	}

	httpjson.Write(w, http.StatusOK, map[string]any{"received": true})
}

func (h *Payments) markPaid(r *http.Request, sess stripe.CheckoutSession) error {
	orderID := sess.Metadata["orderId"]
	order, err := h.store.GetOrder(r.Context(), orderID)
	if err != nil {
		return err
	}
	if order == nil {
		h.log.Warn().Str("order", orderID).Msg("paid order not found")
		return nil
	}
	now := time.Now().UTC()
	order.Status = "paid"
	order.PaidAt = &now
	order.PaymentRef = sess.ID
	return h.store.SaveOrder(r.Context(), *order)
}
