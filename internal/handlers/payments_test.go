package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tableside/backend/internal/config"
	"tableside/backend/internal/firebase"
	"tableside/backend/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestPaymentsDisabledWithoutKey(t *testing.T) {
	p := NewPayments(config.Config{}, store.New(&firebase.Clients{}, zerolog.Nop()), zerolog.Nop())
	assert.False(t, p.Enabled())
}

func TestWebhookWithoutSecretIsNotImplemented(t *testing.T) {
	p := NewPayments(config.Config{StripeSecretKey: "sk_test_x"}, store.New(&firebase.Clients{}, zerolog.Nop()), zerolog.Nop())

	rec := httptest.NewRecorder()
	p.Webhook(rec, httptest.NewRequest("POST", "/v1/stripe/webhook", nil))
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestCheckoutUnknownOrderIs404(t *testing.T) {
	p := NewPayments(config.Config{StripeSecretKey: "sk_test_x"},
		store.New(&firebase.Clients{}, zerolog.Nop()), zerolog.Nop())

	r := chi.NewRouter()
	r.Post("/v1/orders/{id}/checkout", p.Checkout)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/orders/o1/checkout",
		strings.NewReader(`{"successUrl":"https://pos.example.com/ok","cancelUrl":"https://pos.example.com/no"}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMinorUnitsRoundsBinaryFloatTotals(t *testing.T) {
	// 19.99*100 is 1998.999... in float64; plain truncation loses a cent.
	assert.Equal(t, int64(1999), minorUnits(19.99))
	assert.Equal(t, int64(1001), minorUnits(10.01))
	assert.Equal(t, int64(5), minorUnits(0.05))
	assert.Equal(t, int64(1200), minorUnits(12))
	assert.Equal(t, int64(0), minorUnits(0))
}

func TestCheckoutRequiresRedirectURLs(t *testing.T) {
	p := NewPayments(config.Config{StripeSecretKey: "sk_test_x"},
		store.New(&firebase.Clients{}, zerolog.Nop()), zerolog.Nop())

	rec := httptest.NewRecorder()
	p.Checkout(rec, httptest.NewRequest("POST", "/v1/orders/o1/checkout",
		strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
