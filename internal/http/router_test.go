package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tableside/backend/internal/config"
	"tableside/backend/internal/firebase"
	"tableside/backend/internal/handlers"
	"tableside/backend/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The router over a disabled backend is the local-only mode every
// handler must survive: reads serve empty collections, writes no-op,
// streams refuse politely. No auth client means no auth requirement.

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := config.Config{AllowedOrigins: "*", Port: "0"}
	st := store.New(&firebase.Clients{}, zerolog.Nop())

	return NewRouter(RouterDeps{
		Cfg:       cfg,
		Settings:  handlers.NewSettings(st),
		Menu:      handlers.NewMenu(st),
		Orders:    handlers.NewOrders(st),
		Tables:    handlers.NewTables(st),
		Inventory: handlers.NewInventory(st),
		Customers: handlers.NewCustomers(st),
		Coupons:   handlers.NewCoupons(st),
		Bookings:  handlers.NewBookings(st),
		Staff:     handlers.NewStaff(st),
		Admin:     handlers.NewAdmin(st),
		Streams:   handlers.NewStreams(st, zerolog.Nop(), []string{"*"}),
		Uploads:   handlers.NewUploads(cfg, &firebase.Clients{}),
		Payments:  handlers.NewPayments(cfg, st, zerolog.Nop()),
	})
}

func TestHealthz(t *testing.T) {
	r := testRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListEndpointsServeEmptyCollections(t *testing.T) {
	r := testRouter(t)
	for _, path := range []string{
		"/v1/menu", "/v1/categories", "/v1/orders", "/v1/tables", "/v1/zones",
		"/v1/inventory", "/v1/customers", "/v1/coupons", "/v1/bookings",
		"/v1/users", "/v1/roles",
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "[]\n", rec.Body.String(), path)
	}
}

func TestPutThenDeleteAreAcceptedNoOps(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/v1/tables/t1",
		strings.NewReader(`{"name":"4","seats":4}`))
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var table map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &table))
	assert.Equal(t, "t1", table["id"])
	assert.Equal(t, "free", table["status"])

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("DELETE", "/v1/tables/t1", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Deleting again stays a no-op.
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("DELETE", "/v1/tables/t1", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCreateOrderFillsDefaults(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/v1/orders",
		strings.NewReader(`{"items":[{"menuItemId":"m1","name":"Carbonara","quantity":2,"unitPrice":12.5}]}`))
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var o map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &o))
	assert.NotEmpty(t, o["id"])
	assert.Equal(t, "open", o["status"])
	assert.NotEmpty(t, o["timestamp"])
}

func TestCouponValidation(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("PUT", "/v1/coupons/c1",
		strings.NewReader(`{"code":"ten","type":"percent","value":10}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	var c map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, "TEN", c["code"])

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("PUT", "/v1/coupons/c2",
		strings.NewReader(`{"code":"X","type":"bogus","value":1}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// On a {id} route the path parameter is the document key; an id in the
// request body never wins and none is ever generated.
func TestPutIDComesFromPath(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("PUT", "/v1/tables/t9",
		strings.NewReader(`{"id":"body-id","name":"9","seats":2}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var table map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &table))
	assert.Equal(t, "t9", table["id"])
}

func TestBookingClockValidation(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("PUT", "/v1/bookings/b1",
		strings.NewReader(`{"name":"Dana","guests":2,"date":"2026-09-01","time":"99:99"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminStateOnLocalMode(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/admin/state", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var state map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, false, state["configured"])
	assert.Equal(t, true, state["empty"])
}

func TestSettingsNotFoundBeforeInit(t *testing.T) {
	r := testRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/settings", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStreamsRefuseWithoutBackend(t *testing.T) {
	r := testRouter(t)
	for _, path := range []string{"/v1/orders/stream", "/v1/tables/stream"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
	}
}

func TestSeedAcceptedOnLocalMode(t *testing.T) {
	r := testRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/admin/seed",
		strings.NewReader(`{"settings":{"restaurantName":"Trattoria","currency":"EUR","taxRate":0.1,"selfOrderActive":false}}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStripeRoutesAbsentWithoutKey(t *testing.T) {
	r := testRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/stripe/webhook", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
