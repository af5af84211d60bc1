package http

import (
	"net/http"
	"time"

	"tableside/backend/internal/config"
	"tableside/backend/internal/handlers"
	"tableside/backend/internal/httpjson"
	"tableside/backend/internal/middleware"

	"firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"
)

type RouterDeps struct {
	Cfg        config.Config
	AuthClient *auth.Client

	Settings  *handlers.Settings
	Menu      *handlers.Menu
	Orders    *handlers.Orders
	Tables    *handlers.Tables
	Inventory *handlers.Inventory
	Customers *handlers.Customers
	Coupons   *handlers.Coupons
	Bookings  *handlers.Bookings
	Staff     *handlers.Staff
	Admin     *handlers.Admin
	Streams   *handlers.Streams
	Uploads   *handlers.Uploads
	Payments  *handlers.Payments
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS(d.Cfg.Origins()))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpjson.Write(w, 200, map[string]any{"ok": true, "ts": time.Now().UTC().Format(time.RFC3339)})
	})

	// Stripe calls this with its own signature scheme, not a bearer token.
	if d.Payments != nil && d.Payments.Enabled() {
		r.Post("/v1/stripe/webhook", d.Payments.Webhook)
	}

	r.Group(func(pr chi.Router) {
		pr.Use(middleware.WithAuth(d.AuthClient))

		pr.Get("/v1/settings", d.Settings.Get)
		pr.Put("/v1/settings", d.Settings.Put)

		pr.Get("/v1/menu", d.Menu.List)
		pr.Post("/v1/menu", d.Menu.Create)
		pr.Put("/v1/menu/{id}", d.Menu.Put)
		pr.Delete("/v1/menu/{id}", d.Menu.Delete)

		pr.Get("/v1/categories", d.Menu.ListCategories)
		pr.Put("/v1/categories/{id}", d.Menu.PutCategory)
		pr.Delete("/v1/categories/{id}", d.Menu.DeleteCategory)

		pr.Get("/v1/orders", d.Orders.List)
		pr.Post("/v1/orders", d.Orders.Create)
		pr.Put("/v1/orders/{id}", d.Orders.Put)
		pr.Delete("/v1/orders/{id}", d.Orders.Delete)
		if d.Payments != nil && d.Payments.Enabled() {
			pr.Post("/v1/orders/{id}/checkout", d.Payments.Checkout)
		}

		pr.Get("/v1/tables", d.Tables.List)
		pr.Put("/v1/tables/{id}", d.Tables.Put)
		pr.Delete("/v1/tables/{id}", d.Tables.Delete)

		pr.Get("/v1/zones", d.Tables.ListZones)
		pr.Put("/v1/zones/{id}", d.Tables.PutZone)
		pr.Delete("/v1/zones/{id}", d.Tables.DeleteZone)

		pr.Get("/v1/inventory", d.Inventory.List)
		pr.Put("/v1/inventory/{id}", d.Inventory.Put)
		pr.Delete("/v1/inventory/{id}", d.Inventory.Delete)

		pr.Get("/v1/customers", d.Customers.List)
		pr.Put("/v1/customers/{id}", d.Customers.Put)
		pr.Delete("/v1/customers/{id}", d.Customers.Delete)

		pr.Get("/v1/coupons", d.Coupons.List)
		pr.Put("/v1/coupons/{id}", d.Coupons.Put)
		pr.Delete("/v1/coupons/{id}", d.Coupons.Delete)

		pr.Get("/v1/bookings", d.Bookings.List)
		pr.Put("/v1/bookings/{id}", d.Bookings.Put)
		pr.Delete("/v1/bookings/{id}", d.Bookings.Delete)

		pr.Get("/v1/users", d.Staff.ListUsers)
		pr.Put("/v1/users/{id}", d.Staff.PutUser)
		pr.Delete("/v1/users/{id}", d.Staff.DeleteUser)

		pr.Get("/v1/roles", d.Staff.ListRoles)
		pr.Put("/v1/roles/{id}", d.Staff.PutRole)
		pr.Delete("/v1/roles/{id}", d.Staff.DeleteRole)

		pr.Get("/v1/admin/state", d.Admin.State)
		pr.Post("/v1/admin/seed", d.Admin.Seed)
		pr.Get("/v1/admin/export", d.Admin.Export)
		pr.Post("/v1/admin/import", d.Admin.Import)

		pr.Post("/v1/uploads/sign", d.Uploads.Sign)

		pr.Get("/v1/orders/stream", d.Streams.Orders)
		pr.Get("/v1/tables/stream", d.Streams.Tables)
	})

	return r
}
