package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tableside/backend/internal/config"
	"tableside/backend/internal/firebase"
	"tableside/backend/internal/handlers"
	apihttp "tableside/backend/internal/http"
	"tableside/backend/internal/store"

	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	ctx := context.Background()
	clients := firebase.NewClients(ctx, cfg, log)
	defer clients.Close()

	st := store.New(clients, log,
		store.WithBestEffortOrderSaves(cfg.OrderSaveBestEffort))

	payments := handlers.NewPayments(cfg, st, log)
	if payments.Enabled() {
		log.Info().Msg("stripe payments enabled")
	} else {
		log.Info().Msg("STRIPE_SECRET_KEY not set, card payments disabled")
	}

	router := apihttp.NewRouter(apihttp.RouterDeps{
		Cfg:        cfg,
		AuthClient: clients.Auth,
		Settings:   handlers.NewSettings(st),
		Menu:       handlers.NewMenu(st),
		Orders:     handlers.NewOrders(st),
		Tables:     handlers.NewTables(st),
		Inventory:  handlers.NewInventory(st),
		Customers:  handlers.NewCustomers(st),
		Coupons:    handlers.NewCoupons(st),
		Bookings:   handlers.NewBookings(st),
		Staff:      handlers.NewStaff(st),
		Admin:      handlers.NewAdmin(st),
		Streams:    handlers.NewStreams(st, log, cfg.Origins()),
		Uploads:    handlers.NewUploads(cfg, clients),
		Payments:   payments,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("project", cfg.ProjectID).
			Bool("backend", clients.Enabled()).Msg("API listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	stop := make(chan os.Signal, 2)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info().Msg("shutting down")
	_ = srv.Shutdown(ctxShutdown)
}
