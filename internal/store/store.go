// Package store is the data-access layer: one collection per entity
// kind, full-document upserts keyed by the entity id, and live snapshot
// subscriptions for orders and tables. Every operation degrades to a
// no-op (saves, deletes), an empty result (loads) or a nil handle
// (subscriptions) when the backend bundle is disabled, so callers work
// the same against a configured and an unconfigured deployment.
package store

import (
	"context"
	"errors"

	"tableside/backend/internal/firebase"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog"
)

// Collection names are fixed and case-sensitive; they are shared with
// the web client's own Firestore bindings.
const (
	ColSettings   = "settings"
	ColMenu       = "menu"
	ColCategories = "categories"
	ColOrders     = "orders"
	ColTables     = "tables"
	ColZones      = "zones"
	ColInventory  = "inventory"
	ColCustomers  = "customers"
	ColCoupons    = "coupons"
	ColBookings   = "bookings"
	ColUsers      = "users"
	ColRoles      = "roles"
)

// SettingsDocID is the single document key the settings singleton lives
// under.
const SettingsDocID = "main"

var ErrMissingID = errors.New("entity id is required")

type Store struct {
	clients *firebase.Clients
	log     zerolog.Logger

	// bestEffortOrders makes order saves swallow persistence failures
	// (logged only) so order entry never halts on a transient error.
	bestEffortOrders bool
}

type Option func(*Store)

// WithBestEffortOrderSaves toggles the order-save failure policy.
func WithBestEffortOrderSaves(on bool) Option {
	return func(s *Store) { s.bestEffortOrders = on }
}

func New(clients *firebase.Clients, log zerolog.Logger, opts ...Option) *Store {
	s := &Store{
		clients:          clients,
		log:              log.With().Str("component", "store").Logger(),
		bestEffortOrders: true,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Enabled reports whether the store talks to a real backend.
func (s *Store) Enabled() bool {
	return s.clients.Enabled()
}

func (s *Store) col(name string) *firestore.CollectionRef {
	return s.clients.Firestore.Collection(name)
}

// skipDoc records a document that failed to decode into its model.
// Such documents are left out of load results, so the skip has to be
// visible somewhere or corrupt data silently shrinks collections.
func (s *Store) skipDoc(col, id string, err error) {
	s.log.Warn().Err(err).Str("collection", col).Str("doc", id).Msg("skipping undecodable document")
}

// save is the shared upsert path: full-document Set keyed by id.
// A disabled backend is not an error; an empty id is.
func (s *Store) save(ctx context.Context, col, id string, entity any) error {
	if id == "" {
		return ErrMissingID
	}
	if !s.Enabled() {
		return nil
	}
	_, err := s.col(col).Doc(id).Set(ctx, entity)
	return err
}

// delete removes a document by id. Deleting a document that does not
// exist is a no-op in Firestore, which matches the contract here.
func (s *Store) delete(ctx context.Context, col, id string) error {
	if !s.Enabled() || id == "" {
		return nil
	}
	_, err := s.col(col).Doc(id).Delete(ctx)
	return err
}
