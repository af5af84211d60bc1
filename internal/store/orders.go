package store

import (
	"context"
	"fmt"

	"tableside/backend/internal/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SaveOrder upserts an order by id. Under the best-effort policy
// (the default) persistence failures are logged and swallowed so a
// ticket keeps moving even when the backend hiccups; callers that need
// confirmation watch the order subscription instead. With the policy
// off, failures propagate like every other entity kind.
func (s *Store) SaveOrder(ctx context.Context, o models.Order) error {
	if o.ID == "" {
		return ErrMissingID
	}
	if !s.Enabled() {
		return nil
	}
	_, err := s.col(ColOrders).Doc(o.ID).Set(ctx, o)
	if err == nil {
		return nil
	}
	if s.bestEffortOrders {
		s.log.Error().Err(err).Str("order", o.ID).Msg("order save failed, continuing")
		return nil
	}
	return fmt.Errorf("save order %s: %w", o.ID, err)
}

func (s *Store) DeleteOrder(ctx context.Context, id string) error {
	return s.delete(ctx, ColOrders, id)
}

// GetOrder fetches one order, or (nil, nil) when it does not exist or
// the backend is disabled.
func (s *Store) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	if !s.Enabled() || id == "" {
		return nil, nil
	}
	doc, err := s.col(ColOrders).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	var o models.Order
	if err := doc.DataTo(&o); err != nil {
		return nil, fmt.Errorf("parse order %s: %w", id, err)
	}
	o.ID = doc.Ref.ID
	return &o, nil
}

// ordersQuery is the one ordering every order read uses: most recent
// first, enforced by the backend query rather than client-side sorting.
func (s *Store) ordersQuery() firestore.Query {
	return s.col(ColOrders).OrderBy("timestamp", firestore.Desc)
}

func (s *Store) LoadOrders(ctx context.Context) ([]models.Order, error) {
	if !s.Enabled() {
		return []models.Order{}, nil
	}
	iter := s.ordersQuery().Documents(ctx)
	defer iter.Stop()
	return s.collectOrders(iter)
}

func (s *Store) collectOrders(iter *firestore.DocumentIterator) ([]models.Order, error) {
	orders := []models.Order{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate orders: %w", err)
		}
		var o models.Order
		if err := doc.DataTo(&o); err != nil {
			s.skipDoc(ColOrders, doc.Ref.ID, err)
			continue
		}
		o.ID = doc.Ref.ID
		orders = append(orders, o)
	}
	return orders, nil
}

// SubscribeOrders registers a standing watch on the orders collection.
// Every backend-reported change delivers the entire current collection,
// newest first, to fn. The watch is a pure relay: no coalescing and no
// buffering beyond what the backend provides. The returned func stops
// the watch; it is nil when the backend is disabled.
func (s *Store) SubscribeOrders(ctx context.Context, fn func([]models.Order)) func() {
	if !s.Enabled() {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	snaps := s.ordersQuery().Snapshots(ctx)

	go func() {
		defer snaps.Stop()
		for {
			snap, err := snaps.Next()
			if err != nil {
				if ctx.Err() == nil {
					s.log.Error().Err(err).Msg("order subscription ended")
				}
				return
			}
			orders, err := s.collectOrders(snap.Documents)
			if err != nil {
				s.log.Error().Err(err).Msg("order snapshot read failed")
				continue
			}
			fn(orders)
		}
	}()

	return cancel
}
