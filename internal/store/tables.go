package store

import (
	"context"
	"fmt"

	"tableside/backend/internal/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

func (s *Store) SaveTable(ctx context.Context, t models.Table) error {
	if err := s.save(ctx, ColTables, t.ID, t); err != nil {
		return fmt.Errorf("save table %s: %w", t.ID, err)
	}
	return nil
}

func (s *Store) DeleteTable(ctx context.Context, id string) error {
	return s.delete(ctx, ColTables, id)
}

func (s *Store) LoadTables(ctx context.Context) ([]models.Table, error) {
	if !s.Enabled() {
		return []models.Table{}, nil
	}
	iter := s.col(ColTables).Documents(ctx)
	defer iter.Stop()
	return s.collectTables(iter)
}

func (s *Store) collectTables(iter *firestore.DocumentIterator) ([]models.Table, error) {
	tables := []models.Table{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate tables: %w", err)
		}
		var t models.Table
		if err := doc.DataTo(&t); err != nil {
			s.skipDoc(ColTables, doc.Ref.ID, err)
			continue
		}
		t.ID = doc.Ref.ID
		tables = append(tables, t)
	}
	return tables, nil
}

// SubscribeTables watches the tables collection and delivers the full
// current collection to fn on every change. Same relay contract as
// SubscribeOrders; tables carry no server-side ordering.
func (s *Store) SubscribeTables(ctx context.Context, fn func([]models.Table)) func() {
	if !s.Enabled() {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	snaps := s.col(ColTables).Query.Snapshots(ctx)

	go func() {
		defer snaps.Stop()
		for {
			snap, err := snaps.Next()
			if err != nil {
				if ctx.Err() == nil {
					s.log.Error().Err(err).Msg("table subscription ended")
				}
				return
			}
			tables, err := s.collectTables(snap.Documents)
			if err != nil {
				s.log.Error().Err(err).Msg("table snapshot read failed")
				continue
			}
			fn(tables)
		}
	}()

	return cancel
}

func (s *Store) SaveZone(ctx context.Context, z models.Zone) error {
	if err := s.save(ctx, ColZones, z.ID, z); err != nil {
		return fmt.Errorf("save zone %s: %w", z.ID, err)
	}
	return nil
}

func (s *Store) DeleteZone(ctx context.Context, id string) error {
	return s.delete(ctx, ColZones, id)
}

func (s *Store) LoadZones(ctx context.Context) ([]models.Zone, error) {
	if !s.Enabled() {
		return []models.Zone{}, nil
	}
	iter := s.col(ColZones).Documents(ctx)
	defer iter.Stop()

	zones := []models.Zone{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate zones: %w", err)
		}
		var z models.Zone
		if err := doc.DataTo(&z); err != nil {
			s.skipDoc(ColZones, doc.Ref.ID, err)
			continue
		}
		z.ID = doc.Ref.ID
		zones = append(zones, z)
	}
	return zones, nil
}
