package store

import (
	"context"
	"fmt"

	"tableside/backend/internal/docval"

	"google.golang.org/api/iterator"
)

// Collections, in the order export walks them.
var Collections = []string{
	ColSettings, ColMenu, ColCategories, ColOrders, ColTables, ColZones,
	ColInventory, ColCustomers, ColCoupons, ColBookings, ColUsers, ColRoles,
}

// ExportCollections reads every collection as raw documents for backup.
// Each document gets its backend key injected as "id" (overriding any
// stored id field) and its timestamps rendered as RFC 3339 strings so
// the result is stable JSON. Disabled backend exports nothing.
func (s *Store) ExportCollections(ctx context.Context) (map[string][]map[string]any, error) {
	out := map[string][]map[string]any{}
	if !s.Enabled() {
		return out, nil
	}

	for _, col := range Collections {
		iter := s.col(col).Documents(ctx)
		docs := []map[string]any{}
		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				iter.Stop()
				return nil, fmt.Errorf("export %s: %w", col, err)
			}
			data := docval.FormatTimes(doc.Data()).(map[string]any)
			data["id"] = doc.Ref.ID
			docs = append(docs, data)
		}
		iter.Stop()
		out[col] = docs
	}
	return out, nil
}

// ImportCollections restores raw documents produced by ExportCollections.
// Absent fields are stripped and RFC 3339 strings become native
// timestamps before the batch write; everything lands atomically.
// Unknown collection names are rejected rather than silently created.
func (s *Store) ImportCollections(ctx context.Context, dump map[string][]map[string]any) error {
	if !s.Enabled() {
		return nil
	}

	known := map[string]bool{}
	for _, col := range Collections {
		known[col] = true
	}

	batch := s.clients.Firestore.Batch()
	for col, docs := range dump {
		if !known[col] {
			return fmt.Errorf("import: unknown collection %q", col)
		}
		for _, raw := range docs {
			id, _ := raw["id"].(string)
			if col == ColSettings {
				id = SettingsDocID
			}
			if id == "" {
				return fmt.Errorf("import %s: %w", col, ErrMissingID)
			}
			data := docval.ParseTimes(docval.Strip(raw)).(map[string]any)
			delete(data, "id")
			batch.Set(s.col(col).Doc(id), data)
		}
	}

	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("import collections: %w", err)
	}
	return nil
}
