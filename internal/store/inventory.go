package store

import (
	"context"
	"fmt"

	"tableside/backend/internal/models"

	"google.golang.org/api/iterator"
)

func (s *Store) SaveInventoryItem(ctx context.Context, item models.InventoryItem) error {
	if err := s.save(ctx, ColInventory, item.ID, item); err != nil {
		return fmt.Errorf("save inventory item %s: %w", item.ID, err)
	}
	return nil
}

func (s *Store) DeleteInventoryItem(ctx context.Context, id string) error {
	return s.delete(ctx, ColInventory, id)
}

func (s *Store) LoadInventory(ctx context.Context) ([]models.InventoryItem, error) {
	if !s.Enabled() {
		return []models.InventoryItem{}, nil
	}
	iter := s.col(ColInventory).Documents(ctx)
	defer iter.Stop()

	items := []models.InventoryItem{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate inventory: %w", err)
		}
		var item models.InventoryItem
		if err := doc.DataTo(&item); err != nil {
			s.skipDoc(ColInventory, doc.Ref.ID, err)
			continue
		}
		item.ID = doc.Ref.ID
		items = append(items, item)
	}
	return items, nil
}

// LoadLowStock returns inventory items at or below their reorder level.
// Firestore cannot compare two fields in a query, so this filters the
// full collection client-side; inventories here are small.
func (s *Store) LoadLowStock(ctx context.Context) ([]models.InventoryItem, error) {
	items, err := s.LoadInventory(ctx)
	if err != nil {
		return nil, err
	}
	low := []models.InventoryItem{}
	for _, item := range items {
		if item.ReorderLevel > 0 && item.Quantity <= item.ReorderLevel {
			low = append(low, item)
		}
	}
	return low, nil
}
