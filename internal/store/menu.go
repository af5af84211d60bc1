package store

import (
	"context"
	"fmt"

	"tableside/backend/internal/models"
	"tableside/backend/internal/utils"

	"google.golang.org/api/iterator"
)

// SaveMenuItem upserts a menu item by id. Search fields (nameLower,
// keywords) are derived here so every write path keeps them consistent.
func (s *Store) SaveMenuItem(ctx context.Context, item models.MenuItem) error {
	if item.ID == "" {
		return ErrMissingID
	}
	if !s.Enabled() {
		return nil
	}
	item.NameLower = utils.NormalizeNameLower(item.Name)
	item.Keywords = utils.KeywordsFromName(item.NameLower, utils.Slugify(item.Name))
	if _, err := s.col(ColMenu).Doc(item.ID).Set(ctx, item); err != nil {
		return fmt.Errorf("save menu item %s: %w", item.ID, err)
	}
	return nil
}

func (s *Store) DeleteMenuItem(ctx context.Context, id string) error {
	return s.delete(ctx, ColMenu, id)
}

func (s *Store) LoadMenu(ctx context.Context) ([]models.MenuItem, error) {
	if !s.Enabled() {
		return []models.MenuItem{}, nil
	}
	iter := s.col(ColMenu).Documents(ctx)
	defer iter.Stop()

	items := []models.MenuItem{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate menu: %w", err)
		}
		var item models.MenuItem
		if err := doc.DataTo(&item); err != nil {
			s.skipDoc(ColMenu, doc.Ref.ID, err)
			continue
		}
		item.ID = doc.Ref.ID
		items = append(items, item)
	}
	return items, nil
}

// SearchMenu is a keyword prefix search over menu items.
func (s *Store) SearchMenu(ctx context.Context, query string, limit int) ([]models.MenuItem, error) {
	if !s.Enabled() {
		return []models.MenuItem{}, nil
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	query = utils.NormalizeNameLower(query)
	if query == "" {
		return []models.MenuItem{}, nil
	}

	iter := s.col(ColMenu).
		Where("keywords", "array-contains", query).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	items := []models.MenuItem{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("search menu: %w", err)
		}
		var item models.MenuItem
		if err := doc.DataTo(&item); err != nil {
			s.skipDoc(ColMenu, doc.Ref.ID, err)
			continue
		}
		item.ID = doc.Ref.ID
		items = append(items, item)
	}
	return items, nil
}

func (s *Store) SaveCategory(ctx context.Context, cat models.Category) error {
	if err := s.save(ctx, ColCategories, cat.ID, cat); err != nil {
		return fmt.Errorf("save category %s: %w", cat.ID, err)
	}
	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	return s.delete(ctx, ColCategories, id)
}

func (s *Store) LoadCategories(ctx context.Context) ([]models.Category, error) {
	if !s.Enabled() {
		return []models.Category{}, nil
	}
	iter := s.col(ColCategories).Documents(ctx)
	defer iter.Stop()

	cats := []models.Category{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate categories: %w", err)
		}
		var cat models.Category
		if err := doc.DataTo(&cat); err != nil {
			s.skipDoc(ColCategories, doc.Ref.ID, err)
			continue
		}
		cat.ID = doc.Ref.ID
		cats = append(cats, cat)
	}
	return cats, nil
}
