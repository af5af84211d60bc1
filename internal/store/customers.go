package store

import (
	"context"
	"fmt"

	"tableside/backend/internal/models"
	"tableside/backend/internal/utils"

	"google.golang.org/api/iterator"
)

// SaveCustomer upserts a customer by id, deriving the search fields the
// same way menu items do.
func (s *Store) SaveCustomer(ctx context.Context, c models.Customer) error {
	if c.ID == "" {
		return ErrMissingID
	}
	if !s.Enabled() {
		return nil
	}
	c.NameLower = utils.NormalizeNameLower(c.Name)
	c.Keywords = utils.KeywordsFromName(c.NameLower, utils.Slugify(c.Name))
	if _, err := s.col(ColCustomers).Doc(c.ID).Set(ctx, c); err != nil {
		return fmt.Errorf("save customer %s: %w", c.ID, err)
	}
	return nil
}

func (s *Store) DeleteCustomer(ctx context.Context, id string) error {
	return s.delete(ctx, ColCustomers, id)
}

func (s *Store) LoadCustomers(ctx context.Context) ([]models.Customer, error) {
	if !s.Enabled() {
		return []models.Customer{}, nil
	}
	iter := s.col(ColCustomers).Documents(ctx)
	defer iter.Stop()

	customers := []models.Customer{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate customers: %w", err)
		}
		var c models.Customer
		if err := doc.DataTo(&c); err != nil {
			s.skipDoc(ColCustomers, doc.Ref.ID, err)
			continue
		}
		c.ID = doc.Ref.ID
		customers = append(customers, c)
	}
	return customers, nil
}

// SearchCustomers is a keyword prefix search, mirroring SearchMenu.
func (s *Store) SearchCustomers(ctx context.Context, query string, limit int) ([]models.Customer, error) {
	if !s.Enabled() {
		return []models.Customer{}, nil
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	query = utils.NormalizeNameLower(query)
	if query == "" {
		return []models.Customer{}, nil
	}

	iter := s.col(ColCustomers).
		Where("keywords", "array-contains", query).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	customers := []models.Customer{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("search customers: %w", err)
		}
		var c models.Customer
		if err := doc.DataTo(&c); err != nil {
			s.skipDoc(ColCustomers, doc.Ref.ID, err)
			continue
		}
		c.ID = doc.Ref.ID
		customers = append(customers, c)
	}
	return customers, nil
}
