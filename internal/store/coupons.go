package store

import (
	"context"
	"fmt"

	"tableside/backend/internal/models"

	"google.golang.org/api/iterator"
)

func (s *Store) SaveCoupon(ctx context.Context, c models.Coupon) error {
	if err := s.save(ctx, ColCoupons, c.ID, c); err != nil {
		return fmt.Errorf("save coupon %s: %w", c.ID, err)
	}
	return nil
}

func (s *Store) DeleteCoupon(ctx context.Context, id string) error {
	return s.delete(ctx, ColCoupons, id)
}

func (s *Store) LoadCoupons(ctx context.Context) ([]models.Coupon, error) {
	if !s.Enabled() {
		return []models.Coupon{}, nil
	}
	iter := s.col(ColCoupons).Documents(ctx)
	defer iter.Stop()

	coupons := []models.Coupon{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate coupons: %w", err)
		}
		var c models.Coupon
		if err := doc.DataTo(&c); err != nil {
			s.skipDoc(ColCoupons, doc.Ref.ID, err)
			continue
		}
		c.ID = doc.Ref.ID
		coupons = append(coupons, c)
	}
	return coupons, nil
}
