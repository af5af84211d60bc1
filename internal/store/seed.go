package store

import (
	"context"
	"fmt"

	"tableside/backend/internal/models"
	"tableside/backend/internal/utils"
)

// InitializeDatabase writes the whole seed bundle in one atomic batch:
// the settings singleton plus every listed entity, keyed exactly like
// the individual saves. Either all of it lands or none of it does.
// Orders are not part of the bundle; a fresh install has none.
// A disabled backend makes this a no-op.
func (s *Store) InitializeDatabase(ctx context.Context, bundle models.SeedBundle) error {
	if !s.Enabled() {
		return nil
	}

	batch := s.clients.Firestore.Batch()
	batch.Set(s.col(ColSettings).Doc(SettingsDocID), bundle.Settings)

	for _, item := range bundle.Menu {
		if item.ID == "" {
			return fmt.Errorf("seed menu item %q: %w", item.Name, ErrMissingID)
		}
		item.NameLower = utils.NormalizeNameLower(item.Name)
		item.Keywords = utils.KeywordsFromName(item.NameLower, utils.Slugify(item.Name))
		batch.Set(s.col(ColMenu).Doc(item.ID), item)
	}
	for _, cat := range bundle.Categories {
		if cat.ID == "" {
			return fmt.Errorf("seed category %q: %w", cat.Name, ErrMissingID)
		}
		batch.Set(s.col(ColCategories).Doc(cat.ID), cat)
	}
	for _, t := range bundle.Tables {
		if t.ID == "" {
			return fmt.Errorf("seed table %q: %w", t.Name, ErrMissingID)
		}
		batch.Set(s.col(ColTables).Doc(t.ID), t)
	}
	for _, z := range bundle.Zones {
		if z.ID == "" {
			return fmt.Errorf("seed zone %q: %w", z.Name, ErrMissingID)
		}
		batch.Set(s.col(ColZones).Doc(z.ID), z)
	}
	for _, item := range bundle.Inventory {
		if item.ID == "" {
			return fmt.Errorf("seed inventory item %q: %w", item.Name, ErrMissingID)
		}
		batch.Set(s.col(ColInventory).Doc(item.ID), item)
	}
	for _, c := range bundle.Customers {
		if c.ID == "" {
			return fmt.Errorf("seed customer %q: %w", c.Name, ErrMissingID)
		}
		c.NameLower = utils.NormalizeNameLower(c.Name)
		c.Keywords = utils.KeywordsFromName(c.NameLower, utils.Slugify(c.Name))
		batch.Set(s.col(ColCustomers).Doc(c.ID), c)
	}
	for _, c := range bundle.Coupons {
		if c.ID == "" {
			return fmt.Errorf("seed coupon %q: %w", c.Code, ErrMissingID)
		}
		batch.Set(s.col(ColCoupons).Doc(c.ID), c)
	}
	for _, b := range bundle.Bookings {
		if b.ID == "" {
			return fmt.Errorf("seed booking %q: %w", b.Name, ErrMissingID)
		}
		batch.Set(s.col(ColBookings).Doc(b.ID), b)
	}
	for _, u := range bundle.Users {
		if u.ID == "" {
			return fmt.Errorf("seed user %q: %w", u.DisplayName, ErrMissingID)
		}
		batch.Set(s.col(ColUsers).Doc(u.ID), u)
	}
	for _, r := range bundle.Roles {
		if r.ID == "" {
			return fmt.Errorf("seed role %q: %w", r.Name, ErrMissingID)
		}
		batch.Set(s.col(ColRoles).Doc(r.ID), r)
	}

	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}

	s.log.Info().
		Int("menu", len(bundle.Menu)).
		Int("tables", len(bundle.Tables)).
		Int("users", len(bundle.Users)).
		Msg("database initialized")
	return nil
}
