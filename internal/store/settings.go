package store

import (
	"context"
	"fmt"

	"tableside/backend/internal/models"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SaveSettings upserts the settings singleton under settings/main.
// The entity's own id is ignored for keying.
func (s *Store) SaveSettings(ctx context.Context, set models.Settings) error {
	if !s.Enabled() {
		return nil
	}
	if _, err := s.col(ColSettings).Doc(SettingsDocID).Set(ctx, set); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (s *Store) DeleteSettings(ctx context.Context) error {
	return s.delete(ctx, ColSettings, SettingsDocID)
}

// LoadSettings returns the settings singleton, or (nil, nil) when it has
// never been written or the backend is disabled.
func (s *Store) LoadSettings(ctx context.Context) (*models.Settings, error) {
	if !s.Enabled() {
		return nil, nil
	}
	doc, err := s.col(ColSettings).Doc(SettingsDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("load settings: %w", err)
	}
	var set models.Settings
	if err := doc.DataTo(&set); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	set.ID = doc.Ref.ID
	return &set, nil
}

// IsDatabaseEmpty reports whether the settings document has ever been
// written. Callers use it to decide whether to run first-time seeding.
// A disabled backend reads as empty.
func (s *Store) IsDatabaseEmpty(ctx context.Context) (bool, error) {
	if !s.Enabled() {
		return true, nil
	}
	_, err := s.col(ColSettings).Doc(SettingsDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return true, nil
		}
		return false, fmt.Errorf("check settings presence: %w", err)
	}
	return false, nil
}
