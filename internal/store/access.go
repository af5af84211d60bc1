package store

import (
	"context"
	"fmt"

	"tableside/backend/internal/models"

	"google.golang.org/api/iterator"
)

// Users and roles are the staff-access entities. User documents are
// keyed by the caller-chosen id, which in live deployments is the
// Firebase Auth UID.

func (s *Store) SaveUser(ctx context.Context, u models.User) error {
	if err := s.save(ctx, ColUsers, u.ID, u); err != nil {
		return fmt.Errorf("save user %s: %w", u.ID, err)
	}
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	return s.delete(ctx, ColUsers, id)
}

func (s *Store) LoadUsers(ctx context.Context) ([]models.User, error) {
	if !s.Enabled() {
		return []models.User{}, nil
	}
	iter := s.col(ColUsers).Documents(ctx)
	defer iter.Stop()

	users := []models.User{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate users: %w", err)
		}
		var u models.User
		if err := doc.DataTo(&u); err != nil {
			s.skipDoc(ColUsers, doc.Ref.ID, err)
			continue
		}
		u.ID = doc.Ref.ID
		users = append(users, u)
	}
	return users, nil
}

func (s *Store) SaveRole(ctx context.Context, r models.Role) error {
	if err := s.save(ctx, ColRoles, r.ID, r); err != nil {
		return fmt.Errorf("save role %s: %w", r.ID, err)
	}
	return nil
}

func (s *Store) DeleteRole(ctx context.Context, id string) error {
	return s.delete(ctx, ColRoles, id)
}

func (s *Store) LoadRoles(ctx context.Context) ([]models.Role, error) {
	if !s.Enabled() {
		return []models.Role{}, nil
	}
	iter := s.col(ColRoles).Documents(ctx)
	defer iter.Stop()

	roles := []models.Role{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate roles: %w", err)
		}
		var r models.Role
		if err := doc.DataTo(&r); err != nil {
			s.skipDoc(ColRoles, doc.Ref.ID, err)
			continue
		}
		r.ID = doc.Ref.ID
		roles = append(roles, r)
	}
	return roles, nil
}
