package user

import (
	"context"
	"fmt"

	"github.com/imespro/reid-backend/internal/domain"
)

// GetUser returns a single user by ID.
func (s *Service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// ListUsers returns a page of users ordered by ID.
func (s *Service) ListUsers(ctx context.Context, offset, limit int) ([]domain.User, error) {
	users, err := s.users.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ListUsersByZone returns every user currently assigned to the given zone.
func (s *Service) ListUsersByZone(ctx context.Context, zoneID string) ([]domain.User, error) {
	users, err := s.users.ListByZone(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("list users by zone: %w", err)
	}
	return users, nil
}

// CountUsers returns the total number of users.
func (s *Service) CountUsers(ctx context.Context) (int64, error) {
	n, err := s.users.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
