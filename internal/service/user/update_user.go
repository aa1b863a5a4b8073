package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/imespro/reid-backend/internal/domain"
)

// UpdateUser applies a partial update and drops the cached dictionary.
func (s *Service) UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.UserUpdateParams{
		GlobalID: input.GlobalID,
		ZoneID:   input.ZoneID,
	}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		params.Name = &trimmed
	}

	updated, err := s.users.Update(ctx, input.ID, params)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.InvalidateDict(ctx)

	s.log.InfoContext(ctx, "user updated", slog.Int64("id", input.ID))

	return updated, nil
}

// DeleteUser removes a user and drops the cached dictionary.
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !deleted {
		return fmt.Errorf("delete user: user %d: %w", id, domain.ErrNotFound)
	}

	s.InvalidateDict(ctx)

	s.log.InfoContext(ctx, "user deleted", slog.Int64("id", id))

	return nil
}
