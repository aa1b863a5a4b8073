package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/imespro/reid-backend/internal/domain"
)

// CreateUser registers a new tracked person and drops the cached dictionary.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	created, err := s.users.Create(ctx, input.GlobalID, name, input.ZoneID)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.InvalidateDict(ctx)

	s.log.InfoContext(ctx, "user created",
		slog.Int64("id", created.ID),
		slog.Int64("global_id", created.GlobalID),
		slog.String("name", name),
	)

	return created, nil
}
