package zone

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/imespro/reid-backend/internal/domain"
)

// UpdateZone applies a partial update, including renames. A rename cascades
// to users.zone_id through the foreign key, so no extra statement is needed.
func (s *Service) UpdateZone(ctx context.Context, input UpdateZoneInput) (*domain.WorkingZone, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.ZoneUpdateParams{
		X1: input.X1, Y1: input.Y1,
		X2: input.X2, Y2: input.Y2,
		X3: input.X3, Y3: input.Y3,
		X4: input.X4, Y4: input.Y4,
	}
	if input.NewZoneID != nil {
		trimmed := strings.TrimSpace(*input.NewZoneID)
		params.NewZoneID = &trimmed
	}
	if input.ZoneName != nil {
		trimmed := strings.TrimSpace(*input.ZoneName)
		params.ZoneName = &trimmed
	}

	updated, err := s.zones.Update(ctx, input.ZoneID, params)
	if err != nil {
		return nil, fmt.Errorf("update zone: %w", err)
	}

	s.log.InfoContext(ctx, "zone updated",
		slog.String("zone_id", input.ZoneID),
		slog.String("current_zone_id", updated.ZoneID),
	)

	return updated, nil
}
