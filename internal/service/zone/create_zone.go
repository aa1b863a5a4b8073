package zone

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/imespro/reid-backend/internal/domain"
)

// CreateZone registers a new working zone. A duplicate zone_id surfaces as
// domain.ErrAlreadyExists.
func (s *Service) CreateZone(ctx context.Context, input CreateZoneInput) (*domain.WorkingZone, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.zones.Create(ctx, domain.WorkingZone{
		ZoneID:   strings.TrimSpace(input.ZoneID),
		ZoneName: strings.TrimSpace(input.ZoneName),
		X1:       input.X1, Y1: input.Y1,
		X2: input.X2, Y2: input.Y2,
		X3: input.X3, Y3: input.Y3,
		X4: input.X4, Y4: input.Y4,
	})
	if err != nil {
		return nil, fmt.Errorf("create zone: %w", err)
	}

	s.log.InfoContext(ctx, "zone created",
		slog.String("zone_id", created.ZoneID),
		slog.String("zone_name", created.ZoneName),
	)

	return created, nil
}
