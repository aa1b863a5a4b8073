package zone

import (
	"context"
	"fmt"

	"github.com/imespro/reid-backend/internal/domain"
)

// GetZone returns a single working zone by ID.
func (s *Service) GetZone(ctx context.Context, zoneID string) (*domain.WorkingZone, error) {
	z, err := s.zones.GetByID(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("get zone: %w", err)
	}
	return z, nil
}

// ListZones returns a page of zones ordered by zone_id.
func (s *Service) ListZones(ctx context.Context, offset, limit int) ([]domain.WorkingZone, error) {
	zones, err := s.zones.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	return zones, nil
}

// CountZones returns the total number of zones.
func (s *Service) CountZones(ctx context.Context) (int64, error) {
	n, err := s.zones.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count zones: %w", err)
	}
	return n, nil
}

// UserCounts returns every zone with the number of users assigned to it.
func (s *Service) UserCounts(ctx context.Context) ([]domain.ZoneUserCount, error) {
	counts, err := s.zones.UserCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("zone user counts: %w", err)
	}
	return counts, nil
}
