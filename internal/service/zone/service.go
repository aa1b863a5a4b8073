package zone

import (
	"context"
	"log/slog"

	"github.com/imespro/reid-backend/internal/domain"
)

type zoneRepo interface {
	GetByID(ctx context.Context, zoneID string) (*domain.WorkingZone, error)
	Create(ctx context.Context, z domain.WorkingZone) (*domain.WorkingZone, error)
	Update(ctx context.Context, zoneID string, fields domain.ZoneUpdateParams) (*domain.WorkingZone, error)
	Delete(ctx context.Context, zoneID string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]domain.WorkingZone, error)
	Count(ctx context.Context) (int64, error)
	UserCounts(ctx context.Context) ([]domain.ZoneUserCount, error)
}

type userRefClearer interface {
	ClearZone(ctx context.Context, zoneID string) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides working-zone management operations. The users dictionary
// only carries names, so zone writes never touch the dict cache.
type Service struct {
	zones zoneRepo
	users userRefClearer
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new Zone service.
func NewService(log *slog.Logger, zones zoneRepo, users userRefClearer, tx txManager) *Service {
	return &Service{
		zones: zones,
		users: users,
		tx:    tx,
		log:   log.With("service", "zone"),
	}
}
