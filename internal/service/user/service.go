package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/imespro/reid-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, globalID int64, name string, zoneID *string) (*domain.User, error)
	Update(ctx context.Context, id int64, fields domain.UserUpdateParams) (*domain.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, error)
	ListByZone(ctx context.Context, zoneID string) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
	Dict(ctx context.Context) (domain.UsersDict, error)
}

type dictCache interface {
	IsAvailable(ctx context.Context) bool
	Get(ctx context.Context, key string) ([]byte, bool)
	Put(ctx context.Context, key string, value []byte, ttl time.Duration)
	Invalidate(ctx context.Context, key string)
}

// DictCacheKey is the fixed cache slot holding the serialized users dictionary.
const DictCacheKey = "users:dict"

// Service provides user management and the cached users-dict projection.
type Service struct {
	users   userRepo
	cache   dictCache
	dictTTL time.Duration
	log     *slog.Logger
}

// NewService creates a new User service.
func NewService(log *slog.Logger, users userRepo, cache dictCache, dictTTL time.Duration) *Service {
	return &Service{
		users:   users,
		cache:   cache,
		dictTTL: dictTTL,
		log:     log.With("service", "user"),
	}
}
