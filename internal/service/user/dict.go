package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/imespro/reid-backend/internal/domain"
	"github.com/imespro/reid-backend/internal/metrics"
)

// Dict returns the global_id -> name dictionary, cache-aside.
//
// With useCache and a reachable cache the serialized dictionary under
// DictCacheKey is tried first; on miss (or when the cache is skipped) the
// dictionary is projected from the store. The fresh projection is written
// back whenever the cache is reachable, even for useCache=false calls, so a
// bypass request still warms the cache for everyone else.
//
// The second return value reports whether the result came from the cache.
func (s *Service) Dict(ctx context.Context, useCache bool) (domain.UsersDict, bool, error) {
	available := s.cache.IsAvailable(ctx)

	if useCache && available {
		if raw, ok := s.cache.Get(ctx, DictCacheKey); ok {
			var dict domain.UsersDict
			if err := json.Unmarshal(raw, &dict); err != nil {
				// Corrupt blob: treat as a miss and let the rebuild overwrite it.
				s.log.WarnContext(ctx, "cached users dict is unreadable", "error", err)
			} else {
				return dict, true, nil
			}
		}
	}

	start := time.Now()
	dict, err := s.users.Dict(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("project users dict: %w", err)
	}
	metrics.DictRebuildSeconds.Observe(time.Since(start).Seconds())

	if available {
		if raw, err := json.Marshal(dict); err == nil {
			s.cache.Put(ctx, DictCacheKey, raw, s.dictTTL)
		}
	}

	return dict, false, nil
}

// InvalidateDict drops the cached dictionary. Failures are swallowed by the
// cache layer; callers only need the ack.
func (s *Service) InvalidateDict(ctx context.Context) {
	s.cache.Invalidate(ctx, DictCacheKey)
}
