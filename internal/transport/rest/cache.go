package rest

import (
	"context"
	"net/http"

	"github.com/imespro/reid-backend/internal/adapter/rediscache"
)

type cacheStats interface {
	Stats(ctx context.Context) rediscache.Stats
}

// CacheHandler serves the cache telemetry endpoint. Read-only: an unreachable
// or disabled cache produces a normal 200 payload, never an error.
type CacheHandler struct {
	cache cacheStats
}

// NewCacheHandler creates a CacheHandler.
func NewCacheHandler(cache cacheStats) *CacheHandler {
	return &CacheHandler{cache: cache}
}

// Stats handles GET /cache/stats.
func (h *CacheHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cache.Stats(r.Context()))
}
