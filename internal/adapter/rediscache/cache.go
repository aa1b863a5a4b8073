// Package rediscache implements the optional Redis-backed cache layer.
//
// The cache is best-effort by contract: a disabled or unreachable Redis
// degrades every operation to a miss or a no-op, and no redis-specific error
// ever crosses the package boundary. Callers decide nothing beyond
// "hit or miss".
package rediscache

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/imespro/reid-backend/internal/config"
	"github.com/imespro/reid-backend/internal/metrics"
)

// Stats is the operator-facing cache statistics snapshot. Hit and miss
// counters are process-local and reset on restart; key count and memory are
// read from the server and are approximate.
type Stats struct {
	Enabled     bool   `json:"enabled"`
	Available   bool   `json:"available"`
	Addr        string `json:"addr,omitempty"`
	HitCount    uint64 `json:"hit_count"`
	MissCount   uint64 `json:"miss_count"`
	KeyCount    int64  `json:"key_count"`
	MemoryBytes int64  `json:"memory_bytes"`
}

// Cache wraps a Redis client with availability tracking.
// redisClient is the slice of the go-redis API this package uses. Tests
// substitute a fake to observe the commands issued.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	DBSize(ctx context.Context) *redis.IntCmd
	Info(ctx context.Context, section ...string) *redis.StringCmd
	Close() error
}

// The zero-value Cache is not usable; construct with New.
type Cache struct {
	cfg    config.RedisConfig
	log    *slog.Logger
	client redisClient

	available atomic.Bool
	hits      atomic.Uint64
	misses    atomic.Uint64

	probeMu   sync.Mutex
	lastProbe time.Time

	closeOnce sync.Once
}

// New creates the cache layer. With cfg.Enabled false no connection is ever
// made and the cache behaves as a null object. Otherwise the first
// availability check happens lazily on use, so a Redis that comes up after
// the backend is picked up by the periodic re-probe.
func New(cfg config.RedisConfig, logger *slog.Logger) *Cache {
	c := &Cache{
		cfg: cfg,
		log: logger.With("component", "rediscache"),
	}

	if !cfg.Enabled {
		c.log.Info("cache disabled by configuration")
		return c
	}

	c.client = redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		Password:    cfg.Password,
		DialTimeout: cfg.ConnectTimeout,
		// Per-command timeouts are enforced with derived contexts; disable
		// the client's own read/write timeouts to keep a single source of truth.
		ReadTimeout:  -1,
		WriteTimeout: -1,
	})

	return c
}

// IsAvailable reports whether the cache may be used right now. It is a
// fast-path atomic check; while unavailable, the server is re-probed at most
// once per probe interval so a recovered Redis is picked up without
// hammering a dead one.
func (c *Cache) IsAvailable(ctx context.Context) bool {
	if c.client == nil {
		return false
	}
	if c.available.Load() {
		return true
	}

	c.probeMu.Lock()
	if time.Since(c.lastProbe) < c.cfg.ProbeInterval && !c.lastProbe.IsZero() {
		c.probeMu.Unlock()
		return false
	}
	c.lastProbe = time.Now()
	c.probeMu.Unlock()

	probeCtx, cancel := context.WithTimeout(ctx, c.cfg.OpTimeout)
	defer cancel()

	if err := c.client.Ping(probeCtx).Err(); err != nil {
		c.log.WarnContext(ctx, "cache unavailable", slog.String("error", err.Error()))
		return false
	}

	c.available.Store(true)
	c.log.InfoContext(ctx, "cache connected", slog.String("addr", c.cfg.Addr))
	return true
}

// Get returns the value stored under key, or ok=false on miss, expiry, or
// any cache failure.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if !c.IsAvailable(ctx) {
		return nil, false
	}

	opCtx, cancel := context.WithTimeout(ctx, c.cfg.OpTimeout)
	defer cancel()

	val, err := c.client.Get(opCtx, key).Bytes()
	switch {
	case err == redis.Nil:
		c.misses.Add(1)
		metrics.CacheMisses.Inc()
		return nil, false
	case err != nil:
		c.markUnavailable(ctx, "get", key, err)
		c.misses.Add(1)
		metrics.CacheMisses.Inc()
		return nil, false
	}

	c.hits.Add(1)
	metrics.CacheHits.Inc()
	return val, true
}

// Put stores value under key with an absolute TTL. Failures are logged and
// swallowed; the caller's request must not fail because a cache write did.
func (c *Cache) Put(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if !c.IsAvailable(ctx) {
		return
	}

	opCtx, cancel := context.WithTimeout(ctx, c.cfg.OpTimeout)
	defer cancel()

	if err := c.client.Set(opCtx, key, value, ttl).Err(); err != nil {
		c.markUnavailable(ctx, "put", key, err)
		return
	}
	metrics.CachePuts.Inc()
}

// Invalidate deletes key. Deleting an absent key is not an error; failures
// are logged and swallowed.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if !c.IsAvailable(ctx) {
		return
	}

	opCtx, cancel := context.WithTimeout(ctx, c.cfg.OpTimeout)
	defer cancel()

	if err := c.client.Del(opCtx, key).Err(); err != nil {
		c.markUnavailable(ctx, "invalidate", key, err)
		return
	}
	metrics.CacheInvalidations.Inc()
}

// Stats returns the current statistics snapshot. Server-side figures are
// zero when the cache is unavailable.
func (c *Cache) Stats(ctx context.Context) Stats {
	s := Stats{
		Enabled:   c.cfg.Enabled,
		HitCount:  c.hits.Load(),
		MissCount: c.misses.Load(),
	}
	if !c.IsAvailable(ctx) {
		return s
	}
	s.Available = true
	s.Addr = c.cfg.Addr

	opCtx, cancel := context.WithTimeout(ctx, c.cfg.OpTimeout)
	defer cancel()

	if n, err := c.client.DBSize(opCtx).Result(); err == nil {
		s.KeyCount = n
	}
	if info, err := c.client.Info(opCtx, "memory").Result(); err == nil {
		s.MemoryBytes = parseUsedMemory(info)
	}
	return s
}

// Close releases the underlying connection. Idempotent.
func (c *Cache) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.available.Store(false)
		if c.client != nil {
			err = c.client.Close()
		}
	})
	return err
}

func (c *Cache) markUnavailable(ctx context.Context, op, key string, err error) {
	c.available.Store(false)
	c.probeMu.Lock()
	c.lastProbe = time.Now()
	c.probeMu.Unlock()

	c.log.WarnContext(ctx, "cache operation failed",
		slog.String("op", op),
		slog.String("key", key),
		slog.String("error", err.Error()),
	)
}

// parseUsedMemory extracts used_memory from an INFO memory section.
func parseUsedMemory(info string) int64 {
	for _, line := range strings.Split(info, "\r\n") {
		if v, ok := strings.CutPrefix(line, "used_memory:"); ok {
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return 0
			}
			return n
		}
	}
	return 0
}
