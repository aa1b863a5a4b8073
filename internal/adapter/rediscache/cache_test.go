package rediscache

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/imespro/reid-backend/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func disabledCache() *Cache {
	return New(config.RedisConfig{Enabled: false}, discardLogger())
}

func TestDisabledCache_AlwaysMisses(t *testing.T) {
	t.Parallel()

	c := disabledCache()
	ctx := context.Background()

	if c.IsAvailable(ctx) {
		t.Fatal("disabled cache reported available")
	}

	if _, ok := c.Get(ctx, "users:dict"); ok {
		t.Error("Get on disabled cache returned a hit")
	}

	// Put and Invalidate must be safe no-ops.
	c.Put(ctx, "users:dict", []byte(`{"1":"a"}`), time.Hour)
	c.Invalidate(ctx, "users:dict")

	if _, ok := c.Get(ctx, "users:dict"); ok {
		t.Error("Put on disabled cache stored a value")
	}
}

func TestDisabledCache_Stats(t *testing.T) {
	t.Parallel()

	c := disabledCache()
	s := c.Stats(context.Background())

	if s.Enabled {
		t.Error("stats.enabled = true for disabled cache")
	}
	if s.Available {
		t.Error("stats.available = true for disabled cache")
	}
	if s.HitCount != 0 || s.MissCount != 0 {
		t.Errorf("fresh cache has counts hit=%d miss=%d", s.HitCount, s.MissCount)
	}
}

func TestDisabledCache_CloseIdempotent(t *testing.T) {
	t.Parallel()

	c := disabledCache()
	if err := c.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestUnreachableCache_DegradesToMiss(t *testing.T) {
	t.Parallel()

	// Reserved TEST-NET address: connection attempts fail fast or time out.
	c := New(config.RedisConfig{
		Enabled:        true,
		Addr:           "192.0.2.1:6379",
		OpTimeout:      50 * time.Millisecond,
		ConnectTimeout: 50 * time.Millisecond,
		ProbeInterval:  time.Hour,
	}, discardLogger())
	defer c.Close()

	ctx := context.Background()

	if _, ok := c.Get(ctx, "users:dict"); ok {
		t.Error("Get on unreachable cache returned a hit")
	}
	c.Put(ctx, "users:dict", []byte("x"), time.Minute)
	c.Invalidate(ctx, "users:dict")

	s := c.Stats(ctx)
	if s.Available {
		t.Error("unreachable cache reported available")
	}
	if !s.Enabled {
		t.Error("stats.enabled should reflect configuration, not reachability")
	}
}

func TestUnreachableCache_ProbeIsRateLimited(t *testing.T) {
	t.Parallel()

	c := New(config.RedisConfig{
		Enabled:        true,
		Addr:           "192.0.2.1:6379",
		OpTimeout:      50 * time.Millisecond,
		ConnectTimeout: 50 * time.Millisecond,
		ProbeInterval:  time.Hour,
	}, discardLogger())
	defer c.Close()

	ctx := context.Background()

	// First call probes and fails.
	if c.IsAvailable(ctx) {
		t.Fatal("expected unavailable")
	}

	// Subsequent calls within the probe interval must return immediately
	// without dialing again.
	start := time.Now()
	for range 100 {
		if c.IsAvailable(ctx) {
			t.Fatal("expected unavailable")
		}
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("rate-limited availability checks took %v, expected fast path", elapsed)
	}
}

func TestParseUsedMemory(t *testing.T) {
	t.Parallel()

	info := "# Memory\r\nused_memory:1048576\r\nused_memory_human:1.00M\r\n"
	if got := parseUsedMemory(info); got != 1048576 {
		t.Errorf("parseUsedMemory = %d, want 1048576", got)
	}

	if got := parseUsedMemory("no such field"); got != 0 {
		t.Errorf("parseUsedMemory on garbage = %d, want 0", got)
	}
}

// fakeClient implements redisClient in memory and records the expiration
// passed to Set.
type fakeClient struct {
	mu      sync.Mutex
	values  map[string]string
	setTTLs map[string]time.Duration
}

func newFakeClient() *fakeClient {
	return &fakeClient{values: make(map[string]string), setTTLs: make(map[string]time.Duration)}
}

func (f *fakeClient) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.values[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeClient) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	f.setTTLs[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeClient) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (f *fakeClient) DBSize(ctx context.Context) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	return redis.NewIntResult(int64(len(f.values)), nil)
}

func (f *fakeClient) Info(ctx context.Context, section ...string) *redis.StringCmd {
	return redis.NewStringResult("used_memory:2048\r\n", nil)
}

func (f *fakeClient) Close() error { return nil }

func fakeBackedCache(client redisClient) *Cache {
	return &Cache{
		cfg: config.RedisConfig{
			Enabled:       true,
			Addr:          "fake:6379",
			OpTimeout:     time.Second,
			ProbeInterval: time.Hour,
		},
		log:    discardLogger(),
		client: client,
	}
}

func TestPut_PassesTTLToSet(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	c := fakeBackedCache(client)
	ctx := context.Background()

	c.Put(ctx, "users:dict", []byte(`{"1001":"Alice"}`), 3600*time.Second)

	client.mu.Lock()
	ttl := client.setTTLs["users:dict"]
	client.mu.Unlock()
	if ttl != 3600*time.Second {
		t.Errorf("SET expiration: got %v, want 1h", ttl)
	}

	// The whole entry round-trips.
	v, ok := c.Get(ctx, "users:dict")
	if !ok {
		t.Fatal("Get missed a freshly written entry")
	}
	if string(v) != `{"1001":"Alice"}` {
		t.Errorf("Get returned %q", v)
	}
}

func TestStats_ReadsServerFigures(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	c := fakeBackedCache(client)
	ctx := context.Background()

	c.Put(ctx, "users:dict", []byte("{}"), time.Hour)
	c.Get(ctx, "users:dict")
	c.Get(ctx, "missing")

	s := c.Stats(ctx)
	if !s.Available || !s.Enabled {
		t.Fatalf("stats = %+v, want available and enabled", s)
	}
	if s.HitCount != 1 || s.MissCount != 1 {
		t.Errorf("counts hit=%d miss=%d, want 1/1", s.HitCount, s.MissCount)
	}
	if s.KeyCount != 1 {
		t.Errorf("key count = %d, want 1", s.KeyCount)
	}
	if s.MemoryBytes != 2048 {
		t.Errorf("memory = %d, want 2048", s.MemoryBytes)
	}
}
