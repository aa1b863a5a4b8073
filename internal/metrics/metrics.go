// Package metrics defines the Prometheus instruments exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits counts users-dict reads served from the cache.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reid_cache_hits_total",
		Help: "Cache reads that returned a value.",
	})

	// CacheMisses counts cache reads that fell through to the store.
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reid_cache_misses_total",
		Help: "Cache reads that missed, expired, or hit an unavailable cache.",
	})

	// CachePuts counts successful cache writes.
	CachePuts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reid_cache_puts_total",
		Help: "Successful cache writes.",
	})

	// CacheInvalidations counts successful cache invalidations.
	CacheInvalidations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reid_cache_invalidations_total",
		Help: "Successful cache invalidations.",
	})

	// DictRebuildSeconds observes the duration of full users-dict projections.
	DictRebuildSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "reid_users_dict_rebuild_seconds",
		Help:    "Duration of full users-dict projections from the store.",
		Buckets: prometheus.DefBuckets,
	})

	// RelayMessages counts alert messages consumed from the broker.
	RelayMessages = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reid_relay_messages_total",
		Help: "Alert messages consumed from the broker.",
	})

	// RelayDropped counts broker messages discarded as unparseable.
	RelayDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reid_relay_dropped_total",
		Help: "Broker messages discarded as unparseable.",
	})

	// WebsocketClients tracks currently connected alert-stream clients.
	WebsocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "reid_websocket_clients",
		Help: "Currently connected alert-stream WebSocket clients.",
	})
)
