package rest

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Users  *UserHandler
	Zones  *ZoneHandler
	Stats  *StatsHandler
	Cache  *CacheHandler
	Alerts *AlertHandler
	Health *HealthHandler
}

// NewRouter builds the full route table on a stdlib mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("GET /users", h.Users.List)
	mux.HandleFunc("POST /users", h.Users.Create)
	mux.HandleFunc("GET /users/{id}", h.Users.Get)
	mux.HandleFunc("PUT /users/{id}", h.Users.Update)
	mux.HandleFunc("DELETE /users/{id}", h.Users.Delete)
	mux.HandleFunc("GET /users-dict", h.Users.Dict)

	mux.HandleFunc("GET /zones", h.Zones.List)
	mux.HandleFunc("POST /zones", h.Zones.Create)
	mux.HandleFunc("GET /zones/{zone_id}", h.Zones.Get)
	mux.HandleFunc("PUT /zones/{zone_id}", h.Zones.Update)
	mux.HandleFunc("DELETE /zones/{zone_id}", h.Zones.Delete)
	mux.HandleFunc("GET /zones/{zone_id}/users", h.Users.ListByZone)

	mux.HandleFunc("GET /stats/users", h.Stats.Users)
	mux.HandleFunc("GET /stats/zones", h.Stats.Zones)

	mux.HandleFunc("GET /cache/stats", h.Cache.Stats)
	mux.HandleFunc("POST /cache/invalidate/users-dict", h.Users.InvalidateDict)

	mux.HandleFunc("GET /ws/alerts", h.Alerts.Stream)
	mux.HandleFunc("GET /messages/recent", h.Alerts.Recent)

	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
