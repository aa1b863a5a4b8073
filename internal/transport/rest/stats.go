package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/imespro/reid-backend/internal/domain"
)

type userStatsService interface {
	CountUsers(ctx context.Context) (int64, error)
}

type zoneStatsService interface {
	CountZones(ctx context.Context) (int64, error)
	UserCounts(ctx context.Context) ([]domain.ZoneUserCount, error)
}

// StatsHandler serves the aggregate statistics endpoints.
type StatsHandler struct {
	users userStatsService
	zones zoneStatsService
	log   *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(users userStatsService, zones zoneStatsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{users: users, zones: zones, log: logger.With("handler", "stats")}
}

// Users handles GET /stats/users.
func (h *StatsHandler) Users(w http.ResponseWriter, r *http.Request) {
	total, err := h.users.CountUsers(r.Context())
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"total_users": total})
}

// Zones handles GET /stats/zones.
func (h *StatsHandler) Zones(w http.ResponseWriter, r *http.Request) {
	total, err := h.zones.CountZones(r.Context())
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}
	counts, err := h.zones.UserCounts(r.Context())
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total_zones": total,
		"zones":       counts,
	})
}
