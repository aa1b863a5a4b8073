package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/imespro/reid-backend/internal/config"
	"github.com/imespro/reid-backend/internal/domain"
	"github.com/imespro/reid-backend/internal/service/zone"
)

// zoneService defines the minimal interface needed by ZoneHandler.
type zoneService interface {
	GetZone(ctx context.Context, zoneID string) (*domain.WorkingZone, error)
	CreateZone(ctx context.Context, input zone.CreateZoneInput) (*domain.WorkingZone, error)
	UpdateZone(ctx context.Context, input zone.UpdateZoneInput) (*domain.WorkingZone, error)
	DeleteZone(ctx context.Context, zoneID string) error
	ListZones(ctx context.Context, offset, limit int) ([]domain.WorkingZone, error)
}

// ZoneHandler serves working-zone REST endpoints.
type ZoneHandler struct {
	svc zoneService
	api config.APIConfig
	log *slog.Logger
}

// NewZoneHandler creates a ZoneHandler.
func NewZoneHandler(svc zoneService, api config.APIConfig, logger *slog.Logger) *ZoneHandler {
	return &ZoneHandler{svc: svc, api: api, log: logger.With("handler", "zones")}
}

type createZoneRequest struct {
	ZoneID   string  `json:"zone_id"`
	ZoneName string  `json:"zone_name"`
	X1       float64 `json:"x1"`
	Y1       float64 `json:"y1"`
	X2       float64 `json:"x2"`
	Y2       float64 `json:"y2"`
	X3       float64 `json:"x3"`
	Y3       float64 `json:"y3"`
	X4       float64 `json:"x4"`
	Y4       float64 `json:"y4"`
}

type updateZoneRequest struct {
	NewZoneID *string  `json:"new_zone_id"`
	ZoneName  *string  `json:"zone_name"`
	X1        *float64 `json:"x1"`
	Y1        *float64 `json:"y1"`
	X2        *float64 `json:"x2"`
	Y2        *float64 `json:"y2"`
	X3        *float64 `json:"x3"`
	Y3        *float64 `json:"y3"`
	X4        *float64 `json:"x4"`
	Y4        *float64 `json:"y4"`
}

type zoneResponse struct {
	ZoneID   string  `json:"zone_id"`
	ZoneName string  `json:"zone_name"`
	X1       float64 `json:"x1"`
	Y1       float64 `json:"y1"`
	X2       float64 `json:"x2"`
	Y2       float64 `json:"y2"`
	X3       float64 `json:"x3"`
	Y3       float64 `json:"y3"`
	X4       float64 `json:"x4"`
	Y4       float64 `json:"y4"`
}

func toZoneResponse(z *domain.WorkingZone) zoneResponse {
	return zoneResponse{
		ZoneID:   z.ZoneID,
		ZoneName: z.ZoneName,
		X1:       z.X1, Y1: z.Y1,
		X2: z.X2, Y2: z.Y2,
		X3: z.X3, Y3: z.Y3,
		X4: z.X4, Y4: z.Y4,
	}
}

// List handles GET /zones.
func (h *ZoneHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := pageParams(r, h.api)

	zones, err := h.svc.ListZones(r.Context(), skip, limit)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}
	out := make([]zoneResponse, 0, len(zones))
	for i := range zones {
		out = append(out, toZoneResponse(&zones[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /zones/{zone_id}.
func (h *ZoneHandler) Get(w http.ResponseWriter, r *http.Request) {
	z, err := h.svc.GetZone(r.Context(), r.PathValue("zone_id"))
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toZoneResponse(z))
}

// Create handles POST /zones.
func (h *ZoneHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	z, err := h.svc.CreateZone(r.Context(), zone.CreateZoneInput{
		ZoneID:   req.ZoneID,
		ZoneName: req.ZoneName,
		X1:       req.X1, Y1: req.Y1,
		X2: req.X2, Y2: req.Y2,
		X3: req.X3, Y3: req.Y3,
		X4: req.X4, Y4: req.Y4,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toZoneResponse(z))
}

// Update handles PUT /zones/{zone_id}.
func (h *ZoneHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	z, err := h.svc.UpdateZone(r.Context(), zone.UpdateZoneInput{
		ZoneID:    r.PathValue("zone_id"),
		NewZoneID: req.NewZoneID,
		ZoneName:  req.ZoneName,
		X1:        req.X1, Y1: req.Y1,
		X2: req.X2, Y2: req.Y2,
		X3: req.X3, Y3: req.Y3,
		X4: req.X4, Y4: req.Y4,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toZoneResponse(z))
}

// Delete handles DELETE /zones/{zone_id}.
func (h *ZoneHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteZone(r.Context(), r.PathValue("zone_id")); err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "zone deleted, assigned users detached"})
}
