package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/imespro/reid-backend/internal/config"
	"github.com/imespro/reid-backend/internal/domain"
	"github.com/imespro/reid-backend/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, input user.UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
	ListUsers(ctx context.Context, offset, limit int) ([]domain.User, error)
	ListUsersByZone(ctx context.Context, zoneID string) ([]domain.User, error)
	Dict(ctx context.Context, useCache bool) (domain.UsersDict, bool, error)
	InvalidateDict(ctx context.Context)
}

// UserHandler serves user REST endpoints.
type UserHandler struct {
	svc userService
	api config.APIConfig
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, api config.APIConfig, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, api: api, log: logger.With("handler", "users")}
}

type createUserRequest struct {
	GlobalID int64   `json:"global_id"`
	Name     string  `json:"name"`
	ZoneID   *string `json:"zone_id"`
}

// updateUserRequest keeps zone_id as raw JSON so that an absent field,
// an explicit null, and a value stay distinguishable.
type updateUserRequest struct {
	GlobalID *int64          `json:"global_id"`
	Name     *string         `json:"name"`
	ZoneID   json.RawMessage `json:"zone_id"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	GlobalID  int64     `json:"global_id"`
	Name      string    `json:"name"`
	ZoneID    *string   `json:"zone_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		GlobalID:  u.GlobalID,
		Name:      u.Name,
		ZoneID:    u.ZoneID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := pageParams(r, h.api)

	users, err := h.svc.ListUsers(r.Context(), skip, limit)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponses(users))
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.CreateUser(r.Context(), user.CreateUserInput{
		GlobalID: req.GlobalID,
		Name:     req.Name,
		ZoneID:   req.ZoneID,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

// Update handles PUT /users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := user.UpdateUserInput{
		ID:       id,
		GlobalID: req.GlobalID,
		Name:     req.Name,
	}
	if req.ZoneID != nil {
		if bytes.Equal(bytes.TrimSpace(req.ZoneID), []byte("null")) {
			var detached *string
			input.ZoneID = &detached
		} else {
			var zoneID string
			if err := json.Unmarshal(req.ZoneID, &zoneID); err != nil {
				writeError(w, http.StatusBadRequest, "zone_id must be a string or null")
				return
			}
			z := &zoneID
			input.ZoneID = &z
		}
	}

	u, err := h.svc.UpdateUser(r.Context(), input)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.svc.DeleteUser(r.Context(), id); err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}

// ListByZone handles GET /zones/{zone_id}/users.
func (h *UserHandler) ListByZone(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsersByZone(r.Context(), r.PathValue("zone_id"))
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponses(users))
}

// Dict handles GET /users-dict. The response is the raw global_id -> name
// object, matching what dashboard clients expect.
func (h *UserHandler) Dict(w http.ResponseWriter, r *http.Request) {
	useCache := boolParam(r, "use_cache", true)

	dict, fromCache, err := h.svc.Dict(r.Context(), useCache)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	source := "database"
	if fromCache {
		source = "cache"
	}
	w.Header().Set("X-Dict-Source", source)
	writeJSON(w, http.StatusOK, dict)
}

// InvalidateDict handles POST /cache/invalidate/users-dict. Always acks.
func (h *UserHandler) InvalidateDict(w http.ResponseWriter, r *http.Request) {
	h.svc.InvalidateDict(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"message": "users dict cache invalidated"})
}
