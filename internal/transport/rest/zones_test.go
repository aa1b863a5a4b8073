package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/imespro/reid-backend/internal/domain"
	"github.com/imespro/reid-backend/internal/service/zone"
)

type zoneServiceMock struct {
	GetZoneFunc    func(ctx context.Context, zoneID string) (*domain.WorkingZone, error)
	CreateZoneFunc func(ctx context.Context, input zone.CreateZoneInput) (*domain.WorkingZone, error)
	UpdateZoneFunc func(ctx context.Context, input zone.UpdateZoneInput) (*domain.WorkingZone, error)
	DeleteZoneFunc func(ctx context.Context, zoneID string) error
	ListZonesFunc  func(ctx context.Context, offset, limit int) ([]domain.WorkingZone, error)
}

func (m *zoneServiceMock) GetZone(ctx context.Context, zoneID string) (*domain.WorkingZone, error) {
	return m.GetZoneFunc(ctx, zoneID)
}

func (m *zoneServiceMock) CreateZone(ctx context.Context, input zone.CreateZoneInput) (*domain.WorkingZone, error) {
	return m.CreateZoneFunc(ctx, input)
}

func (m *zoneServiceMock) UpdateZone(ctx context.Context, input zone.UpdateZoneInput) (*domain.WorkingZone, error) {
	return m.UpdateZoneFunc(ctx, input)
}

func (m *zoneServiceMock) DeleteZone(ctx context.Context, zoneID string) error {
	return m.DeleteZoneFunc(ctx, zoneID)
}

func (m *zoneServiceMock) ListZones(ctx context.Context, offset, limit int) ([]domain.WorkingZone, error) {
	return m.ListZonesFunc(ctx, offset, limit)
}

func newZoneTestRouter(t *testing.T, zsvc *zoneServiceMock, usvc *userServiceMock) *http.ServeMux {
	t.Helper()
	log := testLogger()
	if usvc == nil {
		usvc = &userServiceMock{}
	}
	return NewRouter(Handlers{
		Users:  NewUserHandler(usvc, testAPIConfig, log),
		Zones:  NewZoneHandler(zsvc, testAPIConfig, log),
		Stats:  NewStatsHandler(&statsMock{}, &statsMock{}, log),
		Cache:  NewCacheHandler(&cacheStatsMock{}),
		Alerts: newTestAlertHandler(log),
		Health: newHealthHandler(nil, true, true),
	})
}

func TestZones_Get(t *testing.T) {
	t.Parallel()

	svc := &zoneServiceMock{
		GetZoneFunc: func(ctx context.Context, zoneID string) (*domain.WorkingZone, error) {
			require.Equal(t, "entrance", zoneID)
			return &domain.WorkingZone{ZoneID: "entrance", ZoneName: "Main", X2: 1, X3: 1, Y3: 1, Y4: 1}, nil
		},
	}
	router := newZoneTestRouter(t, svc, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/zones/entrance", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp zoneResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "Main", resp.ZoneName)
	require.Equal(t, 1.0, resp.X3)
}

func TestZones_CreateDuplicate409(t *testing.T) {
	t.Parallel()

	svc := &zoneServiceMock{
		CreateZoneFunc: func(ctx context.Context, input zone.CreateZoneInput) (*domain.WorkingZone, error) {
			return nil, fmt.Errorf("create zone: zone %q: %w", input.ZoneID, domain.ErrAlreadyExists)
		},
	}
	router := newZoneTestRouter(t, svc, nil)

	body := `{"zone_id": "entrance", "zone_name": "Main"}`
	req := httptest.NewRequest(http.MethodPost, "/zones", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestZones_UpdateRename(t *testing.T) {
	t.Parallel()

	svc := &zoneServiceMock{
		UpdateZoneFunc: func(ctx context.Context, input zone.UpdateZoneInput) (*domain.WorkingZone, error) {
			require.Equal(t, "entrance", input.ZoneID)
			require.NotNil(t, input.NewZoneID)
			require.Equal(t, "lobby", *input.NewZoneID)
			return &domain.WorkingZone{ZoneID: "lobby", ZoneName: "Main"}, nil
		},
	}
	router := newZoneTestRouter(t, svc, nil)

	body := `{"new_zone_id": "lobby"}`
	req := httptest.NewRequest(http.MethodPut, "/zones/entrance", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp zoneResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "lobby", resp.ZoneID)
}

func TestZones_DeleteNotFound(t *testing.T) {
	t.Parallel()

	svc := &zoneServiceMock{
		DeleteZoneFunc: func(ctx context.Context, zoneID string) error {
			return fmt.Errorf("delete zone: zone %q: %w", zoneID, domain.ErrNotFound)
		},
	}
	router := newZoneTestRouter(t, svc, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/zones/ghost", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestZones_ListUsersInZone(t *testing.T) {
	t.Parallel()

	usvc := &userServiceMock{
		ListUsersByZoneFunc: func(ctx context.Context, zoneID string) ([]domain.User, error) {
			require.Equal(t, "entrance", zoneID)
			z := zoneID
			return []domain.User{{ID: 1, GlobalID: 1001, Name: "Alice", ZoneID: &z}}, nil
		},
	}
	router := newZoneTestRouter(t, &zoneServiceMock{}, usvc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/zones/entrance/users", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []userResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	require.Equal(t, "Alice", resp[0].Name)
}

func TestZones_DatabaseExhausted503(t *testing.T) {
	t.Parallel()

	svc := &zoneServiceMock{
		ListZonesFunc: func(ctx context.Context, offset, limit int) ([]domain.WorkingZone, error) {
			return nil, fmt.Errorf("list zones: %w", domain.ErrResourceExhausted)
		},
	}
	router := newZoneTestRouter(t, svc, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/zones", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
