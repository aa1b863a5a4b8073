package rest

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/require"

	"github.com/imespro/reid-backend/internal/domain"
	"github.com/imespro/reid-backend/internal/relay"
	"github.com/imespro/reid-backend/internal/transport/middleware"
)

// The upgrade must survive the production middleware chain: the logging
// wrapper has to expose http.Hijacker or Accept refuses with a 501.
func TestAlertStream_UpgradesThroughMiddlewareChain(t *testing.T) {
	buf := relay.NewBuffer(10)
	buf.Append(domain.Alert{
		UserID:   "7",
		UserName: "Nguyen Van A",
		ZoneID:   "ZONE_001",
		Status:   "violation",
	})

	log := testLogger()
	router := NewRouter(Handlers{
		Users:  NewUserHandler(&userServiceMock{}, testAPIConfig, log),
		Zones:  NewZoneHandler(&zoneServiceMock{}, testAPIConfig, log),
		Stats:  NewStatsHandler(&statsMock{}, &statsMock{}, log),
		Cache:  NewCacheHandler(&cacheStatsMock{}),
		Alerts: NewAlertHandler(buf, log),
		Health: newHealthHandler(nil, true, true),
	})
	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(log),
		middleware.Logger(log),
	)(router)

	srv := httptest.NewServer(handler)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, srv.URL+"/ws/alerts", nil)
	require.NoError(t, err, "upgrade must succeed through the middleware chain")
	defer conn.CloseNow()

	var sys wsSystemMessage
	require.NoError(t, wsjson.Read(ctx, conn, &sys))
	require.Equal(t, "system", sys.Type)
	require.Equal(t, 1, sys.Buffered)

	var alert domain.Alert
	require.NoError(t, wsjson.Read(ctx, conn, &alert))
	require.Equal(t, "ZONE_001", alert.ZoneID)
	require.Equal(t, "violation", alert.Status)

	conn.Close(websocket.StatusNormalClosure, "")
}
