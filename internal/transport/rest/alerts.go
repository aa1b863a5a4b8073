package rest

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/imespro/reid-backend/internal/domain"
	"github.com/imespro/reid-backend/internal/metrics"
	"github.com/imespro/reid-backend/internal/relay"
)

// streamPollInterval is how often a connected client's goroutine checks the
// buffer for alerts it has not sent yet.
const streamPollInterval = 100 * time.Millisecond

// AlertHandler serves the alert stream endpoints backed by the relay buffer.
type AlertHandler struct {
	buf *relay.Buffer
	log *slog.Logger
}

// NewAlertHandler creates an AlertHandler.
func NewAlertHandler(buf *relay.Buffer, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{buf: buf, log: logger.With("handler", "alerts")}
}

type recentMessagesResponse struct {
	Messages      []domain.Alert `json:"messages"`
	TotalInBuffer int            `json:"total_in_buffer"`
}

// Recent handles GET /messages/recent.
func (h *AlertHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	entries := h.buf.Recent(limit)
	msgs := make([]domain.Alert, 0, len(entries))
	for _, e := range entries {
		msgs = append(msgs, e.Alert)
	}
	writeJSON(w, http.StatusOK, recentMessagesResponse{
		Messages:      msgs,
		TotalInBuffer: h.buf.Len(),
	})
}

type wsSystemMessage struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Buffered int    `json:"buffered"`
}

// Stream handles GET /ws/alerts. Each client first receives everything
// currently buffered, then new alerts as the relay appends them.
func (h *AlertHandler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.log.WarnContext(r.Context(), "websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	metrics.WebsocketClients.Inc()
	defer metrics.WebsocketClients.Dec()

	// Drain and discard client frames; cancels ctx when the client goes away.
	ctx := conn.CloseRead(r.Context())

	backlog := h.buf.Recent(0)
	if err := wsjson.Write(ctx, conn, wsSystemMessage{
		Type:     "system",
		Message:  "connected to alert stream",
		Buffered: len(backlog),
	}); err != nil {
		return
	}

	var lastSeq uint64
	for _, e := range backlog {
		if err := wsjson.Write(ctx, conn, e.Alert); err != nil {
			return
		}
		lastSeq = e.Seq
	}

	ticker := time.NewTicker(streamPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case <-ticker.C:
			for _, e := range h.buf.Since(lastSeq) {
				if err := wsjson.Write(ctx, conn, e.Alert); err != nil {
					return
				}
				lastSeq = e.Seq
			}
		}
	}
}
