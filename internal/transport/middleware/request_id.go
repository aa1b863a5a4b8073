package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/imespro/reid-backend/pkg/ctxutil"
)

// RequestID tags every request with an ID for log correlation. An incoming
// X-Request-Id is trusted and propagated; otherwise a fresh UUID is issued.
// The ID is stored in the context and echoed back in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
