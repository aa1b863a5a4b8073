package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/imespro/reid-backend/internal/config"
)

func corsRequest(t *testing.T, cfg config.CORSConfig, method, origin string) (*httptest.ResponseRecorder, *bool) {
	t.Helper()
	called := false
	handler := CORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(method, "/users", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, &called
}

func TestCORS_PreflightAnsweredDirectly(t *testing.T) {
	cfg := config.CORSConfig{
		AllowedOrigins:   "http://dashboard.local",
		AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
		AllowedHeaders:   "Authorization,Content-Type",
		AllowCredentials: true,
		MaxAge:           86400,
	}

	rec, called := corsRequest(t, cfg, http.MethodOptions, "http://dashboard.local")

	if *called {
		t.Error("next handler must not run for preflight")
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	want := map[string]string{
		"Access-Control-Allow-Origin":      "http://dashboard.local",
		"Access-Control-Allow-Methods":     "GET,POST,PUT,DELETE,OPTIONS",
		"Access-Control-Allow-Headers":     "Authorization,Content-Type",
		"Access-Control-Allow-Credentials": "true",
		"Access-Control-Max-Age":           "86400",
	}
	for header, value := range want {
		if got := rec.Header().Get(header); got != value {
			t.Errorf("%s = %q, want %q", header, got, value)
		}
	}
}

func TestCORS_ListedOriginEchoed(t *testing.T) {
	cfg := config.CORSConfig{
		AllowedOrigins:   "http://dashboard.local,http://staging.local",
		AllowedMethods:   "GET,POST",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	}

	rec, called := corsRequest(t, cfg, http.MethodGet, "http://staging.local")

	if !*called {
		t.Error("handler was not called")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://staging.local" {
		t.Errorf("Access-Control-Allow-Origin = %q, want the request origin", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Access-Control-Allow-Credentials = %q, want true", got)
	}
}

func TestCORS_UnlistedOriginGetsNoHeaders(t *testing.T) {
	cfg := config.CORSConfig{
		AllowedOrigins: "http://dashboard.local",
		AllowedMethods: "GET",
		AllowedHeaders: "Content-Type",
	}

	rec, called := corsRequest(t, cfg, http.MethodGet, "http://attacker.example")

	if !*called {
		t.Error("handler was not called; unlisted origins are refused headers, not requests")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q, want unset", got)
	}
}

func TestCORS_WildcardEchoesAnyOrigin(t *testing.T) {
	cfg := config.CORSConfig{
		AllowedOrigins:   "*",
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: false,
	}

	rec, _ := corsRequest(t, cfg, http.MethodGet, "http://anywhere.example")

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://anywhere.example" {
		t.Errorf("Access-Control-Allow-Origin = %q, want the request origin", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Errorf("Access-Control-Allow-Credentials = %q, want unset when credentials disabled", got)
	}
}
