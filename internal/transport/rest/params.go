package rest

import (
	"net/http"
	"strconv"

	"github.com/imespro/reid-backend/internal/config"
)

// pageParams reads skip/limit query parameters, applying the configured
// default and cap. Malformed or negative values fall back to the defaults.
func pageParams(r *http.Request, cfg config.APIConfig) (skip, limit int) {
	limit = cfg.DefaultPageSize

	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > cfg.MaxPageSize {
		limit = cfg.MaxPageSize
	}
	return skip, limit
}

// boolParam reads a boolean query parameter, defaulting when absent or
// malformed.
func boolParam(r *http.Request, name string, def bool) bool {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
