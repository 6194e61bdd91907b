package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the site under its base URL. reload may be nil outside
// dev mode.
func NewRouter(site *SiteHandler, reload *Reloader) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.CleanPath)

	if reload != nil {
		r.Get(ReloadPath, reload.ServeHTTP)
	}
	r.Method(http.MethodGet, "/*", site)
	r.Method(http.MethodHead, "/*", site)
	return r
}
