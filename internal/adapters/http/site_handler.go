package http

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"sync"

	"github.com/scanand/wiki/internal/core"
)

const notFoundPage = "404.html"

// SiteHandler serves a built site. While a failed rebuild is pending it
// answers every page request with the error page instead.
type SiteHandler struct {
	fsys    fs.FS
	baseURL string
	isDev   bool

	mu       sync.RWMutex
	buildErr error
}

func NewSiteHandler(fsys fs.FS, baseURL string, isDev bool) *SiteHandler {
	return &SiteHandler{
		fsys:    fsys,
		baseURL: baseURL,
		isDev:   isDev,
	}
}

func (h *SiteHandler) SetBuildError(err error) {
	h.mu.Lock()
	h.buildErr = err
	h.mu.Unlock()
}

func (h *SiteHandler) BuildError() error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.buildErr
}

func (h *SiteHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if err := h.BuildError(); err != nil {
		h.serveError(w, err)
		return
	}

	route, ok := core.StripBase(h.baseURL, req.URL.Path)
	if !ok {
		h.serveNotFound(w)
		return
	}

	name, ok := h.resolve(route)
	if !ok {
		h.serveNotFound(w)
		return
	}
	h.serveFile(w, http.StatusOK, name)
}

// resolve maps a route to a file: the exact path first, then the page
// directory's index.html.
func (h *SiteHandler) resolve(route string) (string, bool) {
	clean := strings.TrimPrefix(path.Clean("/"+route), "/")
	if clean != "" && h.isFile(clean) {
		return clean, true
	}
	if name := core.RouteFile(route); h.isFile(name) {
		return name, true
	}
	if name := path.Join(clean, "index.html"); h.isFile(name) {
		return name, true
	}
	return "", false
}

func (h *SiteHandler) isFile(name string) bool {
	info, err := fs.Stat(h.fsys, name)
	return err == nil && !info.IsDir()
}

func (h *SiteHandler) serveFile(w http.ResponseWriter, status int, name string) {
	data, err := fs.ReadFile(h.fsys, name)
	if err != nil {
		slog.Error("failed to read site file", "file", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", core.GetContentType(name))
	if h.isDev {
		w.Header().Set("Cache-Control", "no-cache")
	}
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func (h *SiteHandler) serveNotFound(w http.ResponseWriter) {
	if h.isFile(notFoundPage) {
		h.serveFile(w, http.StatusNotFound, notFoundPage)
		return
	}
	http.Error(w, "404 page not found", http.StatusNotFound)
}

func (h *SiteHandler) serveError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)

	data := core.ErrorData{Message: err.Error(), IsDev: h.isDev}
	if execErr := core.ErrorTemplate.Execute(w, data); execErr != nil {
		slog.Error("failed to render error page", "error", errors.Join(err, execErr))
	}
}
