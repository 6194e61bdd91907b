package http

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builtSite() fstest.MapFS {
	return fstest.MapFS{
		"index.html":                 {Data: []byte("<h1>home</h1>")},
		"docs/intro/index.html":      {Data: []byte("<h1>intro</h1>")},
		"docs/spring-6.1/index.html": {Data: []byte("<h1>spring</h1>")},
		"404.html":                   {Data: []byte("<h1>missing</h1>")},
		"sitemap.xml":                {Data: []byte("<urlset/>")},
		"img/logo.svg":               {Data: []byte("<svg/>")},
	}
}

func get(t *testing.T, h http.Handler, target string) *http.Response {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec.Result()
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func TestSiteHandler(t *testing.T) {
	h := NewRouter(NewSiteHandler(builtSite(), "/", false), nil)

	tests := []struct {
		target      string
		status      int
		contentType string
		body        string
	}{
		{"/", http.StatusOK, "text/html; charset=utf-8", "<h1>home</h1>"},
		{"/docs/intro", http.StatusOK, "text/html; charset=utf-8", "<h1>intro</h1>"},
		{"/docs/intro/", http.StatusOK, "text/html; charset=utf-8", "<h1>intro</h1>"},
		{"/docs/spring-6.1", http.StatusOK, "text/html; charset=utf-8", "<h1>spring</h1>"},
		{"/sitemap.xml", http.StatusOK, "application/xml", "<urlset/>"},
		{"/img/logo.svg", http.StatusOK, "image/svg+xml", "<svg/>"},
		{"/docs/nope", http.StatusNotFound, "text/html; charset=utf-8", "<h1>missing</h1>"},
		{"/docs", http.StatusNotFound, "text/html; charset=utf-8", "<h1>missing</h1>"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			resp := get(t, h, tt.target)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.contentType, resp.Header.Get("Content-Type"))
			assert.Equal(t, tt.body, body(t, resp))
		})
	}
}

func TestSiteHandlerBaseURL(t *testing.T) {
	h := NewRouter(NewSiteHandler(builtSite(), "/wiki/", false), nil)

	assert.Equal(t, "<h1>home</h1>", body(t, get(t, h, "/wiki/")))
	assert.Equal(t, "<h1>intro</h1>", body(t, get(t, h, "/wiki/docs/intro")))
	assert.Equal(t, http.StatusNotFound, get(t, h, "/docs/intro").StatusCode)
}

func TestSiteHandlerWithoutNotFoundPage(t *testing.T) {
	fsys := builtSite()
	delete(fsys, "404.html")
	h := NewSiteHandler(fsys, "/", false)

	resp := get(t, h, "/missing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body(t, resp), "404 page not found")
}

func TestSiteHandlerBuildError(t *testing.T) {
	tests := []struct {
		name     string
		isDev    bool
		contains string
		excludes string
	}{
		{name: "dev shows message", isDev: true, contains: "route /docs/a already used", excludes: "Fix the error"},
		{name: "prod hides message", isDev: false, contains: "Fix the error", excludes: "already used"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSiteHandler(builtSite(), "/", tt.isDev)
			h.SetBuildError(errors.New("route /docs/a already used"))

			resp := get(t, h, "/")
			out := body(t, resp)
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
			assert.Contains(t, out, "Site build failed")
			assert.Contains(t, out, tt.contains)
			assert.NotContains(t, out, tt.excludes)

			h.SetBuildError(nil)
			assert.Equal(t, http.StatusOK, get(t, h, "/").StatusCode)
		})
	}
}

func TestSiteHandlerDevDisablesCaching(t *testing.T) {
	resp := get(t, NewSiteHandler(builtSite(), "/", true), "/")
	assert.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))
}
