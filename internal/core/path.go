package core

import (
	"fmt"
	"path"
	"strings"
)

func NormalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p != "/" && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

func ValidateRoutePath(p string) error {
	if p == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("path must start with /")
	}

	if strings.Contains(p, "?") {
		return fmt.Errorf("path cannot contain query string")
	}

	if strings.Contains(p, "#") {
		return fmt.Errorf("path cannot contain fragment")
	}

	if strings.Contains(p, "..") {
		return fmt.Errorf("path cannot contain parent directory references")
	}

	if strings.Contains(p, "*") {
		return fmt.Errorf("path cannot contain wildcards")
	}

	return nil
}

// RouteFile maps a page route to the index.html that serves it in the
// output tree. Dots in the last segment are part of the page name:
// /docs/spring-6.1 -> docs/spring-6.1/index.html.
func RouteFile(route string) string {
	route = strings.TrimPrefix(path.Clean(NormalizePath(route)), "/")
	if route == "" {
		return "index.html"
	}
	return route + "/index.html"
}

// WithBase prefixes an absolute route with the site base URL ("/" or "/wiki/").
func WithBase(baseURL, route string) string {
	if strings.HasPrefix(route, "http://") || strings.HasPrefix(route, "https://") || strings.HasPrefix(route, "#") {
		return route
	}
	base := strings.TrimSuffix(baseURL, "/")
	if route == "" || route == "/" {
		return base + "/"
	}
	return base + NormalizePath(route)
}

// StripBase is the inverse of WithBase for internal hrefs.
func StripBase(baseURL, href string) (string, bool) {
	base := strings.TrimSuffix(baseURL, "/")
	if base == "" {
		return href, strings.HasPrefix(href, "/")
	}
	if href == base {
		return "/", true
	}
	if rest, ok := strings.CutPrefix(href, base+"/"); ok {
		return "/" + rest, true
	}
	return "", false
}
