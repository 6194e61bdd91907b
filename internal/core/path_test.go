package core

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/", "/"},
		{"", "/"},
		{"docs/intro", "/docs/intro"},
		{"/docs/intro/", "/docs/intro"},
	}

	for _, tt := range tests {
		if got := NormalizePath(tt.in); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateRoutePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "root", path: "/"},
		{name: "nested", path: "/docs/intro"},
		{name: "empty", path: "", wantErr: true},
		{name: "relative", path: "docs", wantErr: true},
		{name: "query", path: "/docs?x=1", wantErr: true},
		{name: "fragment", path: "/docs#top", wantErr: true},
		{name: "parent", path: "/docs/../etc", wantErr: true},
		{name: "wildcard", path: "/docs/*", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRoutePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRoutePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestRouteFile(t *testing.T) {
	tests := []struct {
		route string
		want  string
	}{
		{"/", "index.html"},
		{"/docs/intro", "docs/intro/index.html"},
		{"/blog/", "blog/index.html"},
		{"/docs/spring-6.1", "docs/spring-6.1/index.html"},
		{"/blog/2024/01/02/v1.2.3-released", "blog/2024/01/02/v1.2.3-released/index.html"},
	}

	for _, tt := range tests {
		if got := RouteFile(tt.route); got != tt.want {
			t.Errorf("RouteFile(%q) = %q, want %q", tt.route, got, tt.want)
		}
	}
}

func TestWithBase(t *testing.T) {
	tests := []struct {
		base  string
		route string
		want  string
	}{
		{"/", "/docs/intro", "/docs/intro"},
		{"/", "/", "/"},
		{"/wiki/", "/docs/intro", "/wiki/docs/intro"},
		{"/wiki/", "/", "/wiki/"},
		{"/wiki/", "img/logo.svg", "/wiki/img/logo.svg"},
		{"/wiki/", "https://github.com/scanand", "https://github.com/scanand"},
	}

	for _, tt := range tests {
		if got := WithBase(tt.base, tt.route); got != tt.want {
			t.Errorf("WithBase(%q, %q) = %q, want %q", tt.base, tt.route, got, tt.want)
		}
	}
}

func TestStripBase(t *testing.T) {
	tests := []struct {
		base   string
		href   string
		want   string
		wantOK bool
	}{
		{"/", "/docs/intro", "/docs/intro", true},
		{"/", "docs/intro", "docs/intro", false},
		{"/wiki/", "/wiki/docs/intro", "/docs/intro", true},
		{"/wiki/", "/wiki", "/", true},
		{"/wiki/", "/other", "", false},
	}

	for _, tt := range tests {
		got, ok := StripBase(tt.base, tt.href)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("StripBase(%q, %q) = %q, %v, want %q, %v", tt.base, tt.href, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestGetContentType(t *testing.T) {
	if got := GetContentType("img/hero.SVG"); got != "image/svg+xml" {
		t.Errorf("GetContentType(svg) = %q", got)
	}
	if got := GetContentType("index.html"); got != "text/html; charset=utf-8" {
		t.Errorf("GetContentType(html) = %q", got)
	}
	if got := GetContentType("blob.bin"); got != "application/octet-stream" {
		t.Errorf("GetContentType(bin) = %q", got)
	}
}
