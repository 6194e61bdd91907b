package website_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanand/wiki"
	"github.com/scanand/wiki/internal/adapters/cli"
	"github.com/scanand/wiki/website"
)

func TestWebsiteBuilds(t *testing.T) {
	cfg, err := wiki.ParseConfig(website.Config)
	require.NoError(t, err)

	var out bytes.Buffer
	dir := t.TempDir()
	app := wiki.New(cfg,
		wiki.WithSource(website.FS),
		wiki.WithOutDir(dir),
		wiki.WithOutput(cli.NewOutputTo(&out, &out, false)),
		wiki.WithClock(func() time.Time { return time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC) }),
	)
	require.NoError(t, app.Build(context.Background()), out.String())

	home, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(home), `class="col col--4 feature"`))
	assert.Contains(t, string(home), "Copyright © 2026 anand-pardhi.com")

	for _, page := range []string{
		"docs/intro/index.html",
		"docs/reactive/spring-webflux/index.html",
		"docs/reactive/testing/index.html",
		"docs/architecture/clean-architecture/index.html",
		"docs/cloud/microservices/index.html",
		"blog/index.html",
		"blog/2024/02/10/why-this-wiki/index.html",
	} {
		assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(page)))
	}
}

func TestWebsiteConfigMatchesDefaults(t *testing.T) {
	cfg, err := wiki.ParseConfig(website.Config)
	require.NoError(t, err)

	def := wiki.DefaultConfig()
	assert.Equal(t, def.Title, cfg.Title)
	assert.Equal(t, def.ThemeConfig.Navbar.Items, cfg.ThemeConfig.Navbar.Items)
	assert.Equal(t, def.Features, cfg.Features)
}
