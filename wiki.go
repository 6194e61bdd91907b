// Package wiki builds and serves a documentation site from a folder of
// markdown docs and blog posts described by a wiki.yaml site config.
package wiki

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/scanand/wiki/internal/adapters/cli"
	osfs "github.com/scanand/wiki/internal/adapters/fs"
	wikihttp "github.com/scanand/wiki/internal/adapters/http"
	"github.com/scanand/wiki/internal/features"
	"github.com/scanand/wiki/internal/page"
	"github.com/scanand/wiki/internal/site"
	"github.com/scanand/wiki/internal/usecase"
)

type (
	Config            = site.Config
	FeatureDescriptor = features.Descriptor
	Output            = usecase.CLIOutput
)

// LoadConfig reads a site config file and applies WIKI_* overrides. An empty
// path starts from the built-in config.
func LoadConfig(path string) (*Config, error) {
	cfg := site.Default()
	if path != "" {
		var err error
		if cfg, err = site.Load(path); err != nil {
			return nil, err
		}
	}
	if err := site.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseConfig reads site config YAML over the built-in config and applies
// WIKI_* overrides.
func ParseConfig(data []byte) (*Config, error) {
	cfg, err := site.Parse(data)
	if err != nil {
		return nil, err
	}
	if err := site.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultFeatures returns the homepage feature cards.
func DefaultFeatures() []FeatureDescriptor {
	return features.Default()
}

type App struct {
	cfg       *Config
	source    fs.FS
	sourceDir string
	outDir    string
	features  []FeatureDescriptor
	output    Output
	now       func() time.Time
	isDev     bool

	builder *usecase.BuildService
	site    *wikihttp.SiteHandler
	reload  *wikihttp.Reloader
}

type Option func(*App)

// WithSource sets where docs, blog, static and custom CSS are read from.
// Defaults to the config's build.sourceDir on disk.
func WithSource(source fs.FS) Option {
	return func(a *App) { a.source = source }
}

// WithFeatures replaces the homepage feature cards from the config.
func WithFeatures(items []FeatureDescriptor) Option {
	return func(a *App) { a.features = items }
}

func WithOutput(out Output) Option {
	return func(a *App) { a.output = out }
}

func WithOutDir(dir string) Option {
	return func(a *App) { a.outDir = dir }
}

func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithDev enables drafts, live reload and detailed error pages.
func WithDev(dev bool) Option {
	return func(a *App) { a.isDev = dev }
}

func New(cfg *Config, opts ...Option) *App {
	a := &App{
		cfg:    cfg,
		outDir: cfg.Build.OutDir,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.source == nil {
		a.sourceDir = cfg.Build.SourceDir
		a.source = os.DirFS(a.sourceDir)
	}
	if a.output == nil {
		a.output = cli.NewOutput()
	}

	renderer, err := page.NewRenderer()
	if err != nil {
		panic(fmt.Sprintf("failed to create wiki renderer: %v", err))
	}
	a.builder = usecase.NewBuildService(renderer, osfs.NewOSFileSystem(), a.output)
	a.site = wikihttp.NewSiteHandler(os.DirFS(a.outDir), cfg.BaseURL, a.isDev)
	if a.isDev {
		a.reload = wikihttp.NewReloader()
	}
	return a
}

func (a *App) OutDir() string {
	return a.outDir
}

// Build renders the whole site into the output directory, replacing its
// previous contents.
func (a *App) Build(ctx context.Context) error {
	result := a.builder.BuildSite(ctx, usecase.BuildInput{
		Config:   a.cfg,
		Source:    a.source,
		SourceDir: a.sourceDir,
		OutDir:    a.outDir,
		Features:  a.features,
		Dev:       a.isDev,
		Clean:     true,
		Now:       a.now(),
	})
	return result.Error
}

// Handler serves the built output directory. In dev mode it also exposes the
// live reload stream.
func (a *App) Handler() http.Handler {
	return wikihttp.NewRouter(a.site, a.reload)
}

// Watch rebuilds whenever files under dir change, until ctx is done. A
// failed rebuild is shown in place of every page until the next one succeeds.
func (a *App) Watch(ctx context.Context, dir string) error {
	return wikihttp.Watch(ctx, dir, []string{a.outDir}, wikihttp.DefaultDebounce, func() {
		a.rebuild(ctx)
	})
}

func (a *App) rebuild(ctx context.Context) {
	err := a.Build(ctx)
	if err != nil {
		a.output.PrintError("Rebuild failed: %v", err)
	}
	a.site.SetBuildError(err)
	if a.reload != nil {
		a.reload.Notify()
	}
}

// DefaultConfig returns the built-in site config that config files are
// layered over.
func DefaultConfig() *Config {
	return site.Default()
}
