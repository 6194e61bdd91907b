package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/scanand/wiki/internal/adapters/cli"
	"github.com/scanand/wiki/internal/content"
	"github.com/scanand/wiki/internal/core"
	"github.com/scanand/wiki/internal/features"
	"github.com/scanand/wiki/internal/page"
	"github.com/scanand/wiki/internal/search"
	"github.com/scanand/wiki/internal/site"
)

var (
	ErrBrokenLinks         = errors.New("broken links")
	ErrBrokenMarkdownLinks = errors.New("broken markdown links")
)

const (
	searchIndexFile = "search-index.json"
	notFoundFile    = "404.html"
	sitemapFile     = "sitemap.xml"

	writeConcurrency = 8
)

type BuildInput struct {
	Config *site.Config
	Source iofs.FS
	OutDir string

	// SourceDir is the directory Source reads from, when it is one on disk.
	SourceDir string

	// Features overrides Config.Features when non-nil.
	Features []features.Descriptor

	Dev   bool
	Clean bool
	Now   time.Time
}

type BuildOutput struct {
	Success bool
	Pages   int
	Files   int
	Error   error
}

type BuildService struct {
	renderer *page.Renderer
	fs       FileSystem
	cli      CLIOutput
}

func NewBuildService(renderer *page.Renderer, fs FileSystem, cli CLIOutput) *BuildService {
	return &BuildService{
		renderer: renderer,
		fs:       fs,
		cli:      cli,
	}
}

// outputs collects generated files keyed by their path relative to the
// output directory.
type outputs struct {
	files map[string][]byte
	pages map[string]string
}

func newOutputs() *outputs {
	return &outputs{files: make(map[string][]byte), pages: make(map[string]string)}
}

func (o *outputs) add(name string, data []byte) {
	o.files[name] = data
}

func (o *outputs) addPage(route string, data []byte) {
	name := core.RouteFile(route)
	o.files[name] = data
	o.pages[name] = route
}

func (o *outputs) names() []string {
	names := make([]string, 0, len(o.files))
	for name := range o.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *BuildService) BuildSite(ctx context.Context, input BuildInput) BuildOutput {
	s.cli.PrintHeader("Wiki Build")

	cfg := input.Config
	if input.Now.IsZero() {
		input.Now = time.Now()
	}

	report := cli.NewBuildReport(s.cli, s.cli.Writer(), input.OutDir)
	out := newOutputs()

	fail := func(step *cli.BuildStep, err error) BuildOutput {
		if step != nil {
			report.EndStep(step, false, err.Error())
		}
		report.Render()
		return BuildOutput{Error: err}
	}

	stepConfig := report.StartStep("Validating config")
	if err := cfg.Validate(); err != nil {
		return fail(stepConfig, err)
	}
	report.EndStep(stepConfig, true, "")

	stepLoad := report.StartStep("Loading content")
	src, err := content.Load(input.Source, cfg, content.LoadOptions{IncludeDrafts: input.Dev})
	if err != nil {
		return fail(stepLoad, fmt.Errorf("failed to load content: %w", err))
	}
	if input.Clean {
		if err := s.checkOutDir(input.OutDir, input.SourceDir, src); err != nil {
			return fail(stepLoad, err)
		}
	}
	report.EndStep(stepLoad, true, "")

	if err := s.checkMarkdownLinks(cfg, src.BrokenMarkdownLinks, report); err != nil {
		return fail(nil, err)
	}

	stepAssets := report.StartStep("Generating assets")
	assets, err := s.generateAssets(cfg, input.Source, out)
	if err != nil {
		return fail(stepAssets, fmt.Errorf("failed to generate assets: %w", err))
	}
	report.EndStep(stepAssets, true, "")

	stepPages := report.StartStep("Rendering pages")
	b := &siteBuild{
		cfg:      cfg,
		src:      src,
		assets:   assets,
		features: input.Features,
		dev:      input.Dev,
		now:      input.Now,
	}
	if b.features == nil {
		b.features = cfg.Features
	}
	if err := s.renderPages(b, out); err != nil {
		return fail(stepPages, err)
	}
	report.EndStep(stepPages, true, "")
	report.SetPageCount(len(out.pages))

	if cfg.SearchEnabled() {
		stepSearch := report.StartStep("Building search index")
		idx := search.Build(src.Docs, src.Posts, b.url)
		data, err := idx.JSON()
		if err != nil {
			return fail(stepSearch, fmt.Errorf("failed to build search index: %w", err))
		}
		out.add(searchIndexFile, data)
		report.EndStep(stepSearch, true, "")
	}

	stepSitemap := report.StartStep("Building sitemap")
	sitemap, err := buildSitemap(cfg, out.pages)
	if err != nil {
		return fail(stepSitemap, fmt.Errorf("failed to build sitemap: %w", err))
	}
	out.add(sitemapFile, sitemap)
	report.EndStep(stepSitemap, true, "")

	stepStatic := report.StartStep("Copying static files")
	if err := copyStatic(input.Source, cfg.Build.StaticDir, out); err != nil {
		return fail(stepStatic, fmt.Errorf("failed to copy static files: %w", err))
	}
	report.EndStep(stepStatic, true, "")

	if err := s.checkLinks(cfg, out, report); err != nil {
		return fail(nil, err)
	}

	stepWrite := report.StartStep("Writing output")
	if input.Clean {
		if err := s.fs.RemoveAll(input.OutDir); err != nil {
			return fail(stepWrite, fmt.Errorf("failed to clean %s: %w", input.OutDir, err))
		}
	}
	if err := s.writeAll(ctx, input.OutDir, out); err != nil {
		return fail(stepWrite, err)
	}
	report.EndStep(stepWrite, true, "")

	report.Render()

	return BuildOutput{
		Success: true,
		Pages:   len(out.pages),
		Files:   len(out.files),
	}
}

// checkOutDir refuses to clean an output directory that holds the sources:
// the source directory itself or one of its parents, or any directory that
// already contains the loaded markdown files at their source paths.
func (s *BuildService) checkOutDir(outDir, sourceDir string, src *content.Site) error {
	outAbs, err := filepath.Abs(outDir)
	if err != nil {
		return fmt.Errorf("failed to resolve output dir %s: %w", outDir, err)
	}

	if sourceDir != "" {
		srcAbs, err := filepath.Abs(sourceDir)
		if err != nil {
			return fmt.Errorf("failed to resolve source dir %s: %w", sourceDir, err)
		}
		rel, err := filepath.Rel(outAbs, srcAbs)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return fmt.Errorf("%w: output dir %s contains source dir %s", site.ErrInvalidConfig, outDir, sourceDir)
		}
	}

	for _, doc := range append(append([]*content.Document{}, src.Docs...), src.Posts...) {
		if s.fs.FileExists(filepath.Join(outAbs, filepath.FromSlash(doc.Source))) {
			return fmt.Errorf("%w: output dir %s contains source file %s", site.ErrInvalidConfig, outDir, doc.Source)
		}
	}
	return nil
}

func (s *BuildService) checkMarkdownLinks(cfg *site.Config, broken []content.BrokenLink, report *cli.BuildReport) error {
	if len(broken) == 0 || cfg.OnBrokenMarkdownLinks == site.PolicyIgnore {
		return nil
	}

	bySource := make(map[string][]string)
	var sources []string
	for _, link := range broken {
		if _, ok := bySource[link.Source]; !ok {
			sources = append(sources, link.Source)
		}
		bySource[link.Source] = append(bySource[link.Source], link.Target)
	}

	for _, source := range sources {
		slog.Warn("broken markdown link", "source", source, "targets", bySource[source])
		if cfg.OnBrokenMarkdownLinks == site.PolicyThrow {
			report.AddError(source, "Broken markdown links", bySource[source])
		} else {
			report.AddWarning(source, "Broken markdown links", bySource[source])
		}
	}

	if cfg.OnBrokenMarkdownLinks == site.PolicyThrow {
		return fmt.Errorf("%w: %d in %d files", ErrBrokenMarkdownLinks, len(broken), len(sources))
	}
	return nil
}

func (s *BuildService) generateAssets(cfg *site.Config, source iofs.FS, out *outputs) (page.Assets, error) {
	var assets page.Assets

	add := func(name string, data []byte) string {
		fingerprinted := core.FingerprintName(name, data)
		out.add(fingerprinted, data)
		return "/" + fingerprinted
	}

	assets.SiteCSS = add("assets/css/site.css", page.SiteCSS())

	codeCSS, err := content.ThemeCSS(cfg.ThemeConfig.Prism.Theme, cfg.ThemeConfig.Prism.DarkTheme)
	if err != nil {
		return assets, err
	}
	assets.CodeCSS = add("assets/css/code.css", codeCSS)

	if custom := cfg.Presets.Theme.CustomCSS; custom != "" {
		data, err := iofs.ReadFile(source, strings.TrimPrefix(path.Clean(custom), "/"))
		switch {
		case errors.Is(err, iofs.ErrNotExist):
			slog.Warn("custom stylesheet not found", "path", custom)
		case err != nil:
			return assets, fmt.Errorf("read %s: %w", custom, err)
		default:
			assets.CustomCSS = add("assets/css/custom.css", data)
		}
	}

	if cfg.SearchEnabled() {
		assets.SearchJS = add("assets/js/search.js", page.SearchJS())
		assets.SearchIndex = "/" + searchIndexFile
	}
	return assets, nil
}

// siteBuild carries what every page of one build shares.
type siteBuild struct {
	cfg      *site.Config
	src      *content.Site
	assets   page.Assets
	features []features.Descriptor
	dev      bool
	now      time.Time
}

func (b *siteBuild) url(route string) string {
	return core.WithBase(b.cfg.BaseURL, route)
}

func (b *siteBuild) newPage(route, title, description string) *page.Page {
	docsRoute := b.src.FirstDocRoute()
	return &page.Page{
		Site:        b.cfg,
		Route:       route,
		Title:       title,
		Description: description,
		Copyright:   b.cfg.Copyright(b.now),
		DocsRoute:   docsRoute,
		BlogRoute:   core.NormalizePath(b.cfg.Presets.Blog.RouteBasePath),
		Assets:      b.assets,
		Search:      b.cfg.SearchEnabled(),
		Mermaid:     b.cfg.MermaidEnabled(),
		LiveReload:  b.dev,
	}
}

func (s *BuildService) render(kind page.Kind, p *page.Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, kind, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *BuildService) renderPages(b *siteBuild, out *outputs) error {
	home := b.newPage("/", b.cfg.Title, b.cfg.Tagline)
	home.Features = b.features
	data, err := s.render(page.KindHome, home)
	if err != nil {
		return err
	}
	out.addPage(home.Route, data)

	leaves := content.Leaves(b.src.Sidebar)
	position := make(map[string]int, len(leaves))
	for i, leaf := range leaves {
		position[leaf.Route] = i
	}

	for _, doc := range b.src.Docs {
		p := b.newPage(doc.Route, doc.Title, doc.Description)
		p.Doc = doc
		p.Sidebar = b.src.Sidebar
		if i, ok := position[doc.Route]; ok {
			if i > 0 {
				p.Prev = leaves[i-1]
			}
			if i < len(leaves)-1 {
				p.Next = leaves[i+1]
			}
		}
		data, err := s.render(page.KindDoc, p)
		if err != nil {
			return err
		}
		out.addPage(doc.Route, data)
	}

	if len(b.src.Posts) > 0 {
		blog := b.newPage(core.NormalizePath(b.cfg.Presets.Blog.RouteBasePath), "Blog", "")
		blog.Posts = b.src.Posts
		data, err := s.render(page.KindBlog, blog)
		if err != nil {
			return err
		}
		out.addPage(blog.Route, data)
	}

	for _, post := range b.src.Posts {
		p := b.newPage(post.Route, post.Title, post.Description)
		p.Post = post
		data, err := s.render(page.KindPost, p)
		if err != nil {
			return err
		}
		out.addPage(post.Route, data)
	}

	notFound := b.newPage("/"+notFoundFile, "Page Not Found", "")
	data, err = s.render(page.KindNotFound, notFound)
	if err != nil {
		return err
	}
	out.add(notFoundFile, data)
	return nil
}

func copyStatic(source iofs.FS, dir string, out *outputs) error {
	if dir == "" {
		return nil
	}
	err := iofs.WalkDir(source, dir, func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(p, strings.TrimSuffix(dir, "/")+"/")
		if _, exists := out.files[rel]; exists {
			slog.Warn("static file shadows generated file", "path", rel)
		}
		data, err := iofs.ReadFile(source, p)
		if err != nil {
			return err
		}
		out.add(rel, data)
		return nil
	})
	if errors.Is(err, iofs.ErrNotExist) {
		slog.Debug("static directory not found", "dir", dir)
		return nil
	}
	return err
}

func (s *BuildService) checkLinks(cfg *site.Config, out *outputs, report *cli.BuildReport) error {
	if cfg.OnBrokenLinks == site.PolicyIgnore {
		return nil
	}

	step := report.StartStep("Checking links")
	broken, err := findBrokenLinks(cfg.BaseURL, out)
	if err != nil {
		report.EndStep(step, false, err.Error())
		return fmt.Errorf("failed to check links: %w", err)
	}
	if len(broken) == 0 {
		report.EndStep(step, true, "")
		return nil
	}

	total := 0
	for _, b := range broken {
		total += len(b.Targets)
		slog.Warn("broken link", "page", b.Page, "targets", b.Targets)
		if cfg.OnBrokenLinks == site.PolicyThrow {
			report.AddError(b.Page, "Broken links", b.Targets)
		} else {
			report.AddWarning(b.Page, "Broken links", b.Targets)
		}
	}

	if cfg.OnBrokenLinks == site.PolicyThrow {
		report.EndStep(step, false, fmt.Sprintf("%d broken links", total))
		return fmt.Errorf("%w: %d on %d pages", ErrBrokenLinks, total, len(broken))
	}
	report.EndStep(step, true, "")
	return nil
}

func (s *BuildService) writeAll(ctx context.Context, outDir string, out *outputs) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(writeConcurrency)

	for _, name := range out.names() {
		name := name
		data := out.files[name]
		target := filepath.Join(outDir, filepath.FromSlash(name))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := s.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return fmt.Errorf("failed to create directory for %s: %w", name, err)
			}
			if err := s.fs.WriteFile(target, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", name, err)
			}
			return nil
		})
	}
	return g.Wait()
}
