package content

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/scanand/wiki/internal/core"
	"github.com/scanand/wiki/internal/site"
)

type BrokenLink struct {
	Source string
	Target string
}

type Site struct {
	Docs    []*Document
	Posts   []*Document
	Sidebar []*SidebarItem

	BrokenMarkdownLinks []BrokenLink
}

type LoadOptions struct {
	IncludeDrafts bool
}

// FirstDocRoute is the target of navbar docSidebar items.
func (s *Site) FirstDocRoute() string {
	return firstLeaf(s.Sidebar)
}

func isMarkdown(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".md" || ext == ".mdx"
}

// Load reads docs and blog posts from fsys, resolves their routes and renders
// them. Missing docs or blog directories are treated as empty.
func Load(fsys fs.FS, cfg *site.Config, opts LoadOptions) (*Site, error) {
	md := NewMarkdown(MarkdownOptions{
		Mermaid:   cfg.MermaidEnabled(),
		CodeStyle: cfg.ThemeConfig.Prism.Theme,
	})

	docs, err := readDocuments(fsys, md, cfg.Presets.Docs.Path, KindDoc)
	if err != nil {
		return nil, err
	}
	posts, err := readDocuments(fsys, md, cfg.Presets.Blog.Path, KindPost)
	if err != nil {
		return nil, err
	}

	s := &Site{}
	routes := make(map[string]string)
	bySource := make(map[string]*Document)

	for _, doc := range append(docs, posts...) {
		if doc.Draft && !opts.IncludeDrafts {
			slog.Debug("skipping draft", "source", doc.Source)
			continue
		}

		switch doc.Kind {
		case KindDoc:
			doc.Route = docRoute(cfg.Presets.Docs, doc)
			doc.EditURL = editURL(cfg.Presets.Docs.EditURL, doc.Source)
			s.Docs = append(s.Docs, doc)
		case KindPost:
			doc.Route = postRoute(cfg.Presets.Blog, doc)
			doc.EditURL = editURL(cfg.Presets.Blog.EditURL, doc.Source)
			s.Posts = append(s.Posts, doc)
		}

		if err := core.ValidateRoutePath(doc.Route); err != nil {
			return nil, fmt.Errorf("%s: invalid route %q: %w", doc.Source, doc.Route, err)
		}
		if other, ok := routes[doc.Route]; ok {
			return nil, fmt.Errorf("%s: route %s already used by %s", doc.Source, doc.Route, other)
		}
		routes[doc.Route] = doc.Source
		bySource[doc.Source] = doc
	}

	for _, doc := range append(append([]*Document{}, s.Docs...), s.Posts...) {
		s.BrokenMarkdownLinks = append(s.BrokenMarkdownLinks, rewriteLinks(doc, bySource, cfg.BaseURL)...)

		html, err := md.render(doc.parsed)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", doc.Source, err)
		}
		doc.HTML = html
		doc.Summary = html
		if before, _, ok := strings.Cut(html, TruncateMarker); ok {
			doc.Summary = before
			doc.Truncated = true
		}
		doc.parsed = nil
	}

	sort.SliceStable(s.Posts, func(i, j int) bool {
		if !s.Posts[i].Date.Equal(s.Posts[j].Date) {
			return s.Posts[i].Date.After(s.Posts[j].Date)
		}
		return s.Posts[i].Title < s.Posts[j].Title
	})

	s.Sidebar = buildSidebar(cfg.Presets.Docs.Path, s.Docs)
	return s, nil
}

func readDocuments(fsys fs.FS, md *Markdown, dir string, kind Kind) ([]*Document, error) {
	if dir == "" {
		return nil, nil
	}

	var docs []*Document
	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != dir && strings.HasPrefix(d.Name(), "_") {
				return fs.SkipDir
			}
			return nil
		}
		if !isMarkdown(p) || strings.HasPrefix(d.Name(), "_") {
			return nil
		}

		doc, err := readDocument(fsys, md, p, kind)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("content directory not found", "dir", dir)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	return docs, nil
}

func readDocument(fsys fs.FS, md *Markdown, p string, kind Kind) (*Document, error) {
	source, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, err
	}

	parsed, err := md.parse(source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}

	doc := &Document{Kind: kind, Source: p, parsed: parsed}
	if err := doc.applyFrontMatter(parsed.meta); err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}

	h1, toc := headings(parsed)
	doc.Headings = toc
	doc.HasH1 = h1 != ""

	name := path.Base(p)
	if kind == KindPost {
		if date, rest, ok := core.SplitDatePrefix(name); ok {
			if doc.Date.IsZero() {
				doc.Date = date
			}
			name = rest
		}
	}

	switch {
	case doc.Title != "":
	case h1 != "":
		doc.Title = h1
	default:
		doc.Title = core.TitleFromSlug(core.Slugify(name))
	}

	doc.Text = plainText(parsed.root, parsed.source)
	doc.ReadingTime = core.ReadingTime(len(strings.Fields(doc.Text)))
	return doc, nil
}

func docRoute(preset site.DocsPreset, doc *Document) string {
	base := "/" + strings.Trim(preset.RouteBasePath, "/")

	rel := strings.TrimPrefix(doc.Source, strings.TrimSuffix(preset.Path, "/")+"/")
	dir := path.Dir(rel)
	var segments []string
	if dir != "." {
		for _, seg := range strings.Split(dir, "/") {
			segments = append(segments, core.TrimOrderingPrefix(core.Slugify(seg)))
		}
	}

	if doc.Slug != "" {
		if strings.HasPrefix(doc.Slug, "/") {
			return core.NormalizePath(base + doc.Slug)
		}
		return core.NormalizePath(path.Join(append([]string{base}, append(segments, doc.Slug)...)...))
	}

	name := core.TrimOrderingPrefix(core.Slugify(path.Base(rel)))
	if name != "index" && name != "readme" {
		segments = append(segments, name)
	}
	return core.NormalizePath(path.Join(append([]string{base}, segments...)...))
}

func postRoute(preset site.BlogPreset, doc *Document) string {
	base := "/" + strings.Trim(preset.RouteBasePath, "/")

	if strings.HasPrefix(doc.Slug, "/") {
		return core.NormalizePath(base + doc.Slug)
	}

	slug := doc.Slug
	if slug == "" {
		name := path.Base(doc.Source)
		if _, rest, ok := core.SplitDatePrefix(name); ok {
			name = rest
		}
		slug = core.Slugify(name)
	}

	if doc.Date.IsZero() {
		return core.NormalizePath(path.Join(base, slug))
	}
	return core.NormalizePath(path.Join(base, doc.Date.Format("2006/01/02"), slug))
}

func editURL(base, source string) string {
	if base == "" {
		return ""
	}
	return strings.TrimSuffix(base, "/") + "/" + source
}

// rewriteLinks points links to other markdown sources at their routes and
// reports the ones that do not resolve.
func rewriteLinks(doc *Document, bySource map[string]*Document, baseURL string) []BrokenLink {
	var broken []BrokenLink
	_ = ast.Walk(doc.parsed.root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}

		dest := string(link.Destination)
		if strings.Contains(dest, "://") || strings.HasPrefix(dest, "mailto:") {
			return ast.WalkContinue, nil
		}
		target, fragment, _ := strings.Cut(dest, "#")
		if !isMarkdown(target) {
			return ast.WalkContinue, nil
		}

		var resolved string
		if strings.HasPrefix(target, "/") {
			resolved = strings.TrimPrefix(path.Clean(target), "/")
		} else {
			resolved = path.Join(path.Dir(doc.Source), target)
		}

		other, ok := bySource[resolved]
		if !ok {
			broken = append(broken, BrokenLink{Source: doc.Source, Target: dest})
			return ast.WalkContinue, nil
		}

		href := core.WithBase(baseURL, other.Route)
		if fragment != "" {
			href += "#" + fragment
		}
		link.Destination = []byte(href)
		return ast.WalkContinue, nil
	})
	return broken
}
