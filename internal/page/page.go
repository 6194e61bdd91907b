package page

import (
	"context"
	"html/template"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/scanand/wiki/internal/content"
	"github.com/scanand/wiki/internal/core"
	"github.com/scanand/wiki/internal/features"
	"github.com/scanand/wiki/internal/site"
)

// Assets holds the site-relative paths of generated stylesheets and scripts.
type Assets struct {
	SiteCSS     string
	CodeCSS     string
	CustomCSS   string
	SearchJS    string
	SearchIndex string
}

// Page is the view model shared by every layout. Fields below the chrome
// block are set only for the kinds that use them.
type Page struct {
	Site        *site.Config
	Route       string
	Title       string
	Description string
	Copyright   string
	DocsRoute   string
	BlogRoute   string
	Assets      Assets
	Search      bool
	Mermaid     bool
	LiveReload  bool

	Features []features.Descriptor

	Doc     *content.Document
	Sidebar []*content.SidebarItem
	Prev    *content.SidebarItem
	Next    *content.SidebarItem

	Posts []*content.Document
	Post  *content.Document
}

type Link struct {
	Label    string
	Href     string
	Class    string
	External bool
}

type SidebarView struct {
	Items []*content.SidebarItem
	Page  *Page
}

type DateView struct {
	ISO  string
	Text string
}

type PostMetaView struct {
	Date        *DateView
	ReadingTime int
	Authors     string
}

func (p *Page) FullTitle() string {
	if p.Title == "" || p.Title == p.Site.Title {
		return p.Site.Title
	}
	return p.Title + " | " + p.Site.Title
}

func (p *Page) URL(route string) string {
	return core.WithBase(p.Site.BaseURL, route)
}

func (p *Page) AbsURL(route string) string {
	return strings.TrimSuffix(p.Site.URL, "/") + p.URL(route)
}

func (p *Page) HTML(s string) template.HTML {
	return template.HTML(s)
}

func isExternal(href string) bool {
	return strings.Contains(href, "://")
}

func (p *Page) NavLink(item site.NavItem) Link {
	link := Link{Label: item.Label, Class: "navbar__item navbar__link"}

	var active bool
	switch {
	case item.Href != "":
		link.Href = item.Href
		link.External = isExternal(item.Href)
		return link
	case item.Type == site.NavItemDocSidebar:
		link.Href = p.URL(p.DocsRoute)
		active = p.Doc != nil
	default:
		link.Href = p.URL(item.To)
		active = item.To != "/" && strings.HasPrefix(p.Route, item.To)
	}

	if active {
		link.Class += " navbar__link--active"
	}
	return link
}

func (p *Page) FooterLink(item site.FooterLink) Link {
	link := Link{Label: item.Label, Class: "footer__link-item"}
	if item.Href != "" {
		link.Href = item.Href
		link.External = isExternal(item.Href)
		return link
	}
	link.Href = p.URL(item.To)
	return link
}

func (p *Page) SidebarView(items []*content.SidebarItem) SidebarView {
	return SidebarView{Items: items, Page: p}
}

func (p *Page) PostMeta(post *content.Document) PostMetaView {
	view := PostMetaView{Authors: strings.Join(post.Authors, ", ")}
	if !post.Date.IsZero() {
		view.Date = &DateView{
			ISO:  post.Date.Format(time.DateOnly),
			Text: post.Date.Format("January 2, 2006"),
		}
	}
	if p.Site.Presets.Blog.ShowReadingTime {
		view.ReadingTime = post.ReadingTime
	}
	return view
}

// FeatureList renders the homepage feature cards with icons resolved
// against the site base URL.
func (p *Page) FeatureList() (template.HTML, error) {
	component := features.List(p.Features, features.WithAssetResolver(p.URL))
	return templ.ToGoHTML(context.Background(), component)
}
