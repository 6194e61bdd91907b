package site

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/scanand/wiki/internal/features"
)

const (
	PolicyThrow  = "throw"
	PolicyWarn   = "warn"
	PolicyIgnore = "ignore"
)

const (
	PluginSearchLocal = "search-local"
	ThemeMermaid      = "mermaid"
)

const (
	NavItemDocSidebar = "docSidebar"
	PositionLeft      = "left"
	PositionRight     = "right"
)

type Config struct {
	Title                 string `yaml:"title"`
	Tagline               string `yaml:"tagline"`
	Favicon               string `yaml:"favicon"`
	URL                   string `yaml:"url" env:"URL"`
	BaseURL               string `yaml:"baseUrl" env:"BASE_URL"`
	OrganizationName      string `yaml:"organizationName"`
	ProjectName           string `yaml:"projectName"`
	OnBrokenLinks         string `yaml:"onBrokenLinks" env:"ON_BROKEN_LINKS"`
	OnBrokenMarkdownLinks string `yaml:"onBrokenMarkdownLinks" env:"ON_BROKEN_MARKDOWN_LINKS"`

	I18n     I18n     `yaml:"i18n"`
	Plugins  []string `yaml:"plugins"`
	Themes   []string `yaml:"themes"`
	Markdown Markdown `yaml:"markdown"`
	Presets  Presets  `yaml:"presets"`

	ThemeConfig ThemeConfig            `yaml:"themeConfig"`
	Features    []features.Descriptor `yaml:"features"`
	Build       Build                  `yaml:"build"`
}

type I18n struct {
	DefaultLocale string   `yaml:"defaultLocale"`
	Locales       []string `yaml:"locales"`
}

type Markdown struct {
	Mermaid bool `yaml:"mermaid"`
}

type Presets struct {
	Docs  DocsPreset  `yaml:"docs"`
	Blog  BlogPreset  `yaml:"blog"`
	Theme ThemePreset `yaml:"theme"`
}

type DocsPreset struct {
	Path          string `yaml:"path"`
	RouteBasePath string `yaml:"routeBasePath"`
	SidebarID     string `yaml:"sidebarId"`
	EditURL       string `yaml:"editUrl"`
}

type BlogPreset struct {
	Path            string `yaml:"path"`
	RouteBasePath   string `yaml:"routeBasePath"`
	ShowReadingTime bool   `yaml:"showReadingTime"`
	EditURL         string `yaml:"editUrl"`
}

type ThemePreset struct {
	CustomCSS string `yaml:"customCss"`
}

type ThemeConfig struct {
	Image  string `yaml:"image"`
	Navbar Navbar `yaml:"navbar"`
	Footer Footer `yaml:"footer"`
	Prism  Prism  `yaml:"prism"`
}

type Navbar struct {
	Title string    `yaml:"title"`
	Logo  Logo      `yaml:"logo"`
	Items []NavItem `yaml:"items"`
}

type Logo struct {
	Alt string `yaml:"alt"`
	Src string `yaml:"src"`
}

// NavItem links to exactly one of: an external Href, an internal To route,
// or the first doc of a sidebar (Type docSidebar).
type NavItem struct {
	Type      string `yaml:"type"`
	SidebarID string `yaml:"sidebarId"`
	Href      string `yaml:"href"`
	To        string `yaml:"to"`
	Label     string `yaml:"label"`
	Position  string `yaml:"position"`
}

type Footer struct {
	Style     string         `yaml:"style"`
	Links     []FooterColumn `yaml:"links"`
	Copyright string         `yaml:"copyright"`
}

type FooterColumn struct {
	Title string       `yaml:"title"`
	Items []FooterLink `yaml:"items"`
}

type FooterLink struct {
	Label string `yaml:"label"`
	To    string `yaml:"to"`
	Href  string `yaml:"href"`
}

type Prism struct {
	Theme     string `yaml:"theme"`
	DarkTheme string `yaml:"darkTheme"`
}

type Build struct {
	SourceDir string `yaml:"sourceDir" env:"SOURCE_DIR"`
	OutDir    string `yaml:"outDir" env:"OUT_DIR"`
	StaticDir string `yaml:"staticDir"`
}

func (c *Config) HasPlugin(name string) bool {
	return slices.Contains(c.Plugins, name)
}

func (c *Config) HasTheme(name string) bool {
	return slices.Contains(c.Themes, name)
}

// SearchEnabled reports whether the local search index should be built.
// The search plugin is wired either as a plugin or as a theme.
func (c *Config) SearchEnabled() bool {
	return c.HasPlugin(PluginSearchLocal) || c.HasTheme(PluginSearchLocal)
}

func (c *Config) MermaidEnabled() bool {
	return c.Markdown.Mermaid && c.HasTheme(ThemeMermaid)
}

// Copyright expands the {year} placeholder of the footer copyright line.
func (c *Config) Copyright(now time.Time) string {
	return strings.ReplaceAll(c.ThemeConfig.Footer.Copyright, "{year}", strconv.Itoa(now.Year()))
}

func (c *Config) Lang() string {
	if c.I18n.DefaultLocale == "" {
		return "en"
	}
	return c.I18n.DefaultLocale
}

// ItemsAt returns the navbar items for one side, in declaration order.
func (n Navbar) ItemsAt(position string) []NavItem {
	var items []NavItem
	for _, item := range n.Items {
		pos := item.Position
		if pos == "" {
			pos = PositionLeft
		}
		if pos == position {
			items = append(items, item)
		}
	}
	return items
}
