package site

import "github.com/scanand/wiki/internal/features"

const editURL = "https://github.com/facebook/docusaurus/tree/main/packages/create-docusaurus/templates/shared/"

// Default returns the configuration of the Hands-on Solution Architect wiki.
func Default() *Config {
	return &Config{
		Title:                 "Hands-on Solution Architect",
		Tagline:               "Cloud, Design, CI/CD, Spring, Microservices",
		Favicon:               "img/favicon.ico",
		URL:                   "https://anand-pardhi.com",
		BaseURL:               "/",
		OrganizationName:      "facebook",
		ProjectName:           "docusaurus",
		OnBrokenLinks:         PolicyThrow,
		OnBrokenMarkdownLinks: PolicyWarn,
		I18n: I18n{
			DefaultLocale: "en",
			Locales:       []string{"en"},
		},
		Plugins:  []string{PluginSearchLocal},
		Themes:   []string{ThemeMermaid, PluginSearchLocal},
		Markdown: Markdown{Mermaid: true},
		Presets: Presets{
			Docs: DocsPreset{
				Path:          "docs",
				RouteBasePath: "docs",
				SidebarID:     "docsSidebar",
				EditURL:       editURL,
			},
			Blog: BlogPreset{
				Path:            "blog",
				RouteBasePath:   "blog",
				ShowReadingTime: true,
				EditURL:         editURL,
			},
			Theme: ThemePreset{CustomCSS: "src/css/custom.css"},
		},
		ThemeConfig: ThemeConfig{
			Image: "img/docusaurus-social-card.jpg",
			Navbar: Navbar{
				Title: "Anand's wiki",
				Logo:  Logo{Alt: "Anand's wiki", Src: "img/logo.svg"},
				Items: []NavItem{
					{Type: NavItemDocSidebar, SidebarID: "docsSidebar", Position: PositionLeft, Label: "Docs"},
					{Href: "https://blog.soagile.com", Label: "Blog", Position: PositionLeft},
					{Href: "https://github.com/scanand", Label: "GitHub", Position: PositionRight},
				},
			},
			Footer: Footer{
				Style: "dark",
				Links: []FooterColumn{
					{Title: "Docs", Items: []FooterLink{{Label: "Tutorial", To: "/docs/intro"}}},
					{Title: "Community", Items: []FooterLink{{Label: "Twitter", Href: "https://twitter.com/soagilehq"}}},
					{Title: "More", Items: []FooterLink{
						{Label: "Blog", Href: "https://blog.soagile.com"},
						{Label: "GitHub", Href: "https://github.com/scanand"},
					}},
				},
				Copyright: "Copyright © {year} anand-pardhi.com. Built with wiki.",
			},
			Prism: Prism{Theme: "github", DarkTheme: "dracula"},
		},
		Features: features.Default(),
		Build: Build{
			SourceDir: ".",
			OutDir:    "build",
			StaticDir: "static",
		},
	}
}
