package usecase

import (
	"encoding/xml"
	"sort"
	"strings"

	"github.com/scanand/wiki/internal/core"
	"github.com/scanand/wiki/internal/site"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// buildSitemap lists every rendered route as an absolute URL, sorted.
func buildSitemap(cfg *site.Config, pages map[string]string) ([]byte, error) {
	routes := make([]string, 0, len(pages))
	for _, route := range pages {
		routes = append(routes, route)
	}
	sort.Strings(routes)

	set := urlset{Xmlns: sitemapNS}
	origin := strings.TrimSuffix(cfg.URL, "/")
	for _, route := range routes {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        origin + core.WithBase(cfg.BaseURL, route),
			ChangeFreq: "weekly",
			Priority:   "0.5",
		})
	}

	data, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(data, '\n')...), nil
}
