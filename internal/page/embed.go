package page

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets/site.css
var siteCSS []byte

//go:embed assets/search.js
var searchJS []byte

type Kind string

const (
	KindHome     Kind = "home"
	KindDoc      Kind = "doc"
	KindBlog     Kind = "blog"
	KindPost     Kind = "post"
	KindNotFound Kind = "notfound"
)

var kinds = []Kind{KindHome, KindDoc, KindBlog, KindPost, KindNotFound}

func parseTemplates() (map[Kind]*template.Template, error) {
	base, err := template.ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[Kind]*template.Template, len(kinds))
	for _, kind := range kinds {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(templateFS, "templates/"+string(kind)+".html"); err != nil {
			return nil, err
		}
		pages[kind] = t
	}
	return pages, nil
}

func SiteCSS() []byte {
	return siteCSS
}

func SearchJS() []byte {
	return searchJS
}
