package usecase

import (
	"bytes"
	"io"
	"path"
	"strings"

	"golang.org/x/net/html"

	"github.com/scanand/wiki/internal/core"
)

type brokenPageLinks struct {
	Page    string
	Targets []string
}

var linkAttrs = map[string]string{
	"a":      "href",
	"link":   "href",
	"img":    "src",
	"script": "src",
}

// findBrokenLinks reports internal hrefs in generated HTML that no output
// file serves. Results follow output file order.
func findBrokenLinks(baseURL string, out *outputs) ([]brokenPageLinks, error) {
	var broken []brokenPageLinks
	for _, name := range out.names() {
		if path.Ext(name) != ".html" {
			continue
		}
		route, ok := out.pages[name]
		if !ok {
			route = "/" + name
		}

		hrefs, err := extractLinks(bytes.NewReader(out.files[name]))
		if err != nil {
			return nil, err
		}

		var targets []string
		seen := make(map[string]bool)
		for _, href := range hrefs {
			if seen[href] || !isInternal(href) {
				continue
			}
			seen[href] = true
			if !out.resolves(baseURL, route, href) {
				targets = append(targets, href)
			}
		}
		if len(targets) > 0 {
			broken = append(broken, brokenPageLinks{Page: route, Targets: targets})
		}
	}
	return broken, nil
}

func extractLinks(r io.Reader) ([]string, error) {
	var hrefs []string
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return hrefs, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			want, ok := linkAttrs[string(name)]
			for ok && hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				if string(key) == want {
					hrefs = append(hrefs, string(val))
				}
			}
		}
	}
}

func isInternal(href string) bool {
	switch {
	case href == "", strings.HasPrefix(href, "#"), strings.HasPrefix(href, "//"):
		return false
	case strings.Contains(href, "://"):
		return false
	case strings.HasPrefix(href, "mailto:"), strings.HasPrefix(href, "tel:"),
		strings.HasPrefix(href, "data:"), strings.HasPrefix(href, "javascript:"):
		return false
	}
	return true
}

func (o *outputs) resolves(baseURL, route, href string) bool {
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		href = href[:i]
	}
	if !strings.HasPrefix(href, "/") {
		href = path.Join(path.Dir(core.WithBase(baseURL, route)), href)
	}

	target, ok := core.StripBase(baseURL, href)
	if !ok {
		return false
	}
	if _, ok := o.files[strings.TrimPrefix(path.Clean(target), "/")]; ok {
		return true
	}
	_, ok = o.files[core.RouteFile(target)]
	return ok
}
