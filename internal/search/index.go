// Package search builds the JSON index consumed by the client-side search box.
package search

import (
	"encoding/json"
	"strings"

	"github.com/scanand/wiki/internal/content"
)

const Version = 1

// maxTextLen bounds the body text stored per document.
const maxTextLen = 2000

type Document struct {
	ID       int      `json:"id"`
	Kind     string   `json:"kind"`
	URL      string   `json:"url"`
	Title    string   `json:"title"`
	Headings []string `json:"headings"`
	Text     string   `json:"text"`
}

type Index struct {
	Version   int        `json:"version"`
	Documents []Document `json:"documents"`
}

// Build indexes docs first, then posts, each in the order given. url maps a
// route to the href stored in the index.
func Build(docs, posts []*content.Document, url func(string) string) *Index {
	idx := &Index{Version: Version, Documents: make([]Document, 0, len(docs)+len(posts))}

	add := func(kind string, d *content.Document) {
		headings := make([]string, 0, len(d.Headings))
		for _, h := range d.Headings {
			headings = append(headings, h.Text)
		}
		idx.Documents = append(idx.Documents, Document{
			ID:       len(idx.Documents),
			Kind:     kind,
			URL:      url(d.Route),
			Title:    d.Title,
			Headings: headings,
			Text:     truncate(strings.Join(strings.Fields(d.Text), " "), maxTextLen),
		})
	}

	for _, d := range docs {
		add("doc", d)
	}
	for _, d := range posts {
		add("post", d)
	}
	return idx
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !strings.HasPrefix(s[cut:], " ") {
		cut--
	}
	if cut == 0 {
		cut = n
		for cut > 0 && s[cut]&0xC0 == 0x80 {
			cut--
		}
	}
	return s[:cut]
}

func (i *Index) JSON() ([]byte, error) {
	return json.Marshal(i)
}
