package page

import (
	"fmt"
	"html/template"
	"io"
)

type Renderer struct {
	pages map[Kind]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w io.Writer, kind Kind, p *Page) error {
	t, ok := r.pages[kind]
	if !ok {
		return fmt.Errorf("unknown page kind %q", kind)
	}
	if err := t.ExecuteTemplate(w, "layout", p); err != nil {
		return fmt.Errorf("render %s page %s: %w", kind, p.Route, err)
	}
	return nil
}
