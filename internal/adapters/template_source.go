package adapters

import (
	"io/fs"

	"github.com/scanand/wiki/internal/templates"
)

type TemplateSource struct{}

func NewTemplateSource() *TemplateSource {
	return &TemplateSource{}
}

func (t *TemplateSource) GetTemplate(name string) (fs.FS, error) {
	return templates.GetTemplate(name)
}
