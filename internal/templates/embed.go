package templates

import (
	"embed"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
)

//go:embed all:classic
var classicFS embed.FS

//go:embed all:minimal
var minimalFS embed.FS

const DefaultTemplate = "classic"

var validTemplates = []string{"classic", "minimal"}

var ErrInvalidTemplate = errors.New("invalid template name")

func GetTemplate(name string) (fs.FS, error) {
	switch name {
	case "classic":
		return fs.Sub(classicFS, "classic")
	case "minimal":
		return fs.Sub(minimalFS, "minimal")
	default:
		return nil, ErrInvalidTemplate
	}
}

func Names() []string {
	return append([]string(nil), validTemplates...)
}

// TemplateData values are substituted verbatim into .tmpl files.
type TemplateData struct {
	Title string
	Name  string
}

func ProcessFilename(filename string) (string, bool) {
	if before, ok := strings.CutSuffix(filename, ".tmpl"); ok {
		return before, true
	}
	return filename, false
}

func ProcessContent(content []byte, isTemplate bool, data TemplateData) []byte {
	if !isTemplate {
		return content
	}

	result := string(content)
	result = strings.ReplaceAll(result, "{{.Title}}", data.Title)
	result = strings.ReplaceAll(result, "{{.Name}}", data.Name)

	return []byte(result)
}

func DeriveProjectName(projectDir string) string {
	base := filepath.Base(projectDir)
	if base == "." || base == "/" || base == "" {
		return "wiki"
	}
	return base
}
