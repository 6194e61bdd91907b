package content

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// ThemeCSS returns the stylesheet for highlighted code blocks. The dark
// style, when set, applies under prefers-color-scheme: dark.
func ThemeCSS(light, dark string) ([]byte, error) {
	formatter := chromahtml.New(chromahtml.WithClasses(true))

	var buf bytes.Buffer
	if err := formatter.WriteCSS(&buf, styles.Get(light)); err != nil {
		return nil, fmt.Errorf("write %s code theme: %w", light, err)
	}

	if dark != "" {
		buf.WriteString("@media (prefers-color-scheme: dark) {\n")
		if err := formatter.WriteCSS(&buf, styles.Get(dark)); err != nil {
			return nil, fmt.Errorf("write %s code theme: %w", dark, err)
		}
		buf.WriteString("}\n")
	}

	return buf.Bytes(), nil
}
