package features

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// AssetResolver turns a static asset path into the URL used in src attributes.
type AssetResolver func(asset string) string

type options struct {
	resolve AssetResolver
}

type Option func(*options)

func WithAssetResolver(resolve AssetResolver) Option {
	return func(o *options) {
		if resolve != nil {
			o.resolve = resolve
		}
	}
}

func rootResolver(asset string) string {
	if strings.HasPrefix(asset, "/") || strings.Contains(asset, "://") {
		return asset
	}
	return "/" + asset
}

// List renders one card per descriptor, in order, inside the features grid.
// An empty list yields an empty row.
func List(items []Descriptor, opts ...Option) templ.Component {
	o := options{resolve: rootResolver}
	for _, opt := range opts {
		opt(&o)
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="features"><div class="container"><div class="row">`); err != nil {
			return err
		}
		for _, item := range items {
			if err := Card(item, o.resolve).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div></div></section>`)
		return err
	})
}

func Card(item Descriptor, resolve AssetResolver) templ.Component {
	if resolve == nil {
		resolve = rootResolver
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="col col--4 feature"><div class="text--center">`)
		if item.Icon != "" {
			b.WriteString(`<img class="featureSvg" role="img" src="`)
			b.WriteString(templ.EscapeString(resolve(item.Icon)))
			b.WriteString(`" alt="`)
			b.WriteString(templ.EscapeString(item.Title))
			b.WriteString(`"/>`)
		}
		b.WriteString(`</div><div class="text--center padding-horiz--md"><h3>`)
		b.WriteString(templ.EscapeString(item.Title))
		b.WriteString(`</h3><p>`)
		b.WriteString(templ.EscapeString(item.Description))
		b.WriteString(`</p></div></div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
