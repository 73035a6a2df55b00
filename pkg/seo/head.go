package seo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Head renders the title, meta tags, canonical link and JSON-LD scripts
// for the collector in ctx, or for fallback when there is none.
func Head(fallback Metadata) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		c, ok := FromContext(ctx)
		if !ok {
			c = NewCollector(fallback)
		}
		m := c.Metadata()
		scripts, err := ldScripts(m.JSONLD)
		if err != nil {
			return err
		}
		return head(m, scripts).Render(ctx, w)
	})
}

// ldScripts encodes each JSON-LD document as a script element.
// json.Marshal escapes <, > and &, so a payload cannot close the script.
func ldScripts(docs []any) ([]string, error) {
	scripts := make([]string, 0, len(docs))
	for _, ld := range docs {
		data, err := json.Marshal(ld)
		if err != nil {
			return nil, fmt.Errorf("seo: encode json-ld: %w", err)
		}
		scripts = append(scripts, `<script type="application/ld+json">`+string(data)+`</script>`)
	}
	return scripts, nil
}
