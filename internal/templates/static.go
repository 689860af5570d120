package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/brightpath-ai/website/internal/seo"
)

// Legal renders a legal page from pre-written paragraphs.
func Legal(meta seo.Meta, heading string, paragraphs []string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var err error
		write := func(format string, args ...any) {
			if err == nil {
				_, err = fmt.Fprintf(w, format, args...)
			}
		}

		write("<article class=\"legal\">\n<h1>%s</h1>\n", esc(heading))
		for _, p := range paragraphs {
			write("<p>%s</p>\n", esc(p))
		}
		write("</article>\n")
		return err
	})
	return Layout(meta, body)
}

// NotFound renders the branded 404 page from the fallback metadata.
func NotFound(meta seo.Meta) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<h1>Page not found</h1>
<p>The page you are looking for does not exist or has moved.</p>
<p><a href="/">Back to the homepage</a></p>
`)
		return err
	})
	return Layout(meta, body)
}
