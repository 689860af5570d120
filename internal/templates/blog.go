package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/brightpath-ai/website/internal/model"
	"github.com/brightpath-ai/website/internal/seo"
)

// Blog renders the article index. Posts arrive already sorted newest
// first; this component does not reorder them.
func Blog(meta seo.Meta, posts []model.BlogPost) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var err error
		write := func(format string, args ...any) {
			if err == nil {
				_, err = fmt.Fprintf(w, format, args...)
			}
		}

		write("<h1>Blog</h1>\n<ul class=\"post-list\">\n")
		for _, post := range posts {
			write("<li>\n<h2><a href=\"/blog/%s\">%s</a></h2>\n", esc(post.Slug), esc(post.Title))
			write("<p class=\"byline\">%s · %s · %s</p>\n", esc(post.Date), esc(post.Author), esc(post.ReadingTime))
			write("<p>%s</p>\n</li>\n", esc(post.Description))
		}
		write("</ul>\n")
		return err
	})
	return Layout(meta, body)
}

// BlogPost renders a single article.
func BlogPost(meta seo.Meta, post *model.BlogPost) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var err error
		write := func(format string, args ...any) {
			if err == nil {
				_, err = fmt.Fprintf(w, format, args...)
			}
		}

		write("<article class=\"post\">\n<h1>%s</h1>\n", esc(post.Title))
		write("<p class=\"byline\">%s · %s · %s</p>\n", esc(post.Date), esc(post.Author), esc(post.ReadingTime))
		if post.Hero != "" {
			write("<img src=\"%s\" alt=\"%s\"/>\n", esc(post.Hero), esc(post.Title))
		}
		if err != nil {
			return err
		}
		if post.Body != nil {
			if err := post.Body.Render(ctx, w); err != nil {
				return err
			}
		}
		if len(post.Tags) > 0 {
			write("<p class=\"tags\">Tagged: %s</p>\n", esc(strings.Join(post.Tags, ", ")))
		}
		write("</article>\n")
		return err
	})
	return Layout(meta, body)
}
