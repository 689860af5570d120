package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/brightpath-ai/website/internal/model"
	"github.com/brightpath-ai/website/internal/seo"
)

// Home renders the homepage: hero, solution cards, and served markets.
func Home(meta seo.Meta, solutions []model.Solution, cities []model.City) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var err error
		write := func(format string, args ...any) {
			if err == nil {
				_, err = fmt.Fprintf(w, format, args...)
			}
		}

		write("<section class=\"hero\">\n<h1>AI automation that pays for itself</h1>\n")
		write("<p>Voice agents, chat agents, and workflow automation for businesses that cannot afford missed calls or busywork.</p>\n")
		write("<a href=\"/contact\" class=\"cta\">Book a free automation audit</a>\n</section>\n")

		write("<section class=\"solutions\">\n<h2>What we build</h2>\n<ul>\n")
		for _, sol := range solutions {
			write("<li><a href=\"/services/%s\"><strong>%s</strong></a> — %s</li>\n",
				esc(sol.Slug), esc(sol.Name), esc(sol.Description))
		}
		write("</ul>\n</section>\n")

		write("<section class=\"markets\">\n<h2>Where we work</h2>\n<ul>\n")
		for _, city := range cities {
			write("<li><a href=\"/locations/%s\">%s, %s</a></li>\n",
				esc(city.Slug), esc(city.Name), esc(city.State))
		}
		write("</ul>\n</section>\n")

		return err
	})
	return Layout(meta, body)
}
