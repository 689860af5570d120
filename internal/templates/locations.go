package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/brightpath-ai/website/internal/model"
	"github.com/brightpath-ai/website/internal/seo"
)

// Locations renders the locations index.
func Locations(meta seo.Meta, cities []model.City) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var err error
		write := func(format string, args ...any) {
			if err == nil {
				_, err = fmt.Fprintf(w, format, args...)
			}
		}

		write("<h1>Locations</h1>\n<p>Local implementation teams in every market we serve.</p>\n<ul class=\"city-list\">\n")
		for _, city := range cities {
			write("<li><a href=\"/locations/%s\">%s, %s</a></li>\n", esc(city.Slug), esc(city.Name), esc(city.State))
		}
		write("</ul>\n")
		return err
	})
	return Layout(meta, body)
}

// CityDetail renders a city pillar page with links into every solution
// offered in that market.
func CityDetail(meta seo.Meta, city *model.City, solutions []model.Solution) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var err error
		write := func(format string, args ...any) {
			if err == nil {
				_, err = fmt.Fprintf(w, format, args...)
			}
		}

		write("<h1>AI Automation in %s, %s</h1>\n", esc(city.Name), esc(city.State))
		write("<p>We build and run AI automation for %s businesses, from first audit to live operation.</p>\n", esc(city.Name))

		write("<section>\n<h2>Services in %s</h2>\n<ul>\n", esc(city.Name))
		for _, sol := range solutions {
			write("<li><a href=\"/locations/%s/%s\">%s in %s</a></li>\n",
				esc(city.Slug), esc(sol.Slug), esc(sol.Name), esc(city.Name))
		}
		write("</ul>\n</section>\n")

		if len(city.Neighborhoods) > 0 {
			write("<section class=\"areas\">\n<h2>Areas we serve</h2>\n<ul>\n")
			for _, n := range city.Neighborhoods {
				write("<li>%s</li>\n", esc(n))
			}
			write("</ul>\n</section>\n")
		}
		return err
	})
	return Layout(meta, body)
}

// CitySolution renders one cell of the city x solution matrix.
func CitySolution(meta seo.Meta, city *model.City, sol *model.Solution) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var err error
		write := func(format string, args ...any) {
			if err == nil {
				_, err = fmt.Fprintf(w, format, args...)
			}
		}

		write("<article>\n<h1>%s in %s, %s</h1>\n<p>%s</p>\n",
			esc(sol.Name), esc(city.Name), esc(city.State), esc(sol.LongDescription))

		writeStringList(write, "Why "+city.Name+" businesses choose us", sol.Benefits)

		if len(city.Neighborhoods) > 0 {
			write("<section class=\"areas\">\n<h2>Serving greater %s</h2>\n<ul>\n", esc(city.Name))
			for _, n := range city.Neighborhoods {
				write("<li>%s %s</li>\n", esc(sol.ShortName), esc(n))
			}
			write("</ul>\n</section>\n")
		}

		writeFAQs(write, sol.FAQs)

		write("<p><a href=\"/contact\" class=\"cta\">Talk to our %s team</a></p>\n</article>\n", esc(city.Name))
		return err
	})
	return Layout(meta, body)
}
