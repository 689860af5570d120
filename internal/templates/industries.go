package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/brightpath-ai/website/internal/model"
	"github.com/brightpath-ai/website/internal/seo"
)

// icon glyphs form a closed lookup; an unknown tag falls back to the
// default rather than rendering nothing.
var iconGlyphs = map[string]string{
	model.IconScale:     "⚖",
	model.IconStetho:    "⚕",
	model.IconHouse:     "⌂",
	model.IconHardHat:   "⛑",
	model.IconCart:      "🛒",
	model.IconBed:       "🛏",
	model.IconWrench:    "🔧",
	model.IconBriefcase: "💼",
}

const defaultGlyph = "◆"

func iconGlyph(key string) string {
	if g, ok := iconGlyphs[key]; ok {
		return g
	}
	return defaultGlyph
}

// Industries renders the industries index. Published industries link to
// their page; unpublished ones are shown as coming soon with no link, so
// crawlers never discover them here.
func Industries(meta seo.Meta, industries []model.Industry) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var err error
		write := func(format string, args ...any) {
			if err == nil {
				_, err = fmt.Fprintf(w, format, args...)
			}
		}

		write("<h1>Industries</h1>\n<ul class=\"industry-list\">\n")
		for _, ind := range industries {
			if ind.Published {
				write("<li><span class=\"icon\">%s</span> <a href=\"/industries/%s\">%s</a></li>\n",
					iconGlyph(ind.Icon), esc(ind.Key), esc(ind.Name))
			} else {
				write("<li class=\"coming-soon\"><span class=\"icon\">%s</span> %s <em>coming soon</em></li>\n",
					iconGlyph(ind.Icon), esc(ind.Name))
			}
		}
		write("</ul>\n")
		return err
	})
	return Layout(meta, body)
}

// CityIndustry renders one cell of the city x industry matrix.
func CityIndustry(meta seo.Meta, city *model.City, ind *model.Industry, solutions []model.Solution) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var err error
		write := func(format string, args ...any) {
			if err == nil {
				_, err = fmt.Fprintf(w, format, args...)
			}
		}

		write("<article>\n<h1>AI Automation for %s in %s, %s</h1>\n",
			esc(ind.Name), esc(city.Name), esc(city.State))
		if ind.Description != "" {
			write("<p>%s</p>\n", esc(ind.Description))
		}

		if len(solutions) > 0 {
			write("<section>\n<h2>What we build for %s %s</h2>\n<ul>\n", esc(city.Name), esc(ind.Name))
			for _, sol := range solutions {
				write("<li><a href=\"/locations/%s/%s\">%s in %s</a></li>\n",
					esc(city.Slug), esc(sol.Slug), esc(sol.Name), esc(city.Name))
			}
			write("</ul>\n</section>\n")
		}

		write("<p><a href=\"/contact\" class=\"cta\">Talk to our %s team</a></p>\n</article>\n", esc(city.Name))
		return err
	})
	return Layout(meta, body)
}

// IndustryDetail renders an industry page with the solutions that apply
// to it.
func IndustryDetail(meta seo.Meta, ind *model.Industry, solutions []model.Solution) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var err error
		write := func(format string, args ...any) {
			if err == nil {
				_, err = fmt.Fprintf(w, format, args...)
			}
		}

		write("<article>\n<h1><span class=\"icon\">%s</span> AI Automation for %s</h1>\n",
			iconGlyph(ind.Icon), esc(ind.Name))
		if ind.Description != "" {
			write("<p>%s</p>\n", esc(ind.Description))
		}
		if !ind.Published {
			write("<p class=\"notice\">Full %s content is coming soon.</p>\n", esc(ind.Name))
		}

		if len(solutions) > 0 {
			write("<section>\n<h2>What we build for %s</h2>\n<ul>\n", esc(ind.Name))
			for _, sol := range solutions {
				write("<li><a href=\"/services/%s\">%s</a> — %s</li>\n",
					esc(sol.Slug), esc(sol.Name), esc(sol.Description))
			}
			write("</ul>\n</section>\n")
		}
		write("</article>\n")
		return err
	})
	return Layout(meta, body)
}
