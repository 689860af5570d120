package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/brightpath-ai/website/internal/model"
	"github.com/brightpath-ai/website/internal/seo"
)

// Services renders the services index.
func Services(meta seo.Meta, solutions []model.Solution) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var err error
		write := func(format string, args ...any) {
			if err == nil {
				_, err = fmt.Fprintf(w, format, args...)
			}
		}

		write("<h1>Services</h1>\n<ul class=\"service-list\">\n")
		for _, sol := range solutions {
			write("<li>\n<h2><a href=\"/services/%s\">%s</a></h2>\n<p>%s</p>\n<p class=\"tagline\">%s</p>\n</li>\n",
				esc(sol.Slug), esc(sol.Name), esc(sol.Description), esc(sol.Tagline))
		}
		write("</ul>\n")
		return err
	})
	return Layout(meta, body)
}

// ServiceDetail renders a solution page: description, benefits, features,
// use cases, stats, ROI, FAQs, and pricing.
func ServiceDetail(meta seo.Meta, sol *model.Solution) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var err error
		write := func(format string, args ...any) {
			if err == nil {
				_, err = fmt.Fprintf(w, format, args...)
			}
		}

		write("<article class=\"service\">\n<h1>%s</h1>\n<p class=\"tagline\">%s</p>\n<p>%s</p>\n",
			esc(sol.Name), esc(sol.Tagline), esc(sol.LongDescription))

		writeStringList(write, "Benefits", sol.Benefits)
		writeStringList(write, "Features", sol.Features)

		if len(sol.UseCases) > 0 {
			write("<section>\n<h2>Use cases</h2>\n<ul>\n")
			for _, uc := range sol.UseCases {
				write("<li><strong>%s</strong> — %s</li>\n", esc(uc.Title), esc(uc.Description))
			}
			write("</ul>\n</section>\n")
		}

		if len(sol.Stats) > 0 {
			write("<section class=\"stats\">\n<h2>Results</h2>\n<dl>\n")
			for _, st := range sol.Stats {
				write("<dt>%s</dt><dd>%s</dd>\n", esc(st.Label), esc(st.Display))
			}
			write("</dl>\n</section>\n")
		}

		write("<section class=\"roi\">\n<h2>ROI</h2>\n<ul>\n<li>%s</li>\n<li>%s</li>\n<li>%s</li>\n</ul>\n</section>\n",
			esc(sol.ROI.TimeToValue), esc(sol.ROI.Efficiency), esc(sol.ROI.CostSavings))

		writeFAQs(write, sol.FAQs)

		write("<section class=\"pricing\">\n<h2>Pricing</h2>\n<p>%s, starting at %s.",
			esc(sol.Pricing.Model), esc(sol.Pricing.StartingPrice))
		if sol.Pricing.Enterprise {
			write(" Enterprise plans available.")
		}
		write("</p>\n</section>\n</article>\n")
		return err
	})
	return Layout(meta, body)
}

func writeStringList(write func(string, ...any), heading string, items []string) {
	if len(items) == 0 {
		return
	}
	write("<section>\n<h2>%s</h2>\n<ul>\n", esc(heading))
	for _, item := range items {
		write("<li>%s</li>\n", esc(item))
	}
	write("</ul>\n</section>\n")
}

func writeFAQs(write func(string, ...any), faqs []model.FAQ) {
	if len(faqs) == 0 {
		return
	}
	write("<section class=\"faqs\">\n<h2>Frequently asked questions</h2>\n")
	for _, f := range faqs {
		write("<details>\n<summary>%s</summary>\n<p>%s</p>\n</details>\n", esc(f.Question), esc(f.Answer))
	}
	write("</section>\n")
}
