package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brightpath-ai/website/internal/model"
	"github.com/brightpath-ai/website/internal/registry"
	"github.com/brightpath-ai/website/internal/resolver"
	"github.com/brightpath-ai/website/internal/seo"
	"github.com/brightpath-ai/website/internal/service"
	"github.com/brightpath-ai/website/internal/templates"
)

func IndustriesHandler(reg *registry.Registry, syn *seo.Synthesizer, metrics *service.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		metrics.PageRenders.WithLabelValues("industries").Inc()
		meta := syn.Page("Industries", "AI automation built for the verticals we know: legal, healthcare, real estate, construction, and home services.", "industries")
		return render(c, templates.Industries(meta, reg.Industries()))
	}
}

func IndustryDetailHandler(reg *registry.Registry, syn *seo.Synthesizer, metrics *service.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := resolver.ResolveIndustry(reg, c.Params("industry"))
		if err != nil {
			metrics.ResolutionFailures.WithLabelValues("industry").Inc()
			return renderNotFound(c, syn)
		}

		metrics.PageRenders.WithLabelValues("industry").Inc()
		meta := syn.Industry(page.Industry)
		return render(c, templates.IndustryDetail(meta, page.Industry, solutionsForIndustry(reg, page.Industry.Key)))
	}
}

// solutionsForIndustry returns the solutions linked to the given industry
// key, in registry order.
func solutionsForIndustry(reg *registry.Registry, key string) []model.Solution {
	var out []model.Solution
	for _, sol := range reg.Solutions() {
		for _, k := range sol.Industries {
			if k == key {
				out = append(out, sol)
				break
			}
		}
	}
	return out
}
