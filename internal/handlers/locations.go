package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brightpath-ai/website/internal/registry"
	"github.com/brightpath-ai/website/internal/resolver"
	"github.com/brightpath-ai/website/internal/seo"
	"github.com/brightpath-ai/website/internal/service"
	"github.com/brightpath-ai/website/internal/templates"
)

func LocationsHandler(reg *registry.Registry, syn *seo.Synthesizer, metrics *service.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		metrics.PageRenders.WithLabelValues("locations").Inc()
		meta := syn.Page("Locations", "Local AI automation teams across Texas, Arizona, and Colorado.", "locations")
		return render(c, templates.Locations(meta, reg.Cities()))
	}
}

func CityHandler(reg *registry.Registry, syn *seo.Synthesizer, metrics *service.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := resolver.ResolveCity(reg, c.Params("city"))
		if err != nil {
			metrics.ResolutionFailures.WithLabelValues("city").Inc()
			return renderNotFound(c, syn)
		}

		metrics.PageRenders.WithLabelValues("city").Inc()
		meta := syn.City(page.City)
		return render(c, templates.CityDetail(meta, page.City, reg.Solutions()))
	}
}

func CityIndustryHandler(reg *registry.Registry, syn *seo.Synthesizer, metrics *service.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := resolver.ResolveCityIndustry(reg, c.Params("city"), c.Params("industry"))
		if err != nil {
			metrics.ResolutionFailures.WithLabelValues("city_industry").Inc()
			return renderNotFound(c, syn)
		}

		metrics.PageRenders.WithLabelValues("city_industry").Inc()
		meta := syn.CityIndustry(page.City, page.Industry)
		return render(c, templates.CityIndustry(meta, page.City, page.Industry, solutionsForIndustry(reg, page.Industry.Key)))
	}
}

func CitySolutionHandler(reg *registry.Registry, syn *seo.Synthesizer, metrics *service.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := resolver.ResolveCitySolution(reg, c.Params("city"), c.Params("solution"))
		if err != nil {
			metrics.ResolutionFailures.WithLabelValues("city_solution").Inc()
			return renderNotFound(c, syn)
		}

		// Industry keys on the solution were validated at load time, so
		// every lookup here hits.
		var industryNames []string
		for _, key := range page.Solution.Industries {
			if ind := reg.IndustryByKey(key); ind != nil {
				industryNames = append(industryNames, ind.Name)
			}
		}

		metrics.PageRenders.WithLabelValues("city_solution").Inc()
		meta := syn.CitySolution(page.City, page.Solution, industryNames)
		return render(c, templates.CitySolution(meta, page.City, page.Solution))
	}
}
