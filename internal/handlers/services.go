package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brightpath-ai/website/internal/registry"
	"github.com/brightpath-ai/website/internal/resolver"
	"github.com/brightpath-ai/website/internal/seo"
	"github.com/brightpath-ai/website/internal/service"
	"github.com/brightpath-ai/website/internal/templates"
)

func ServicesHandler(reg *registry.Registry, syn *seo.Synthesizer, metrics *service.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		metrics.PageRenders.WithLabelValues("services").Inc()
		meta := syn.Page("Services", "AI voice agents, chat agents, workflow automation, and SEO systems built and operated for you.", "services")
		return render(c, templates.Services(meta, reg.Solutions()))
	}
}

func ServiceDetailHandler(reg *registry.Registry, syn *seo.Synthesizer, metrics *service.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := resolver.ResolveService(reg, c.Params("solution"))
		if err != nil {
			metrics.ResolutionFailures.WithLabelValues("service").Inc()
			return renderNotFound(c, syn)
		}

		metrics.PageRenders.WithLabelValues("service").Inc()
		meta := syn.Service(page.Solution)
		return render(c, templates.ServiceDetail(meta, page.Solution))
	}
}
