package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brightpath-ai/website/internal/registry"
	"github.com/brightpath-ai/website/internal/seo"
	"github.com/brightpath-ai/website/internal/service"
	"github.com/brightpath-ai/website/internal/templates"
)

func HomeHandler(reg *registry.Registry, syn *seo.Synthesizer, metrics *service.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		metrics.PageRenders.WithLabelValues("home").Inc()
		page := templates.Home(syn.Home(), reg.Solutions(), reg.Cities())
		return render(c, page)
	}
}
