package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brightpath-ai/website/internal/registry"
	"github.com/brightpath-ai/website/internal/resolver"
	"github.com/brightpath-ai/website/internal/seo"
	"github.com/brightpath-ai/website/internal/service"
	"github.com/brightpath-ai/website/internal/templates"
)

func BlogHandler(reg *registry.Registry, syn *seo.Synthesizer, metrics *service.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		metrics.PageRenders.WithLabelValues("blog").Inc()
		meta := syn.Page("Blog", "Practical writing on AI automation, missed-call economics, and what actually moves the needle for small businesses.", "blog")
		return render(c, templates.Blog(meta, reg.PostsByDateDesc()))
	}
}

func BlogPostHandler(reg *registry.Registry, syn *seo.Synthesizer, metrics *service.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := resolver.ResolvePost(reg, c.Params("slug"))
		if err != nil {
			metrics.ResolutionFailures.WithLabelValues("post").Inc()
			return renderNotFound(c, syn)
		}

		metrics.PageRenders.WithLabelValues("post").Inc()
		meta := syn.Post(page.Post)
		return render(c, templates.BlogPost(meta, page.Post))
	}
}
