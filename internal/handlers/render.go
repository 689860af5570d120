package handlers

import (
	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/brightpath-ai/website/internal/seo"
	"github.com/brightpath-ai/website/internal/templates"
)

func render(c *fiber.Ctx, page templ.Component) error {
	handler := adaptor.HTTPHandler(templ.Handler(page))
	return handler(c)
}

// renderNotFound serves the branded 404 page with fallback metadata. Every
// resolution failure funnels through here; nothing propagates past the
// page boundary.
func renderNotFound(c *fiber.Ctx, syn *seo.Synthesizer) error {
	page := templates.NotFound(syn.Fallback())
	handler := adaptor.HTTPHandler(templ.Handler(page, templ.WithStatus(fiber.StatusNotFound)))
	return handler(c)
}
