package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brightpath-ai/website/internal/seo"
	"github.com/brightpath-ai/website/internal/service"
	"github.com/brightpath-ai/website/internal/templates"
)

var privacyParagraphs = []string{
	"We collect only the information you submit through the contact form: your name, email address, company, and message. We use it to respond to your inquiry and for nothing else.",
	"We do not sell or share personal information with third parties, except the form-processing service that delivers your message to us.",
	"Request deletion of your data at any time by emailing hello@brightpathai.com.",
}

var termsParagraphs = []string{
	"This website is provided as general information about our services. Nothing here constitutes a binding offer; engagements are governed by a signed services agreement.",
	"Performance figures cited on this site are drawn from past client work and are illustrative, not a guarantee of results.",
	"All content on this site is owned by BrightPath AI and may not be reproduced without permission.",
}

func PrivacyHandler(syn *seo.Synthesizer, metrics *service.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		metrics.PageRenders.WithLabelValues("privacy").Inc()
		meta := syn.Page("Privacy Policy", "How BrightPath AI handles the information you share with us.", "privacy")
		return render(c, templates.Legal(meta, "Privacy Policy", privacyParagraphs))
	}
}

func TermsHandler(syn *seo.Synthesizer, metrics *service.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		metrics.PageRenders.WithLabelValues("terms").Inc()
		meta := syn.Page("Terms of Service", "The terms that govern use of the BrightPath AI website.", "terms")
		return render(c, templates.Legal(meta, "Terms of Service", termsParagraphs))
	}
}

// HealthHandler is a liveness probe.
func HealthHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

// NotFoundHandler catches every unrouted path.
func NotFoundHandler(syn *seo.Synthesizer, metrics *service.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		metrics.ResolutionFailures.WithLabelValues("unrouted").Inc()
		return renderNotFound(c, syn)
	}
}
