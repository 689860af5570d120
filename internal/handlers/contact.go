package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brightpath-ai/website/internal/seo"
	"github.com/brightpath-ai/website/internal/service"
	"github.com/brightpath-ai/website/internal/store"
	"github.com/brightpath-ai/website/internal/templates"
)

type contactRequest struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Company string `form:"company" json:"company"`
	Message string `form:"message" json:"message"`
}

func ContactHandler(syn *seo.Synthesizer, bookingURL string, metrics *service.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		metrics.PageRenders.WithLabelValues("contact").Inc()
		meta := syn.Page("Contact", "Book a free automation audit or send us a message. We reply within one business day.", "contact")
		return render(c, templates.Contact(meta, bookingURL))
	}
}

// ContactSubmitHandler relays a form submission to the external endpoint
// and optionally persists it. client may be nil when no endpoint is
// configured; contactStore may be nil when persistence is disabled. Any
// failure becomes a user-visible retry message, never a raw error.
func ContactSubmitHandler(client *service.ContactClient, contactStore *store.ContactStore, syn *seo.Synthesizer, metrics *service.Metrics, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		meta := syn.Page("Contact", "Book a free automation audit or send us a message.", "contact")

		var req contactRequest
		if err := c.BodyParser(&req); err != nil || req.Name == "" || req.Email == "" || req.Message == "" {
			metrics.ContactSubmissions.WithLabelValues("invalid").Inc()
			c.Status(fiber.StatusBadRequest)
			return render(c, templates.ContactResult(meta, false))
		}

		sub := service.ContactSubmission{
			ID:      uuid.NewString(),
			Name:    req.Name,
			Email:   req.Email,
			Company: req.Company,
			Message: req.Message,
		}

		if contactStore != nil {
			if _, err := contactStore.Insert(c.Context(), sub); err != nil {
				// Persistence is best-effort; the relay is what matters.
				logger.Warn("failed to persist contact submission",
					zap.String("submission_id", sub.ID), zap.Error(err))
			}
		}

		if client != nil {
			if err := client.Submit(c.Context(), sub); err != nil {
				logger.Error("contact relay failed",
					zap.String("submission_id", sub.ID), zap.Error(err))
				metrics.ContactSubmissions.WithLabelValues("failed").Inc()
				c.Status(fiber.StatusBadGateway)
				return render(c, templates.ContactResult(meta, false))
			}
		} else {
			logger.Info("contact submission received (no relay endpoint configured)",
				zap.String("submission_id", sub.ID), zap.String("email", sub.Email))
		}

		metrics.ContactSubmissions.WithLabelValues("accepted").Inc()
		return render(c, templates.ContactResult(meta, true))
	}
}
