package handlers

import (
	"bytes"
	"time"

	"github.com/gofiber/fiber/v2"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/brightpath-ai/website/internal/service"
	"github.com/brightpath-ai/website/internal/sitemap"
)

const sitemapCacheKey = "sitemap.xml"

// SitemapHandler serves /sitemap.xml. The registry is immutable at
// runtime, so the serialized document is cached with a TTL and rebuilt
// lazily. Validation warnings are advisory: logged and counted, never
// blocking emission.
func SitemapHandler(gen *sitemap.Generator, origin string, metrics *service.Metrics, logger *zap.Logger) fiber.Handler {
	c := gocache.New(time.Hour, 2*time.Hour)

	return func(ctx *fiber.Ctx) error {
		if cached, ok := c.Get(sitemapCacheKey); ok {
			ctx.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
			return ctx.Send(cached.([]byte))
		}

		entries := gen.Generate()
		warnings := sitemap.Validate(entries, origin)
		metrics.SitemapWarnings.Set(float64(len(warnings)))
		for _, warn := range warnings {
			logger.Warn("sitemap integrity warning", zap.String("url", warn.URL), zap.String("reason", warn.Reason))
		}

		var buf bytes.Buffer
		if err := sitemap.WriteXML(&buf, entries); err != nil {
			logger.Error("failed to serialize sitemap", zap.Error(err))
			return ctx.Status(fiber.StatusInternalServerError).SendString("Error generating sitemap")
		}

		body := buf.Bytes()
		c.Set(sitemapCacheKey, body, gocache.DefaultExpiration)

		ctx.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
		return ctx.Send(body)
	}
}
