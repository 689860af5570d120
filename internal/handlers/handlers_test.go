package handlers

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brightpath-ai/website/internal/registry"
	"github.com/brightpath-ai/website/internal/seo"
	"github.com/brightpath-ai/website/internal/service"
	"github.com/brightpath-ai/website/internal/sitemap"
	"github.com/brightpath-ai/website/internal/store"
)

const testOrigin = "https://www.example.com"

type testDeps struct {
	app     *fiber.App
	metrics *service.Metrics
}

// newTestApp wires the production routes against the real seed registry,
// a fresh metrics registry, and a no-op logger.
func newTestApp(t *testing.T, contactClient *service.ContactClient, contactStore *store.ContactStore) *testDeps {
	t.Helper()

	reg, err := registry.Default()
	require.NoError(t, err)

	syn := seo.NewSynthesizer(seo.Config{
		Origin:       testOrigin,
		Brand:        "Example AI",
		DefaultImage: "/static/img/og-default.jpg",
	})
	metrics := service.NewMetrics(prometheus.NewRegistry())
	gen := sitemap.NewGenerator(reg, testOrigin, time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC))
	logger := zap.NewNop()

	app := fiber.New()
	app.Get("/", HomeHandler(reg, syn, metrics))
	app.Get("/services", ServicesHandler(reg, syn, metrics))
	app.Get("/services/:solution", ServiceDetailHandler(reg, syn, metrics))
	app.Get("/industries", IndustriesHandler(reg, syn, metrics))
	app.Get("/industries/:industry", IndustryDetailHandler(reg, syn, metrics))
	app.Get("/locations", LocationsHandler(reg, syn, metrics))
	app.Get("/locations/:city", CityHandler(reg, syn, metrics))
	app.Get("/locations/:city/industries/:industry", CityIndustryHandler(reg, syn, metrics))
	app.Get("/locations/:city/:solution", CitySolutionHandler(reg, syn, metrics))
	app.Get("/blog", BlogHandler(reg, syn, metrics))
	app.Get("/blog/:slug", BlogPostHandler(reg, syn, metrics))
	app.Get("/contact", ContactHandler(syn, "https://cal.example.com/intro", metrics))
	app.Post("/contact", ContactSubmitHandler(contactClient, contactStore, syn, metrics, logger))
	app.Get("/privacy", PrivacyHandler(syn, metrics))
	app.Get("/terms", TermsHandler(syn, metrics))
	app.Get("/sitemap.xml", SitemapHandler(gen, testOrigin, metrics, logger))
	app.Get("/healthz", HealthHandler())
	app.Use(NotFoundHandler(syn, metrics))

	return &testDeps{app: app, metrics: metrics}
}

func get(t *testing.T, app *fiber.App, path string) (int, string, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body), resp.Header.Get("Content-Type")
}

func TestHomePage(t *testing.T) {
	deps := newTestApp(t, nil, nil)

	status, body, _ := get(t, deps.app, "/")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "Example AI")
	assert.Contains(t, body, "application/ld+json")
	assert.Contains(t, body, `<link rel="canonical" href="https://www.example.com"/>`)
}

func TestServiceDetailPage(t *testing.T) {
	deps := newTestApp(t, nil, nil)

	status, body, _ := get(t, deps.app, "/services/ai-voice-agents")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "AI Voice Agents")
	assert.Contains(t, body, "FAQPage")
}

func TestServiceDetailNotFound(t *testing.T) {
	deps := newTestApp(t, nil, nil)

	status, body, _ := get(t, deps.app, "/services/does-not-exist")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, body, "Page not found")
}

func TestCitySolutionPage(t *testing.T) {
	deps := newTestApp(t, nil, nil)

	status, body, _ := get(t, deps.app, "/locations/austin/ai-voice-agents")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "AI Voice Agents in Austin, TX")
	assert.Contains(t, body, `geo.placename`)
}

func TestCitySolutionHalfResolvedIs404(t *testing.T) {
	deps := newTestApp(t, nil, nil)

	status, _, _ := get(t, deps.app, "/locations/austin/does-not-exist")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _, _ = get(t, deps.app, "/locations/does-not-exist/ai-voice-agents")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestCityIndustryPage(t *testing.T) {
	deps := newTestApp(t, nil, nil)

	status, body, _ := get(t, deps.app, "/locations/austin/industries/legal")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "AI Automation for Law Firms in Austin, TX")

	status, _, _ = get(t, deps.app, "/locations/austin/industries/does-not-exist")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestUnpublishedIndustryStillRenders(t *testing.T) {
	deps := newTestApp(t, nil, nil)

	status, body, _ := get(t, deps.app, "/industries/ecommerce")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "coming soon")
}

func TestBlogIndexSortedNewestFirst(t *testing.T) {
	deps := newTestApp(t, nil, nil)

	status, body, _ := get(t, deps.app, "/blog")
	assert.Equal(t, fiber.StatusOK, status)

	// Seed posts: 2025-08-28 must appear before 2025-06-12.
	newest := strings.Index(body, "five-signs-ready-for-automation")
	oldest := strings.Index(body, "missed-calls-cost-small-businesses")
	require.GreaterOrEqual(t, newest, 0)
	require.GreaterOrEqual(t, oldest, 0)
	assert.Less(t, newest, oldest)
}

func TestSitemapXML(t *testing.T) {
	deps := newTestApp(t, nil, nil)

	status, body, contentType := get(t, deps.app, "/sitemap.xml")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, contentType, "application/xml")
	assert.Contains(t, body, "<urlset")
	assert.Contains(t, body, testOrigin+"/locations/austin/ai-voice-agents")

	// Second request is served from cache and must be identical.
	status2, body2, _ := get(t, deps.app, "/sitemap.xml")
	assert.Equal(t, fiber.StatusOK, status2)
	assert.Equal(t, body, body2)
}

func TestUnroutedPathIsBranded404(t *testing.T) {
	deps := newTestApp(t, nil, nil)

	status, body, _ := get(t, deps.app, "/no/such/route/anywhere")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, body, "Page not found")
}

func TestHealthz(t *testing.T) {
	deps := newTestApp(t, nil, nil)

	status, body, _ := get(t, deps.app, "/healthz")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "ok")
}
