package cmd

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brightpath-ai/website/internal/config"
	"github.com/brightpath-ai/website/internal/handlers"
	"github.com/brightpath-ai/website/internal/registry"
	"github.com/brightpath-ai/website/internal/seo"
	"github.com/brightpath-ai/website/internal/service"
	"github.com/brightpath-ai/website/internal/sitemap"
	"github.com/brightpath-ai/website/internal/store"
)

var port string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the marketing site web server",
	Long:  `Start the web server that renders the site, serves the sitemap, and relays contact form submissions.`,
	Run: func(cmd *cobra.Command, args []string) {
		zlog, err := zap.NewProduction()
		if err != nil {
			os.Exit(1)
		}
		defer zlog.Sync()

		// Use PORT env var if set, otherwise use flag value
		if envPort := os.Getenv("PORT"); envPort != "" && port == "8080" {
			port = envPort
		}

		cfg, err := config.Load()
		if err != nil {
			zlog.Fatal("failed to load config", zap.Error(err))
		}

		reg, err := registry.Default()
		if err != nil {
			zlog.Fatal("entity registry failed validation", zap.Error(err))
		}

		syn := seo.NewSynthesizer(seo.Config{
			Origin:        cfg.SiteOrigin,
			Brand:         cfg.Brand,
			DefaultImage:  cfg.DefaultOGImage,
			TwitterSite:   cfg.TwitterSite,
			DedupKeywords: cfg.DedupKeywords,
		})
		metrics := service.NewMetrics(prometheus.DefaultRegisterer)
		gen := sitemap.NewGenerator(reg, cfg.SiteOrigin, time.Now().UTC())

		var contactClient *service.ContactClient
		if cfg.ContactEndpoint != "" {
			contactClient = service.NewContactClient(cfg.ContactEndpoint)
		}

		var contactStore *store.ContactStore
		if cfg.DatabaseURL != "" {
			db, err := store.NewDB(cfg.DatabaseURL)
			if err != nil {
				zlog.Fatal("failed to connect to database", zap.Error(err))
			}
			defer db.Close()
			contactStore = store.NewContactStore(db)
		}

		app := fiber.New(fiber.Config{
			AppName: cfg.Brand,
		})

		app.Use(logger.New())

		app.Static("/static", "./static")

		// Routes
		app.Get("/", handlers.HomeHandler(reg, syn, metrics))

		// Service routes
		app.Get("/services", handlers.ServicesHandler(reg, syn, metrics))
		app.Get("/services/:solution", handlers.ServiceDetailHandler(reg, syn, metrics))

		// Industry routes
		app.Get("/industries", handlers.IndustriesHandler(reg, syn, metrics))
		app.Get("/industries/:industry", handlers.IndustryDetailHandler(reg, syn, metrics))

		// Location routes
		app.Get("/locations", handlers.LocationsHandler(reg, syn, metrics))
		app.Get("/locations/:city", handlers.CityHandler(reg, syn, metrics))
		app.Get("/locations/:city/industries/:industry", handlers.CityIndustryHandler(reg, syn, metrics))
		app.Get("/locations/:city/:solution", handlers.CitySolutionHandler(reg, syn, metrics))

		// Blog routes
		app.Get("/blog", handlers.BlogHandler(reg, syn, metrics))
		app.Get("/blog/:slug", handlers.BlogPostHandler(reg, syn, metrics))

		// Contact
		app.Get("/contact", handlers.ContactHandler(syn, cfg.BookingURL, metrics))
		app.Post("/contact", handlers.ContactSubmitHandler(contactClient, contactStore, syn, metrics, zlog))

		// Legal pages
		app.Get("/privacy", handlers.PrivacyHandler(syn, metrics))
		app.Get("/terms", handlers.TermsHandler(syn, metrics))

		// Machine endpoints
		app.Get("/sitemap.xml", handlers.SitemapHandler(gen, cfg.SiteOrigin, metrics, zlog))
		app.Get("/healthz", handlers.HealthHandler())
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

		// Everything else is a branded 404.
		app.Use(handlers.NotFoundHandler(syn, metrics))

		zlog.Info("starting server", zap.String("port", port), zap.String("origin", cfg.SiteOrigin))
		if err := app.Listen(":" + port); err != nil {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&port, "port", "p", "8080", "Port to run the server on")
}
