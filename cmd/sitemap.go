package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brightpath-ai/website/internal/config"
	"github.com/brightpath-ai/website/internal/registry"
	"github.com/brightpath-ai/website/internal/sitemap"
)

var sitemapOut string

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Generate the sitemap XML",
	Long: `Generate the full sitemap from the entity registry and write it as XML.

The generator enumerates core pages, every service, every city pillar page,
the full city x solution cross-product, published industries, the
city x published-industry pages, and the blog. After generation the
validator scans for duplicate or malformed URLs; findings are logged as
warnings but never block emission.

Examples:
  # Write to stdout
  ./website sitemap

  # Write to a file
  ./website sitemap --out public/sitemap.xml`,
	Run: runSitemap,
}

func init() {
	rootCmd.AddCommand(sitemapCmd)
	sitemapCmd.Flags().StringVarP(&sitemapOut, "out", "o", "", "File to write the sitemap to (default stdout)")
}

func runSitemap(cmd *cobra.Command, args []string) {
	zlog, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer zlog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal("failed to load config", zap.Error(err))
	}

	reg, err := registry.Default()
	if err != nil {
		zlog.Fatal("entity registry failed validation", zap.Error(err))
	}

	gen := sitemap.NewGenerator(reg, cfg.SiteOrigin, time.Now().UTC())
	entries := gen.Generate()

	for _, warn := range sitemap.Validate(entries, cfg.SiteOrigin) {
		zlog.Warn("sitemap integrity warning", zap.String("url", warn.URL), zap.String("reason", warn.Reason))
	}

	out := os.Stdout
	if sitemapOut != "" {
		f, err := os.Create(sitemapOut)
		if err != nil {
			zlog.Fatal("failed to create output file", zap.String("path", sitemapOut), zap.Error(err))
		}
		defer f.Close()
		out = f
	}

	if err := sitemap.WriteXML(out, entries); err != nil {
		zlog.Fatal("failed to write sitemap", zap.Error(err))
	}

	zlog.Info("sitemap generated", zap.Int("entries", len(entries)))
}
