package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the site-wide settings. Loaded once at startup and passed
// explicitly to whatever needs it.
type Config struct {
	Port            string `mapstructure:"port"`
	SiteOrigin      string `mapstructure:"site_origin"`
	Brand           string `mapstructure:"brand"`
	DefaultOGImage  string `mapstructure:"default_og_image"`
	TwitterSite     string `mapstructure:"twitter_site"`
	DedupKeywords   bool   `mapstructure:"dedup_keywords"`
	ContactEndpoint string `mapstructure:"contact_endpoint"`
	BookingURL      string `mapstructure:"booking_url"`
	DatabaseURL     string `mapstructure:"database_url"`
}

// Load reads configuration from an optional website.yaml in the working
// directory, overridden by SITE_* environment variables, on top of the
// defaults below.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("site_origin", "https://www.brightpathai.com")
	v.SetDefault("brand", "BrightPath AI")
	v.SetDefault("default_og_image", "/static/img/og-default.jpg")
	v.SetDefault("twitter_site", "@brightpathai")
	v.SetDefault("dedup_keywords", false)
	v.SetDefault("contact_endpoint", "")
	v.SetDefault("booking_url", "https://cal.com/brightpathai/intro")
	v.SetDefault("database_url", "")

	v.SetConfigName("website")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// The config file is optional; anything else is a real error.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.SiteOrigin = strings.TrimRight(cfg.SiteOrigin, "/")
	return &cfg, nil
}
