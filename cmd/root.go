package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "website",
	Short: "BrightPath AI marketing site",
	Long:  `Server-rendered marketing site for BrightPath AI: pages, SEO metadata, and sitemap generation.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
