// Package cmd implements the firegate CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/firegate-ai/firegate/internal/config"
)

const version = "0.1.0"

var configPath string

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "firegate",
	Short: "firegate: Firecrawl tools for AI agents",
	Long: "firegate exposes the Firecrawl scrape, map, search, and crawl operations\n" +
		"as callable tools for agent hosts, with a local runtime for invoking,\n" +
		"scheduling, and observing them.",
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.firegate/config.json)")

	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(invokeCmd)
	rootCmd.AddCommand(gatewayCmd)
	rootCmd.AddCommand(previewCmd)
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.ConfigPath()
	}
	return config.Load(path)
}
