package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/firegate-ai/firegate/internal/config"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Initialize configuration and the presets directory",
	RunE:  runOnboard,
}

func runOnboard(_ *cobra.Command, _ []string) error {
	cfgPath := configPath
	if cfgPath == "" {
		cfgPath = config.ConfigPath()
	}

	if _, err := os.Stat(cfgPath); err == nil {
		fmt.Printf("Config already exists at %s\n", cfgPath)
	} else {
		cfg := config.DefaultConfig()
		if err := config.Save(&cfg, cfgPath); err != nil {
			return err
		}
		fmt.Printf("✓ Created config at %s\n", cfgPath)
	}

	if err := os.MkdirAll(config.PresetsDir(), 0o755); err != nil {
		return fmt.Errorf("create presets dir: %w", err)
	}
	fmt.Printf("✓ Presets directory at %s\n", config.PresetsDir())

	fmt.Println("\nfiregate is ready!")
	fmt.Println("Next steps:")
	fmt.Printf("  1. Add your Firecrawl API key under credentials.firecrawlApi in %s\n", cfgPath)
	fmt.Println("     Get one at: https://firecrawl.dev")
	fmt.Println("  2. Try it: firegate invoke --tool firecrawl_scrape --params '{\"url\": \"https://example.com\"}'")
	return nil
}
