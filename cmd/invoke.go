package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/firegate-ai/firegate/internal/config"
	"github.com/firegate-ai/firegate/internal/dependency"
	"github.com/firegate-ai/firegate/internal/preset"
)

var (
	invokeTool   string
	invokeParams string
	invokePreset string
)

var invokeCmd = &cobra.Command{
	Use:   "invoke",
	Short: "Invoke a tool once and print the result",
	Example: `  firegate invoke --tool firecrawl_scrape --params '{"url": "https://example.com"}'
  firegate invoke --preset docs-map`,
	RunE: runInvoke,
}

func init() {
	invokeCmd.Flags().StringVarP(&invokeTool, "tool", "t", "", "Tool name, e.g. firecrawl_scrape")
	invokeCmd.Flags().StringVarP(&invokeParams, "params", "p", "", "Tool parameters as a JSON object")
	invokeCmd.Flags().StringVar(&invokePreset, "preset", "", "Run a saved preset instead of --tool/--params")
}

func runInvoke(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := dependency.New(cfg)
	if err != nil {
		return err
	}

	name := invokeTool
	params := map[string]any{}

	if invokePreset != "" {
		p, err := preset.Load(filepath.Join(config.PresetsDir(), invokePreset+".yaml"))
		if err != nil {
			return err
		}
		name = p.Tool
		params = p.Params
	} else if invokeParams != "" {
		if err := json.Unmarshal([]byte(invokeParams), &params); err != nil {
			return fmt.Errorf("parse --params: %w", err)
		}
	}

	if name == "" {
		return fmt.Errorf("either --tool or --preset is required")
	}
	tools := c.Tools()
	t := tools.Get(name)
	if t == nil {
		return fmt.Errorf("unknown tool %q (registered: %s)", name, strings.Join(tools.Names(), ", "))
	}

	out, err := t.Execute(cmd.Context(), params)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
