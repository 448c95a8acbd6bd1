package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/firegate-ai/firegate/internal/dependency"
)

var toolsJSON bool

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the registered tool definitions",
	RunE:  runTools,
}

func init() {
	toolsCmd.Flags().BoolVar(&toolsJSON, "json", false, "Print definitions in OpenAI function-calling format")
}

func runTools(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := dependency.New(cfg)
	if err != nil {
		return err
	}

	tools := c.Tools()
	if toolsJSON {
		out, err := json.MarshalIndent(tools.Definitions(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	for _, name := range tools.Names() {
		t := tools.Get(name)
		summary, _, _ := strings.Cut(t.Description(), "\n")
		fmt.Printf("%s\n    %s\n", name, summary)
	}
	return nil
}
