package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firegate-ai/firegate/internal/preview"
)

var (
	previewMode     string
	previewMaxChars int
	previewJSON     bool
)

var previewCmd = &cobra.Command{
	Use:   "preview <url>",
	Short: "Fetch a URL and extract readable content locally (no API key needed)",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewMode, "mode", "m", "markdown", "Extraction mode: markdown or text")
	previewCmd.Flags().IntVar(&previewMaxChars, "max-chars", 0, "Truncate extracted text to this many characters")
	previewCmd.Flags().BoolVar(&previewJSON, "json", false, "Print the full result as JSON")
}

func runPreview(cmd *cobra.Command, args []string) error {
	e := preview.NewExtractor(previewMaxChars)
	res, err := e.Extract(cmd.Context(), args[0], previewMode)
	if err != nil {
		return err
	}

	if previewJSON {
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	if res.Title != "" {
		fmt.Printf("# %s\n\n", res.Title)
	}
	fmt.Println(res.Text)
	if res.Truncated {
		fmt.Println("\n[truncated]")
	}
	return nil
}
