package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/contrast"
	"github.com/opencode-ai/swatch/internal/models"
)

func init() {
	rootCmd.AddCommand(contrastCmd)
}

var contrastCmd = &cobra.Command{
	Use:   "contrast <color> <color>",
	Short: "Print the contrast ratio of two colors",
	Long: `Print the WCAG contrast ratio of two hex colors, formatted with two decimals.

Colors are hex values with an optional leading '#'.`,
	Example: `  swatch contrast '#ffffff' '#6200ee'
  swatch contrast 000000 ff0000 --json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b := models.Color(args[0]), models.Color(args[1])
		for _, c := range []models.Color{a, b} {
			if _, err := contrast.Parse(c); err != nil {
				return err
			}
		}

		result := contrastResult{A: a, B: b, Ratio: contrast.Ratio(a, b)}
		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, result)
		}
		fmt.Fprintln(out, result.Ratio)
		return nil
	},
}

type contrastResult struct {
	A     models.Color `json:"a"`
	B     models.Color `json:"b"`
	Ratio string       `json:"ratio"`
}
