package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/colorset"
	"github.com/opencode-ai/swatch/internal/models"
)

func init() {
	rootCmd.AddCommand(setsCmd)
}

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List color set presets",
	Long:  "List the presets available to new sets with the contrast ratio of each on-color against the container.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		available, err := loadPresets()
		if err != nil {
			return err
		}

		summaries := make([]setSummary, 0, len(available))
		for _, preset := range available {
			summaries = append(summaries, setSummary{
				Name:        preset.Name,
				Description: preset.Description,
				Source:      preset.Source,
				State:       colorset.NewState(preset.Colors),
			})
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, summaries)
		}
		if len(summaries) == 0 {
			fmt.Fprintln(out, "No presets found")
			return nil
		}

		rows := make([][]string, 0, len(summaries))
		for _, s := range summaries {
			row := []string{s.Name, string(s.Container)}
			for _, role := range models.OnRoles {
				row = append(row, fmt.Sprintf("%s (%s)", s.Get(role), s.Ratio(role)))
			}
			row = append(row, s.Source)
			rows = append(rows, row)
		}
		return writeTable(out, []string{"NAME", "CONTAINER", "ACCENT", "HIGH", "MEDIUM", "LOW", "SOURCE"}, rows)
	},
}

type setSummary struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source"`
	colorset.State
}
