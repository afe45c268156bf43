package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/colorset"
	"github.com/opencode-ai/swatch/internal/contrast"
	"github.com/opencode-ai/swatch/internal/events"
	"github.com/opencode-ai/swatch/internal/models"
	"github.com/opencode-ai/swatch/internal/palette"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit <preset> <role> <color>",
	Short: "Apply one edit to a preset and show the result",
	Long: `Open an editing session over a preset, assign color to role and print the
resulting set, its contrast ratios and the change notification the edit emitted.

Roles: container, accent, high, medium, low. Editing the container recomputes
every ratio; editing an on-color recomputes only its own.`,
	Example: `  swatch edit material container '#000000'
  swatch edit material-dark accent '#03dac6' --json`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := models.ParseRole(args[1])
		if err != nil {
			return &PreflightError{
				Message:  err.Error(),
				Hint:     "Use one of container, accent, high, medium or low",
				NextStep: "swatch edit material accent '#03dac6'",
			}
		}
		value := models.Color(args[2])
		if _, err := contrast.Parse(value); err != nil {
			return err
		}

		name, set, err := resolveSet(args[:1])
		if err != nil {
			return err
		}

		history := events.NewHistory(events.DefaultHistorySize)
		recorder := events.NewRecorder(history)

		store := palette.NewStore(set)
		store.OnCreate(recorder.OnSetCreated)
		if err := store.AddSetFrom(name, set); err != nil {
			return err
		}
		var changes []colorset.Change
		capture := colorset.NotifierFunc(func(change colorset.Change) {
			changes = append(changes, change)
		})

		editor, err := store.Editor(name, recorder, capture)
		if err != nil {
			return err
		}
		before := editor.State()
		after, err := editor.Edit(role, value)
		if err != nil {
			return err
		}

		result := editResult{
			Set:     name,
			Session: editor.ID(),
			Before:  before,
			After:   after,
			Changes: changes,
			Events:  history.Snapshot(),
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, result)
		}

		rows := make([][]string, 0, len(models.Roles))
		for _, r := range models.Roles {
			rows = append(rows, []string{
				string(r),
				string(before.Get(r)),
				string(after.Get(r)),
				before.Ratio(r),
				after.Ratio(r),
			})
		}
		if err := writeTable(out, []string{"ROLE", "BEFORE", "AFTER", "RATIO BEFORE", "RATIO AFTER"}, rows); err != nil {
			return err
		}
		for _, change := range changes {
			fmt.Fprintf(out, "\nchange: %s %s=%s\n", change.Name, change.Slot, change.Value)
		}
		return nil
	},
}

type editResult struct {
	Set     string            `json:"set"`
	Session string            `json:"session"`
	Before  colorset.State    `json:"before"`
	After   colorset.State    `json:"after"`
	Changes []colorset.Change `json:"changes"`
	Events  []models.Event    `json:"events"`
}
