package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/opencode-ai/swatch/internal/presets"
	"github.com/opencode-ai/swatch/internal/tui"
)

var uiPresets []string

func init() {
	rootCmd.AddCommand(uiCmd)
	uiCmd.Flags().StringSliceVar(&uiPresets, "preset", nil, "create a set from this preset on launch (repeatable)")
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the color set playground",
	Long:  "Launch the swatch terminal playground for creating, editing and previewing color sets.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "TUI requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use CLI subcommands",
			NextStep: "swatch --help",
		}
	}

	available, err := loadPresets()
	if err != nil {
		return err
	}

	tuiConfig := tui.Config{
		Presets:     available,
		InitialSets: uiPresets,
	}
	if cfg := GetConfig(); cfg != nil {
		tuiConfig.Theme = cfg.TUI.Theme
		tuiConfig.DefaultSet = cfg.DefaultSet
	}

	return tui.RunWithConfig(tuiConfig)
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func loadPresets() ([]*presets.Preset, error) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	var dirs []string
	if cfg := GetConfig(); cfg != nil {
		dirs = cfg.Presets.Dirs
	}
	return presets.LoadFromSearchPaths(cwd, dirs...)
}
