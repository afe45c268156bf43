// Package cli implements the swatch command line.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/config"
	"github.com/opencode-ai/swatch/internal/logging"
)

// Version is set at build time.
var Version = "dev"

var (
	configPath     string
	logLevel       string
	jsonOutput     bool
	jsonlOutput    bool
	nonInteractive bool

	appConfig *config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:           "swatch",
	Short:         "Color set theming playground",
	Long:          "swatch edits named color sets, reports WCAG contrast ratios and previews themed buttons.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		appConfig = cfg

		var out io.Writer = os.Stderr
		if cmd == uiCmd && cfg.Logging.File == "" {
			out = io.Discard
		}
		closer, err := logging.Init(logging.Config{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			File:   cfg.Logging.File,
		}, out)
		if err != nil {
			return err
		}
		logCloser = closer
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ~/.config/swatch/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.BoolVar(&jsonlOutput, "jsonl", false, "output JSON lines")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt or start the TUI")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetConfig returns the loaded configuration, or nil before the root
// command has run.
func GetConfig() *config.Config {
	return appConfig
}
