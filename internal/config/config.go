// Package config loads swatch configuration from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/opencode-ai/swatch/internal/contrast"
	"github.com/opencode-ai/swatch/internal/models"
)

// EnvPrefix is the prefix for environment overrides, e.g. SWATCH_LOGGING_LEVEL.
const EnvPrefix = "SWATCH"

// Config is the full application configuration.
type Config struct {
	Logging    LoggingConfig   `mapstructure:"logging"`
	TUI        TUIConfig       `mapstructure:"tui"`
	DefaultSet models.ColorSet `mapstructure:"default_set"`
	Presets    PresetsConfig   `mapstructure:"presets"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// TUIConfig controls the terminal playground.
type TUIConfig struct {
	// Theme is the chrome palette: "default" or "high-contrast".
	Theme string `mapstructure:"theme"`
}

// PresetsConfig lists extra preset directories searched before the defaults.
type PresetsConfig struct {
	Dirs []string `mapstructure:"dirs"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		TUI: TUIConfig{
			Theme: "default",
		},
		DefaultSet: models.DefaultColorSet,
	}
}

// DefaultPath returns ~/.config/swatch/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "swatch", "config.yaml")
}

// Load reads configuration from path (or the default location when empty),
// applies environment overrides and validates the result. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			switch {
			case errors.As(err, &notFound):
			case !explicit && errors.Is(err, os.ErrNotExist):
			default:
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.file", "")
	v.SetDefault("tui.theme", def.TUI.Theme)
	v.SetDefault("presets.dirs", []string{})
	for _, role := range models.Roles {
		v.SetDefault("default_set."+string(role), string(def.DefaultSet.Get(role)))
	}
}

// Validate checks the configuration for values the rest of swatch cannot use.
func (c *Config) Validate() error {
	validation := &models.ValidationErrors{}
	switch c.TUI.Theme {
	case "default", "high-contrast":
	default:
		validation.AddMessage("tui.theme", fmt.Sprintf("unknown theme %q", c.TUI.Theme))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		validation.AddMessage("logging.format", fmt.Sprintf("unknown format %q", c.Logging.Format))
	}
	for _, role := range models.Roles {
		if _, err := contrast.Parse(c.DefaultSet.Get(role)); err != nil {
			validation.AddMessage("default_set."+string(role), err.Error())
		}
	}
	return validation.Err()
}
