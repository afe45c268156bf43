package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/swatch/internal/models"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "default", cfg.TUI.Theme)
	require.Equal(t, models.DefaultColorSet, cfg.DefaultSet)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `logging:
  level: debug
  format: json
tui:
  theme: high-contrast
default_set:
  container: "#000000"
  accent: "#bb86fc"
presets:
  dirs:
    - /tmp/swatch-presets
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
	require.Equal(t, "high-contrast", cfg.TUI.Theme)
	require.Equal(t, models.Color("#000000"), cfg.DefaultSet.Container)
	require.Equal(t, models.Color("#bb86fc"), cfg.DefaultSet.Accent)
	require.Equal(t, models.DefaultColorSet.Low, cfg.DefaultSet.Low)
	require.Equal(t, []string{"/tmp/swatch-presets"}, cfg.Presets.Dirs)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SWATCH_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeConfig(t, `tui:
  theme: neon
default_set:
  accent: "rgba(1, 2, 3, 1)"
`)

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "tui.theme")
	require.Contains(t, err.Error(), "default_set.accent")
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
