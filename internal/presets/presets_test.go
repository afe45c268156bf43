package presets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/swatch/internal/models"
)

func TestLoadBuiltinPresets(t *testing.T) {
	presets, err := LoadBuiltinPresets()
	require.NoError(t, err)
	require.Len(t, presets, 3)

	material, err := Find(presets, "material")
	require.NoError(t, err)
	require.Equal(t, models.DefaultColorSet, material.Colors)
	require.Equal(t, "builtin", material.Source)
}

func TestLoadPresetRejectsBadColors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	body := `name: bad
colors:
  container: "#ffffff"
  accent: "rgba(0, 0, 0, 1)"
  high: "#000"
  medium: "#111"
  low: "#222"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	_, err := LoadPreset(path)
	require.Error(t, err)
}

func TestLoadPresetRequiresName(t *testing.T) {
	_, err := parsePreset([]byte("colors: {}\n"))
	require.True(t, errors.Is(err, ErrPresetNameRequired))
}

func TestSearchPathPrecedence(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	body := `name: material
description: overridden
colors:
  container: "#000000"
  accent: "#ff0000"
  high: "#ffffff"
  medium: "#cccccc"
  low: "#888888"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "material.yml"), []byte(body), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	presets, err := LoadFromSearchPaths("", dir)
	require.NoError(t, err)
	require.Len(t, presets, 3)

	material, err := Find(presets, "material")
	require.NoError(t, err)
	require.Equal(t, "overridden", material.Description)
	require.Equal(t, filepath.Join(dir, "material.yml"), material.Source)
}

func TestFindMissing(t *testing.T) {
	_, err := Find(nil, "nope")
	require.True(t, errors.Is(err, ErrPresetNotFound))
}

func TestLoadPresetsFromMissingDir(t *testing.T) {
	presets, err := LoadPresetsFromDir(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	require.Empty(t, presets)
}
