package presets

import (
	"os"
	"path/filepath"
)

// SearchPaths returns preset directories in precedence order: extra
// directories first, then the project and user locations.
func SearchPaths(projectDir string, extra ...string) []string {
	paths := make([]string, 0, len(extra)+2)
	paths = append(paths, extra...)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".swatch", "presets"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "swatch", "presets"))
	}
	return paths
}

// LoadFromSearchPaths loads presets with first-hit precedence, falling back
// to the builtins for names no directory defines.
func LoadFromSearchPaths(projectDir string, extra ...string) ([]*Preset, error) {
	seen := make(map[string]*Preset)
	order := make([]string, 0)

	add := func(presets []*Preset) {
		for _, preset := range presets {
			if _, exists := seen[preset.Name]; exists {
				continue
			}
			seen[preset.Name] = preset
			order = append(order, preset.Name)
		}
	}

	for _, path := range SearchPaths(projectDir, extra...) {
		presets, err := LoadPresetsFromDir(path)
		if err != nil {
			return nil, err
		}
		add(presets)
	}

	builtins, err := LoadBuiltinPresets()
	if err != nil {
		return nil, err
	}
	add(builtins)

	resolved := make([]*Preset, 0, len(order))
	for _, name := range order {
		resolved = append(resolved, seen[name])
	}
	return resolved, nil
}
