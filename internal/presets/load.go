package presets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadPreset reads a single preset from disk.
func LoadPreset(path string) (*Preset, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("preset path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset %s: %w", path, err)
	}

	preset, err := parsePreset(data)
	if err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", path, err)
	}
	preset.Source = path
	return preset, nil
}

// LoadPresetsFromDir loads all presets from a directory. A missing directory
// yields no presets.
func LoadPresetsFromDir(dir string) ([]*Preset, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Preset{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Preset{}, nil
		}
		return nil, fmt.Errorf("read presets dir %s: %w", dir, err)
	}

	presets := make([]*Preset, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		preset, err := LoadPreset(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		presets = append(presets, preset)
	}

	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Name < presets[j].Name
	})

	return presets, nil
}

func parsePreset(data []byte) (*Preset, error) {
	var preset Preset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, err
	}

	preset.Name = strings.TrimSpace(preset.Name)
	if err := preset.Validate(); err != nil {
		return nil, err
	}
	return &preset, nil
}
