// Package presets provides named color set presets that seed new sets.
package presets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opencode-ai/swatch/internal/contrast"
	"github.com/opencode-ai/swatch/internal/models"
)

var (
	// ErrPresetNameRequired is returned when a preset has no name.
	ErrPresetNameRequired = errors.New("preset name is required")
	// ErrPresetNotFound is returned when no preset matches a name.
	ErrPresetNotFound = errors.New("preset not found")
)

// Preset is a named, described color set.
type Preset struct {
	Name        string          `yaml:"name" json:"name"`
	Description string          `yaml:"description" json:"description,omitempty"`
	Colors      models.ColorSet `yaml:"colors" json:"colors"`
	Source      string          `yaml:"-" json:"source"` // file path or "builtin"
}

// Validate checks that the preset is named and every color parses.
func (p *Preset) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrPresetNameRequired
	}
	if err := p.Colors.Validate(); err != nil {
		return fmt.Errorf("preset %s: %w", p.Name, err)
	}
	for _, role := range models.Roles {
		if _, err := contrast.Parse(p.Colors.Get(role)); err != nil {
			return fmt.Errorf("preset %s %s: %w", p.Name, role, err)
		}
	}
	return nil
}

// Find returns the preset called name.
func Find(presets []*Preset, name string) (*Preset, error) {
	for _, preset := range presets {
		if preset.Name == name {
			return preset, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
}
