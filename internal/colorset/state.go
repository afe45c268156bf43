// Package colorset maintains the editable state of one named color set and
// the contrast ratios derived from it.
package colorset

import (
	"github.com/opencode-ai/swatch/internal/contrast"
	"github.com/opencode-ai/swatch/internal/models"
)

// State is a ColorSet plus the contrast ratio of each on-color against the
// container. Ratios are never stale relative to the colors they describe.
type State struct {
	models.ColorSet

	AccentRatio string `json:"accent_ratio"`
	HighRatio   string `json:"high_ratio"`
	MediumRatio string `json:"medium_ratio"`
	LowRatio    string `json:"low_ratio"`
}

// NewState builds the initial state for set, computing all four ratios.
func NewState(set models.ColorSet) State {
	return State{
		ColorSet:    set,
		AccentRatio: contrast.Ratio(set.Container, set.Accent),
		HighRatio:   contrast.Ratio(set.Container, set.High),
		MediumRatio: contrast.Ratio(set.Container, set.Medium),
		LowRatio:    contrast.Ratio(set.Container, set.Low),
	}
}

// Set returns the underlying color set.
func (s State) Set() models.ColorSet {
	return s.ColorSet
}

// Ratio returns the cached ratio for an on-role, or "" for the container
// and unknown roles.
func (s State) Ratio(role models.Role) string {
	switch role {
	case models.RoleAccent:
		return s.AccentRatio
	case models.RoleHigh:
		return s.HighRatio
	case models.RoleMedium:
		return s.MediumRatio
	case models.RoleLow:
		return s.LowRatio
	default:
		return ""
	}
}

func (s State) withRatio(role models.Role, ratio string) State {
	switch role {
	case models.RoleAccent:
		s.AccentRatio = ratio
	case models.RoleHigh:
		s.HighRatio = ratio
	case models.RoleMedium:
		s.MediumRatio = ratio
	case models.RoleLow:
		s.LowRatio = ratio
	}
	return s
}
