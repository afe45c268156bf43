package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/swatch/internal/tui/styles"
)

// QuickAction represents a keyboard-triggered action.
type QuickAction struct {
	Key     string // Keyboard key (e.g., "n", "enter")
	Label   string // Display label (e.g., "New set")
	Enabled bool   // Whether the action is available
}

// RenderQuickActionBar renders a horizontal bar of available quick actions.
// Format: "n:New set  enter:Edit  q:Quit"
func RenderQuickActionBar(styleSet styles.Styles, actions []QuickAction) string {
	if len(actions) == 0 {
		return ""
	}

	var parts []string
	for _, action := range actions {
		if !action.Enabled {
			continue
		}
		keyStyle := styleSet.Accent.Copy().Bold(true)
		labelStyle := styleSet.Muted
		parts = append(parts, fmt.Sprintf("%s:%s", keyStyle.Render(action.Key), labelStyle.Render(action.Label)))
	}

	if len(parts) == 0 {
		return ""
	}

	return strings.Join(parts, "  ")
}

// BrowseActions returns the actions available while browsing sets.
func BrowseActions(hasSets bool) []QuickAction {
	return []QuickAction{
		{Key: "n", Label: "New set", Enabled: true},
		{Key: "tab", Label: "Next set", Enabled: hasSets},
		{Key: "↑/↓", Label: "Role", Enabled: hasSets},
		{Key: "enter", Label: "Pick color", Enabled: hasSets},
		{Key: "1/2/3", Label: "Preview set", Enabled: hasSets},
		{Key: "d", Label: "Disabled", Enabled: true},
		{Key: "q", Label: "Quit", Enabled: true},
	}
}

// PickerActions returns the actions available while the picker is open.
func PickerActions() []QuickAction {
	return []QuickAction{
		{Key: "enter", Label: "Apply", Enabled: true},
		{Key: "↑/↓", Label: "Lighter/Darker", Enabled: true},
		{Key: "pgup/pgdn", Label: "Hue", Enabled: true},
		{Key: "esc", Label: "Cancel", Enabled: true},
	}
}

// NewSetActions returns the actions available in the new set form.
func NewSetActions(canCreate bool) []QuickAction {
	return []QuickAction{
		{Key: "enter", Label: "Create", Enabled: canCreate},
		{Key: "ctrl+p", Label: "Preset", Enabled: true},
		{Key: "esc", Label: "Cancel", Enabled: true},
	}
}
