package components

import (
	"github.com/opencode-ai/swatch/internal/tui/styles"
)

// SetSelectorPrompt is shown until a color set is chosen.
const SetSelectorPrompt = "Choose a color set"

// RenderSetSelector renders the selected set name between cycle arrows.
func RenderSetSelector(styleSet styles.Styles, selected string, available []string) string {
	if len(available) == 0 {
		return styleSet.Muted.Render("No color sets yet")
	}
	if selected == "" {
		return styleSet.Muted.Render("‹ " + SetSelectorPrompt + " ›")
	}
	return styleSet.Muted.Render("‹ ") + styleSet.Accent.Render(selected) + styleSet.Muted.Render(" ›")
}

// NextSet returns the name after current in available, wrapping around. An
// empty current selects the first set.
func NextSet(current string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	for i, name := range available {
		if name == current {
			return available[(i+1)%len(available)]
		}
	}
	return available[0]
}
