package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/swatch/internal/colorset"
	"github.com/opencode-ai/swatch/internal/models"
	"github.com/opencode-ai/swatch/internal/tui/styles"
)

const swatchBlock = "    "

// RenderSwatch renders one role as a color block, its value and its ratio
// against the container. The container row has no ratio.
func RenderSwatch(styleSet styles.Styles, role models.Role, color models.Color, ratio string, selected bool) string {
	block := lipgloss.NewStyle().Background(lipgloss.Color(color)).Render(swatchBlock)

	name := styleSet.Text.Render(fmt.Sprintf("%-9s", role))
	if selected {
		name = styleSet.Selected.Render(fmt.Sprintf("%-9s", role))
	}

	line := fmt.Sprintf("%s %s %s", block, name, styleSet.Muted.Render(fmt.Sprintf("%-8s", color)))
	if ratio != "" {
		line += " " + styleSet.Accent.Render(ratio+":1")
	}
	return line
}

// RenderColorSet renders all five roles of state. selected highlights one
// role; pass "" for none.
func RenderColorSet(styleSet styles.Styles, name string, state colorset.State, selected models.Role) []string {
	lines := []string{styleSet.Title.Render(name)}
	for _, role := range models.Roles {
		lines = append(lines, RenderSwatch(styleSet, role, state.Get(role), state.Ratio(role), role == selected))
	}
	return lines
}
