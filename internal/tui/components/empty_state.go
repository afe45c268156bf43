// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/swatch/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	// Icon is an optional icon to display (e.g., "🎨", "🔍").
	Icon string
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are actionable commands the user can run.
	Suggestions []Suggestion
}

// Suggestion represents a suggested command with description.
type Suggestion struct {
	// Command is the key or CLI command to run (e.g., "n", "swatch sets").
	Command string
	// Description explains what the command does.
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	var lines []string

	// Icon + Title
	titleLine := e.Title
	if e.Icon != "" {
		titleLine = e.Icon + "  " + titleLine
	}
	lines = append(lines, styleSet.Muted.Render(titleLine))

	// Subtitle
	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	// Suggestions
	if len(e.Suggestions) > 0 {
		lines = append(lines, "")
		lines = append(lines, styleSet.Text.Render("Try:"))
		for _, s := range e.Suggestions {
			cmdLine := fmt.Sprintf("  %s", styleSet.Accent.Render(s.Command))
			if s.Description != "" {
				cmdLine += styleSet.Muted.Render(fmt.Sprintf("  # %s", s.Description))
			}
			lines = append(lines, cmdLine)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderCompact renders a compact single-line empty state.
func (e EmptyState) RenderCompact(styleSet styles.Styles) string {
	line := e.Title
	if e.Icon != "" {
		line = e.Icon + " " + line
	}
	if len(e.Suggestions) > 0 {
		line += fmt.Sprintf(" Try: %s", e.Suggestions[0].Command)
	}
	return styleSet.Muted.Render(line)
}

// Common empty states for reuse across views.

// EmptySets returns an empty state for when no color sets exist.
func EmptySets() EmptyState {
	return EmptyState{
		Icon:     "🎨",
		Title:    "No color sets yet",
		Subtitle: "A color set has a container and four on-colors.",
		Suggestions: []Suggestion{
			{Command: "n", Description: "create a set from the default palette"},
			{Command: "swatch sets", Description: "list the available presets"},
		},
	}
}

// EmptyPreview returns an empty state for a preview with no set chosen.
func EmptyPreview(key string) EmptyState {
	return EmptyState{
		Title: "Choose a color set",
		Suggestions: []Suggestion{
			{Command: key, Description: "cycle the previewed set"},
		},
	}
}

// EmptyHistory returns an empty state for when nothing was edited yet.
func EmptyHistory() EmptyState {
	return EmptyState{
		Title:    "No edits yet",
		Subtitle: "Pick a role and press enter to change its color.",
	}
}
