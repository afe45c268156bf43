// Package components provides reusable TUI components.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/swatch/internal/colormap"
)

// ButtonProps carries the non-color inputs of a themed button.
type ButtonProps struct {
	TextLabel string
	// Icon is a glyph identifier such as "add" or "send".
	Icon     string
	Disabled bool
}

var iconGlyphs = map[string]string{
	"add":    "+",
	"send":   "➤",
	"check":  "✓",
	"close":  "✕",
	"delete": "✗",
	"star":   "★",
}

// IconGlyph returns the terminal glyph for an icon identifier.
func IconGlyph(icon string) string {
	if glyph, ok := iconGlyphs[icon]; ok {
		return glyph
	}
	if icon == "" {
		return ""
	}
	return "•"
}

// RenderTextButton renders a borderless button on a transparent background.
func RenderTextButton(cm colormap.Text, props ButtonProps) string {
	return buttonContent(lipgloss.NewStyle(), cm, props)
}

// RenderFillButton renders a button on the container color.
func RenderFillButton(cm colormap.Fill, props ButtonProps) string {
	base := lipgloss.NewStyle().Background(lipgloss.Color(cm.Container()))
	return buttonContent(base, cm, props)
}

// RenderOutlineButton renders a filled button with a border in the outline color.
func RenderOutlineButton(cm colormap.Outline, props ButtonProps) string {
	base := lipgloss.NewStyle().Background(lipgloss.Color(cm.Container()))
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(cm.Outline())).
		BorderBackground(lipgloss.Color(cm.Container()))
	return frame.Render(buttonContent(base, cm, props))
}

// RenderButton renders cm as the given variant. A color map lacking the
// capabilities of its variant is rendered with the richest style it supports.
func RenderButton(variant colormap.Variant, cm colormap.Text, props ButtonProps) string {
	switch variant {
	case colormap.OutlineVariant:
		if outline, ok := cm.(colormap.Outline); ok {
			return RenderOutlineButton(outline, props)
		}
		fallthrough
	case colormap.FillVariant:
		if fill, ok := cm.(colormap.Fill); ok {
			return RenderFillButton(fill, props)
		}
	}
	return RenderTextButton(cm, props)
}

// buttonContent draws " icon label " with the icon and ink tints. Disabled
// buttons drop the bold weight; their colors come from the color map alone.
func buttonContent(base lipgloss.Style, cm colormap.Text, props ButtonProps) string {
	weight := !props.Disabled
	icon := base.Copy().Foreground(lipgloss.Color(cm.Icon())).Bold(weight)
	label := base.Copy().Foreground(lipgloss.Color(cm.Ink())).Bold(weight)
	pad := base.Copy()

	out := pad.Render(" ")
	if glyph := IconGlyph(props.Icon); glyph != "" {
		out += icon.Render(glyph) + pad.Render(" ")
	}
	return out + label.Render(props.TextLabel) + pad.Render(" ")
}
