// Package styles derives the playground chrome from color sets.
package styles

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/opencode-ai/swatch/internal/models"
)

// ThemeTokens defines the semantic color roles for the TUI chrome.
type ThemeTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Warning    string
	Error      string
}

// Theme bundles a palette with a name.
type Theme struct {
	Name   string
	Tokens ThemeTokens
}

// Themes lists available palettes by name.
var Themes = map[string]Theme{
	"default":       DefaultTheme,
	"high-contrast": HighContrastTheme,
}

// Lookup returns the named theme, falling back to DefaultTheme.
func Lookup(name string) Theme {
	if theme, ok := Themes[name]; ok {
		return theme
	}
	return DefaultTheme
}

// ThemeFromColorSet maps the five color set roles onto chrome tokens. The
// panel is the container nudged toward the high-emphasis color and focus is
// a lightened accent.
func ThemeFromColorSet(name string, set models.ColorSet, warning, errColor string) Theme {
	return Theme{
		Name: name,
		Tokens: ThemeTokens{
			Background: string(set.Container),
			Panel:      blend(set.Container, set.High, 0.06),
			Text:       string(set.High),
			TextMuted:  string(set.Medium),
			Border:     string(set.Low),
			Accent:     string(set.Accent),
			Focus:      blend(set.Accent, "#ffffff", 0.25),
			Warning:    warning,
			Error:      errColor,
		},
	}
}

// blend mixes a toward b in Lab space. Unparsable input returns a unchanged.
func blend(a, b models.Color, t float64) string {
	ca, err := colorful.Hex(string(a))
	if err != nil {
		return string(a)
	}
	cb, err := colorful.Hex(string(b))
	if err != nil {
		return string(a)
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}
