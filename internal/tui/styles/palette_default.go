package styles

import "github.com/opencode-ai/swatch/internal/models"

// DefaultTheme is the baseline palette.
var DefaultTheme = ThemeFromColorSet("default", defaultChrome, "#D29922", "#F85149")

var defaultChrome = models.ColorSet{
	Container: "#0b0f14",
	Accent:    "#5b8def",
	High:      "#e6edf3",
	Medium:    "#8b9aae",
	Low:       "#223043",
}
