package styles

import "github.com/opencode-ai/swatch/internal/models"

// HighContrastTheme favors visibility on low-contrast terminals.
var HighContrastTheme = ThemeFromColorSet("high-contrast", highContrastChrome, "#FFB000", "#FF4040")

var highContrastChrome = models.ColorSet{
	Container: "#000000",
	Accent:    "#00a2ff",
	High:      "#ffffff",
	Medium:    "#c0c0c0",
	Low:       "#ffffff",
}
