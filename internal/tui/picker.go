package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/opencode-ai/swatch/internal/contrast"
	"github.com/opencode-ai/swatch/internal/models"
)

const (
	lightnessStep = 0.04
	hueStep       = 15.0
)

// picker edits the color of one role. It reports a hex color on commit.
type picker struct {
	role  models.Role
	input textinput.Model
	err   error
}

func newPicker(role models.Role, current models.Color) picker {
	input := textinput.New()
	input.Prompt = string(role) + ": "
	input.Placeholder = "#rrggbb"
	input.CharLimit = 7
	input.SetValue(string(current))
	input.CursorEnd()
	input.Focus()
	return picker{role: role, input: input}
}

// Update handles adjustment keys and passes everything else to the input.
func (p picker) Update(msg tea.KeyMsg) (picker, tea.Cmd) {
	switch msg.String() {
	case "up":
		return p.adjust(lightnessStep, 0), nil
	case "down":
		return p.adjust(-lightnessStep, 0), nil
	case "pgup":
		return p.adjust(0, hueStep), nil
	case "pgdown":
		return p.adjust(0, -hueStep), nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.err = nil
	return p, cmd
}

func (p picker) adjust(dl, dh float64) picker {
	next, err := adjustColor(models.Color(p.input.Value()), dl, dh)
	if err != nil {
		p.err = err
		return p
	}
	p.input.SetValue(string(next))
	p.input.CursorEnd()
	p.err = nil
	return p
}

// Value returns the entered color once it parses as hex.
func (p picker) Value() (models.Color, error) {
	value := models.Color(strings.TrimSpace(p.input.Value()))
	if !strings.HasPrefix(string(value), "#") {
		value = "#" + value
	}
	if _, err := contrast.Parse(value); err != nil {
		return "", err
	}
	return value, nil
}

func (p picker) View() string {
	return p.input.View()
}

// adjustColor shifts lightness and hue in HCL space and returns 6-digit hex.
func adjustColor(c models.Color, dl, dh float64) (models.Color, error) {
	rgb, err := contrast.Parse(c)
	if err != nil {
		return "", err
	}
	col := colorful.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
	h, chroma, l := col.Hcl()
	l = math.Max(0, math.Min(1, l+dl))
	h = math.Mod(h+dh+360, 360)
	return models.Color(colorful.Hcl(h, chroma, l).Clamped().Hex()), nil
}
