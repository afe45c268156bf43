package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/swatch/internal/contrast"
	"github.com/opencode-ai/swatch/internal/models"
)

func TestAdjustColorLightness(t *testing.T) {
	lighter, err := adjustColor("#424242", 0.1, 0)
	require.NoError(t, err)
	require.Greater(t, contrast.Luminance(lighter), contrast.Luminance("#424242"))

	darker, err := adjustColor("#424242", -0.1, 0)
	require.NoError(t, err)
	require.Less(t, contrast.Luminance(darker), contrast.Luminance("#424242"))
}

func TestAdjustColorClampsAtWhite(t *testing.T) {
	white, err := adjustColor("#ffffff", 0.5, 0)
	require.NoError(t, err)
	require.Equal(t, models.Color("#ffffff"), white)
}

func TestAdjustColorRejectsMalformed(t *testing.T) {
	_, err := adjustColor("rgba(0,0,0,1)", 0.1, 0)
	require.True(t, errors.Is(err, contrast.ErrMalformedColor))
}

func TestPickerValue(t *testing.T) {
	p := newPicker(models.RoleAccent, "#6200ee")
	value, err := p.Value()
	require.NoError(t, err)
	require.Equal(t, models.Color("#6200ee"), value)

	p.input.SetValue("ff0000")
	value, err = p.Value()
	require.NoError(t, err)
	require.Equal(t, models.Color("#ff0000"), value)

	p.input.SetValue("#zz")
	_, err = p.Value()
	require.Error(t, err)
}

func TestPickerArrowKeysAdjust(t *testing.T) {
	p := newPicker(models.RoleHigh, "#424242")

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	value, err := p.Value()
	require.NoError(t, err)
	require.NotEqual(t, models.Color("#424242"), value)
	require.Len(t, string(value), 7)
}
