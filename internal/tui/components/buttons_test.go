package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/swatch/internal/colormap"
	"github.com/opencode-ai/swatch/internal/models"
)

// spyMap records which accessors a renderer queried.
type spyMap struct {
	calls map[string]int
}

func newSpyMap() *spyMap {
	return &spyMap{calls: map[string]int{}}
}

func (s *spyMap) Ink() models.Color       { s.calls["ink"]++; return "#6200ee" }
func (s *spyMap) Icon() models.Color      { s.calls["icon"]++; return "#6200ee" }
func (s *spyMap) Container() models.Color { s.calls["container"]++; return "#ffffff" }
func (s *spyMap) Outline() models.Color   { s.calls["outline"]++; return "#999" }

func TestTextButtonUsesInkAndIconOnly(t *testing.T) {
	spy := newSpyMap()
	out := RenderTextButton(spy, ButtonProps{TextLabel: "Text Button", Icon: "add"})

	require.Contains(t, out, "Text Button")
	require.Contains(t, out, "+")
	require.Equal(t, 1, spy.calls["ink"])
	require.Equal(t, 1, spy.calls["icon"])
	require.Zero(t, spy.calls["container"])
	require.Zero(t, spy.calls["outline"])
}

func TestFillButtonUsesContainer(t *testing.T) {
	spy := newSpyMap()
	out := RenderFillButton(spy, ButtonProps{TextLabel: "Fill Button", Icon: "add"})

	require.Contains(t, out, "Fill Button")
	require.NotZero(t, spy.calls["container"])
	require.Zero(t, spy.calls["outline"])
}

func TestOutlineButtonDrawsBorder(t *testing.T) {
	spy := newSpyMap()
	out := RenderOutlineButton(spy, ButtonProps{TextLabel: "Outline Button", Icon: "send"})

	require.Contains(t, out, "Outline Button")
	require.Contains(t, out, "➤")
	require.Equal(t, 3, len(strings.Split(out, "\n")))
	require.NotZero(t, spy.calls["outline"])
}

func TestDisabledDoesNotChangeColorQueries(t *testing.T) {
	enabled := newSpyMap()
	disabled := newSpyMap()

	RenderOutlineButton(enabled, ButtonProps{TextLabel: "x"})
	RenderOutlineButton(disabled, ButtonProps{TextLabel: "x", Disabled: true})

	require.Equal(t, enabled.calls, disabled.calls)
}

func TestRenderButtonDispatchesOnVariant(t *testing.T) {
	set := models.DefaultColorSet
	props := ButtonProps{TextLabel: "Label"}

	outline := RenderButton(colormap.OutlineVariant, colormap.NewOutlineDefault(set), props)
	require.Equal(t, 3, len(strings.Split(outline, "\n")))

	// A fill map asked to render as outline degrades to a fill button.
	degraded := RenderButton(colormap.OutlineVariant, colormap.NewFillDefault(set), props)
	require.Equal(t, 1, len(strings.Split(degraded, "\n")))

	text := RenderButton(colormap.TextVariant, colormap.NewOutlineDefault(set), props)
	require.Contains(t, text, "Label")
}

func TestIconGlyph(t *testing.T) {
	require.Equal(t, "+", IconGlyph("add"))
	require.Equal(t, "•", IconGlyph("unknown"))
	require.Equal(t, "", IconGlyph(""))
}
