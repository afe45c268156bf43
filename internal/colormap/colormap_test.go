package colormap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/swatch/internal/models"
)

func TestTextDefaultProjectsAccent(t *testing.T) {
	cm := NewTextDefault(models.DefaultColorSet)

	require.Equal(t, models.Color("#6200ee"), cm.Ink())
	require.Equal(t, models.Color("#6200ee"), cm.Icon())
}

func TestTextDisabledProjectsMedium(t *testing.T) {
	set := models.DefaultColorSet
	cm := NewTextDisabled(set)
	require.Equal(t, models.Color("#424242"), cm.Ink())
	require.Equal(t, models.Color("#424242"), cm.Icon())

	set.Accent = "#ff0000"
	cm = NewTextDisabled(set)
	require.Equal(t, models.Color("#424242"), cm.Ink())
}

func TestOutlineExtendsFill(t *testing.T) {
	set := models.DefaultColorSet
	fill := NewFillDefault(set)
	outline := NewOutlineDefault(set)

	require.Equal(t, fill.Container(), outline.Container())
	require.Equal(t, fill.Ink(), outline.Ink())
	require.Equal(t, fill.Icon(), outline.Icon())
	require.Equal(t, set.Low, outline.Outline())
	require.Equal(t, set.Container, fill.Container())
}

func TestDisabledVariantsKeepContainerAndOutline(t *testing.T) {
	set := models.DefaultColorSet

	fill := NewFillDisabled(set)
	require.Equal(t, set.Medium, fill.Ink())
	require.Equal(t, set.Container, fill.Container())

	outline := NewOutlineDisabled(set)
	require.Equal(t, set.Medium, outline.Icon())
	require.Equal(t, set.Container, outline.Container())
	require.Equal(t, set.Low, outline.Outline())
}

func TestConstructionDoesNotMutateSet(t *testing.T) {
	set := models.DefaultColorSet
	before := set

	for _, variant := range Variants {
		for _, state := range []State{Default, Disabled} {
			cm := New(variant, state, set)
			_ = cm.Ink()
			_ = cm.Icon()
		}
	}

	require.Equal(t, before, set)
}

func TestColorMapCapturesSetValue(t *testing.T) {
	set := models.DefaultColorSet
	cm := NewFillDefault(set)

	set.Accent = "#000000"
	require.Equal(t, models.Color("#6200ee"), cm.Ink())
}

func TestNewReturnsVariantCapabilities(t *testing.T) {
	set := models.DefaultColorSet

	_, isFill := New(TextVariant, Default, set).(Fill)
	require.False(t, isFill)

	fill, ok := New(FillVariant, Default, set).(Fill)
	require.True(t, ok)
	require.Equal(t, set.Container, fill.Container())
	_, isOutline := fill.(Outline)
	require.False(t, isOutline)

	outline, ok := New(OutlineVariant, Disabled, set).(Outline)
	require.True(t, ok)
	require.Equal(t, set.Medium, outline.Ink())
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("outline")
	require.NoError(t, err)
	require.Equal(t, OutlineVariant, v)

	_, err = ParseVariant("ghost")
	require.Error(t, err)
}
