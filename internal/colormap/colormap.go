// Package colormap projects a ColorSet onto the colors each button variant
// needs. Renderers query a color map and never read ColorSet fields.
package colormap

import (
	"fmt"

	"github.com/opencode-ai/swatch/internal/models"
)

// Text is the capability set of a text button: ink and icon tints.
type Text interface {
	Ink() models.Color
	Icon() models.Color
}

// Fill adds a container background to Text.
type Fill interface {
	Text
	Container() models.Color
}

// Outline adds a border color to Fill.
type Outline interface {
	Fill
	Outline() models.Color
}

// State selects the emphasis of a color map.
type State int

const (
	// Default projects ink and icon onto the accent role.
	Default State = iota
	// Disabled projects ink and icon onto the medium role.
	Disabled
)

func (s State) String() string {
	if s == Disabled {
		return "disabled"
	}
	return "default"
}

// Variant names a button style.
type Variant string

const (
	TextVariant    Variant = "text"
	FillVariant    Variant = "fill"
	OutlineVariant Variant = "outline"
)

// Variants lists the button styles in display order.
var Variants = []Variant{TextVariant, FillVariant, OutlineVariant}

// ParseVariant converts a variant name into a Variant.
func ParseVariant(name string) (Variant, error) {
	for _, v := range Variants {
		if string(v) == name {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown button variant %q", name)
}

// textMap is the base projection shared by every variant.
type textMap struct {
	set   models.ColorSet
	state State
}

func (m textMap) emphasis() models.Color {
	if m.state == Disabled {
		return m.set.Medium
	}
	return m.set.Accent
}

func (m textMap) Ink() models.Color  { return m.emphasis() }
func (m textMap) Icon() models.Color { return m.emphasis() }

type fillMap struct {
	textMap
}

func (m fillMap) Container() models.Color { return m.set.Container }

type outlineMap struct {
	fillMap
}

func (m outlineMap) Outline() models.Color { return m.set.Low }

// NewText returns the text projection of set in the given state.
func NewText(set models.ColorSet, state State) Text {
	return textMap{set: set, state: state}
}

// NewFill returns the fill projection of set in the given state.
func NewFill(set models.ColorSet, state State) Fill {
	return fillMap{textMap{set: set, state: state}}
}

// NewOutline returns the outline projection of set in the given state.
func NewOutline(set models.ColorSet, state State) Outline {
	return outlineMap{fillMap{textMap{set: set, state: state}}}
}

// Shorthand constructors for each variant and state.
func NewTextDefault(set models.ColorSet) Text { return NewText(set, Default) }
func NewTextDisabled(set models.ColorSet) Text { return NewText(set, Disabled) }
func NewFillDefault(set models.ColorSet) Fill { return NewFill(set, Default) }
func NewFillDisabled(set models.ColorSet) Fill { return NewFill(set, Disabled) }
func NewOutlineDefault(set models.ColorSet) Outline { return NewOutline(set, Default) }
func NewOutlineDisabled(set models.ColorSet) Outline { return NewOutline(set, Disabled) }

// New builds the color map for variant. The result can be asserted to Fill
// or Outline for those variants. An unknown variant falls back to Text.
func New(variant Variant, state State, set models.ColorSet) Text {
	switch variant {
	case FillVariant:
		return NewFill(set, state)
	case OutlineVariant:
		return NewOutline(set, state)
	default:
		return NewText(set, state)
	}
}
