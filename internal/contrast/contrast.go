// Package contrast computes WCAG 2.0 contrast ratios between colors.
//
// Colors are decoded by parsing the hex digits after an optional leading
// "#" as a single integer and shifting out the red, green and blue bytes.
// A three digit value such as "#999" is therefore read as 0x000999, not
// expanded the way CSS expands it.
package contrast

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/opencode-ai/swatch/internal/models"
)

// ErrMalformedColor is returned by Parse for values that are not hex integers.
var ErrMalformedColor = errors.New("malformed color")

const linearThreshold = 0.03928

// RGB holds decoded channel values in [0,255].
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Parse decodes a hex color string, rejecting anything that is not hex.
func Parse(c models.Color) (RGB, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(string(c)), "#")
	if digits == "" || len(digits) > 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrMalformedColor, c)
	}
	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrMalformedColor, c)
	}
	return split(uint32(value)), nil
}

// Decode is the lenient form of Parse. Callers are expected to pass
// well-formed hex; anything else decodes as black.
func Decode(c models.Color) RGB {
	rgb, err := Parse(c)
	if err != nil {
		return RGB{}
	}
	return rgb
}

func split(value uint32) RGB {
	return RGB{
		R: uint8(value >> 16 & 0xff),
		G: uint8(value >> 8 & 0xff),
		B: uint8(value & 0xff),
	}
}

// Luminance returns the relative luminance of c.
func Luminance(c models.Color) float64 {
	rgb := Decode(c)
	r := linearize(float64(rgb.R) / 255)
	g := linearize(float64(rgb.G) / 255)
	b := linearize(float64(rgb.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(v float64) float64 {
	if v <= linearThreshold {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Value returns the contrast ratio between a and b, between 1 and 21.
func Value(a, b models.Color) float64 {
	l1 := Luminance(a) + 0.05
	l2 := Luminance(b) + 0.05
	return math.Max(l1, l2) / math.Min(l1, l2)
}

// Ratio returns the contrast ratio formatted to two decimal places, e.g. "4.50".
func Ratio(a, b models.Color) string {
	return strconv.FormatFloat(Value(a, b), 'f', 2, 64)
}
