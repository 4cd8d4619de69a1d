// Package colormix holds the fixed bilingual color palette and the linear
// color mixer used by the colormixer application.
package colormix

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// MatchTolerance is the per-channel slack allowed by Color.Equal. It is just
// under one 8-bit step, so a color that went through a #rrggbb round trip
// still matches the value it came from. Palette entries are at least 0.5 apart
// on some channel.
const MatchTolerance = 1.0 / 256.0

// ErrInvalidHex is returned when a hex color string cannot be parsed.
var ErrInvalidHex = errors.New("invalid hex color")

// Color is an RGBA color with channels conventionally in [0,1].
type Color struct {
	R, G, B, A float64
}

// RGBA builds an opaque or translucent color from its four channels.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Equal reports whether every channel of c is within MatchTolerance of other.
func (c Color) Equal(other Color) bool {
	return near(c.R, other.R) &&
		near(c.G, other.G) &&
		near(c.B, other.B) &&
		near(c.A, other.A)
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= MatchTolerance
}

// Clamped returns c with every channel clamped to [0,1].
func (c Color) Clamped() Color {
	return Color{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
		A: clamp01(c.A),
	}
}

// Hex returns the #rrggbb form of c. Alpha is dropped.
func (c Color) Hex() string {
	cc := c.Clamped()
	return colorful.Color{R: cc.R, G: cc.G, B: cc.B}.Hex()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%.3f, %.3f, %.3f, %.3f)", c.R, c.G, c.B, c.A)
}

// ParseHex parses #rgb or #rrggbb (the leading # is optional) into an opaque Color.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
	}
	return Color{R: cf.R, G: cf.G, B: cf.B, A: 1}, nil
}
