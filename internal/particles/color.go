package particles

import (
	"fmt"
	"strconv"
	"strings"
)

// RGBA is a colour with a fractional alpha, the way canvas and CSS take it.
type RGBA struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

// Theme colours, as named in the stylesheet.
var (
	NeonBlue      = mustHex("#00f3ff")
	RoyalAmethyst = mustHex("#8b5cf6")
	AmethystLight = mustHex("#d946ef")
	ChampagneGold = mustHex("#d4af37")
	DeepVoid      = mustHex("#050505")
)

func mustHex(s string) RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseHex reads "#rrggbb" or "rrggbb" as an opaque colour.
func ParseHex(s string) (RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGBA{}, fmt.Errorf("colour %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 1}, nil
}

// WithAlpha returns c with its alpha multiplied by a, clamped to [0,1].
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = clamp(c.A*a, 0, 1)
	return c
}

// Hex formats the colour channels as "#rrggbb", ignoring alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CSS formats the colour as an rgba() string.
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', 3, 64))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
