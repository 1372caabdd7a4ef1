package colorutil

import (
	"fmt"
	"math"
)

// Color is a canonical RGBA value. A is always within [0,1].
type Color struct {
	R uint8
	G uint8
	B uint8
	A float64
}

var (
	Black = Color{0, 0, 0, 1}
	White = Color{255, 255, 255, 1}
)

// Opaque reports whether the color has no transparency at all.
func (c Color) Opaque() bool {
	return c.A == 1
}

// Hex formats the color as #rrggbb, or #rrggbbaa when it is not opaque.
func (c Color) Hex() string {
	if c.Opaque() {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, uint8(math.Round(c.A*255)))
}

func (c Color) String() string {
	return c.Hex()
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func srgbToLinear(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance of c in [0,1].
// Alpha is ignored.
func RelativeLuminance(c Color) float64 {
	r := srgbToLinear(float64(c.R) / 255.0)
	g := srgbToLinear(float64(c.G) / 255.0)
	b := srgbToLinear(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns (Lmax+0.05)/(Lmin+0.05). The result is symmetric in
// its arguments and lies in [1,21].
func ContrastRatio(a, b Color) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Brightness is a perceived lightness estimate in [0,1] rounded to two
// decimals. It only orders colors against each other and must not be used in
// contrast math.
func Brightness(c Color) float64 {
	v := (299*float64(c.R) + 587*float64(c.G) + 114*float64(c.B)) / 1000 / 255
	return math.Round(v*100) / 100
}

func (c Color) Brightness() float64 {
	return Brightness(c)
}
