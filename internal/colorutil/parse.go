package colorutil

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"golang.org/x/image/colornames"
)

// Parse converts a textual color into a canonical Color.
//
// Accepted forms:
//   - CSS/SVG color names (case-insensitive) and "transparent"
//   - #rgb, #rgba, #rrggbb, #rrggbbaa
//   - rgb()/rgba() with comma or space separated arguments, numeric or percent
//     channels and an optional alpha
//   - hsl()/hsla() with deg, rad, grad or turn hue units
//
// Blank input yields ErrAbsent. Any other unparseable input yields an error
// wrapping ErrInvalidColorFormat.
func Parse(s string) (Color, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Color{}, ErrAbsent
	}
	v := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(v, "#"):
		return parseHex(raw, v)
	case strings.HasPrefix(v, "rgb"), strings.HasPrefix(v, "hsl"):
		return parseFunc(raw, v)
	}
	if v == "transparent" {
		return Color{A: 0}, nil
	}
	if named, ok := colornames.Map[v]; ok {
		return Color{R: named.R, G: named.G, B: named.B, A: 1}, nil
	}
	return Color{}, formatError(raw, "unknown color name")
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Resolve parses primary, consulting fallback only when primary is blank.
// An invalid primary is reported as such rather than replaced.
func Resolve(primary, fallback string) (Color, error) {
	c, err := Parse(primary)
	if errors.Is(err, ErrAbsent) {
		return Parse(fallback)
	}
	return c, err
}

func parseHex(raw, v string) (Color, error) {
	digits := v[1:]
	alpha := 1.0
	switch len(digits) {
	case 3, 6:
	case 4:
		n, err := strconv.ParseUint(strings.Repeat(digits[3:], 2), 16, 8)
		if err != nil {
			return Color{}, formatError(raw, "bad hex digit")
		}
		alpha = float64(n) / 255
		digits = digits[:3]
	case 8:
		n, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return Color{}, formatError(raw, "bad hex digit")
		}
		alpha = float64(n) / 255
		digits = digits[:6]
	default:
		return Color{}, formatError(raw, "hex color must have 3, 4, 6 or 8 digits")
	}
	for _, r := range digits {
		if !isHexDigit(r) {
			return Color{}, formatError(raw, "bad hex digit")
		}
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return Color{}, formatError(raw, err.Error())
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: roundAlpha(alpha)}, nil
}

// parseFunc hands rgb()/rgba() and hsl()/hsla() notation to csscolorparser,
// which covers comma and space separated arguments, percent channels, the
// slash alpha syntax and deg/rad/grad/turn hue units.
func parseFunc(raw, v string) (Color, error) {
	if strings.HasPrefix(v, "hsl") && !hslPercentages(v) {
		return Color{}, formatError(raw, "saturation and lightness must be percentages")
	}
	c, err := csscolorparser.Parse(v)
	if err != nil {
		return Color{}, formatError(raw, err.Error())
	}
	return Color{
		R: channel255(c.R),
		G: channel255(c.G),
		B: channel255(c.B),
		A: roundAlpha(clamp(c.A, 0, 1)),
	}, nil
}

// hslPercentages reports whether saturation and lightness carry a % unit.
// Argument count problems are left for the parser to report.
func hslPercentages(v string) bool {
	open := strings.IndexByte(v, '(')
	if open < 0 {
		return true
	}
	args := strings.FieldsFunc(strings.TrimSuffix(v[open+1:], ")"), func(r rune) bool {
		return r == ',' || r == '/' || unicode.IsSpace(r)
	})
	if len(args) < 3 {
		return true
	}
	return strings.HasSuffix(args[1], "%") && strings.HasSuffix(args[2], "%")
}

func channel255(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 1) * 255))
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

// roundAlpha keeps three decimals so 0xff-derived values land exactly on 1.
func roundAlpha(a float64) float64 {
	return math.Round(a*1000) / 1000
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}
