package termcolor

import (
	"math"

	"github.com/phyten/contrastcheck/internal/colorutil"
)

func HeaderStyle() Style {
	return Style{Bold: true, Underline: true}
}

// OutcomeStyle colors an outcome label. Light terminals get darker shades so
// the label itself stays readable.
func OutcomeStyle(outcome string, scheme Scheme, profile Profile) Style {
	var basic, ansi int
	var rgb [3]uint8
	switch outcome {
	case "pass":
		basic, ansi = 2, 34
		rgb = [3]uint8{80, 200, 120}
		if scheme == SchemeLight {
			ansi = 28
			rgb = [3]uint8{21, 128, 61}
		}
	case "fail":
		basic, ansi = 1, 203
		rgb = [3]uint8{248, 113, 113}
		if scheme == SchemeLight {
			ansi = 160
			rgb = [3]uint8{185, 28, 28}
		}
	default:
		return Style{Dim: true}
	}
	switch profile {
	case ProfileTrueColor:
		return Style{Bold: true, FG: RGB(rgb[0], rgb[1], rgb[2])}
	case ProfileANSI256:
		return Style{Bold: true, FG: Indexed(ansi)}
	default:
		return Style{Bold: true, FG: Basic(basic)}
	}
}

// RatioStyle shades a ratio from red (1:1) to green (at or above required).
// The basic profile only has the two endpoints.
func RatioStyle(ratio, required float64, profile Profile) Style {
	if profile == ProfileBasic8 {
		if ratio >= required {
			return Style{FG: Basic(2)}
		}
		return Style{FG: Basic(1)}
	}
	r, g, b := gradientRGB(ratio-1, required-1)
	return Style{FG: PaintFor(colorutil.Color{R: r, G: g, B: b, A: 1}, profile)}
}

// SwatchStyle paints the foreground with c, for a block-character sample.
func SwatchStyle(c colorutil.Color, profile Profile) Style {
	return Style{FG: PaintFor(c, profile)}
}

// PreviewStyle renders text in fg on bg.
func PreviewStyle(bg, fg colorutil.Color, profile Profile) Style {
	return Style{FG: PaintFor(fg, profile), BG: PaintFor(bg, profile)}
}

func gradientRGB(value, max float64) (uint8, uint8, uint8) {
	if max <= 0 {
		max = 1
	}
	t := value / max
	if t <= 0 {
		return 255, 0, 0
	}
	if t >= 1 {
		return 0, 255, 0
	}
	if t < 0.5 {
		ratio := t / 0.5
		g := uint8(math.Round(255 * ratio))
		return 255, g, 0
	}
	ratio := (t - 0.5) / 0.5
	r := uint8(math.Round(255 * (1 - ratio)))
	return r, 255, 0
}

func nearestBasic(r, g, b uint8) int {
	color := 0
	if r >= 128 {
		color |= 1
	}
	if g >= 128 {
		color |= 2
	}
	if b >= 128 {
		color |= 4
	}
	return color
}

func rgbToANSI256(r, g, b uint8) int {
	if r == g && g == b {
		if r < 8 {
			return 16
		}
		if r > 248 {
			return 231
		}
		return 232 + (int(r)-8)*24/247
	}
	rr := int(r) * 5 / 255
	gg := int(g) * 5 / 255
	bb := int(b) * 5 / 255
	return 16 + 36*rr + 6*gg + bb
}
