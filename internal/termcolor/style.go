package termcolor

import (
	"strconv"
	"strings"

	"github.com/phyten/contrastcheck/internal/colorutil"
)

// Paint is one SGR color at a given depth. The zero Paint leaves the
// terminal default in place.
type Paint struct {
	depth Profile
	index int
	rgb   [3]uint8
	set   bool
}

// Basic is one of the eight standard colors (0-7).
func Basic(i int) Paint { return Paint{depth: ProfileBasic8, index: i, set: true} }

// Indexed is an entry of the 256-color cube.
func Indexed(i int) Paint { return Paint{depth: ProfileANSI256, index: i, set: true} }

func RGB(r, g, b uint8) Paint {
	return Paint{depth: ProfileTrueColor, rgb: [3]uint8{r, g, b}, set: true}
}

// PaintFor approximates c at the given profile.
func PaintFor(c colorutil.Color, profile Profile) Paint {
	switch profile {
	case ProfileTrueColor:
		return RGB(c.R, c.G, c.B)
	case ProfileANSI256:
		return Indexed(rgbToANSI256(c.R, c.G, c.B))
	default:
		return Basic(nearestBasic(c.R, c.G, c.B))
	}
}

func (p Paint) IsSet() bool { return p.set }

// Depth reports which color model p uses.
func (p Paint) Depth() Profile { return p.depth }

// Index is the palette index of a Basic or Indexed paint.
func (p Paint) Index() int { return p.index }

// Triple is the value of an RGB paint.
func (p Paint) Triple() [3]uint8 { return p.rgb }

// sgr renders the paint for the foreground (base 30) or background (base 40).
func (p Paint) sgr(base int) string {
	switch p.depth {
	case ProfileTrueColor:
		return strconv.Itoa(base+8) + ";2;" + strconv.Itoa(int(p.rgb[0])) + ";" +
			strconv.Itoa(int(p.rgb[1])) + ";" + strconv.Itoa(int(p.rgb[2]))
	case ProfileANSI256:
		return strconv.Itoa(base+8) + ";5;" + strconv.Itoa(p.index)
	default:
		return strconv.Itoa(base + p.index)
	}
}

type Style struct {
	Bold      bool
	Underline bool
	Dim       bool
	FG        Paint
	BG        Paint
}

// Apply wraps text in the SGR sequence for s and a reset. It returns text
// unchanged when disabled or when s sets nothing.
func Apply(s Style, text string, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	codes := s.codes()
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}

func (s Style) codes() []string {
	var codes []string
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Dim {
		codes = append(codes, "2")
	}
	if s.Underline {
		codes = append(codes, "4")
	}
	if s.FG.set {
		codes = append(codes, s.FG.sgr(30))
	}
	if s.BG.set {
		codes = append(codes, s.BG.sgr(40))
	}
	return codes
}
