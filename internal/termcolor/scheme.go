package termcolor

import (
	"strconv"
	"strings"

	"github.com/phyten/contrastcheck/internal/colorutil"
)

type Scheme int

const (
	SchemeUnknown Scheme = iota
	SchemeDark
	SchemeLight
)

// xterm's default 16-color palette, indexed the way COLORFGBG reports it.
var ansiPalette = [16]colorutil.Color{
	{0x00, 0x00, 0x00, 1}, {0xcd, 0x00, 0x00, 1}, {0x00, 0xcd, 0x00, 1}, {0xcd, 0xcd, 0x00, 1},
	{0x00, 0x00, 0xee, 1}, {0xcd, 0x00, 0xcd, 1}, {0x00, 0xcd, 0xcd, 1}, {0xe5, 0xe5, 0xe5, 1},
	{0x7f, 0x7f, 0x7f, 1}, {0xff, 0x00, 0x00, 1}, {0x00, 0xff, 0x00, 1}, {0xff, 0xff, 0x00, 1},
	{0x5c, 0x5c, 0xff, 1}, {0xff, 0x00, 0xff, 1}, {0x00, 0xff, 0xff, 1}, {0xff, 0xff, 0xff, 1},
}

// DetectBackground reads the terminal background from COLORFGBG
// ("fg;bg" or "fg;default;bg"). ok is false when the variable is absent or
// names no palette entry.
func DetectBackground(env map[string]string) (colorutil.Color, bool) {
	raw := strings.TrimSpace(env["COLORFGBG"])
	if raw == "" {
		return colorutil.Color{}, false
	}
	parts := strings.Split(raw, ";")
	bgRaw := strings.TrimSpace(parts[len(parts)-1])
	if bgRaw == "" && len(parts) >= 2 {
		bgRaw = strings.TrimSpace(parts[len(parts)-2])
	}
	idx, err := strconv.Atoi(bgRaw)
	if err != nil || idx < 0 || idx >= len(ansiPalette) {
		return colorutil.Color{}, false
	}
	return ansiPalette[idx], true
}

// DetectScheme classifies the terminal background by its perceived
// brightness, falling back to a "light" hint in TERM and then to dark.
func DetectScheme(env map[string]string) Scheme {
	if bg, ok := DetectBackground(env); ok {
		return schemeOf(bg)
	}
	if strings.Contains(strings.ToLower(env["TERM"]), "light") {
		return SchemeLight
	}
	return SchemeDark
}

func schemeOf(bg colorutil.Color) Scheme {
	if colorutil.Brightness(bg) > 0.5 {
		return SchemeLight
	}
	return SchemeDark
}

// Background is a representative page color for the scheme.
func (s Scheme) Background() colorutil.Color {
	if s == SchemeLight {
		return colorutil.White
	}
	return colorutil.Black
}

// TerminalBackground is the color used for the "terminal" fallback: the
// palette entry COLORFGBG names, or the scheme's representative color.
func TerminalBackground(env map[string]string) colorutil.Color {
	if bg, ok := DetectBackground(env); ok {
		return bg
	}
	return DetectScheme(env).Background()
}
