package termcolor

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

func (m ColorMode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

func ParseMode(v string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("unknown color mode: %s", v)
	}
}

// Profile is how many colors the terminal can show. Swatches and previews
// are approximated down to it.
type Profile int

const (
	ProfileBasic8 Profile = iota
	ProfileANSI256
	ProfileTrueColor
)

// EnvKeys lists the variables the detectors read.
var EnvKeys = []string{
	"TERM", "TERM_PROGRAM", "COLORTERM", "COLORFGBG",
	"NO_COLOR", "CLICOLOR", "CLICOLOR_FORCE", "FORCE_COLOR",
}

// Env snapshots EnvKeys through getenv. Blank variables are left out.
func Env(getenv func(string) string) map[string]string {
	env := make(map[string]string, len(EnvKeys))
	if getenv == nil {
		return env
	}
	for _, key := range EnvKeys {
		if v := getenv(key); v != "" {
			env[key] = v
		}
	}
	return env
}

// fder is satisfied by *os.File.
type fder interface {
	Fd() uintptr
}

// DetectMode resolves auto mode for w. The first matching rule wins:
//  1. TERM=dumb, NO_COLOR or CLICOLOR=0 disable colors.
//  2. A non-zero CLICOLOR_FORCE or FORCE_COLOR enables them.
//  3. Otherwise colors follow whether w is a terminal.
func DetectMode(w io.Writer, env map[string]string) ColorMode {
	if w == nil {
		return ModeNever
	}
	if strings.EqualFold(strings.TrimSpace(env["TERM"]), "dumb") ||
		strings.TrimSpace(env["NO_COLOR"]) != "" ||
		strings.TrimSpace(env["CLICOLOR"]) == "0" {
		return ModeNever
	}
	if forceColor(env["CLICOLOR_FORCE"]) || forceColor(env["FORCE_COLOR"]) {
		return ModeAlways
	}
	if isTerminal(w) {
		return ModeAlways
	}
	return ModeNever
}

// Enabled reports whether mode emits colors on w.
func Enabled(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return isTerminal(w)
	}
}

var trueColorPrograms = map[string]struct{}{
	"iterm.app": {}, "wezterm": {}, "vscode": {}, "ghostty": {},
}

// DetectProfile reads COLORTERM, TERM_PROGRAM and TERM. Unknown terminals
// get the basic 8 colors.
func DetectProfile(env map[string]string) Profile {
	colorterm := strings.ToLower(strings.TrimSpace(env["COLORTERM"]))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") || strings.Contains(colorterm, "24-bit") {
		return ProfileTrueColor
	}
	if _, ok := trueColorPrograms[strings.ToLower(strings.TrimSpace(env["TERM_PROGRAM"]))]; ok {
		return ProfileTrueColor
	}
	termName := strings.ToLower(strings.TrimSpace(env["TERM"]))
	switch {
	case strings.Contains(termName, "direct"):
		return ProfileTrueColor
	case strings.Contains(termName, "256color"):
		return ProfileANSI256
	}
	return ProfileBasic8
}

// Terminal is everything a renderer needs to know about an output stream.
type Terminal struct {
	Color   bool
	Profile Profile
	Scheme  Scheme
	Width   int
}

const defaultWidth = 80

// Detect resolves setting ("auto", "always" or "never") against w and env.
// An unparseable setting behaves like auto. Width is the terminal's column
// count, or 80 when w is not a terminal.
func Detect(w io.Writer, setting string, env map[string]string) Terminal {
	mode, err := ParseMode(setting)
	if err != nil {
		mode = ModeAuto
	}
	if mode == ModeAuto {
		mode = DetectMode(w, env)
	}
	t := Terminal{
		Color:   Enabled(mode, w),
		Profile: DetectProfile(env),
		Scheme:  DetectScheme(env),
		Width:   defaultWidth,
	}
	if f, ok := w.(fder); ok && isTerminal(w) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 20 {
			t.Width = cols
		}
	}
	return t
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func forceColor(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "0"
}
