// Package textutil measures and lays out terminal text by display cells.
package textutil

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// CSI and OSC escape sequences.
var ansiRe = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

// StripANSI removes escape sequences so only printable text remains.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return ansiRe.ReplaceAllString(s, "")
}

// cell is one grapheme cluster and the number of columns it occupies.
type cell struct {
	text  string
	width int
}

func cells(s string) []cell {
	var out []cell
	g := uniseg.NewGraphemes(StripANSI(s))
	for g.Next() {
		seg := g.Str()
		out = append(out, cell{text: seg, width: runewidth.StringWidth(seg)})
	}
	return out
}

// VisibleWidth returns the number of terminal columns s occupies.
func VisibleWidth(s string) int {
	width := 0
	for _, c := range cells(s) {
		width += c.width
	}
	return width
}

// TruncateByWidth cuts s to at most w columns without splitting a grapheme.
// When s is cut, ellipsis is appended if it fits within w.
func TruncateByWidth(s string, w int, ellipsis string) string {
	if w <= 0 {
		return ""
	}
	if VisibleWidth(s) <= w {
		return s
	}
	limit := w
	ellW := runewidth.StringWidth(ellipsis)
	if ellipsis != "" && ellW <= w {
		limit = w - ellW
	} else {
		ellipsis = ""
	}
	var b strings.Builder
	used := 0
	for _, c := range cells(s) {
		if used+c.width > limit {
			break
		}
		b.WriteString(c.text)
		used += c.width
	}
	return b.String() + ellipsis
}

// PadRight pads s with spaces up to w columns.
func PadRight(s string, w int) string {
	if pad := w - VisibleWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// WrapByWidth breaks s into lines no wider than w. Breaks prefer spaces;
// text without spaces (such as Japanese) is broken between graphemes.
func WrapByWidth(s string, w int) []string {
	if w <= 0 || VisibleWidth(s) <= w {
		return []string{s}
	}
	var lines []string
	var cur strings.Builder
	curW := 0
	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curW = 0
	}
	for _, word := range strings.Fields(StripANSI(s)) {
		ww := VisibleWidth(word)
		if curW > 0 && curW+1+ww <= w {
			cur.WriteByte(' ')
			cur.WriteString(word)
			curW += 1 + ww
			continue
		}
		if curW > 0 {
			flush()
		}
		for _, c := range cells(word) {
			if curW+c.width > w && curW > 0 {
				flush()
			}
			cur.WriteString(c.text)
			curW += c.width
		}
	}
	if curW > 0 {
		flush()
	}
	return lines
}
