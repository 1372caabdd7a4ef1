package textutil

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func setEastAsianWidth(t *testing.T, eastAsian bool) {
	t.Helper()
	runewidth.EastAsianWidth = eastAsian
	runewidth.DefaultCondition = runewidth.NewCondition()
}

func TestVisibleWidth(t *testing.T) {
	setEastAsianWidth(t, false)
	cases := []struct {
		name string
		s    string
		want int
	}{
		{name: "Empty", s: "", want: 0},
		{name: "ASCII", s: "ABC", want: 3},
		{name: "Hiragana", s: "あいう", want: 6},
		{name: "CombiningMark", s: "é", want: 1},
		{name: "Swatch", s: "██", want: 2},
		{name: "ANSIColored", s: "\x1b[31m赤\x1b[0m", want: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := VisibleWidth(tc.s); got != tc.want {
				t.Fatalf("VisibleWidth(%q) = %d, want %d", tc.s, got, tc.want)
			}
		})
	}
}

func TestTruncateByWidth(t *testing.T) {
	setEastAsianWidth(t, false)
	cases := []struct {
		name     string
		s        string
		width    int
		want     string
		ellipsis string
	}{
		{name: "Fits", s: "#ffffff", width: 7, want: "#ffffff", ellipsis: "…"},
		{name: "Japanese", s: "こんにちは世界", width: 6, want: "こん…", ellipsis: "…"},
		{name: "NoEllipsis", s: "abcdef", width: 3, want: "abc", ellipsis: ""},
		{name: "EllipsisTooWide", s: "abcdef", width: 1, want: "a", ellipsis: "……"},
		{name: "ZeroWidth", s: "abc", width: 0, want: "", ellipsis: "…"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateByWidth(tc.s, tc.width, tc.ellipsis); got != tc.want {
				t.Fatalf("TruncateByWidth(%q, %d) = %q, want %q", tc.s, tc.width, got, tc.want)
			}
			if width := VisibleWidth(tc.want); width > tc.width {
				t.Fatalf("result width %d exceeds limit %d", width, tc.width)
			}
		})
	}
}

func TestStripANSI(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "\x1b[31mRed\x1b[0m", want: "Red"},
		{in: "\x1b[38;2;17;34;51;48;2;255;255;255mAa\x1b[0m", want: "Aa"},
		{in: "\x1b]8;;https://example.com\x07link\x1b]8;;\x07", want: "link"},
	}
	for _, tc := range cases {
		if got := StripANSI(tc.in); got != tc.want {
			t.Fatalf("StripANSI(%q)=%q want %q", tc.in, got, tc.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	setEastAsianWidth(t, false)
	if got := VisibleWidth(PadRight("あ", 6)); got != 6 {
		t.Fatalf("PadRight did not reach target width: %d", got)
	}
	if got := PadRight("abcdef", 3); got != "abcdef" {
		t.Fatalf("PadRight should not shorten, got %q", got)
	}
}

func TestWrapByWidth(t *testing.T) {
	setEastAsianWidth(t, false)
	got := WrapByWidth("Try using a darker background color", 12)
	want := []string{"Try using a", "darker", "background", "color"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("WrapByWidth lines = %q, want %q", got, want)
	}

	cjk := WrapByWidth("読みにくい配色です", 6)
	for _, line := range cjk {
		if VisibleWidth(line) > 6 {
			t.Fatalf("line %q exceeds width 6", line)
		}
	}
	if strings.Join(cjk, "") != "読みにくい配色です" {
		t.Fatalf("wrapped CJK text lost characters: %q", cjk)
	}

	if got := WrapByWidth("short", 0); len(got) != 1 || got[0] != "short" {
		t.Fatalf("width 0 should disable wrapping, got %q", got)
	}
}
