package colorutil

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#000000", Color{0, 0, 0, 1}},
		{"#FFFFFF", Color{255, 255, 255, 1}},
		{"#abc", Color{0xaa, 0xbb, 0xcc, 1}},
		{"#abcd", Color{0xaa, 0xbb, 0xcc, 0.867}},
		{"#11223380", Color{0x11, 0x22, 0x33, 0.502}},
		{"#112233ff", Color{0x11, 0x22, 0x33, 1}},
		{"  red ", Color{255, 0, 0, 1}},
		{"DarkOrange", Color{255, 140, 0, 1}},
		{"transparent", Color{0, 0, 0, 0}},
		{"rgb(255, 0, 0)", Color{255, 0, 0, 1}},
		{"rgba(0,0,0,0.5)", Color{0, 0, 0, 0.5}},
		{"rgb(100%, 50%, 0%)", Color{255, 128, 0, 1}},
		{"rgb(300, -20, 12.4)", Color{255, 0, 12, 1}},
		{"rgb(10 20 30 / 40%)", Color{10, 20, 30, 0.4}},
		{"rgba(10, 20, 30, 1)", Color{10, 20, 30, 1}},
		{"hsl(0, 100%, 50%)", Color{255, 0, 0, 1}},
		{"hsl(120deg 100% 25%)", Color{0, 128, 0, 1}},
		{"hsla(240, 100%, 50%, 0.25)", Color{0, 0, 255, 0.25}},
		{"hsl(0.5turn, 100%, 50%)", Color{0, 255, 255, 1}},
		{"hsl(-120, 100%, 50%)", Color{0, 0, 255, 1}},
		{"rgb(0 0 0 / 100%)", Color{0, 0, 0, 1}},
		{"hsl(0, 0%, 100%)", Color{255, 255, 255, 1}},
		{"hsl(200grad 100% 50%)", Color{0, 255, 255, 1}},
		{"#fffffffe", Color{255, 255, 255, 0.996}},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q)=%+v want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"#12", "#12345", "#gggggg", "notacolor", "rgb(1,2)", "rgb(1,2,3,4,5)",
		"rgb(a,b,c)", "rgb(1, 2, 3", "hsl(0, 100, 50)", "hsl()", "rgb(1 2 / )",
		"garbage", "rgb()", "hsl(0 100 50)", "rgb(1, 2, x)",
	} {
		_, err := Parse(in)
		if err == nil {
			t.Fatalf("Parse(%q) expected error", in)
		}
		if !errors.Is(err, ErrInvalidColorFormat) {
			t.Fatalf("Parse(%q) error %v should wrap ErrInvalidColorFormat", in, err)
		}
		var fe *FormatError
		if !errors.As(err, &fe) || fe.Input != in {
			t.Fatalf("Parse(%q) error %v should be a FormatError carrying the input", in, err)
		}
	}
}

func TestParseBlankIsAbsent(t *testing.T) {
	for _, in := range []string{"", "   ", "\t"} {
		if _, err := Parse(in); !errors.Is(err, ErrAbsent) {
			t.Fatalf("Parse(%q) err=%v want ErrAbsent", in, err)
		}
	}
}

func TestResolve(t *testing.T) {
	c, err := Resolve("", "#ffffff")
	if err != nil || c != White {
		t.Fatalf("fallback not used: %v %v", c, err)
	}
	c, err = Resolve("  ", "#ffffff")
	if err != nil || c != White {
		t.Fatalf("whitespace-only primary should count as absent: %v %v", c, err)
	}
	c, err = Resolve("#000", "#ffffff")
	if err != nil || c != Black {
		t.Fatalf("primary should win: %v %v", c, err)
	}
	if _, err = Resolve("", ""); !errors.Is(err, ErrAbsent) {
		t.Fatalf("both blank should be absent, got %v", err)
	}
	if _, err = Resolve("bogus", "#fff"); !errors.Is(err, ErrInvalidColorFormat) {
		t.Fatalf("invalid primary must not fall back, got %v", err)
	}
}

func TestMustParsePanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse should panic on invalid input")
		}
	}()
	MustParse("nope")
}
