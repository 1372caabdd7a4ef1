package termcolor

import "testing"

func TestDetectScheme(t *testing.T) {
	cases := []struct {
		env  map[string]string
		want Scheme
	}{
		{map[string]string{"COLORFGBG": "7;0"}, SchemeDark},
		{map[string]string{"COLORFGBG": "15;7"}, SchemeLight},
		{map[string]string{"COLORFGBG": "15;15"}, SchemeLight},
		{map[string]string{"COLORFGBG": "15;8"}, SchemeDark},
		{map[string]string{"COLORFGBG": "0;default;11"}, SchemeLight},
		{map[string]string{"COLORFGBG": "0;4"}, SchemeDark},
		{map[string]string{"COLORFGBG": "0;99", "TERM": "xterm-light"}, SchemeLight},
		{map[string]string{"TERM": "xterm-light"}, SchemeLight},
		{nil, SchemeDark},
	}
	for _, tc := range cases {
		if got := DetectScheme(tc.env); got != tc.want {
			t.Fatalf("DetectScheme(%v)=%v want %v", tc.env, got, tc.want)
		}
	}
}

func TestTerminalBackground(t *testing.T) {
	cases := []struct {
		env  map[string]string
		want string
	}{
		{map[string]string{"COLORFGBG": "0;15"}, "#ffffff"},
		{map[string]string{"COLORFGBG": "15;0"}, "#000000"},
		{map[string]string{"COLORFGBG": "0;7"}, "#e5e5e5"},
		{map[string]string{"COLORFGBG": "garbage"}, "#000000"},
		{map[string]string{"TERM": "xterm-light"}, "#ffffff"},
		{nil, "#000000"},
	}
	for _, tc := range cases {
		if got := TerminalBackground(tc.env).Hex(); got != tc.want {
			t.Fatalf("TerminalBackground(%v)=%s want %s", tc.env, got, tc.want)
		}
	}
	if got := SchemeUnknown.Background().Hex(); got != "#000000" {
		t.Fatalf("unknown scheme background = %s", got)
	}
}
