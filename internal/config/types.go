package config

import "strings"

type CheckConfig struct {
	Lang               *string  `yaml:"lang" toml:"lang" json:"lang"`
	Output             *string  `yaml:"output" toml:"output" json:"output"`
	Color              *string  `yaml:"color" toml:"color" json:"color"`
	LargeText          *bool    `yaml:"large_text" toml:"large_text" json:"large_text"`
	FontSize           *float64 `yaml:"font_size" toml:"font_size" json:"font_size"`
	FallbackBackground *string  `yaml:"fallback_background" toml:"fallback_background" json:"fallback_background"`
	FallbackText       *string  `yaml:"fallback_text" toml:"fallback_text" json:"fallback_text"`
}

type ServerConfig struct {
	Addr        *string `yaml:"addr" toml:"addr" json:"addr"`
	OpenBrowser *bool   `yaml:"open_browser" toml:"open_browser" json:"open_browser"`
}

type AuditConfig struct {
	Jobs        *int  `yaml:"jobs" toml:"jobs" json:"jobs"`
	FailOnError *bool `yaml:"fail_on_error" toml:"fail_on_error" json:"fail_on_error"`
}

type Config struct {
	Check    CheckConfig  `yaml:"check" toml:"check" json:"check"`
	Server   ServerConfig `yaml:"server" toml:"server" json:"server"`
	Audit    AuditConfig  `yaml:"audit" toml:"audit" json:"audit"`
	LogLevel *string      `yaml:"log_level" toml:"log_level" json:"log_level"`
}

// CheckSettings keeps LargeText and FontSize as pointers: nil means the
// value was never given, which the size rule treats differently from false.
type CheckSettings struct {
	Lang               string
	Output             string
	Color              string
	LargeText          *bool
	FontSize           *float64
	FallbackBackground string
	FallbackText       string
}

type ServerSettings struct {
	Addr        string
	OpenBrowser bool
}

type AuditSettings struct {
	Jobs        int
	FailOnError bool
}

type Settings struct {
	Check    CheckSettings
	Server   ServerSettings
	Audit    AuditSettings
	LogLevel string
}

func Defaults() Settings {
	return Settings{
		Check: CheckSettings{
			Lang:   "",
			Output: "table",
			Color:  "auto",
		},
		Server: ServerSettings{
			Addr:        ":8080",
			OpenBrowser: false,
		},
		Audit: AuditSettings{
			Jobs:        defaultJobs(),
			FailOnError: false,
		},
		LogLevel: "warn",
	}
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
