package config

import (
	"errors"
	"math"
	"strings"
)

const envPrefix = "CONTRASTCHECK_"

func parseString(raw, _ string) (string, error) { return raw, nil }

func parseJobs(raw, field string) (int, error) {
	// Range is enforced by Normalize so every layer reports the same error.
	return ParseIntInRange(raw, field, 0, math.MaxInt)
}

// envField copies one variable into its Config field.
type envField func(cfg *Config, getenv func(string) string) error

func bindEnv[T any](suffix string, parse func(raw, field string) (T, error), field func(*Config) **T) envField {
	key := envPrefix + suffix
	return func(cfg *Config, getenv func(string) string) error {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return nil
		}
		v, err := parse(raw, key)
		if err != nil {
			return err
		}
		*field(cfg) = &v
		return nil
	}
}

var envFields = []envField{
	bindEnv("LANG", parseString, func(c *Config) **string { return &c.Check.Lang }),
	bindEnv("OUTPUT", parseString, func(c *Config) **string { return &c.Check.Output }),
	bindEnv("COLOR", parseString, func(c *Config) **string { return &c.Check.Color }),
	bindEnv("LARGE_TEXT", ParseBool, func(c *Config) **bool { return &c.Check.LargeText }),
	bindEnv("FONT_SIZE", ParseFontSize, func(c *Config) **float64 { return &c.Check.FontSize }),
	bindEnv("FALLBACK_BACKGROUND", parseString, func(c *Config) **string { return &c.Check.FallbackBackground }),
	bindEnv("FALLBACK_TEXT", parseString, func(c *Config) **string { return &c.Check.FallbackText }),
	bindEnv("ADDR", parseString, func(c *Config) **string { return &c.Server.Addr }),
	bindEnv("OPEN_BROWSER", ParseBool, func(c *Config) **bool { return &c.Server.OpenBrowser }),
	bindEnv("JOBS", parseJobs, func(c *Config) **int { return &c.Audit.Jobs }),
	bindEnv("FAIL_ON_ERROR", ParseBool, func(c *Config) **bool { return &c.Audit.FailOnError }),
	bindEnv("LOG_LEVEL", parseString, func(c *Config) **string { return &c.LogLevel }),
}

// FromEnv reads the CONTRASTCHECK_* variables. Unset or blank variables leave
// the corresponding field nil so lower layers show through. All parse errors
// are reported together.
func FromEnv(getenv func(string) string) (Config, error) {
	var cfg Config
	if getenv == nil {
		return cfg, nil
	}
	var errs []error
	for _, bind := range envFields {
		if err := bind(&cfg, getenv); err != nil {
			errs = append(errs, err)
		}
	}
	return cfg, errors.Join(errs...)
}
