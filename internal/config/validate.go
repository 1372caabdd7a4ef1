package config

import (
	"fmt"
	"math"

	"github.com/phyten/contrastcheck/internal/logger"
)

var outputs = map[string]struct{}{
	"table": {}, "tsv": {}, "json": {}, "ndjson": {}, "csv": {}, "md": {},
}

func CanonicalizeOutput(raw string) (string, error) {
	v := lower(raw)
	switch v {
	case "":
		return "table", nil
	case "markdown":
		return "md", nil
	}
	if _, ok := outputs[v]; !ok {
		return "", fmt.Errorf("invalid output: %s", raw)
	}
	return v, nil
}

func CanonicalizeColor(raw string) (string, error) {
	v := lower(raw)
	switch v {
	case "", "auto":
		return "auto", nil
	case "always", "never":
		return v, nil
	default:
		return "", fmt.Errorf("invalid color: %s", raw)
	}
}

func ValidateJobs(jobs int) error {
	if jobs < 1 || jobs > maxJobs {
		return fmt.Errorf("jobs must be between 1 and %d", maxJobs)
	}
	return nil
}

func ValidateFontSize(size *float64) error {
	if size == nil {
		return nil
	}
	if *size < 0 || math.IsNaN(*size) || math.IsInf(*size, 0) {
		return fmt.Errorf("font_size must be a non-negative number")
	}
	return nil
}

// Normalize canonicalizes enumerations and validates ranges.
func Normalize(values Settings) (Settings, error) {
	var err error
	values.Check.Output, err = CanonicalizeOutput(values.Check.Output)
	if err != nil {
		return values, err
	}
	values.Check.Color, err = CanonicalizeColor(values.Check.Color)
	if err != nil {
		return values, err
	}
	if err := ValidateFontSize(values.Check.FontSize); err != nil {
		return values, err
	}
	if err := ValidateJobs(values.Audit.Jobs); err != nil {
		return values, err
	}
	if values.Server.Addr == "" {
		return values, fmt.Errorf("addr must not be empty")
	}
	values.LogLevel = lower(values.LogLevel)
	if values.LogLevel == "" {
		values.LogLevel = "warn"
	}
	if !logger.ValidLevel(values.LogLevel) {
		return values, fmt.Errorf("invalid log_level: %s", values.LogLevel)
	}
	return values, nil
}
