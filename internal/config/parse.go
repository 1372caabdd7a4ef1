package config

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

const maxJobs = 64

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

// ParseBool accepts 1/0, true/false, yes/no and on/off.
func ParseBool(raw, field string) (bool, error) {
	v := lower(raw)
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean for %s: %q", field, raw)
}

func ParseIntInRange(raw, field string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %q", field, raw)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("%s must be between %d and %d", field, min, max)
	}
	return n, nil
}

// ParseFontSize accepts a bare number or a number with a px suffix.
func ParseFontSize(raw, field string) (float64, error) {
	v := strings.TrimSuffix(lower(raw), "px")
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid font size for %s: %q", field, raw)
	}
	if f < 0 {
		return 0, fmt.Errorf("%s must not be negative", field)
	}
	return f, nil
}

func defaultJobs() int {
	jobs := runtime.NumCPU()
	if jobs < 1 {
		jobs = 1
	}
	if jobs > maxJobs {
		jobs = maxJobs
	}
	return jobs
}
