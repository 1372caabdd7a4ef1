package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var checkKeyMap = map[string]string{
	"lang":                "lang",
	"language":            "lang",
	"output":              "output",
	"color":               "color",
	"large_text":          "large_text",
	"large":               "large_text",
	"font_size":           "font_size",
	"font_size_px":        "font_size",
	"fallback_background": "fallback_background",
	"fallback_bg":         "fallback_background",
	"fallback_text":       "fallback_text",
}

var serverKeyMap = map[string]string{
	"addr":         "addr",
	"address":      "addr",
	"open_browser": "open_browser",
	"open":         "open_browser",
}

var auditKeyMap = map[string]string{
	"jobs":          "jobs",
	"fail_on_error": "fail_on_error",
}

var sections = []struct {
	name    string
	allowed map[string]string
}{
	{"check", checkKeyMap},
	{"server", serverKeyMap},
	{"audit", auditKeyMap},
}

func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	raw, err := DecodeDocument(path, data)
	if err != nil {
		return cfg, err
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

// DecodeDocument parses YAML, TOML or JSON chosen by the file extension of
// path into a generic map.
func DecodeDocument(path string, data []byte) (map[string]any, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return nil, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return nil, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return nil, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return nil, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return raw, nil
}

// fileField stores one decoded value into its Config field.
type fileField func(cfg *Config, value any, key string) error

func bindFile[T any](expect func(value any, field string) (T, error), field func(*Config) **T) fileField {
	return func(cfg *Config, value any, key string) error {
		v, err := expect(value, key)
		if err != nil {
			return err
		}
		*field(cfg) = &v
		return nil
	}
}

var fileFields = map[string]map[string]fileField{
	"check": {
		"lang":                bindFile(expectTrimmed, func(c *Config) **string { return &c.Check.Lang }),
		"output":              bindFile(expectTrimmed, func(c *Config) **string { return &c.Check.Output }),
		"color":               bindFile(expectTrimmed, func(c *Config) **string { return &c.Check.Color }),
		"large_text":          bindFile(ExpectBool, func(c *Config) **bool { return &c.Check.LargeText }),
		"font_size":           bindFile(ExpectFloat, func(c *Config) **float64 { return &c.Check.FontSize }),
		"fallback_background": bindFile(expectTrimmed, func(c *Config) **string { return &c.Check.FallbackBackground }),
		"fallback_text":       bindFile(expectTrimmed, func(c *Config) **string { return &c.Check.FallbackText }),
	},
	"server": {
		"addr":         bindFile(expectTrimmed, func(c *Config) **string { return &c.Server.Addr }),
		"open_browser": bindFile(ExpectBool, func(c *Config) **bool { return &c.Server.OpenBrowser }),
	},
	"audit": {
		"jobs":          bindFile(expectInt, func(c *Config) **int { return &c.Audit.Jobs }),
		"fail_on_error": bindFile(ExpectBool, func(c *Config) **bool { return &c.Audit.FailOnError }),
	},
}

// decodeConfigMap accepts keys inside their section block or at the top
// level. A key given both ways takes the top-level value.
func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	assign := func(section, canonical string, value any) error {
		if err := fileFields[section][canonical](&cfg, value, canonical); err != nil {
			return fmt.Errorf("%s: %w", section, err)
		}
		return nil
	}

	for _, sec := range sections {
		block, ok := lookupKey(raw, sec.name)
		if !ok {
			continue
		}
		sub, err := ToStringKeyMap(block)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", sec.name, err)
		}
		for key, value := range sub {
			canonical, ok := sec.allowed[NormalizeKey(key)]
			if !ok {
				return cfg, fmt.Errorf("unknown %s key: %s", sec.name, key)
			}
			if err := assign(sec.name, canonical, value); err != nil {
				return cfg, err
			}
		}
	}

	for key, value := range raw {
		norm := NormalizeKey(key)
		switch norm {
		case "check", "server", "audit":
			continue
		case "log_level":
			str, err := expectTrimmed(value, norm)
			if err != nil {
				return cfg, err
			}
			cfg.LogLevel = &str
			continue
		}
		section, canonical := "", ""
		for _, sec := range sections {
			if c, ok := sec.allowed[norm]; ok {
				section, canonical = sec.name, c
				break
			}
		}
		if section == "" {
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
		if err := assign(section, canonical, value); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func lookupKey(raw map[string]any, name string) (any, bool) {
	for key, value := range raw {
		if NormalizeKey(key) == name {
			return value, true
		}
	}
	return nil, false
}

func expectTrimmed(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s), nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

// ExpectBool accepts a decoded boolean or one of the ParseBool literals.
func ExpectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

// ExpectFloat accepts any decoded number or a numeric string with an
// optional px suffix.
func ExpectFloat(value any, field string) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("invalid number for %s: %v", field, value)
		}
		return f, nil
	case string:
		return ParseFontSize(v, field)
	default:
		return 0, fmt.Errorf("expected number for %s, got %T", field, value)
	}
}

func expectInt(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, value)
		}
		return int(v), nil
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %v", field, value)
		}
		return n, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", field, value)
	}
}

// ToStringKeyMap normalizes the map types produced by the YAML and TOML
// decoders.
func ToStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func NormalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}
