package audit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/phyten/contrastcheck/internal/checker"
)

// Entry is one named color pair in a palette file. Blank colors are absent;
// nil LargeText and FontSize mean "not specified".
type Entry struct {
	Name               string   `yaml:"name" toml:"name" json:"name"`
	Background         string   `yaml:"background" toml:"background" json:"background"`
	FallbackBackground string   `yaml:"fallback_background" toml:"fallback_background" json:"fallback_background"`
	Text               string   `yaml:"text" toml:"text" json:"text"`
	FallbackText       string   `yaml:"fallback_text" toml:"fallback_text" json:"fallback_text"`
	LargeText          *bool    `yaml:"large_text" toml:"large_text" json:"large_text"`
	FontSize           *float64 `yaml:"font_size" toml:"font_size" json:"font_size"`
}

// Palette is the document form of a palette file. YAML and JSON files may
// also be a bare list of entries.
type Palette struct {
	Entries []Entry `yaml:"entries" toml:"entries" json:"entries"`
}

// Input converts the entry to an evaluation request.
func (e Entry) Input() checker.Input {
	return checker.Input{
		Background:         e.Background,
		FallbackBackground: e.FallbackBackground,
		Text:               e.Text,
		FallbackText:       e.FallbackText,
		Size:               checker.SizeContext{IsLargeText: e.LargeText, FontSizePx: e.FontSize},
	}
}

// LoadFile reads a palette file, choosing the decoder by extension. Entries
// without a name are named after the file and their position.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	entries, err := Decode(FormatFromPath(path), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	base := filepath.Base(path)
	for i := range entries {
		if strings.TrimSpace(entries[i].Name) == "" {
			entries[i].Name = fmt.Sprintf("%s#%d", base, i+1)
		}
	}
	return entries, nil
}

func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	case ".json":
		return "json"
	default:
		return ""
	}
}

// Decode parses a palette in the given format ("yaml", "toml" or "json").
// Unknown keys are rejected so typos such as "backgroud" do not silently
// produce absent colors.
func Decode(format string, data []byte) ([]Entry, error) {
	var p Palette
	switch format {
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if isYAMLSequence(data) {
			var list []Entry
			if err := dec.Decode(&list); err != nil {
				return nil, fmt.Errorf("parse palette: %w", err)
			}
			return list, nil
		}
		if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse palette: %w", err)
		}
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("parse palette: %w", err)
		}
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			var list []Entry
			if err := dec.Decode(&list); err != nil {
				return nil, fmt.Errorf("parse palette: %w", err)
			}
			return list, nil
		}
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("parse palette: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported palette format: %q", format)
	}
	return p.Entries, nil
}

func isYAMLSequence(data []byte) bool {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil || len(node.Content) == 0 {
		return false
	}
	return node.Content[0].Kind == yaml.SequenceNode
}
