package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phyten/contrastcheck/internal/checker"
)

// Row is one evaluated pair flattened for reporting. Background and Text
// hold the raw inputs, not the resolved colors.
type Row struct {
	Name       string   `json:"name"`
	Background string   `json:"background"`
	Text       string   `json:"text"`
	Ratio      *float64 `json:"ratio"`
	Required   float64  `json:"required"`
	Size       string   `json:"size"`
	Outcome    string   `json:"outcome"`
	Reason     string   `json:"reason,omitempty"`
	Variant    string   `json:"variant,omitempty"`
	Message    string   `json:"message,omitempty"`
}

// FromOutcome flattens an evaluation into a Row.
func FromOutcome(name, background, text string, out checker.Outcome) Row {
	row := Row{
		Name:       name,
		Background: background,
		Text:       text,
		Required:   checker.RequiredRatio(out.Category),
		Size:       out.Category.String(),
		Outcome:    out.Kind.String(),
		Reason:     string(out.Reason),
		Message:    out.Message,
	}
	if out.Assessment != nil {
		ratio := out.Assessment.Ratio
		row.Ratio = &ratio
	}
	if out.Kind == checker.Fail {
		row.Variant = out.Variant.String()
	}
	return row
}

// Field is one report column. Numeric columns are right-aligned where the
// format supports it.
type Field struct {
	Key     string
	Header  string
	Numeric bool
}

type FieldSelection struct {
	Fields []Field
}

var fieldRegistry = map[string]string{
	"name":       "NAME",
	"background": "BACKGROUND",
	"text":       "TEXT",
	"ratio":      "RATIO",
	"required":   "REQUIRED",
	"size":       "SIZE",
	"outcome":    "OUTCOME",
	"reason":     "REASON",
	"variant":    "VARIANT",
	"message":    "MESSAGE",
}

var numericFields = map[string]struct{}{"ratio": {}, "required": {}}

var fieldAliases = map[string]string{
	"bg":       "background",
	"fg":       "text",
	"contrast": "ratio",
	"result":   "outcome",
	"guidance": "message",
}

var defaultFields = []string{"name", "background", "text", "ratio", "required", "size", "outcome", "variant", "message"}

// ResolveFields parses a comma separated field list. An empty list selects
// the default columns.
func ResolveFields(raw string) (FieldSelection, error) {
	raw = strings.TrimSpace(raw)
	keys := defaultFields
	if raw != "" {
		keys = strings.Split(raw, ",")
	}
	sel := FieldSelection{Fields: make([]Field, 0, len(keys))}
	seen := make(map[string]struct{}, len(keys))
	for _, part := range keys {
		name := strings.TrimSpace(part)
		if name == "" {
			return FieldSelection{}, fmt.Errorf("invalid fields: empty entry")
		}
		key := strings.ToLower(name)
		if alias, ok := fieldAliases[key]; ok {
			key = alias
		}
		header, ok := fieldRegistry[key]
		if !ok {
			return FieldSelection{}, fmt.Errorf("unknown field: %s", name)
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		_, numeric := numericFields[key]
		sel.Fields = append(sel.Fields, Field{Key: key, Header: header, Numeric: numeric})
	}
	return sel, nil
}

func Headers(fields []Field) []string {
	headers := make([]string, len(fields))
	for i, f := range fields {
		headers[i] = f.Header
	}
	return headers
}

func RowValues(r Row, fields []Field) []string {
	values := make([]string, len(fields))
	for i, f := range fields {
		values[i] = fieldValue(r, f.Key)
	}
	return values
}

func fieldValue(r Row, key string) string {
	switch key {
	case "name":
		return r.Name
	case "background":
		return r.Background
	case "text":
		return r.Text
	case "ratio":
		if r.Ratio == nil {
			return "-"
		}
		return FormatRatio(*r.Ratio)
	case "required":
		return strconv.FormatFloat(r.Required, 'f', 1, 64)
	case "size":
		return r.Size
	case "outcome":
		return r.Outcome
	case "reason":
		return r.Reason
	case "variant":
		return r.Variant
	case "message":
		return r.Message
	default:
		return ""
	}
}

// FormatRatio renders a ratio truncated to two decimals, so 4.499 never
// prints as a passing 4.50.
func FormatRatio(ratio float64) string {
	truncated := float64(int64(ratio*100)) / 100
	return strconv.FormatFloat(truncated, 'f', 2, 64) + ":1"
}
