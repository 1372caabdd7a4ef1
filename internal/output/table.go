package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/contrastcheck/internal/colorutil"
	"github.com/phyten/contrastcheck/internal/termcolor"
	"github.com/phyten/contrastcheck/internal/textutil"
)

const swatch = "██"

// TableOptions controls the human-readable table. MaxCellWidth of zero
// disables truncation.
type TableOptions struct {
	Color        bool
	Profile      termcolor.Profile
	Scheme       termcolor.Scheme
	MaxCellWidth int
}

// WriteTable aligns columns by display width so CJK guidance text and ANSI
// styling do not break the layout.
func WriteTable(w io.Writer, rows []Row, sel FieldSelection, opts TableOptions) error {
	headers := Headers(sel.Fields)
	cells := make([][]string, len(rows))
	for i, r := range rows {
		values := RowValues(r, sel.Fields)
		for j, f := range sel.Fields {
			values[j] = decorate(r, f.Key, values[j], opts)
		}
		cells[i] = values
	}

	widths := make([]int, len(headers))
	for j, h := range headers {
		widths[j] = textutil.VisibleWidth(h)
	}
	for _, values := range cells {
		for j, v := range values {
			if vw := textutil.VisibleWidth(v); vw > widths[j] {
				widths[j] = vw
			}
		}
	}

	line := make([]string, len(headers))
	for j, h := range headers {
		line[j] = pad(termcolor.Apply(termcolor.HeaderStyle(), h, opts.Color), widths[j], j == len(headers)-1)
	}
	if _, err := fmt.Fprintln(w, strings.Join(line, "  ")); err != nil {
		return err
	}
	for _, values := range cells {
		for j, v := range values {
			line[j] = pad(v, widths[j], j == len(values)-1)
		}
		if _, err := fmt.Fprintln(w, strings.Join(line, "  ")); err != nil {
			return err
		}
	}
	return nil
}

func decorate(r Row, key, value string, opts TableOptions) string {
	if opts.MaxCellWidth > 0 && key != "outcome" {
		value = textutil.TruncateByWidth(value, opts.MaxCellWidth, "…")
	}
	if !opts.Color {
		return value
	}
	switch key {
	case "background", "text":
		c, err := colorutil.Parse(value)
		if err != nil || !c.Opaque() {
			return value
		}
		return termcolor.Apply(termcolor.SwatchStyle(c, opts.Profile), swatch, true) + " " + value
	case "outcome":
		return termcolor.Apply(termcolor.OutcomeStyle(value, opts.Scheme, opts.Profile), value, true)
	case "ratio":
		if r.Ratio == nil {
			return value
		}
		return termcolor.Apply(termcolor.RatioStyle(*r.Ratio, r.Required, opts.Profile), value, true)
	}
	return value
}

func pad(s string, width int, last bool) string {
	if last {
		return s
	}
	return textutil.PadRight(s, width)
}
