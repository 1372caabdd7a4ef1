package output

import (
	"fmt"
	"io"
)

// Write dispatches on a canonical output format name.
func Write(w io.Writer, format string, rows []Row, sel FieldSelection, opts TableOptions) error {
	switch format {
	case "", "table":
		return WriteTable(w, rows, sel, opts)
	case "tsv":
		return WriteTSV(w, rows, sel)
	case "json":
		return WriteJSON(w, rows)
	case "ndjson":
		return WriteNDJSON(w, rows)
	case "csv":
		return WriteCSV(w, rows, sel)
	case "md":
		return WriteMarkdownTable(w, rows, sel)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
