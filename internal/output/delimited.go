package output

import (
	"encoding/csv"
	"io"
	"strings"
)

// records is the header line followed by one value line per row.
func records(rows []Row, sel FieldSelection) [][]string {
	out := make([][]string, 0, len(rows)+1)
	out = append(out, Headers(sel.Fields))
	for _, r := range rows {
		out = append(out, RowValues(r, sel.Fields))
	}
	return out
}

// WriteCSV renders rows as RFC 4180 CSV with CRLF line endings.
func WriteCSV(w io.Writer, rows []Row, sel FieldSelection) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.WriteAll(records(rows, sel)); err != nil {
		return err
	}
	return writer.Error()
}

var tsvReplacer = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

// WriteTSV writes tab separated values. Tabs and line breaks inside a cell
// become spaces, so every row stays on one line.
func WriteTSV(w io.Writer, rows []Row, sel FieldSelection) error {
	var b strings.Builder
	for _, rec := range records(rows, sel) {
		for i, v := range rec {
			if i > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(tsvReplacer.Replace(v))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
