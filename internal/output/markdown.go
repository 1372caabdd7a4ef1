package output

import (
	"io"
	"strings"
)

var markdownCell = strings.NewReplacer("\r\n", "<br>", "\n", "<br>", "\r", "", "|", `\|`)

// WriteMarkdownTable renders rows as a GitHub Flavored Markdown table.
// Numeric columns are right-aligned.
func WriteMarkdownTable(w io.Writer, rows []Row, sel FieldSelection) error {
	var b strings.Builder
	writeLine := func(cells []string) {
		b.WriteString("| ")
		b.WriteString(strings.Join(cells, " | "))
		b.WriteString(" |\n")
	}
	writeLine(Headers(sel.Fields))
	align := make([]string, len(sel.Fields))
	for i, f := range sel.Fields {
		align[i] = "---"
		if f.Numeric {
			align[i] = "---:"
		}
	}
	writeLine(align)
	for _, r := range rows {
		values := RowValues(r, sel.Fields)
		for i := range values {
			values[i] = markdownCell.Replace(values[i])
		}
		writeLine(values)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
