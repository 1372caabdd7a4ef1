package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phyten/contrastcheck/internal/checker"
	"github.com/phyten/contrastcheck/internal/termcolor"
)

func ratioPtr(v float64) *float64 { return &v }

var sampleRows = []Row{
	{
		Name:       "body",
		Background: "#ffffff",
		Text:       "#000000",
		Ratio:      ratioPtr(21),
		Required:   4.5,
		Size:       "small",
		Outcome:    "pass",
	},
	{
		Name:       "muted | caption",
		Background: "#777777",
		Text:       "#888888",
		Ratio:      ratioPtr(1.2469),
		Required:   4.5,
		Size:       "small",
		Outcome:    "fail",
		Variant:    "darken_background_or_lighten_text",
		Message:    `Try "darker", please`,
	},
	{
		Name:       "logo",
		Background: "transparent",
		Text:       "#000",
		Required:   3,
		Size:       "large",
		Outcome:    "no_assessment",
		Reason:     "transparent",
	},
}

func TestResolveFields(t *testing.T) {
	sel, err := ResolveFields("")
	if err != nil {
		t.Fatalf("ResolveFields failed: %v", err)
	}
	if len(sel.Fields) != len(defaultFields) {
		t.Fatalf("expected %d default fields, got %d", len(defaultFields), len(sel.Fields))
	}

	sel, err = ResolveFields(" Name , bg,fg,contrast,bg ")
	if err != nil {
		t.Fatalf("ResolveFields with aliases failed: %v", err)
	}
	got := strings.Join(Headers(sel.Fields), ",")
	if got != "NAME,BACKGROUND,TEXT,RATIO" {
		t.Fatalf("unexpected headers: %s", got)
	}

	if _, err := ResolveFields("name,,text"); err == nil {
		t.Fatal("expected error for empty entry")
	}
	if _, err := ResolveFields("name,hue"); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestFormatRatioTruncates(t *testing.T) {
	cases := map[float64]string{
		21:     "21.00:1",
		4.4999: "4.49:1",
		4.5:    "4.50:1",
		1:      "1.00:1",
	}
	for in, want := range cases {
		if got := FormatRatio(in); got != want {
			t.Fatalf("FormatRatio(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFromOutcome(t *testing.T) {
	out := checker.Evaluate(checker.Input{Background: "#777777", Text: "#888888"})
	row := FromOutcome("gray", "#777777", "#888888", out)
	if row.Outcome != "fail" || row.Ratio == nil {
		t.Fatalf("unexpected row: %+v", row)
	}
	if row.Variant != "darken_background_or_lighten_text" {
		t.Fatalf("unexpected variant: %q", row.Variant)
	}
	if row.Required != 4.5 || row.Size != "small" {
		t.Fatalf("unexpected threshold: %+v", row)
	}
	if row.Message == "" {
		t.Fatal("expected guidance message")
	}

	out = checker.Evaluate(checker.Input{Background: "", Text: "#000"})
	row = FromOutcome("missing", "", "#000", out)
	if row.Outcome != "no_assessment" || row.Reason != "missing" || row.Ratio != nil {
		t.Fatalf("unexpected row for missing background: %+v", row)
	}
	if row.Variant != "" {
		t.Fatalf("no-assessment rows must not carry a variant: %q", row.Variant)
	}
}

func TestWriteCSV(t *testing.T) {
	sel, err := ResolveFields("")
	if err != nil {
		t.Fatalf("ResolveFields failed: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRows, sel); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	assertGolden(t, "want-csv.csv", buf.String())
	if !strings.Contains(buf.String(), "\r\n") {
		t.Fatal("CSV output should use CRLF line endings")
	}
}

func TestWriteNDJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteNDJSON(&buf, sampleRows); err != nil {
		t.Fatalf("WriteNDJSON failed: %v", err)
	}
	output := buf.String()
	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	if len(lines) != len(sampleRows) {
		t.Fatalf("expected %d lines, got %d", len(sampleRows), len(lines))
	}
	for i, line := range lines {
		var row Row
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			t.Fatalf("failed to decode line %d: %v", i, err)
		}
		if row.Name != sampleRows[i].Name {
			t.Fatalf("line %d name mismatch: %q", i, row.Name)
		}
	}
	if !strings.Contains(lines[2], `"ratio":null`) {
		t.Fatalf("unassessed rows should carry a null ratio: %s", lines[2])
	}
}

func TestWriteJSONSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleRows); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	var report Report
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	want := Summary{Total: 3, Pass: 1, Fail: 1, NoAssessment: 1}
	if report.Summary != want {
		t.Fatalf("summary = %+v, want %+v", report.Summary, want)
	}

	buf.Reset()
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON(nil) failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"rows": []`) {
		t.Fatalf("empty report should encode rows as an empty array: %s", buf.String())
	}
}

func TestWriteMarkdownTable(t *testing.T) {
	sel, err := ResolveFields("name,outcome,message")
	if err != nil {
		t.Fatalf("ResolveFields failed: %v", err)
	}
	rows := append([]Row(nil), sampleRows...)
	rows[2].Message = "first line\r\nsecond line"
	var buf bytes.Buffer
	if err := WriteMarkdownTable(&buf, rows, sel); err != nil {
		t.Fatalf("WriteMarkdownTable failed: %v", err)
	}
	output := buf.String()
	if !strings.Contains(output, "first line<br>second line") {
		t.Fatal("expected newline conversion to <br> in markdown output")
	}
	if !strings.Contains(output, "muted \\| caption") {
		t.Fatal("expected pipe characters to be escaped in markdown output")
	}
	assertGolden(t, "want-md.md", output)
}

func TestWriteTSV(t *testing.T) {
	sel, err := ResolveFields("name,outcome,message")
	if err != nil {
		t.Fatalf("ResolveFields failed: %v", err)
	}
	rows := []Row{{Name: "a\tb", Outcome: "fail", Message: "x\ny"}}
	var buf bytes.Buffer
	if err := WriteTSV(&buf, rows, sel); err != nil {
		t.Fatalf("WriteTSV failed: %v", err)
	}
	want := "NAME\tOUTCOME\tMESSAGE\na b\tfail\tx y\n"
	if buf.String() != want {
		t.Fatalf("WriteTSV = %q, want %q", buf.String(), want)
	}
}

func TestWriteTableAlignsWideText(t *testing.T) {
	sel, err := ResolveFields("name,outcome,message")
	if err != nil {
		t.Fatalf("ResolveFields failed: %v", err)
	}
	rows := []Row{
		{Name: "a", Outcome: "pass"},
		{Name: "見出し", Outcome: "fail", Message: "読みにくい"},
	}
	var buf bytes.Buffer
	if err := WriteTable(&buf, rows, sel, TableOptions{}); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{
		"NAME    OUTCOME  MESSAGE",
		"a       pass     ",
		"見出し  fail     読みにくい",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWriteTableTruncatesAndColors(t *testing.T) {
	sel, err := ResolveFields("background,ratio,outcome,message")
	if err != nil {
		t.Fatalf("ResolveFields failed: %v", err)
	}
	opts := TableOptions{Color: true, Profile: termcolor.ProfileTrueColor, Scheme: termcolor.SchemeDark, MaxCellWidth: 10}
	var buf bytes.Buffer
	if err := WriteTable(&buf, sampleRows[:2], sel, opts); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}
	output := buf.String()
	if !strings.Contains(output, "\x1b[38;2;255;255;255m"+swatch+"\x1b[0m #ffffff") {
		t.Fatalf("expected a true color swatch for the background: %q", output)
	}
	if !strings.Contains(output, "Try \"dark…") {
		t.Fatalf("expected the message to be truncated: %q", output)
	}
	if !strings.Contains(output, "\x1b[1;38;2;248;113;113mfail\x1b[0m") {
		t.Fatalf("expected a styled fail label: %q", output)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, "xml", sampleRows, FieldSelection{}, TableOptions{}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func assertGolden(t *testing.T, name, got string) {
	t.Helper()
	path := filepath.Join("testdata", name)
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v", name, err)
	}
	if diff := diffStrings(string(want), got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func diffStrings(want, got string) string {
	if want == got {
		return ""
	}
	var buf strings.Builder
	buf.WriteString("want:\n")
	buf.WriteString(want)
	if !strings.HasSuffix(want, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString("got:\n")
	buf.WriteString(got)
	return buf.String()
}

func TestWriteMarkdownAlignsNumericColumns(t *testing.T) {
	sel, err := ResolveFields("name,ratio,required")
	if err != nil {
		t.Fatalf("ResolveFields failed: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteMarkdownTable(&buf, sampleRows[:1], sel); err != nil {
		t.Fatalf("WriteMarkdownTable failed: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if lines[1] != "| --- | ---: | ---: |" {
		t.Fatalf("separator line = %q", lines[1])
	}
}
