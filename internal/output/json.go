package output

import (
	"encoding/json"
	"io"
)

// Report is the document written by the json format.
type Report struct {
	Rows    []Row   `json:"rows"`
	Summary Summary `json:"summary"`
}

type Summary struct {
	Total        int `json:"total"`
	Pass         int `json:"pass"`
	Fail         int `json:"fail"`
	NoAssessment int `json:"no_assessment"`
}

func Summarize(rows []Row) Summary {
	s := Summary{Total: len(rows)}
	for _, r := range rows {
		switch r.Outcome {
		case "pass":
			s.Pass++
		case "fail":
			s.Fail++
		default:
			s.NoAssessment++
		}
	}
	return s
}

func WriteJSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(Report{Rows: rows, Summary: Summarize(rows)})
}

// WriteNDJSON streams rows as newline-delimited JSON objects.
func WriteNDJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range rows {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
