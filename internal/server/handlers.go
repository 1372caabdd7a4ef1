package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/phyten/contrastcheck/internal/audit"
	"github.com/phyten/contrastcheck/internal/checker"
	"github.com/phyten/contrastcheck/internal/config"
	"github.com/phyten/contrastcheck/internal/output"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes without HTML escaping so colors and messages come back
// exactly as given.
func writeJSON(c *gin.Context, status int, v any) {
	c.Header("Content-Type", "application/json; charset=utf-8")
	c.Status(status)
	enc := json.NewEncoder(c.Writer)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// sizeFromQuery parses the optional size hints. Blank values stay unset.
func sizeFromQuery(largeRaw, fontRaw string) (checker.SizeContext, error) {
	var size checker.SizeContext
	if strings.TrimSpace(largeRaw) != "" {
		v, err := config.ParseBool(largeRaw, "large_text")
		if err != nil {
			return size, err
		}
		size.IsLargeText = &v
	}
	if strings.TrimSpace(fontRaw) != "" {
		v, err := config.ParseFontSize(fontRaw, "font_size")
		if err != nil {
			return size, err
		}
		if err := config.ValidateFontSize(&v); err != nil {
			return size, err
		}
		size.FontSizePx = &v
	}
	return size, nil
}

func (s *Server) handleCheck(c *gin.Context) {
	q := c.Request.URL.Query()
	size, err := sizeFromQuery(q.Get("large_text"), q.Get("font_size"))
	if err != nil {
		writeJSON(c, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	lang := q.Get("lang")
	if lang == "" {
		lang = c.GetHeader("Accept-Language")
	}
	in := checker.Input{
		Background:         q.Get("background"),
		FallbackBackground: q.Get("fallback_background"),
		Text:               q.Get("text"),
		FallbackText:       q.Get("fallback_text"),
		Size:               size,
	}
	out := s.checkerFor(lang).Evaluate(in)
	writeJSON(c, http.StatusOK, out)
}

func (s *Server) handleAudit(c *gin.Context) {
	log := requestLogger(c, s.log)
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(c, http.StatusRequestEntityTooLarge, errorResponse{Error: "palette too large"})
			return
		}
		writeJSON(c, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	entries, err := audit.Decode("json", body)
	if err != nil {
		writeJSON(c, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	for i := range entries {
		if strings.TrimSpace(entries[i].Name) == "" {
			entries[i].Name = "#" + strconv.Itoa(i+1)
		}
	}

	lang := c.Query("lang")
	if lang == "" {
		lang = c.GetHeader("Accept-Language")
	}
	auditor := audit.New(s.checkerFor(lang),
		audit.WithJobs(s.opts.Jobs),
		audit.WithDefaults(s.opts.Defaults),
		audit.WithLogger(log),
		audit.WithMetrics(s.metrics),
	)
	results, err := auditor.Run(c.Request.Context(), entries)
	if err != nil {
		log.WithError(err).Warn("audit aborted")
		writeJSON(c, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}
	rows := make([]output.Row, len(results))
	for i, r := range results {
		rows[i] = output.FromOutcome(r.Entry.Name, r.Entry.Background, r.Entry.Text, r.Outcome)
	}
	writeJSON(c, http.StatusOK, output.Report{Rows: rows, Summary: output.Summarize(rows)})
}
