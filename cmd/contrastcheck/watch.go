package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/phyten/contrastcheck/internal/announce"
	"github.com/phyten/contrastcheck/internal/checker"
	"github.com/phyten/contrastcheck/internal/config"
	"github.com/phyten/contrastcheck/internal/output"
	"github.com/phyten/contrastcheck/internal/termcolor"
)

const announcePrefix = "[announce] "

// watchCmd treats each stdin line as the current state of an editor's two
// color inputs. A blank line clears both; "# " starts a comment.
func watchCmd(ctx context.Context, args []string, sio stdio) int {
	fs := newFlagSet("watch", sio.stderr)
	var c commonFlags
	c.bind(fs)
	c.bindSize(fs)
	c.bindOutput(fs, "table|ndjson")
	if err := fs.Parse(args); err != nil {
		return parseError(err)
	}
	if fs.NArg() > 0 {
		return usageError(sio.stderr, "watch", fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " ")))
	}
	settings, err := loadSettings(config.Defaults(), &c, sio.getenv)
	if err != nil {
		return usageError(sio.stderr, "watch", err)
	}
	log := newLogger(settings, sio.stderr)
	chk := newChecker(settings, sio.getenv, log)
	dispatcher := announce.NewDispatcher(announce.NewWriter(sio.stderr, announcePrefix), announce.WithLogger(log))
	d := termcolor.Detect(sio.stdout, settings.Check.Color, termcolor.Env(sio.getenv))
	size := checker.SizeContext{IsLargeText: settings.Check.LargeText, FontSizePx: settings.Check.FontSize}

	scanner := bufio.NewScanner(sio.stdin)
	lineNo := 0
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "#" || strings.HasPrefix(raw, "# ") {
			continue
		}
		bg, text, err := splitPair(raw)
		if err != nil {
			fmt.Fprintf(sio.stderr, "contrastcheck watch: line %d: %v\n", lineNo, err)
			continue
		}
		out := chk.Evaluate(checker.Input{
			Background:         bg,
			FallbackBackground: settings.Check.FallbackBackground,
			Text:               text,
			FallbackText:       settings.Check.FallbackText,
			Size:               size,
		})
		if err := writeWatchLine(sio.stdout, settings.Check.Output, out, d); err != nil {
			log.WithError(err).Error("write result")
			return exitError
		}
		dispatcher.MaybeAnnounce(ctx, out, announce.Pair{Background: bg, Text: text})
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(sio.stderr, "contrastcheck watch: %v\n", err)
		return exitError
	}
	return exitOK
}

func writeWatchLine(w io.Writer, format string, out checker.Outcome, d termcolor.Terminal) error {
	if format == "ndjson" || format == "json" {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(out)
	}
	label := out.Kind.String()
	if out.Reason != checker.ReasonNone {
		label += "(" + string(out.Reason) + ")"
	}
	parts := []string{termcolor.Apply(termcolor.OutcomeStyle(out.Kind.String(), d.Scheme, d.Profile), label, d.Color)}
	if a := out.Assessment; a != nil {
		parts = append(parts, output.FormatRatio(a.Ratio))
	}
	if out.Failed() {
		parts = append(parts, out.Message)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, "  "))
	return err
}

// splitPair reads "background text". A tab separates the two verbatim;
// otherwise spaces separate them unless they sit inside rgb()/hsl()
// parentheses.
func splitPair(line string) (string, string, error) {
	if bg, text, ok := strings.Cut(line, "\t"); ok {
		return strings.TrimSpace(bg), strings.TrimSpace(text), nil
	}
	var tokens []string
	depth := 0
	start := -1
	for i, r := range line {
		switch {
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case (r == ' ' || r == '\t') && depth == 0:
			if start >= 0 {
				tokens = append(tokens, line[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, line[start:])
	}
	switch len(tokens) {
	case 0:
		return "", "", nil
	case 1:
		return tokens[0], "", nil
	case 2:
		return tokens[0], tokens[1], nil
	default:
		return "", "", fmt.Errorf("expected \"background text\", got %d values", len(tokens))
	}
}
