package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/phyten/contrastcheck/internal/checker"
	"github.com/phyten/contrastcheck/internal/colorutil"
	"github.com/phyten/contrastcheck/internal/config"
	"github.com/phyten/contrastcheck/internal/i18n"
	"github.com/phyten/contrastcheck/internal/logger"
	"github.com/phyten/contrastcheck/internal/output"
	"github.com/phyten/contrastcheck/internal/termcolor"
	"github.com/phyten/contrastcheck/internal/textutil"
)

const (
	labelWidth    = 12
	previewSample = "  The quick brown fox jumps over the lazy dog  "
)

func checkCmd(_ context.Context, args []string, sio stdio) int {
	fs := newFlagSet("check", sio.stderr)
	var (
		c    commonFlags
		bg   string
		text string
	)
	fs.StringVar(&bg, "bg", "", "background color")
	fs.StringVar(&bg, "background", "", "background color")
	fs.StringVar(&text, "text", "", "text color")
	fs.StringVar(&text, "fg", "", "shorthand for --text")
	c.bind(fs)
	c.bindSize(fs)
	c.bindOutput(fs, "table|json|ndjson|tsv|csv|md")
	if err := fs.Parse(args); err != nil {
		return parseError(err)
	}
	switch rest := fs.Args(); {
	case len(rest) == 2 && bg == "" && text == "":
		bg, text = rest[0], rest[1]
	case len(rest) > 0:
		return usageError(sio.stderr, "check", fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " ")))
	}

	settings, err := loadSettings(config.Defaults(), &c, sio.getenv)
	if err != nil {
		return usageError(sio.stderr, "check", err)
	}
	log := newLogger(settings, sio.stderr)
	chk := newChecker(settings, sio.getenv, log)
	in := checker.Input{
		Background:         bg,
		FallbackBackground: settings.Check.FallbackBackground,
		Text:               text,
		FallbackText:       settings.Check.FallbackText,
		Size:               checker.SizeContext{IsLargeText: settings.Check.LargeText, FontSizePx: settings.Check.FontSize},
	}
	out := chk.Evaluate(in)

	switch settings.Check.Output {
	case "table":
		err = printCheck(sio.stdout, out, in, termcolor.Detect(sio.stdout, settings.Check.Color, termcolor.Env(sio.getenv)))
	case "json":
		err = writeJSON(sio.stdout, out)
	default:
		sel, _ := output.ResolveFields("")
		row := output.FromOutcome("", displayValue(bg, in.FallbackBackground), displayValue(text, in.FallbackText), out)
		err = output.Write(sio.stdout, settings.Check.Output, []output.Row{row}, sel, output.TableOptions{})
	}
	if err != nil {
		log.WithError(err).Error("write result")
		return exitError
	}
	if out.Failed() {
		return exitFail
	}
	return exitOK
}

func newChecker(settings config.Settings, getenv func(string) string, log *logger.Logger) *checker.Checker {
	return checker.New(
		checker.WithTranslator(i18n.New(resolveLang(settings.Check.Lang, getenv))),
		checker.WithLogger(log),
	)
}

// resolveLang falls back to the POSIX locale variables, turning values such
// as "ja_JP.UTF-8" into a BCP 47 tag.
func resolveLang(lang string, getenv func(string) string) string {
	if lang = strings.TrimSpace(lang); lang != "" {
		return lang
	}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := strings.TrimSpace(getenv(key))
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		return strings.ReplaceAll(v, "_", "-")
	}
	return ""
}

func displayValue(primary, fallback string) string {
	if strings.TrimSpace(primary) != "" {
		return strings.TrimSpace(primary)
	}
	return strings.TrimSpace(fallback)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// printCheck renders one outcome as labelled lines.
func printCheck(w io.Writer, out checker.Outcome, in checker.Input, d termcolor.Terminal) error {
	var b strings.Builder
	line := func(label, value string) {
		b.WriteString(textutil.PadRight(label, labelWidth))
		b.WriteString(value)
		b.WriteByte('\n')
	}

	if d.Color && out.Background != nil && out.Text != nil && out.Kind != checker.NoAssessment {
		line("preview", termcolor.Apply(termcolor.PreviewStyle(*out.Background, *out.Text, d.Profile), previewSample, true))
	}
	line("background", colorCell(out.Background, in.Background, in.FallbackBackground, d))
	line("text", colorCell(out.Text, in.Text, in.FallbackText, d))

	outcome := strings.ReplaceAll(out.Kind.String(), "_", " ")
	if out.Reason != checker.ReasonNone {
		outcome += " (" + string(out.Reason) + ")"
	}
	line("outcome", termcolor.Apply(termcolor.OutcomeStyle(out.Kind.String(), d.Scheme, d.Profile), outcome, d.Color))

	if a := out.Assessment; a != nil {
		ratio := termcolor.Apply(termcolor.RatioStyle(a.Ratio, a.Required, d.Profile), output.FormatRatio(a.Ratio), d.Color)
		line("ratio", fmt.Sprintf("%s  (required %s, %s text)", ratio, output.FormatRatio(a.Required), out.Category))
	}
	if out.Failed() {
		for i, l := range textutil.WrapByWidth(out.Message, d.Width-labelWidth) {
			label := ""
			if i == 0 {
				label = "guidance"
			}
			line(label, l)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func colorCell(resolved *colorutil.Color, primary, fallback string, d termcolor.Terminal) string {
	raw := displayValue(primary, fallback)
	if raw == "" {
		return "-"
	}
	if resolved == nil {
		return raw
	}
	value := resolved.Hex()
	if !strings.EqualFold(raw, value) {
		value += " (" + raw + ")"
	}
	if strings.TrimSpace(primary) == "" {
		value += " fallback"
	}
	if d.Color && resolved.Opaque() {
		value = termcolor.Apply(termcolor.SwatchStyle(*resolved, d.Profile), "██", true) + " " + value
	}
	return value
}
