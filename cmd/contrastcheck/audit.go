package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/phyten/contrastcheck/internal/audit"
	"github.com/phyten/contrastcheck/internal/config"
	"github.com/phyten/contrastcheck/internal/output"
	"github.com/phyten/contrastcheck/internal/termcolor"
	"github.com/phyten/contrastcheck/internal/util"
)

const auditCellWidth = 60

func auditCmd(ctx context.Context, args []string, sio stdio) int {
	fs := newFlagSet("audit", sio.stderr)
	var (
		c          commonFlags
		fields     string
		progress   bool
		noProgress bool
	)
	c.bind(fs)
	c.bindSize(fs)
	c.bindOutput(fs, "table|tsv|json|ndjson|csv|md")
	fs.Var(intFlag{&c.layer.Audit.Jobs}, "jobs", "max parallel evaluations")
	fs.Var(intFlag{&c.layer.Audit.Jobs}, "j", "shorthand for --jobs")
	fs.Var(boolFlag{&c.layer.Audit.FailOnError}, "fail-on-error", "exit 1 when any entry fails")
	fs.StringVar(&fields, "fields", "", "comma separated columns (name,background,text,ratio,required,size,outcome,reason,variant,message)")
	fs.BoolVar(&progress, "progress", false, "force progress even when piped")
	fs.BoolVar(&noProgress, "no-progress", false, "disable progress")
	if err := fs.Parse(args); err != nil {
		return parseError(err)
	}
	files := fs.Args()
	if len(files) == 0 {
		return usageError(sio.stderr, "audit", errors.New("at least one palette file is required"))
	}

	settings, err := loadSettings(config.Defaults(), &c, sio.getenv)
	if err != nil {
		return usageError(sio.stderr, "audit", err)
	}
	sel, err := output.ResolveFields(fields)
	if err != nil {
		return usageError(sio.stderr, "audit", err)
	}
	log := newLogger(settings, sio.stderr)

	var entries []audit.Entry
	for _, path := range files {
		loaded, err := audit.LoadFile(path)
		if err != nil {
			fmt.Fprintf(sio.stderr, "contrastcheck audit: %v\n", err)
			return exitError
		}
		entries = append(entries, loaded...)
	}

	bar := util.NewProgress(sio.stderr, "audit", len(entries), util.ShouldShowProgress(sio.stderr, progress, noProgress))
	auditor := audit.New(newChecker(settings, sio.getenv, log),
		audit.WithJobs(settings.Audit.Jobs),
		audit.WithDefaults(auditDefaults(settings)),
		audit.WithLogger(log),
		audit.WithProgress(bar),
	)
	results, err := auditor.Run(ctx, entries)
	bar.Done()
	if err != nil {
		log.WithError(err).Error("audit interrupted")
		return exitError
	}

	rows := make([]output.Row, len(results))
	for i, r := range results {
		rows[i] = output.FromOutcome(r.Entry.Name,
			displayValue(r.Entry.Background, r.Entry.FallbackBackground),
			displayValue(r.Entry.Text, r.Entry.FallbackText),
			r.Outcome)
	}
	d := termcolor.Detect(sio.stdout, settings.Check.Color, termcolor.Env(sio.getenv))
	opts := output.TableOptions{Color: d.Color, Profile: d.Profile, Scheme: d.Scheme, MaxCellWidth: auditCellWidth}
	if err := output.Write(sio.stdout, settings.Check.Output, rows, sel, opts); err != nil {
		log.WithError(err).Error("write report")
		return exitError
	}
	if settings.Audit.FailOnError && audit.Failed(results) {
		return exitError
	}
	return exitOK
}

// auditDefaults turns the check settings into per-entry defaults.
func auditDefaults(settings config.Settings) audit.Entry {
	return audit.Entry{
		FallbackBackground: settings.Check.FallbackBackground,
		FallbackText:       settings.Check.FallbackText,
		LargeText:          settings.Check.LargeText,
		FontSize:           settings.Check.FontSize,
	}
}
