package audit

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/phyten/contrastcheck/internal/checker"
	"github.com/phyten/contrastcheck/internal/logger"
	"github.com/phyten/contrastcheck/internal/metrics"
)

// Result pairs an entry with its outcome. Results keep the order of the
// entries that produced them.
type Result struct {
	Entry   Entry           `json:"entry"`
	Outcome checker.Outcome `json:"outcome"`
}

// Progress receives one tick per evaluated entry.
type Progress interface {
	Add(n int)
}

// Auditor evaluates palette entries concurrently.
type Auditor struct {
	checker  *checker.Checker
	jobs     int
	defaults Entry
	log      *logger.Logger
	metrics  *metrics.Metrics
	progress Progress
}

type Option func(*Auditor)

func WithJobs(n int) Option {
	return func(a *Auditor) {
		if n > 0 {
			a.jobs = n
		}
	}
}

// WithDefaults fills blank fallbacks and unset size hints of every entry
// from d before evaluation.
func WithDefaults(d Entry) Option {
	return func(a *Auditor) { a.defaults = d }
}

func WithLogger(log *logger.Logger) Option {
	return func(a *Auditor) {
		if log != nil {
			a.log = log.WithModule("audit")
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Auditor) { a.metrics = m }
}

func WithProgress(p Progress) Option {
	return func(a *Auditor) { a.progress = p }
}

func New(c *checker.Checker, opts ...Option) *Auditor {
	if c == nil {
		c = checker.New()
	}
	a := &Auditor{checker: c, jobs: 1, log: logger.Discard()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run evaluates every entry. It only fails when ctx is cancelled.
func (a *Auditor) Run(ctx context.Context, entries []Entry) ([]Result, error) {
	results := make([]Result, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.jobs)
	for i := range entries {
		entry := a.applyDefaults(entries[i])
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out := a.checker.Evaluate(entry.Input())
			results[i] = Result{Entry: entry, Outcome: out}
			a.metrics.RecordAuditEntry(out.Kind.String())
			if out.Kind == checker.Fail {
				a.log.WithField("entry", entry.Name).
					WithField("ratio", out.Assessment.Ratio).
					Info("palette entry fails contrast")
			}
			if a.progress != nil {
				a.progress.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	a.log.WithField("entries", len(entries)).Debug("audit finished")
	return results, nil
}

func (a *Auditor) applyDefaults(e Entry) Entry {
	if e.FallbackBackground == "" {
		e.FallbackBackground = a.defaults.FallbackBackground
	}
	if e.FallbackText == "" {
		e.FallbackText = a.defaults.FallbackText
	}
	if e.LargeText == nil && e.FontSize == nil {
		e.LargeText = a.defaults.LargeText
		e.FontSize = a.defaults.FontSize
	}
	return e
}

// Failed reports whether any result is a failure.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Outcome.Kind == checker.Fail {
			return true
		}
	}
	return false
}
