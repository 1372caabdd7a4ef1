package announce

import (
	"context"
	"fmt"
	"sync"

	"github.com/phyten/contrastcheck/internal/checker"
	"github.com/phyten/contrastcheck/internal/i18n"
	"github.com/phyten/contrastcheck/internal/logger"
	"github.com/phyten/contrastcheck/internal/metrics"
)

// Pair is the raw (pre-fallback) input pair an announcement is keyed on.
type Pair struct {
	Background string
	Text       string
}

// Dispatcher fires the announcement once per distinct failing pair. Leaving
// the failing state forgets the pair, so failing again with the same colors
// announces again.
type Dispatcher struct {
	announcer Announcer
	log       *logger.Logger
	metrics   *metrics.Metrics

	mu   sync.Mutex
	last Pair
	has  bool
}

type Option func(*Dispatcher)

func WithLogger(log *logger.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log.WithModule("announce")
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(d *Dispatcher) { d.metrics = m }
}

func NewDispatcher(a Announcer, opts ...Option) *Dispatcher {
	d := &Dispatcher{announcer: a, log: logger.Discard()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// MaybeAnnounce reports whether an announcement was attempted. Failures of
// the announcer are logged and swallowed.
func (d *Dispatcher) MaybeAnnounce(ctx context.Context, out checker.Outcome, pair Pair) bool {
	if !d.claim(out, pair) {
		return false
	}
	text := out.Announcement
	if text == "" {
		text = i18n.MsgHardToRead
	}
	if err := d.deliver(ctx, text); err != nil {
		d.log.WithError(err).WithField("background", pair.Background).WithField("text", pair.Text).
			Warn("accessibility announcement failed")
		d.metrics.RecordAnnouncement("failed")
		return true
	}
	d.metrics.RecordAnnouncement("sent")
	return true
}

// claim performs the read-then-write on the last pair as one step.
func (d *Dispatcher) claim(out checker.Outcome, pair Pair) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !out.Failed() {
		d.has = false
		d.last = Pair{}
		return false
	}
	if d.has && d.last == pair {
		d.metrics.RecordAnnouncement("skipped")
		return false
	}
	d.last = pair
	d.has = true
	return true
}

func (d *Dispatcher) deliver(ctx context.Context, text string) (err error) {
	if d.announcer == nil {
		return ErrAnnouncerUnavailable
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrAnnouncerUnavailable, r)
		}
	}()
	if aerr := d.announcer.Announce(ctx, text); aerr != nil {
		return fmt.Errorf("%w: %w", ErrAnnouncerUnavailable, aerr)
	}
	return nil
}

// Last returns the pair most recently announced for, if any.
func (d *Dispatcher) Last() (Pair, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last, d.has
}

// Reset forgets the last announced pair.
func (d *Dispatcher) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.last = Pair{}
	d.has = false
}
