package util

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// redrawInterval limits how often the status line is repainted. The first
// and the final update are always drawn.
const redrawInterval = 100 * time.Millisecond

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && f != nil && term.IsTerminal(int(f.Fd()))
}

// ShouldShowProgress decides whether a status line goes to w. --no-progress
// beats --progress, and without either the line only appears on a terminal.
func ShouldShowProgress(w io.Writer, force, no bool) bool {
	if no {
		return false
	}
	return force || isTerminal(w)
}

// Progress renders a single status line. Add may be called from several
// goroutines.
type Progress struct {
	mu       sync.Mutex
	w        io.Writer
	label    string
	total    int
	done     int
	start    time.Time
	lastDraw time.Time
	enabled  bool
	now      func() time.Time
}

func NewProgress(w io.Writer, label string, total int, enabled bool) *Progress {
	if w == nil {
		w = os.Stderr
	}
	return &Progress{
		w:       w,
		label:   label,
		total:   total,
		start:   time.Now(),
		enabled: enabled && total > 0,
		now:     time.Now,
	}
}

func (p *Progress) Add(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done += n
	p.drawLocked()
}

func (p *Progress) Update(done int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done = done
	p.drawLocked()
}

func (p *Progress) drawLocked() {
	if !p.enabled {
		return
	}
	now := p.now()
	final := p.done >= p.total
	if !final && !p.lastDraw.IsZero() && now.Sub(p.lastDraw) < redrawInterval {
		return
	}
	p.lastDraw = now
	elapsed := now.Sub(p.start).Round(100 * time.Millisecond)
	fmt.Fprintf(p.w, "\r\033[K[%s] %d/%d (%d%%) %s", p.label, p.done, p.total, percent(p.done, p.total), elapsed)
}

// Done erases the status line.
func (p *Progress) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	fmt.Fprint(p.w, "\r\033[K")
}

func percent(a, b int) int {
	if b == 0 || a >= b {
		return 100
	}
	if a <= 0 {
		return 0
	}
	return a * 100 / b
}
