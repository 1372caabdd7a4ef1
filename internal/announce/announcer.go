// Package announce delivers the one-shot accessibility announcement that
// accompanies a failing contrast check.
package announce

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
)

// ErrAnnouncerUnavailable wraps every failure of the external speech service.
var ErrAnnouncerUnavailable = errors.New("announcer unavailable")

// Announcer is the host's speech or live-region primitive.
type Announcer interface {
	Announce(ctx context.Context, text string) error
}

// Func adapts a function to Announcer.
type Func func(ctx context.Context, text string) error

func (f Func) Announce(ctx context.Context, text string) error {
	return f(ctx, text)
}

// Writer prints each announcement as one line, e.g. to a terminal's stderr
// for screen readers that follow console output.
type Writer struct {
	mu     sync.Mutex
	w      io.Writer
	prefix string
}

func NewWriter(w io.Writer, prefix string) *Writer {
	return &Writer{w: w, prefix: prefix}
}

func (w *Writer) Announce(_ context.Context, text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.w == nil {
		return ErrAnnouncerUnavailable
	}
	_, err := fmt.Fprintf(w.w, "%s%s\n", w.prefix, text)
	return err
}

// Recorder keeps announcements in memory.
type Recorder struct {
	mu    sync.Mutex
	texts []string
}

func (r *Recorder) Announce(_ context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, text)
	return nil
}

// Texts returns a copy of everything announced so far.
func (r *Recorder) Texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.texts))
	copy(out, r.texts)
	return out
}
