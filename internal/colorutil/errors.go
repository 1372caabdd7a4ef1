package colorutil

import (
	"errors"
	"fmt"
)

var (
	// ErrAbsent reports that no color value was supplied.
	ErrAbsent = errors.New("color is absent")

	// ErrInvalidColorFormat reports a non-empty value that could not be parsed.
	ErrInvalidColorFormat = errors.New("invalid color format")
)

// FormatError describes why a color string was rejected.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid color format %q", e.Input)
	}
	return fmt.Sprintf("invalid color format %q: %s", e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidColorFormat
}

func formatError(input, reason string) error {
	return &FormatError{Input: input, Reason: reason}
}
