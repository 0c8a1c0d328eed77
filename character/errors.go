package character

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoFrames      = errors.New("character: action has no frames")
	ErrMissingField  = errors.New("character: required field missing")
	ErrMissingAction = errors.New("character: required action missing")
	ErrBadDuration   = errors.New("character: frame duration must be positive")
)

// LoadError is returned when a character definition cannot be turned into a
// catalog. No partially built catalog accompanies it.
type LoadError struct {
	Character string
	Action    string
	Frame     int // -1 when the error is not about a specific frame
	Path      string
	Err       error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("character: load")
	if e.Character != "" {
		fmt.Fprintf(&b, " %q", e.Character)
	}
	if e.Action != "" {
		fmt.Fprintf(&b, " action %q", e.Action)
	}
	if e.Frame >= 0 {
		fmt.Fprintf(&b, " frame %d", e.Frame)
	}
	if e.Path != "" {
		fmt.Fprintf(&b, " (%s)", e.Path)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *LoadError) Unwrap() error { return e.Err }
