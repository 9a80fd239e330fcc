package chart

import (
	"errors"
	"fmt"
)

// Error kinds. A ParseError wraps exactly one of these, so callers can
// classify failures with errors.Is.
var (
	// ErrTruncatedInput means a required line was expected but the input
	// was exhausted (for example a section body with no closing brace).
	ErrTruncatedInput = errors.New("unexpected end of input")

	// ErrEmptyHeader means a section header line was empty.
	ErrEmptyHeader = errors.New("empty section header")

	// ErrMissingOpenBrace means the line after a section header was not "{".
	ErrMissingOpenBrace = errors.New("section does not open with {")

	// ErrIncompleteLine means a section body line had fewer than three
	// space-separated tokens.
	ErrIncompleteLine = errors.New("incomplete line")

	// ErrMalformedEvent means a body line selected an event grammar by its
	// tag but failed to match it in full.
	ErrMalformedEvent = errors.New("malformed event")
)

// EventKind identifies which event grammar a line selected.
type EventKind int

const (
	KindNote EventKind = iota
	KindSpecial
	KindBpm
	KindTimeSig
	KindEvent
)

func (k EventKind) String() string {
	switch k {
	case KindNote:
		return "note"
	case KindSpecial:
		return "special"
	case KindBpm:
		return "bpm"
	case KindTimeSig:
		return "time signature"
	case KindEvent:
		return "event"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// ParseError is the single failure a parse returns. Line is 1-based in the
// original input. Kind is meaningful only when Err is ErrMalformedEvent.
type ParseError struct {
	Line   int
	Err    error
	Kind   EventKind
	Detail string
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if errors.Is(e.Err, ErrMalformedEvent) {
		msg = fmt.Sprintf("malformed %s event", e.Kind)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Line > 0 {
		return fmt.Sprintf("chart: line %d: %s", e.Line, msg)
	}
	return "chart: " + msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
