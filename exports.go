package gochart

import "github.com/gochart/gochart/chart"

// Type aliases for the public API - all types come from the chart subpackage.

// Chart is a parsed chart file.
type Chart = chart.Chart

// Section is one bracket-headed, brace-delimited block.
type Section = chart.Section

// NoteEvent is a fretted note.
type NoteEvent = chart.NoteEvent

// SpecialEvent is a phrase marker.
type SpecialEvent = chart.SpecialEvent

// BpmEvent is a tempo change.
type BpmEvent = chart.BpmEvent

// TimeSigEvent is a time signature change.
type TimeSigEvent = chart.TimeSigEvent

// Event is a free-form text event.
type Event = chart.Event

// EventKind identifies which event grammar a line selected.
type EventKind = chart.EventKind

// ParseError is the failure a parse returns.
type ParseError = chart.ParseError

// Error kind sentinels, re-exported for errors.Is checks.
var (
	ErrTruncatedInput   = chart.ErrTruncatedInput
	ErrEmptyHeader      = chart.ErrEmptyHeader
	ErrMissingOpenBrace = chart.ErrMissingOpenBrace
	ErrIncompleteLine   = chart.ErrIncompleteLine
	ErrMalformedEvent   = chart.ErrMalformedEvent
)
