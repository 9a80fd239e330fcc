// Package gochart parses the .chart rhythm-game text format into a typed
// document tree. It covers the format grammar only: sections, the five
// per-line event kinds, and metadata fallback lines. Interpreting the
// resulting events as musical time or playable tracks is left to callers.
package gochart

import (
	"log/slog"

	"github.com/gochart/gochart/chart"
	"github.com/gochart/gochart/internal/parser"
)

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-line iteration logging (lines, tokens, events).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

// ParseOption configures Parse, ParseBytes, Load, and LoadFile.
type ParseOption func(*parseConfig)

type parseConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) ParseOption {
	return func(c *parseConfig) { c.logger = logger }
}

// Parse parses complete chart source text into a Chart.
//
// Parsing is deterministic and all-or-nothing: either the whole input is
// valid and a fully populated document is returned, or the first failure
// is reported as a *chart.ParseError and no document at all. Parse holds
// no state between calls; distinct inputs may be parsed concurrently.
//
// Example:
//
//	c, err := gochart.Parse(text)
//	if err != nil {
//	    var perr *chart.ParseError
//	    if errors.As(err, &perr) {
//	        log.Fatalf("bad chart at line %d: %v", perr.Line, err)
//	    }
//	}
//	song := c.Section("Song")
func Parse(text string, opts ...ParseOption) (*chart.Chart, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return parser.New(text, componentLogger(cfg.logger, "parser")).ParseChart()
}

// ParseBytes decodes raw file bytes and parses them. UTF-8 input with or
// without a byte order mark and UTF-16 input with one are accepted;
// charts written by Windows tools are commonly UTF-16LE.
func ParseBytes(data []byte, opts ...ParseOption) (*chart.Chart, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}
	return Parse(text, opts...)
}

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("component", component))
}
