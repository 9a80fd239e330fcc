// Package scanner provides line-level scanning of .chart source text.
//
// The cursor hands out one logical line at a time as a substring of the
// original input; nothing here copies source text. Token and integer helpers
// operate on those substrings with the exact splitting and full-consumption
// rules the format requires.
package scanner

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/gochart/gochart/chart"
	"github.com/gochart/gochart/internal/types"
)

// Line is one logical line of input. Text never includes the terminator.
// Num is the 1-based line number in the original input.
type Line struct {
	Text string
	Num  int
}

// Cursor yields lines from a shrinking view over the remaining input.
// After each line it skips the run of whitespace that follows, so blank
// lines and leading indentation never reach the caller.
type Cursor struct {
	rest string
	line int
	types.Logger
}

// NewCursor returns a Cursor over the given source text.
// Pass nil for logger to disable logging.
func NewCursor(source string, logger *slog.Logger) *Cursor {
	c := &Cursor{
		rest:   source,
		line:   1,
		Logger: types.Logger{L: logger},
	}
	c.Log(slog.LevelDebug, "cursor initialized", slog.Int("bytes", len(source)))
	return c
}

// Empty reports whether all input has been consumed.
func (c *Cursor) Empty() bool {
	return c.rest == ""
}

// BreakOffLine removes and returns the next line. Invoking it on an empty
// remainder is the truncation failure: some required construct (a header,
// an open brace, a closing brace) did not arrive before end of input.
func (c *Cursor) BreakOffLine() (Line, error) {
	if c.rest == "" {
		return Line{}, &chart.ParseError{Line: c.line, Err: chart.ErrTruncatedInput}
	}

	num := c.line
	end := lineEnd(c.rest)
	if end < 0 {
		line := Line{Text: c.rest, Num: num}
		c.rest = ""
		c.traceLine(line)
		return line, nil
	}

	line := Line{Text: c.rest[:end], Num: num}
	c.rest = c.rest[end:]
	c.skipWhitespace()
	c.traceLine(line)
	return line, nil
}

func (c *Cursor) traceLine(line Line) {
	if c.TraceEnabled() {
		c.Trace("line",
			slog.Int("num", line.Num),
			slog.Int("len", len(line.Text)))
	}
}

// lineEnd returns the index at which the current line stops: the first
// "\n" or "\r\n", whichever comes first. Returns -1 when the remainder is
// the final, unterminated line. A bare "\r" does not end a line.
func lineEnd(s string) int {
	nl := strings.IndexByte(s, '\n')
	crlf := strings.Index(s, "\r\n")
	if crlf >= 0 && (nl < 0 || crlf < nl) {
		return crlf
	}
	return nl
}

// skipWhitespace consumes the whitespace run after a line terminator,
// keeping the line counter in step with the newlines it eats.
func (c *Cursor) skipWhitespace() {
	i := 0
	for i < len(c.rest) {
		switch c.rest[i] {
		case '\n':
			c.line++
		case ' ', '\t', '\r', '\f', '\v':
		default:
			c.rest = c.rest[i:]
			return
		}
		i++
	}
	c.rest = ""
}

// StripBrackets removes exactly one leading and one trailing character from
// a section header line. It does not check that they are brackets; that
// matches the format's reference behavior.
func StripBrackets(line string) (string, error) {
	if line == "" {
		return "", chart.ErrEmptyHeader
	}
	if len(line) < 2 {
		return "", nil
	}
	return line[1 : len(line)-1], nil
}

// SplitBySpace splits a line on single space characters, keeping the empty
// tokens that consecutive spaces produce. The returned substrings alias the
// input.
func SplitBySpace(line string) []string {
	return strings.Split(line, " ")
}

// ParseInt converts a token to an int32. The whole token must be a base-10
// integer with at most a leading minus sign; anything else, including a
// leading plus or a value outside the 32-bit signed range, fails.
func ParseInt(tok string) (int32, bool) {
	if tok == "" || tok[0] == '+' {
		return 0, false
	}
	v, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}
