// Package parser assembles .chart documents from scanned lines.
//
// Parsing is all-or-nothing: the first malformed construct aborts with a
// *chart.ParseError and no partial document. Each section body line is
// classified by its space-split tokens and then re-matched in full by the
// grammar its tag selects; lines with an integer position and an
// unrecognized tag are skipped without error, and lines whose first token
// is not an integer become metadata key/value pairs.
package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gochart/gochart/chart"
	"github.com/gochart/gochart/internal/scanner"
	"github.com/gochart/gochart/internal/types"
)

// Parser turns one source text into one chart.Chart.
type Parser struct {
	cur *scanner.Cursor
	types.Logger
}

// New returns a Parser over the given source text.
// Pass nil for logger to disable logging.
func New(source string, logger *slog.Logger) *Parser {
	var curLogger *slog.Logger
	if logger != nil {
		curLogger = logger.With(slog.String("component", "scanner"))
	}
	p := &Parser{
		cur:    scanner.NewCursor(source, curLogger),
		Logger: types.Logger{L: logger},
	}
	p.Log(slog.LevelDebug, "parser initialized")
	return p
}

// ParseChart reads sections until the input is exhausted.
func (p *Parser) ParseChart() (*chart.Chart, error) {
	ch := &chart.Chart{}
	for !p.cur.Empty() {
		sec, err := p.readSection()
		if err != nil {
			return nil, err
		}
		ch.Sections = append(ch.Sections, sec)
	}
	p.Log(slog.LevelDebug, "parse complete", slog.Int("sections", len(ch.Sections)))
	return ch, nil
}

// readSection consumes one `[Name]` / `{` / body / `}` block.
func (p *Parser) readSection() (chart.Section, error) {
	header, err := p.cur.BreakOffLine()
	if err != nil {
		return chart.Section{}, err
	}
	name, err := scanner.StripBrackets(header.Text)
	if err != nil {
		return chart.Section{}, &chart.ParseError{Line: header.Num, Err: err}
	}

	sec := chart.Section{
		Name:          name,
		KeyValuePairs: make(map[string]string),
	}
	p.Log(slog.LevelDebug, "section start", slog.String("name", name), slog.Int("line", header.Num))

	open, err := p.cur.BreakOffLine()
	if err != nil {
		return chart.Section{}, err
	}
	if open.Text != "{" {
		return chart.Section{}, &chart.ParseError{
			Line:   open.Num,
			Err:    chart.ErrMissingOpenBrace,
			Detail: fmt.Sprintf("got %q", open.Text),
		}
	}

	for {
		line, err := p.cur.BreakOffLine()
		if err != nil {
			return chart.Section{}, err
		}
		if line.Text == "}" {
			break
		}
		if err := p.dispatchLine(line, &sec); err != nil {
			return chart.Section{}, err
		}
	}
	return sec, nil
}

// eventKind maps a line tag to its grammar, reporting whether the tag is
// one of the five recognized event tags.
func eventKind(tag string) (chart.EventKind, bool) {
	switch tag {
	case "N":
		return chart.KindNote, true
	case "S":
		return chart.KindSpecial, true
	case "B":
		return chart.KindBpm, true
	case "TS":
		return chart.KindTimeSig, true
	case "E":
		return chart.KindEvent, true
	default:
		return 0, false
	}
}

// dispatchLine classifies one body line and appends its result to the
// section. Each line yields exactly one of: a typed event, a metadata
// entry, or nothing (integer position with an unrecognized tag).
func (p *Parser) dispatchLine(line scanner.Line, sec *chart.Section) error {
	tokens := scanner.SplitBySpace(line.Text)
	if len(tokens) < 3 {
		return &chart.ParseError{
			Line:   line.Num,
			Err:    chart.ErrIncompleteLine,
			Detail: fmt.Sprintf("%d token(s)", len(tokens)),
		}
	}

	if _, ok := scanner.ParseInt(tokens[0]); !ok {
		// A line shaped like an event whose position token is broken is a
		// malformed event, not metadata.
		if kind, isEvent := eventKind(tokens[2]); isEvent && tokens[1] == "=" {
			return p.malformed(line, kind, "position is not an integer")
		}
		// Metadata fallback. The value is the remaining tokens joined with
		// nothing between them; interior spaces are lost. Compatibility
		// behavior, kept deliberately.
		sec.KeyValuePairs[tokens[0]] = strings.Join(tokens[2:], "")
		if p.TraceEnabled() {
			p.Trace("metadata", slog.Int("line", line.Num), slog.String("key", tokens[0]))
		}
		return nil
	}

	kind, isEvent := eventKind(tokens[2])
	if !isEvent {
		// Integer position with an unknown tag: skipped, never an error.
		if p.TraceEnabled() {
			p.Trace("skipped line", slog.Int("line", line.Num), slog.String("tag", tokens[2]))
		}
		return nil
	}

	switch kind {
	case chart.KindNote:
		return p.parseNote(line, sec)
	case chart.KindSpecial:
		return p.parseSpecial(line, sec)
	case chart.KindBpm:
		return p.parseBpm(line, sec)
	case chart.KindTimeSig:
		return p.parseTimeSig(line, sec)
	default:
		return p.parseEvent(line, sec)
	}
}

func (p *Parser) malformed(line scanner.Line, kind chart.EventKind, detail string) error {
	return &chart.ParseError{
		Line:   line.Num,
		Err:    chart.ErrMalformedEvent,
		Kind:   kind,
		Detail: detail,
	}
}

// The grammars below re-match the complete line, not the token slice, so
// tab separators and repeated spaces are handled uniformly. Every grammar
// must consume the whole line.

func (p *Parser) parseNote(line scanner.Line, sec *chart.Section) error {
	m := newMatcher(line.Text)
	pos, ok := m.int32()
	ok = ok && m.literal("=") && m.literal("N")
	fret, okFret := m.int32()
	length, okLen := m.int32()
	if !ok || !okFret || !okLen || !m.atEnd() {
		return p.malformed(line, chart.KindNote, `want "<pos> = N <fret> <length>"`)
	}
	sec.NoteEvents = append(sec.NoteEvents, chart.NoteEvent{Position: pos, Fret: fret, Length: length})
	p.traceEvent(line, chart.KindNote)
	return nil
}

func (p *Parser) parseSpecial(line scanner.Line, sec *chart.Section) error {
	m := newMatcher(line.Text)
	pos, ok := m.int32()
	ok = ok && m.literal("=") && m.literal("S")
	key, okKey := m.int32()
	length, okLen := m.int32()
	if !ok || !okKey || !okLen || !m.atEnd() {
		return p.malformed(line, chart.KindSpecial, `want "<pos> = S <key> <length>"`)
	}
	sec.SpecialEvents = append(sec.SpecialEvents, chart.SpecialEvent{Position: pos, Key: key, Length: length})
	p.traceEvent(line, chart.KindSpecial)
	return nil
}

func (p *Parser) parseBpm(line scanner.Line, sec *chart.Section) error {
	m := newMatcher(line.Text)
	pos, ok := m.int32()
	ok = ok && m.literal("=") && m.literal("B")
	bpm, okBpm := m.int32()
	if !ok || !okBpm || !m.atEnd() {
		return p.malformed(line, chart.KindBpm, `want "<pos> = B <bpm>"`)
	}
	sec.BpmEvents = append(sec.BpmEvents, chart.BpmEvent{Position: pos, BPM: bpm})
	p.traceEvent(line, chart.KindBpm)
	return nil
}

func (p *Parser) parseTimeSig(line scanner.Line, sec *chart.Section) error {
	m := newMatcher(line.Text)
	pos, ok := m.int32()
	ok = ok && m.literal("=") && m.literal("TS")
	num, okNum := m.int32()
	if !ok || !okNum {
		return p.malformed(line, chart.KindTimeSig, `want "<pos> = TS <num> [<den>]"`)
	}
	// An absent denominator is stored as the literal 2, the raw value the
	// format implies. No power-of-two interpretation here.
	den := int32(2)
	if !m.atEnd() {
		var okDen bool
		den, okDen = m.int32()
		if !okDen || !m.atEnd() {
			return p.malformed(line, chart.KindTimeSig, `want "<pos> = TS <num> [<den>]"`)
		}
	}
	sec.TimeSigEvents = append(sec.TimeSigEvents, chart.TimeSigEvent{Position: pos, Numerator: num, Denominator: den})
	p.traceEvent(line, chart.KindTimeSig)
	return nil
}

func (p *Parser) parseEvent(line scanner.Line, sec *chart.Section) error {
	m := newMatcher(line.Text)
	pos, ok := m.int32()
	ok = ok && m.literal("=") && m.literal("E")
	data, okData := m.payload()
	if !ok || !okData || !m.atEnd() {
		return p.malformed(line, chart.KindEvent, `want "<pos> = E <data>"`)
	}
	sec.Events = append(sec.Events, chart.Event{Position: pos, Data: data})
	p.traceEvent(line, chart.KindEvent)
	return nil
}

func (p *Parser) traceEvent(line scanner.Line, kind chart.EventKind) {
	if p.TraceEnabled() {
		p.Trace("event", slog.Int("line", line.Num), slog.String("kind", kind.String()))
	}
}
