package parser

import (
	"testing"

	"github.com/gochart/gochart/chart"
	"github.com/gochart/gochart/internal/testutil"
)

func parseOne(t *testing.T, source string) chart.Section {
	t.Helper()
	ch, err := New(source, nil).ParseChart()
	testutil.NoError(t, err, "parse")
	testutil.Len(t, ch.Sections, 1, "sections")
	return ch.Sections[0]
}

func section(body string) string {
	return "[Test]\n{\n" + body + "}\n"
}

func TestParseNoteLine(t *testing.T) {
	sec := parseOne(t, section("768 = N 0 96\n"))
	testutil.Equal(t, "Test", sec.Name, "name")
	testutil.Len(t, sec.NoteEvents, 1, "notes")
	testutil.Equal(t, chart.NoteEvent{Position: 768, Fret: 0, Length: 96}, sec.NoteEvents[0], "note")
	testutil.Len(t, sec.SpecialEvents, 0, "specials")
	testutil.Len(t, sec.BpmEvents, 0, "bpms")
	testutil.Len(t, sec.TimeSigEvents, 0, "time signatures")
	testutil.Len(t, sec.Events, 0, "events")
	testutil.Equal(t, 0, len(sec.KeyValuePairs), "metadata")
}

func TestParseSpecialLine(t *testing.T) {
	sec := parseOne(t, section("384 = S 2 192\n"))
	testutil.Len(t, sec.SpecialEvents, 1, "specials")
	testutil.Equal(t, chart.SpecialEvent{Position: 384, Key: 2, Length: 192}, sec.SpecialEvents[0], "special")
}

func TestParseBpmLine(t *testing.T) {
	sec := parseOne(t, section("0 = B 120000\n"))
	testutil.Len(t, sec.BpmEvents, 1, "bpms")
	testutil.Equal(t, chart.BpmEvent{Position: 0, BPM: 120000}, sec.BpmEvents[0], "bpm")
}

func TestParseTimeSigDefaultDenominator(t *testing.T) {
	sec := parseOne(t, section("0 = TS 4\n"))
	testutil.Len(t, sec.TimeSigEvents, 1, "time signatures")
	testutil.Equal(t, chart.TimeSigEvent{Position: 0, Numerator: 4, Denominator: 2}, sec.TimeSigEvents[0], "ts")
}

func TestParseTimeSigExplicitDenominator(t *testing.T) {
	sec := parseOne(t, section("0 = TS 4 3\n"))
	testutil.Equal(t, chart.TimeSigEvent{Position: 0, Numerator: 4, Denominator: 3}, sec.TimeSigEvents[0], "ts")
}

func TestParseEventLine(t *testing.T) {
	sec := parseOne(t, section("768 = E solo_start\n"))
	testutil.Len(t, sec.Events, 1, "events")
	testutil.Equal(t, chart.Event{Position: 768, Data: "solo_start"}, sec.Events[0], "event")
}

func TestParseNegativeFieldValues(t *testing.T) {
	// Only syntactic shape is enforced; range checking belongs downstream.
	sec := parseOne(t, section("-10 = N -1 0\n"))
	testutil.Equal(t, chart.NoteEvent{Position: -10, Fret: -1, Length: 0}, sec.NoteEvents[0], "note")
}

func TestParseTabSeparators(t *testing.T) {
	// The grammars re-match the full line, so tabs around fields are fine
	// as long as the space-split classification still sees three tokens.
	sec := parseOne(t, section("0 = N \t1 \t2\n"))
	testutil.Equal(t, chart.NoteEvent{Position: 0, Fret: 1, Length: 2}, sec.NoteEvents[0], "note")
}

func TestParseUnknownTagSkipped(t *testing.T) {
	sec := parseOne(t, section("0 = X 1 2\n10 = N 1 2\n"))
	testutil.Len(t, sec.NoteEvents, 1, "notes")
	testutil.Len(t, sec.SpecialEvents, 0, "specials")
	testutil.Len(t, sec.BpmEvents, 0, "bpms")
	testutil.Len(t, sec.TimeSigEvents, 0, "time signatures")
	testutil.Len(t, sec.Events, 0, "events")
	testutil.Equal(t, 0, len(sec.KeyValuePairs), "metadata")
}

func TestParseMetadataLine(t *testing.T) {
	sec := parseOne(t, section("Resolution = 192\n"))
	testutil.Equal(t, "192", sec.KeyValuePairs["Resolution"], "value")
}

func TestParseMetadataConcatenationQuirk(t *testing.T) {
	// Values spanning several tokens are joined with nothing between them.
	// Interior spaces are lost; kept for compatibility with the reference
	// grammar, not because anyone likes it.
	sec := parseOne(t, section("Name = My Song\n"))
	testutil.Equal(t, "MySong", sec.KeyValuePairs["Name"], "value")
}

func TestParseMetadataDuplicateKeyOverwrites(t *testing.T) {
	sec := parseOne(t, section("Name = First\nName = Second\n"))
	testutil.Equal(t, 1, len(sec.KeyValuePairs), "one entry")
	testutil.Equal(t, "Second", sec.KeyValuePairs["Name"], "last value wins")
}

func TestParseMetadataWithEventShapedValue(t *testing.T) {
	// Token three is "My", not a tag, so this stays metadata even though
	// token one is non-numeric.
	sec := parseOne(t, section("MusicStream = My Song.ogg\n"))
	testutil.Equal(t, "MySong.ogg", sec.KeyValuePairs["MusicStream"], "value")
}

func TestParseOverflowPositionBecomesMetadata(t *testing.T) {
	// A position outside int32 does not classify as an integer; with an
	// unrecognized third token the line falls back to metadata.
	sec := parseOne(t, section("99999999999 = 1 2\n"))
	testutil.Equal(t, "12", sec.KeyValuePairs["99999999999"], "value")
}

func TestParseEmptySection(t *testing.T) {
	sec := parseOne(t, "[Empty]\n{\n}\n")
	testutil.Equal(t, "Empty", sec.Name, "name")
	testutil.Len(t, sec.NoteEvents, 0, "notes")
	testutil.Equal(t, 0, len(sec.KeyValuePairs), "metadata")
}

func TestParseMultipleSectionsKeepOrder(t *testing.T) {
	source := "[One]\n{\n}\n[Two]\n{\n}\n[One]\n{\n}\n"
	ch, err := New(source, nil).ParseChart()
	testutil.NoError(t, err, "parse")
	testutil.Len(t, ch.Sections, 3, "sections")
	testutil.Equal(t, "One", ch.Sections[0].Name, "first")
	testutil.Equal(t, "Two", ch.Sections[1].Name, "second")
	testutil.Equal(t, "One", ch.Sections[2].Name, "repeated names stay separate")
}

func TestParseCRLFDocument(t *testing.T) {
	sec := parseOne(t, "[Test]\r\n{\r\n0 = N 1 2\r\n}\r\n")
	testutil.Len(t, sec.NoteEvents, 1, "notes")
}

func TestParseIndentedBody(t *testing.T) {
	sec := parseOne(t, "[Test]\n{\n  0 = N 1 2\n  Name = x\n}\n")
	testutil.Len(t, sec.NoteEvents, 1, "notes")
	testutil.Equal(t, "x", sec.KeyValuePairs["Name"], "metadata")
}

func TestParseMissingOpenBrace(t *testing.T) {
	_, err := New("[Test]\n0 = N 1 2\n}\n", nil).ParseChart()
	testutil.ErrorIs(t, err, chart.ErrMissingOpenBrace, "missing open brace")
}

func TestParseMissingCloseBrace(t *testing.T) {
	_, err := New("[Test]\n{\n0 = N 1 2\n", nil).ParseChart()
	testutil.ErrorIs(t, err, chart.ErrTruncatedInput, "truncation")
}

func TestParseHeaderOnly(t *testing.T) {
	_, err := New("[Test]", nil).ParseChart()
	testutil.ErrorIs(t, err, chart.ErrTruncatedInput, "truncation")
}

func TestParseIncompleteLine(t *testing.T) {
	_, err := New(section("0 =\n"), nil).ParseChart()
	testutil.ErrorIs(t, err, chart.ErrIncompleteLine, "incomplete line")
}

func TestParseMalformedPosition(t *testing.T) {
	_, err := New(section("abc = N 1 2\n"), nil).ParseChart()
	testutil.ErrorIs(t, err, chart.ErrMalformedEvent, "malformed event")
	perr := err.(*chart.ParseError)
	testutil.Equal(t, chart.KindNote, perr.Kind, "kind")
	testutil.Equal(t, 3, perr.Line, "line number")
}

func TestParseMalformedNoteMissingLength(t *testing.T) {
	_, err := New(section("0 = N 1\n"), nil).ParseChart()
	testutil.ErrorIs(t, err, chart.ErrMalformedEvent, "malformed event")
}

func TestParseMalformedNoteTrailingGarbage(t *testing.T) {
	_, err := New(section("0 = N 1 2 3\n"), nil).ParseChart()
	testutil.ErrorIs(t, err, chart.ErrMalformedEvent, "malformed event")
}

func TestParseMalformedNoteOverflowField(t *testing.T) {
	_, err := New(section("0 = N 2147483648 0\n"), nil).ParseChart()
	testutil.ErrorIs(t, err, chart.ErrMalformedEvent, "malformed event")
}

func TestParseMalformedTimeSigExtraField(t *testing.T) {
	_, err := New(section("0 = TS 4 3 9\n"), nil).ParseChart()
	testutil.ErrorIs(t, err, chart.ErrMalformedEvent, "malformed event")
	testutil.Equal(t, chart.KindTimeSig, err.(*chart.ParseError).Kind, "kind")
}

func TestParseMalformedEventMultiTokenPayload(t *testing.T) {
	// The payload is a single non-space run; a second payload token means
	// the grammar cannot consume the whole line.
	_, err := New(section("0 = E solo end\n"), nil).ParseChart()
	testutil.ErrorIs(t, err, chart.ErrMalformedEvent, "malformed event")
}

func TestParseMalformedEventMissingPayload(t *testing.T) {
	_, err := New(section("0 = E \n"), nil).ParseChart()
	testutil.ErrorIs(t, err, chart.ErrMalformedEvent, "malformed event")
}

func TestParseEmptyHeader(t *testing.T) {
	_, err := New("\n[Test]\n{\n}\n", nil).ParseChart()
	testutil.ErrorIs(t, err, chart.ErrEmptyHeader, "empty header")
}

func TestParseTrailingWhitespaceAfterLastSection(t *testing.T) {
	ch, err := New("[Test]\n{\n}\n\n  \n", nil).ParseChart()
	testutil.NoError(t, err, "parse")
	testutil.Len(t, ch.Sections, 1, "sections")
}

func TestParseEmptyInput(t *testing.T) {
	ch, err := New("", nil).ParseChart()
	testutil.NoError(t, err, "parse")
	testutil.Len(t, ch.Sections, 0, "sections")
}

func TestParseErrorAbortsWholeChart(t *testing.T) {
	// The first failure wins; nothing of the earlier valid section survives.
	source := "[Good]\n{\n0 = N 1 2\n}\n[Bad]\n{\n0 =\n}\n"
	ch, err := New(source, nil).ParseChart()
	testutil.ErrorIs(t, err, chart.ErrIncompleteLine, "error propagates")
	testutil.True(t, ch == nil, "no partial document")
}
