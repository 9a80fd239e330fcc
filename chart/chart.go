// Package chart defines the document model produced by parsing a .chart file.
//
// A chart is an ordered list of named, brace-delimited sections. Each body
// line of a section becomes either one typed event (note, special phrase,
// tempo, time signature, or free-form event) or one metadata key/value pair.
// Values are raw file data: positions and lengths are in ticks, and the
// fixed-point scaling of BPM values is passed through untouched. Turning
// these into musical time is the caller's job.
package chart

// NoteEvent is a fretted note: `<position> = N <fret> <length>`.
type NoteEvent struct {
	Position int32
	Fret     int32
	Length   int32
}

// SpecialEvent is a phrase marker: `<position> = S <key> <length>`.
type SpecialEvent struct {
	Position int32
	Key      int32
	Length   int32
}

// BpmEvent is a tempo change: `<position> = B <bpm>`.
// The BPM field keeps the file's fixed-point encoding (usually
// milli-BPM); it is not scaled here.
type BpmEvent struct {
	Position int32
	BPM      int32
}

// TimeSigEvent is a time signature change: `<position> = TS <numerator> [<denominator>]`.
// When the file omits the denominator it is stored as the literal 2.
// That raw value is what the format writes; interpreting it (commonly as a
// power of two) is up to the consumer.
type TimeSigEvent struct {
	Position    int32
	Numerator   int32
	Denominator int32
}

// Event is a free-form text event: `<position> = E <data>`.
// Data is a single run of non-space characters.
type Event struct {
	Position int32
	Data     string
}

// Section is one bracket-headed, brace-delimited block of a chart file.
// Event slices preserve file order. KeyValuePairs holds body lines whose
// first token is not an integer; a repeated key keeps the last value seen.
type Section struct {
	Name          string
	NoteEvents    []NoteEvent
	SpecialEvents []SpecialEvent
	BpmEvents     []BpmEvent
	TimeSigEvents []TimeSigEvent
	Events        []Event
	KeyValuePairs map[string]string
}

// Chart is a parsed chart file: its sections in file order.
// Section names are not deduplicated; a file may repeat a header and the
// repeats stay separate entries.
type Chart struct {
	Sections []Section
}

// Section returns the first section with the given name, or nil.
func (c *Chart) Section(name string) *Section {
	for i := range c.Sections {
		if c.Sections[i].Name == name {
			return &c.Sections[i]
		}
	}
	return nil
}
