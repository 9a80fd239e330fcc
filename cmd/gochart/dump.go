package main

import (
	"encoding/json"
	"os"

	"github.com/gochart/gochart"
	"github.com/gochart/gochart/chart"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(dumpCmd)
}

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Print the parsed document tree as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ch, err := gochart.LoadFile(args[0], parseOptions()...)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(chartToJSON(ch))
	},
}

// ChartJSON is the top-level JSON output for the dump command.
type ChartJSON struct {
	Sections []SectionJSON `json:"sections"`
}

// SectionJSON holds the JSON-serializable form of one section.
type SectionJSON struct {
	Name          string            `json:"name"`
	NoteEvents    []NoteJSON        `json:"noteEvents,omitempty"`
	SpecialEvents []SpecialJSON     `json:"specialEvents,omitempty"`
	BpmEvents     []BpmJSON         `json:"bpmEvents,omitempty"`
	TimeSigEvents []TimeSigJSON     `json:"timeSigEvents,omitempty"`
	Events        []EventJSON       `json:"events,omitempty"`
	KeyValuePairs map[string]string `json:"keyValuePairs,omitempty"`
}

// NoteJSON holds one note event.
type NoteJSON struct {
	Position int32 `json:"position"`
	Fret     int32 `json:"fret"`
	Length   int32 `json:"length"`
}

// SpecialJSON holds one special phrase event.
type SpecialJSON struct {
	Position int32 `json:"position"`
	Key      int32 `json:"key"`
	Length   int32 `json:"length"`
}

// BpmJSON holds one tempo event; the value keeps the file's fixed-point
// encoding.
type BpmJSON struct {
	Position int32 `json:"position"`
	BPM      int32 `json:"bpm"`
}

// TimeSigJSON holds one time signature event.
type TimeSigJSON struct {
	Position    int32 `json:"position"`
	Numerator   int32 `json:"numerator"`
	Denominator int32 `json:"denominator"`
}

// EventJSON holds one free-form text event.
type EventJSON struct {
	Position int32  `json:"position"`
	Data     string `json:"data"`
}

func chartToJSON(ch *chart.Chart) ChartJSON {
	out := ChartJSON{Sections: make([]SectionJSON, 0, len(ch.Sections))}
	for _, sec := range ch.Sections {
		sj := SectionJSON{Name: sec.Name}
		for _, e := range sec.NoteEvents {
			sj.NoteEvents = append(sj.NoteEvents, NoteJSON{e.Position, e.Fret, e.Length})
		}
		for _, e := range sec.SpecialEvents {
			sj.SpecialEvents = append(sj.SpecialEvents, SpecialJSON{e.Position, e.Key, e.Length})
		}
		for _, e := range sec.BpmEvents {
			sj.BpmEvents = append(sj.BpmEvents, BpmJSON{e.Position, e.BPM})
		}
		for _, e := range sec.TimeSigEvents {
			sj.TimeSigEvents = append(sj.TimeSigEvents, TimeSigJSON{e.Position, e.Numerator, e.Denominator})
		}
		for _, e := range sec.Events {
			sj.Events = append(sj.Events, EventJSON{e.Position, e.Data})
		}
		if len(sec.KeyValuePairs) > 0 {
			sj.KeyValuePairs = sec.KeyValuePairs
		}
		out.Sections = append(out.Sections, sj)
	}
	return out
}
