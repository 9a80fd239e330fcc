package gochart

import (
	"errors"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/gochart/gochart/chart"
)

// ErrNoSources is returned when Load is called with a nil source.
var ErrNoSources = errors.New("no chart source provided")

// LoadFile reads, decodes, and parses one chart file.
func LoadFile(path string, opts ...ParseOption) (*chart.Chart, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBytes(raw, opts...)
}

// Load looks a chart up by name in a source and parses it.
// Use Multi() to combine multiple sources.
//
// Example:
//
//	src, err := gochart.DirTree("songs")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c, err := gochart.Load(src, "Artist - Song/notes")
func Load(source Source, name string, opts ...ParseOption) (*chart.Chart, error) {
	if source == nil {
		return nil, ErrNoSources
	}
	rc, path, err := source.Find(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, &os.PathError{Op: "read", Path: path, Err: err}
	}
	return ParseBytes(raw, opts...)
}

// decodeText converts raw chart file bytes to text. A UTF-16 or UTF-8 byte
// order mark selects and strips the encoding; everything else is read as
// UTF-8. Chart editors on Windows commonly write UTF-16LE with a BOM.
func decodeText(raw []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
