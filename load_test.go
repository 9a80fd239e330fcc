package gochart

import (
	"encoding/binary"
	"testing"

	"github.com/gochart/gochart/internal/testutil"
)

func TestLoadFile(t *testing.T) {
	ch, err := LoadFile("testdata/notes.chart")
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	testutil.Len(t, ch.Sections, 4, "sections")
	testutil.NotNil(t, ch.Section("SyncTrack"), "SyncTrack present")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.chart")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFromSource(t *testing.T) {
	src, err := DirTree("testdata/songs")
	if err != nil {
		t.Fatalf("DirTree failed: %v", err)
	}
	ch, err := Load(src, "Example Artist - Example Song/notes")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	testutil.Len(t, ch.Sections, 4, "sections")
}

func TestLoadNilSource(t *testing.T) {
	_, err := Load(nil, "notes")
	testutil.ErrorIs(t, err, ErrNoSources, "nil source")
}

// utf16le encodes text as UTF-16LE with a byte order mark, the encoding
// Windows chart editors write.
func utf16le(text string) []byte {
	out := []byte{0xFF, 0xFE}
	for _, r := range text {
		out = binary.LittleEndian.AppendUint16(out, uint16(r))
	}
	return out
}

func TestParseBytesUTF16LE(t *testing.T) {
	raw := utf16le("[Foo]\r\n{\r\n0 = N 1 2\r\n}\r\n")
	ch, err := ParseBytes(raw)
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}
	testutil.Len(t, ch.Sections, 1, "sections")
	testutil.Len(t, ch.Sections[0].NoteEvents, 1, "notes")
}

func TestParseBytesUTF8BOM(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("[Foo]\n{\n}\n")...)
	ch, err := ParseBytes(raw)
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}
	testutil.Equal(t, "Foo", ch.Sections[0].Name, "BOM must not reach the header")
}

func TestParseBytesPlainUTF8(t *testing.T) {
	ch, err := ParseBytes([]byte("[Foo]\n{\n}\n"))
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}
	testutil.Len(t, ch.Sections, 1, "sections")
}
