package document

import "bytes"

// MemoryDocument is an in-memory reference Adapter implementation: lines
// are held as a slice of byte slices, joined with '\n' for Text's
// character-offset addressing. It exists for tests and for the comparecli
// demo command, which has no real editor to integrate with.
type MemoryDocument struct {
	lines    [][]byte
	starts   []int // LineStart cache, one per line
	modified bool
	markers  map[int]uint16
	changed  []ColumnMark
}

// ColumnMark is one MarkChangedText call recorded for inspection by tests.
type ColumnMark struct {
	Pos, Length int
}

// NewMemoryDocument builds a MemoryDocument from a raw byte buffer, split on
// '\n' (the trailing newline, if any, does not create an extra empty line).
func NewMemoryDocument(content []byte) *MemoryDocument {
	var lines [][]byte
	if len(content) > 0 {
		for _, l := range bytes.Split(content, []byte("\n")) {
			lines = append(lines, l)
		}
		if n := len(lines); n > 0 && len(lines[n-1]) == 0 && bytes.HasSuffix(content, []byte("\n")) {
			lines = lines[:n-1]
		}
	}
	d := &MemoryDocument{lines: lines, markers: make(map[int]uint16)}
	d.rebuildStarts()
	return d
}

func (d *MemoryDocument) rebuildStarts() {
	d.starts = make([]int, len(d.lines)+1)
	pos := 0
	for i, l := range d.lines {
		d.starts[i] = pos
		pos += len(l) + 1 // +1 for the '\n' separator
	}
	d.starts[len(d.lines)] = pos
}

func (d *MemoryDocument) LineCount() int { return len(d.lines) }

func (d *MemoryDocument) TotalCharCount() int {
	if len(d.lines) == 0 {
		return 0
	}
	return d.starts[len(d.lines)] - 1 // no trailing separator after the last line
}

func (d *MemoryDocument) LineStart(line int) int { return d.starts[line] }

func (d *MemoryDocument) LineEnd(line int) int { return d.starts[line] + len(d.lines[line]) }

func (d *MemoryDocument) Text(startCol, endCol int) []byte {
	full := d.joined()
	return full[startCol:endCol]
}

func (d *MemoryDocument) joined() []byte {
	return bytes.Join(d.lines, []byte("\n"))
}

// Line returns one line's raw bytes directly, a convenience beyond the
// Adapter contract that the CLI uses to avoid re-joining the whole buffer
// for every line.
func (d *MemoryDocument) Line(i int) []byte { return d.lines[i] }

// Lines returns every line's raw bytes, for bulk hashing.
func (d *MemoryDocument) Lines() [][]byte { return d.lines }

func (d *MemoryDocument) InsertText(pos int, b []byte) {
	var line int
	for line+1 < len(d.starts) && d.starts[line+1] <= pos {
		line++
	}
	newLines := make([][]byte, 0, len(d.lines)+1)
	newLines = append(newLines, d.lines[:line]...)
	newLines = append(newLines, append([]byte{}, b...))
	newLines = append(newLines, d.lines[line:]...)
	d.lines = newLines
	d.rebuildStarts()
	d.modified = true
}

func (d *MemoryDocument) ClearModifiedFlag() { d.modified = false }

func (d *MemoryDocument) AddMarker(line int, mask uint16) { d.markers[line] |= mask }

func (d *MemoryDocument) MarkChangedText(pos, length int) {
	d.changed = append(d.changed, ColumnMark{Pos: pos, Length: length})
}

// Marker reports the accumulated marker mask for a line (test helper).
func (d *MemoryDocument) Marker(line int) uint16 { return d.markers[line] }

// Modified reports whether InsertText has run since the last
// ClearModifiedFlag call.
func (d *MemoryDocument) Modified() bool { return d.modified }
