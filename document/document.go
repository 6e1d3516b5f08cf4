// Package document defines the external collaborator contracts the
// comparison engine depends on (spec §6) and a small in-memory reference
// adapter for use in tests and the CLI demo. Production editors implement
// Adapter and Progress themselves; the engine never assumes more than
// these contracts.
package document

// Adapter is a view over one document side. The comparer only reads it
// (LineCount, LineStart, LineEnd, Text); the mutation methods below are for
// the caller that applies a Report. Line and column numbers are both
// 0-based.
type Adapter interface {
	// LineCount returns the number of lines in the view.
	LineCount() int
	// TotalCharCount returns the total byte length of the view.
	TotalCharCount() int
	// LineStart and LineEnd return the half-open character range [start,
	// end) of a single line (end excludes the line terminator).
	LineStart(line int) int
	LineEnd(line int) int
	// Text returns the raw bytes in [startCol, endCol).
	Text(startCol, endCol int) []byte

	// InsertText and ClearModifiedFlag are the hooks for the
	// beginning-of-file blank-line workaround (spec §4.7). Nothing in this
	// module calls them: the comparer and align.Synthesize never insert a
	// blank line, and Report offsets assume none was inserted.
	InsertText(pos int, bytes []byte)
	ClearModifiedFlag()

	// AddMarker and MarkChangedText apply a Report's instructions:
	// AddMarker paints a marker-mask bit onto a whole line (one per
	// align.LineMark), MarkChangedText paints a column range (one per
	// align.ColumnMark, i.e. a changed span inside a CHANGED line). The
	// comparer does not call them itself.
	AddMarker(line int, mask uint16)
	MarkChangedText(pos, length int)
}

// Progress is the cooperative cancellation and phase-reporting
// collaborator (spec §5, §6). The comparer polls Advance once per 500
// input lines right after hashing (hashing itself is not interrupted), and
// once per block while re-basing blocks and while pairing them;
// align.Synthesize does not poll. Returning false means the caller must
// abort the comparison and return CANCELLED.
type Progress interface {
	SetMax(n int)
	Advance() bool
	NextPhase() bool
}

// NoopProgress never cancels and ignores phase/max bookkeeping; it is the
// default collaborator for callers (tests, one-shot CLI runs) that don't
// need cancellation or a progress bar.
type NoopProgress struct{}

func (NoopProgress) SetMax(int)      {}
func (NoopProgress) Advance() bool   { return true }
func (NoopProgress) NextPhase() bool { return true }
