// Package blocks implements spec §3's BlockRecord data model together with
// the Move Detector (§4.4), Sub-Block Pairer (§4.5), and Line Differ (§4.6)
// that annotate it. It sits directly on top of package lcsdiff (the generic
// LCS differ) and package hashing (line/word fingerprints).
package blocks

import "github.com/sagpant/docdiff/lcsdiff"

// Section is a half-open line range, (offset, length), within one document.
type Section struct {
	Offset, Length int
}

// End returns the exclusive end of the section.
func (s Section) End() int { return s.Offset + s.Length }

// ColumnSpan is a half-open column range within one source line's original
// (pre-normalization) bytes.
type ColumnSpan struct {
	Offset, Length int
}

// ChangedLine records the in-line differences of one paired line (§4.6).
type ChangedLine struct {
	// LineIndex is the line's index within its owning block.
	LineIndex int
	Changes   []ColumnSpan
	// CaseOrWhitespaceOnly is set when the line's word-level diff is empty
	// (no word, space words included unless whitespace is ignored, was
	// added or removed) but its raw bytes still differ, i.e. the only
	// difference is case or whitespace that Settings chose to ignore for
	// comparison purposes. This is a supplemented feature (see
	// SPEC_FULL.md §12.3); it does not introduce a new marker constant, it
	// only annotates an existing CHANGED line for the renderer's benefit.
	CaseOrWhitespaceOnly bool
}

// MatchSection is one sub-range of a block paired with a counterpart by the
// Move Detector (§4.4), together with whether the pairing was classified a
// move (as opposed to a plain duplicate-content correspondence).
type MatchSection struct {
	Section Section
	IsMoved bool
}

// BlockRecord is one maximal run of a single lcsdiff.Kind, annotated by the
// later pipeline stages (§3). MatchPartner is an index into the owning
// slice of BlockRecords, not a pointer, per spec §9 ("implement as indices
// into the block vector, not owning references"); -1 means unset.
type BlockRecord struct {
	Kind lcsdiff.Kind

	// OffsetA/OffsetB/Length follow spec §3: both offsets are always
	// populated (so the Mark & Align Synthesizer can advance either
	// cursor), but only the side matching Kind denotes a real, non-empty
	// range; the other side is the insertion/deletion point.
	OffsetA, OffsetB, Length int

	MatchPartner int

	ChangedLines []ChangedLine
	Matches      []MatchSection
}

// AEnd/BEnd are convenience accessors mirroring lcsdiff.Op's AEnd/BEnd.
func (b *BlockRecord) AEnd() int {
	if b.Kind == lcsdiff.OnlyInB {
		return b.OffsetA
	}
	return b.OffsetA + b.Length
}

func (b *BlockRecord) BEnd() int {
	if b.Kind == lcsdiff.OnlyInA {
		return b.OffsetB
	}
	return b.OffsetB + b.Length
}

// BuildBlocks converts the canonical lcsdiff.Op decomposition into the
// BlockRecord vector this package's later passes annotate in place.
func BuildBlocks(ops []lcsdiff.Op) []*BlockRecord {
	blocks := make([]*BlockRecord, len(ops))
	for i, op := range ops {
		length := op.AEnd - op.AStart
		if op.Kind == lcsdiff.OnlyInB {
			length = op.BEnd - op.BStart
		}
		blocks[i] = &BlockRecord{
			Kind:         op.Kind,
			OffsetA:      op.AStart,
			OffsetB:      op.BStart,
			Length:       length,
			MatchPartner: -1,
		}
	}
	return blocks
}

// LinkReplacementPairs sets MatchPartner on every adjacent (OnlyInA,
// OnlyInB) pair (spec §4.3 step 7: "link them as match_partner of each
// other"). Only directly adjacent blocks are linked here; the Move Detector
// (§4.4) separately pairs non-adjacent OnlyInA/OnlyInB content via Matches.
func LinkReplacementPairs(blocks []*BlockRecord) {
	for i := 0; i+1 < len(blocks); i++ {
		if blocks[i].Kind == lcsdiff.OnlyInA && blocks[i+1].Kind == lcsdiff.OnlyInB {
			blocks[i].MatchPartner = i + 1
			blocks[i+1].MatchPartner = i
		}
	}
}
