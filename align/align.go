// Package align implements the Mark & Align Synthesizer (spec §4.7): it
// walks the annotated BlockRecord vector produced by package blocks (after
// the driver has run the LCS differ, Move Detector, and Sub-Block Pairer)
// and produces the alignment row table plus the per-line/per-column marker
// instructions a Document Adapter applies, and the Find-Unique Mode
// top-level comparison (§4.8).
package align

import (
	"github.com/sagpant/docdiff/blocks"
	"github.com/sagpant/docdiff/lcsdiff"
)

// Marker is a bitmask of the per-line annotations spec §6's "Marker mask
// constants" define. Synthesize gives each LineMark exactly one of them: a
// one-line move is MovedLine, a longer move is MovedBegin, MovedMid...,
// MovedEnd. Callers may OR several marks for the same line together.
type Marker uint16

const (
	Added Marker = 1 << iota
	Removed
	AddedLocal
	RemovedLocal
	Changed
	MovedLine
	MovedBegin
	MovedMid
	MovedEnd
)

// Side identifies which document a LineMark or ColumnMark applies to.
type Side int

const (
	SideA Side = iota
	SideB
)

// AlignmentRow is one row of the side-by-side alignment table (spec §3,
// §4.7): `{a_line, a_mask, b_line, b_mask}`. It spans a contiguous run of
// lines handled uniformly (a whole MATCH run, a whole unpaired insertion or
// deletion run, an unchanged prefix/tail inside a replacement, or exactly
// one changed-line pair) — it is coarser than "one row per line"; per-line
// detail lives in the LineMark/ColumnMark vectors Synthesize also returns.
type AlignmentRow struct {
	ALine, BLine int
	AMask, BMask Marker
}

// LineMark is one AddMarker instruction for a Document Adapter (spec §6).
type LineMark struct {
	Side Side
	Line int
	Mask Marker
}

// ColumnMark is one MarkChangedText instruction for a Document Adapter.
type ColumnMark struct {
	Side Side
	Line int
	Span blocks.ColumnSpan
}

// Settings mirrors the fields of comparer.Settings this package needs: only
// OldSide affects mark polarity (spec §6: "controls whether side A is
// painted as REMOVED or ADDED").
type Settings struct {
	OldSideIsA bool
}

func (s Settings) aOnlyMask() Marker {
	if s.OldSideIsA {
		return Removed
	}
	return Added
}

func (s Settings) bOnlyMask() Marker {
	if s.OldSideIsA {
		return Added
	}
	return Removed
}

// Synthesize builds the alignment row sequence and marker instructions for
// one comparison (spec §4.7). blocksSeq must already carry
// blocks.LinkReplacementPairs, blocks.DetectMoves (if moves were
// requested), and blocks.ApplySubBlockPairing for every replacement pair.
// aOrigin/bOrigin are the section offsets the two cursors start at.
func Synthesize(blocksSeq []*blocks.BlockRecord, aOrigin, bOrigin int, settings Settings) ([]AlignmentRow, []LineMark, []ColumnMark) {
	s := &synthesizer{settings: settings, aCursor: aOrigin, bCursor: bOrigin}

	for i := 0; i < len(blocksSeq); i++ {
		blk := blocksSeq[i]
		switch blk.Kind {
		case lcsdiff.Match:
			s.emitMatch(blk)

		case lcsdiff.OnlyInB:
			s.emitUnpairedB(blk)

		case lcsdiff.OnlyInA:
			if blk.MatchPartner >= 0 && blk.MatchPartner < len(blocksSeq) && blocksSeq[blk.MatchPartner].Kind == lcsdiff.OnlyInB {
				partner := blocksSeq[blk.MatchPartner]
				s.emitReplacement(blk, partner)
				i++ // partner already consumed
				continue
			}
			s.emitUnpairedA(blk)
		}
	}

	return s.rows, s.lineMarks, s.columnMarks
}

type synthesizer struct {
	settings         Settings
	aCursor, bCursor int
	rows             []AlignmentRow
	lineMarks        []LineMark
	columnMarks      []ColumnMark
}

func (s *synthesizer) emitMatch(blk *blocks.BlockRecord) {
	s.rows = append(s.rows, AlignmentRow{ALine: s.aCursor, BLine: s.bCursor})
	s.aCursor += blk.Length
	s.bCursor += blk.Length
}

func (s *synthesizer) emitUnpairedA(blk *blocks.BlockRecord) {
	s.markSection(blk, SideA, blk.OffsetA, blk.Length, s.settings.aOnlyMask())
	s.rows = append(s.rows, AlignmentRow{ALine: s.aCursor, BLine: s.bCursor, AMask: s.settings.aOnlyMask()})
	s.aCursor += blk.Length
}

func (s *synthesizer) emitUnpairedB(blk *blocks.BlockRecord) {
	s.markSection(blk, SideB, blk.OffsetB, blk.Length, s.settings.bOnlyMask())
	s.rows = append(s.rows, AlignmentRow{ALine: s.aCursor, BLine: s.bCursor, BMask: s.settings.bOnlyMask()})
	s.bCursor += blk.Length
}

// emitReplacement is spec §4.7's ONLY_IN_A-with-match_partner case: iterate
// changed_lines (paired by index with the partner's), emitting an unchanged
// prefix row ahead of each, then the changed-line row itself, then a final
// tail row after the last pairing.
func (s *synthesizer) emitReplacement(aBlk, bBlk *blocks.BlockRecord) {
	aLocal, bLocal := 0, 0
	for i := range aBlk.ChangedLines {
		aCl := aBlk.ChangedLines[i]
		bCl := bBlk.ChangedLines[i]

		if prefixA, prefixB := aCl.LineIndex-aLocal, bCl.LineIndex-bLocal; prefixA > 0 || prefixB > 0 {
			s.emitPrefix(aBlk, bBlk, aLocal, bLocal, prefixA, prefixB)
			aLocal = aCl.LineIndex
			bLocal = bCl.LineIndex
		}

		s.markSection(aBlk, SideA, aBlk.OffsetA+aLocal, 1, Changed)
		s.markSection(bBlk, SideB, bBlk.OffsetB+bLocal, 1, Changed)
		for _, c := range aCl.Changes {
			s.columnMarks = append(s.columnMarks, ColumnMark{Side: SideA, Line: aBlk.OffsetA + aLocal, Span: c})
		}
		for _, c := range bCl.Changes {
			s.columnMarks = append(s.columnMarks, ColumnMark{Side: SideB, Line: bBlk.OffsetB + bLocal, Span: c})
		}
		s.rows = append(s.rows, AlignmentRow{
			ALine: s.aCursor, BLine: s.bCursor, AMask: Changed, BMask: Changed,
		})
		s.aCursor++
		s.bCursor++
		aLocal++
		bLocal++
	}

	if tailA, tailB := aBlk.Length-aLocal, bBlk.Length-bLocal; tailA > 0 || tailB > 0 {
		s.emitPrefix(aBlk, bBlk, aLocal, bLocal, tailA, tailB)
	}
}

// emitPrefix marks and emits one unchanged-inside-a-replacement run on
// whichever side(s) still have lines left (the two sides need not be the
// same length around a given changed-line pair).
func (s *synthesizer) emitPrefix(aBlk, bBlk *blocks.BlockRecord, aLocal, bLocal, aLen, bLen int) {
	if aLen > 0 {
		s.markSection(aBlk, SideA, aBlk.OffsetA+aLocal, aLen, s.settings.aOnlyMask())
	}
	if bLen > 0 {
		s.markSection(bBlk, SideB, bBlk.OffsetB+bLocal, bLen, s.settings.bOnlyMask())
	}
	row := AlignmentRow{ALine: s.aCursor, BLine: s.bCursor}
	if aLen > 0 {
		row.AMask = s.settings.aOnlyMask()
	}
	if bLen > 0 {
		row.BMask = s.settings.bOnlyMask()
	}
	s.rows = append(s.rows, row)
	s.aCursor += aLen
	s.bCursor += bLen
}

// markSection implements §4.7's markSection: every line in [absOffset,
// absOffset+length) gets fallback, unless the owning block's Matches say
// otherwise (a moved or non-moved duplicate correspondence).
func (s *synthesizer) markSection(blk *blocks.BlockRecord, side Side, absOffset, length int, fallback Marker) {
	localMask := func(pos int) Marker {
		for _, m := range blk.Matches {
			if pos < m.Section.Offset || pos >= m.Section.Offset+m.Section.Length {
				continue
			}
			if !m.IsMoved {
				if fallback == Added {
					return AddedLocal
				}
				return RemovedLocal
			}
			switch {
			case m.Section.Length == 1:
				return MovedLine
			case pos == m.Section.Offset:
				return MovedBegin
			case pos == m.Section.Offset+m.Section.Length-1:
				return MovedEnd
			default:
				return MovedMid
			}
		}
		return fallback
	}

	for pos := absOffset; pos < absOffset+length; pos++ {
		s.lineMarks = append(s.lineMarks, LineMark{Side: side, Line: pos, Mask: localMask(pos)})
	}
}
