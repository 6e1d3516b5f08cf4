// Package comparer implements the Differ Driver (spec §4.3): the public
// entry point that wires hashing, the LCS differ, the Move Detector, the
// Sub-Block Pairer, and the Mark & Align Synthesizer into one comparison.
package comparer

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/sagpant/docdiff/align"
	"github.com/sagpant/docdiff/blocks"
	"github.com/sagpant/docdiff/document"
	"github.com/sagpant/docdiff/hashing"
	"github.com/sagpant/docdiff/lcsdiff"
)

// Side names which document a Settings.OldSide value refers to.
type Side int

const (
	SideA Side = iota
	SideB
)

// Settings mirrors spec §6's Settings fields.
type Settings struct {
	IgnoreCase       bool
	IgnoreWhitespace bool
	DetectMoves      bool
	OldSide          Side
}

func (s Settings) hashingOptions() hashing.Options {
	return hashing.Options{IgnoreCase: s.IgnoreCase, IgnoreWhitespace: s.IgnoreWhitespace}
}

func (s Settings) alignSettings() align.Settings {
	return align.Settings{OldSideIsA: s.OldSide == SideA}
}

// aOnlyMask/bOnlyMask mirror align.Settings' unexported mask polarity logic
// for the Find-Unique Mode path, which marks lines directly rather than
// going through align.Synthesize.
func (s Settings) aOnlyMask() align.Marker {
	if s.OldSide == SideA {
		return align.Removed
	}
	return align.Added
}

func (s Settings) bOnlyMask() align.Marker {
	if s.OldSide == SideA {
		return align.Added
	}
	return align.Removed
}

// Result is one of the four outcomes spec §7 names.
type Result int

const (
	Match Result = iota
	Mismatch
	Cancelled
	Error
)

func (r Result) String() string {
	switch r {
	case Match:
		return "MATCH"
	case Mismatch:
		return "MISMATCH"
	case Cancelled:
		return "CANCELLED"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Report is everything a comparison emits besides the Result itself: the
// alignment row table and the line/column marker instructions a caller
// applies to its Document Adapter.
type Report struct {
	Rows        []align.AlignmentRow
	LineMarks   []align.LineMark
	ColumnMarks []align.ColumnMark
}

// hashLinesEvery500 is the hashing-phase poll granularity spec §5 names.
const hashLinesEvery500 = 500

// Compare runs one comparison over sectionA of docA and sectionB of docB
// (spec §6's public `compare` entry). findUniqueMode switches to §4.8's
// simpler hash-bucket classification instead of the full LCS pipeline.
// progressLabel is passed through to glog only, for correlating log lines
// across concurrent callers; it plays no role in the algorithm itself.
func Compare(docA, docB document.Adapter, sectionA, sectionB blocks.Section, findUniqueMode bool, settings Settings, progress document.Progress, progressLabel string) (result Result, report Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			glog.Errorf("comparer: %s: recovered from panic: %v", progressLabel, r)
			progress.NextPhase()
			result = Error
			report = Report{}
			err = errors.Errorf("comparison failed: %v", r)
		}
	}()

	glog.Infof("comparer: %s: starting, findUniqueMode=%v", progressLabel, findUniqueMode)

	aLines, err := extractLines(docA, sectionA)
	if err != nil {
		return Error, Report{}, errors.Wrap(err, "reading side A")
	}
	bLines, err := extractLines(docB, sectionB)
	if err != nil {
		return Error, Report{}, errors.Wrap(err, "reading side B")
	}

	opts := settings.hashingOptions()

	if findUniqueMode {
		return compareFindUnique(aLines, bLines, sectionA, sectionB, opts, settings, progress)
	}

	return compareFull(aLines, bLines, sectionA, sectionB, opts, settings, progress)
}

func extractLines(doc document.Adapter, section blocks.Section) ([][]byte, error) {
	if section.Offset < 0 || section.Length < 0 || section.Offset+section.Length > doc.LineCount() {
		return nil, fmt.Errorf("section %+v out of range for a %d-line document", section, doc.LineCount())
	}
	lines := make([][]byte, section.Length)
	for i := 0; i < section.Length; i++ {
		line := section.Offset + i
		lines[i] = doc.Text(doc.LineStart(line), doc.LineEnd(line))
	}
	return lines, nil
}

func compareFindUnique(aLines, bLines [][]byte, sectionA, sectionB blocks.Section, opts hashing.Options, settings Settings, progress document.Progress) (Result, Report, error) {
	progress.SetMax(len(aLines) + len(bLines))
	for i := 0; i < len(aLines)+len(bLines); i += hashLinesEvery500 {
		if !progress.Advance() {
			return Cancelled, Report{}, nil
		}
	}

	uniques := align.FindUnique(aLines, bLines, opts)

	var lineMarks []align.LineMark
	for _, u := range uniques {
		if u.ALine >= 0 {
			lineMarks = append(lineMarks, align.LineMark{Side: align.SideA, Line: sectionA.Offset + u.ALine, Mask: settings.aOnlyMask()})
		}
		if u.BLine >= 0 {
			lineMarks = append(lineMarks, align.LineMark{Side: align.SideB, Line: sectionB.Offset + u.BLine, Mask: settings.bOnlyMask()})
		}
		if !progress.Advance() {
			return Cancelled, Report{}, nil
		}
	}

	rows := []align.AlignmentRow{{ALine: sectionA.Offset, BLine: sectionB.Offset}}
	result := Mismatch
	if len(uniques) == 0 {
		result = Match
	}
	return result, Report{Rows: rows, LineMarks: lineMarks}, nil
}

func compareFull(aLines, bLines [][]byte, sectionA, sectionB blocks.Section, opts hashing.Options, settings Settings, progress document.Progress) (Result, Report, error) {
	swapped := false
	aHashes, aTrim := hashing.Lines(aLines, opts)
	bHashes, bTrim := hashing.Lines(bLines, opts)
	if aTrim {
		aLines = aLines[:len(aHashes)]
	}
	if bTrim {
		bLines = bLines[:len(bHashes)]
	}

	if len(aHashes) < len(bHashes) {
		aLines, bLines = bLines, aLines
		aHashes, bHashes = bHashes, aHashes
		sectionA, sectionB = sectionB, sectionA
		swapped = true
	}
	glog.Infof("comparer: hashed A=%d B=%d lines, swapped=%v", len(aHashes), len(bHashes), swapped)

	progress.SetMax(len(aHashes) + len(bHashes))
	for i := 0; i < len(aHashes)+len(bHashes); i += hashLinesEvery500 {
		if !progress.Advance() {
			return Cancelled, Report{}, nil
		}
	}

	ops := lcsdiff.Diff(lcsdiff.HashElements(aHashes), lcsdiff.HashElements(bHashes))
	if len(ops) == 1 && ops[0].Kind == lcsdiff.Match {
		report := Report{Rows: []align.AlignmentRow{{ALine: sectionA.Offset, BLine: sectionB.Offset}}}
		return finishResult(swapped, Match, report), report, nil
	}

	blks := blocks.BuildBlocks(ops)

	if settings.DetectMoves {
		blocks.DetectMoves(blks, aHashes, bHashes)
	}

	for _, b := range blks {
		b.OffsetA += sectionA.Offset
		b.OffsetB += sectionB.Offset
		for mi := range b.Matches {
			// Matches store offsets relative to the same coordinate space as
			// OffsetA/OffsetB; re-base them identically so markSection's
			// absolute-position arithmetic in package align stays correct.
			if b.Kind == lcsdiff.OnlyInA {
				b.Matches[mi].Section.Offset += sectionA.Offset
			} else {
				b.Matches[mi].Section.Offset += sectionB.Offset
			}
		}
		if !progress.Advance() {
			return Cancelled, Report{}, nil
		}
	}

	blocks.LinkReplacementPairs(blks)
	for i := 0; i+1 < len(blks); i++ {
		if blks[i].Kind == lcsdiff.OnlyInA && blks[i].MatchPartner == i+1 {
			aBlk, bBlk := blks[i], blks[i+1]
			aLocalStart := aBlk.OffsetA - sectionA.Offset
			bLocalStart := bBlk.OffsetB - sectionB.Offset
			aSlice := aLines[aLocalStart : aLocalStart+aBlk.Length]
			bSlice := bLines[bLocalStart : bLocalStart+bBlk.Length]
			blocks.ApplySubBlockPairing(aBlk, bBlk, aSlice, bSlice, opts)
		}
		if !progress.Advance() {
			return Cancelled, Report{}, nil
		}
	}

	alignSettings := settings.alignSettings()
	if swapped {
		// Internal A is the caller's B here; flip the polarity so each
		// caller side keeps the ADDED/REMOVED mask OldSide gives it.
		alignSettings.OldSideIsA = !alignSettings.OldSideIsA
	}
	rows, lineMarks, columnMarks := align.Synthesize(blks, sectionA.Offset, sectionB.Offset, alignSettings)
	report := Report{Rows: rows, LineMarks: lineMarks, ColumnMarks: columnMarks}
	return finishResult(swapped, Mismatch, report), report, nil
}

// finishResult re-labels LineMark/ColumnMark Side values when the driver
// swapped A and B internally (spec §4.3 step 2: "record the swap so markers
// are re-attributed to the correct side before emission").
func finishResult(swapped bool, result Result, report Report) Result {
	if !swapped {
		return result
	}
	for i := range report.LineMarks {
		report.LineMarks[i].Side = flipSide(report.LineMarks[i].Side)
	}
	for i := range report.ColumnMarks {
		report.ColumnMarks[i].Side = flipSide(report.ColumnMarks[i].Side)
	}
	for i := range report.Rows {
		report.Rows[i].ALine, report.Rows[i].BLine = report.Rows[i].BLine, report.Rows[i].ALine
		report.Rows[i].AMask, report.Rows[i].BMask = report.Rows[i].BMask, report.Rows[i].AMask
	}
	return result
}

func flipSide(s align.Side) align.Side {
	if s == align.SideA {
		return align.SideB
	}
	return align.SideA
}
