package blocks

import (
	"bytes"

	"github.com/sagpant/docdiff/hashing"
	"github.com/sagpant/docdiff/lcsdiff"
)

// LineDiff implements the Line Differ (spec §4.6): given two source lines
// already paired by the Sub-Block Pairer, it runs the generic LCS differ
// over their word tokenization and translates the result into column spans
// over the line's own raw bytes.
//
// lineIndex is the position of aLine within its own block. Column spans are
// reported for aLine only; ApplySubBlockPairing calls LineDiff once per
// side, passing each side's own line and index first.
func LineDiff(lineIndex int, aLine, bLine []byte, opts hashing.Options) ChangedLine {
	aWords := tokenize(aLine, opts)
	bWords := tokenize(bLine, opts)

	ops := lcsdiff.Diff(wordElements(aWords), wordElements(bWords))

	var changes []ColumnSpan
	wordsDiffer := false
	for _, op := range ops {
		if op.Kind != lcsdiff.OnlyInA && op.Kind != lcsdiff.OnlyInB {
			continue
		}
		wordsDiffer = true
		if op.Kind != lcsdiff.OnlyInA {
			continue
		}
		first := aWords[op.AStart]
		last := aWords[op.AEnd-1]
		changes = append(changes, ColumnSpan{
			Offset: first.span.Offset,
			Length: last.span.Offset + last.span.Length - first.span.Offset,
		})
	}

	cl := ChangedLine{LineIndex: lineIndex, Changes: changes}
	if !wordsDiffer && !bytes.Equal(aLine, bLine) {
		cl.CaseOrWhitespaceOnly = true
	}
	return cl
}
