package blocks

import (
	"bytes"

	"github.com/sagpant/docdiff/hashing"
)

// ApplySubBlockPairing runs the Sub-Block Pairer and then the Line Differ
// (§4.5 step 5, §4.6) over one adjacent ONLY_IN_A/ONLY_IN_B replacement
// pair, appending ChangedLine entries to both blocks in lockstep: index i
// of aBlk.ChangedLines and index i of bBlk.ChangedLines always describe the
// same paired line, per the data-model invariant in spec §3.
func ApplySubBlockPairing(aBlk, bBlk *BlockRecord, aLines, bLines [][]byte, opts hashing.Options) {
	pairs := PairSubBlocks(aBlk, bBlk, aLines, bLines, opts)
	for _, p := range pairs {
		if bytes.Equal(aLines[p.ALine], bLines[p.BLine]) {
			continue
		}
		aCl := LineDiff(p.ALine, aLines[p.ALine], bLines[p.BLine], opts)
		bCl := LineDiff(p.BLine, bLines[p.BLine], aLines[p.ALine], opts)
		if len(aCl.Changes) == 0 && !aCl.CaseOrWhitespaceOnly {
			continue
		}
		aBlk.ChangedLines = append(aBlk.ChangedLines, aCl)
		bBlk.ChangedLines = append(bBlk.ChangedLines, bCl)
	}
}
