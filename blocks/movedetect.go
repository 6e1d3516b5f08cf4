package blocks

import (
	"github.com/sagpant/docdiff/hashing"
	"github.com/sagpant/docdiff/lcsdiff"
)

// DetectMoves implements the Move Detector (spec §4.4). It walks every
// ONLY_IN_A block's still-unmatched lines in order and, for each one not
// already claimed by an earlier commit, searches every ONLY_IN_B block for
// the longest run of identical content anchored there. Surviving pairings
// are recorded as MatchSection entries on both the ONLY_IN_A and ONLY_IN_B
// blocks that own them, with IsMoved set by classify.
//
// hashesA/hashesB are the same (possibly swapped) line-hash slices the LCS
// differ ran over; blocks must already carry lcsdiff's decomposition (via
// BuildBlocks) before this runs.
func DetectMoves(blocks []*BlockRecord, hashesA, hashesB []uint64) {
	matchedA := make([]bool, len(hashesA))
	matchedB := make([]bool, len(hashesB))

	for ai, block := range blocks {
		if block.Kind != lcsdiff.OnlyInA {
			continue
		}
		i := block.OffsetA
		end := block.OffsetA + block.Length
		staleAttempts := 0

		for i < end {
			if matchedA[i] || hashesA[i] == hashing.Seed {
				i++
				staleAttempts = 0
				continue
			}

			sec, bStarts, ok := findMatches(blocks, hashesA, hashesB, matchedA, matchedB, block, i)
			if !ok {
				i++
				staleAttempts = 0
				continue
			}

			finalSec, aOccurrences, finalBStarts := findBetterMatch(blocks, hashesA, hashesB, matchedA, matchedB, ai, hashesA[i], sec, bStarts)
			moved := classify(aOccurrences, finalBStarts, finalSec.Length)

			anchorStayed := false
			for _, occ := range aOccurrences {
				markRange(matchedA, occ)
				if owner := blockForAPos(blocks, occ.Offset); owner != nil {
					owner.Matches = append(owner.Matches, MatchSection{Section: occ, IsMoved: moved})
				}
				if occ.Offset == i {
					anchorStayed = true
				}
			}
			for _, bStart := range finalBStarts {
				bSec := Section{Offset: bStart, Length: finalSec.Length}
				markRange(matchedB, bSec)
				if owner := blockForBPos(blocks, bStart); owner != nil {
					owner.Matches = append(owner.Matches, MatchSection{Section: bSec, IsMoved: moved})
				}
			}

			if anchorStayed {
				i += finalSec.Length
				staleAttempts = 0
				continue
			}

			// The winning candidate came from a different A-block position
			// and didn't cover the current line; per spec, revisit it, since
			// the matched state just grew and may change what it finds next
			// time. staleAttempts bounds the (never, in practice, taken)
			// pathological case where nothing ever changes the outcome for
			// this position.
			staleAttempts++
			if staleAttempts > 2 {
				i++
				staleAttempts = 0
			}
		}
	}
}

func markRange(flags []bool, sec Section) {
	for i := sec.Offset; i < sec.Offset+sec.Length; i++ {
		flags[i] = true
	}
}

func blockForAPos(blocks []*BlockRecord, pos int) *BlockRecord {
	for _, b := range blocks {
		if b.Kind == lcsdiff.OnlyInA && pos >= b.OffsetA && pos < b.OffsetA+b.Length {
			return b
		}
	}
	return nil
}

func blockForBPos(blocks []*BlockRecord, pos int) *BlockRecord {
	for _, b := range blocks {
		if b.Kind == lcsdiff.OnlyInB && pos >= b.OffsetB && pos < b.OffsetB+b.Length {
			return b
		}
	}
	return nil
}

func onlyInBBlocksInOrder(blocks []*BlockRecord) []*BlockRecord {
	var out []*BlockRecord
	for _, b := range blocks {
		if b.Kind == lcsdiff.OnlyInB {
			out = append(out, b)
		}
	}
	return out
}

// extendRun grows the run anchored at (aPos, bPos) symmetrically backward and
// forward, staying within aBlock/bBlock's own bounds and never crossing an
// already-matched line on either side.
func extendRun(hashesA, hashesB []uint64, matchedA, matchedB []bool, aBlock, bBlock *BlockRecord, aPos, bPos int) (aStart, bStart, length int) {
	back := 0
	for aPos-back-1 >= aBlock.OffsetA && bPos-back-1 >= bBlock.OffsetB &&
		!matchedA[aPos-back-1] && !matchedB[bPos-back-1] &&
		hashesA[aPos-back-1] == hashesB[bPos-back-1] {
		back++
	}

	fwd := 0
	aEnd := aBlock.OffsetA + aBlock.Length
	bEnd := bBlock.OffsetB + bBlock.Length
	for aPos+fwd+1 < aEnd && bPos+fwd+1 < bEnd &&
		!matchedA[aPos+fwd+1] && !matchedB[bPos+fwd+1] &&
		hashesA[aPos+fwd+1] == hashesB[bPos+fwd+1] {
		fwd++
	}

	return aPos - back, bPos - back, back + 1 + fwd
}

// findMatches is spec §4.4 step (a): for the anchor line at aPos (within
// aBlock), find the longest run in any ONLY_IN_B block starting at a
// position whose hash equals the anchor's, and collect every B run start
// that reaches that same maximum length.
func findMatches(blocks []*BlockRecord, hashesA, hashesB []uint64, matchedA, matchedB []bool, aBlock *BlockRecord, aPos int) (aSection Section, bStarts []int, ok bool) {
	anchor := hashesA[aPos]
	bestLen := 0
	var bestAOff int

	for _, bBlk := range onlyInBBlocksInOrder(blocks) {
		for bPos := bBlk.OffsetB; bPos < bBlk.OffsetB+bBlk.Length; bPos++ {
			if matchedB[bPos] || hashesB[bPos] != anchor {
				continue
			}
			aStart, bStart, length := extendRun(hashesA, hashesB, matchedA, matchedB, aBlock, bBlk, aPos, bPos)
			switch {
			case length > bestLen:
				bestLen = length
				bestAOff = aStart
				bStarts = []int{bStart}
			case length == bestLen && length > 0:
				bStarts = append(bStarts, bStart)
			}
		}
	}

	if bestLen == 0 {
		return Section{}, nil, false
	}
	return Section{Offset: bestAOff, Length: bestLen}, bStarts, true
}

// findBetterMatch is spec §4.4 step (b): look for other, equal-or-longer
// candidates anchored at different ONLY_IN_A positions sharing the anchor's
// hash, so that repeated runs (the same content occurring more than once in
// A) are bundled into one candidate instead of being discovered separately.
func findBetterMatch(blocks []*BlockRecord, hashesA, hashesB []uint64, matchedA, matchedB []bool, currentBlockIdx int, anchor uint64, candidate Section, bStarts []int) (Section, []Section, []int) {
	best := candidate
	bestBStarts := bStarts
	aOccurrences := []Section{candidate}

	for bi, blk := range blocks {
		if blk.Kind != lcsdiff.OnlyInA {
			continue
		}
		start, end := blk.OffsetA, blk.OffsetA+blk.Length
		for pos := start; pos < end; pos++ {
			if bi == currentBlockIdx && pos >= candidate.Offset && pos < candidate.Offset+candidate.Length {
				continue
			}
			if matchedA[pos] || hashesA[pos] != anchor {
				continue
			}
			sec, starts, ok := findMatches(blocks, hashesA, hashesB, matchedA, matchedB, blk, pos)
			if !ok {
				continue
			}
			switch {
			case sec.Length > best.Length:
				best = sec
				bestBStarts = starts
				aOccurrences = []Section{sec}
			case sec.Length == best.Length && identicalContent(hashesA, best, sec):
				aOccurrences = append(aOccurrences, sec)
			}
		}
	}

	return best, aOccurrences, bestBStarts
}

func identicalContent(hashesA []uint64, a, b Section) bool {
	if a.Length != b.Length {
		return false
	}
	for k := 0; k < a.Length; k++ {
		if hashesA[a.Offset+k] != hashesA[b.Offset+k] {
			return false
		}
	}
	return true
}

// classify is spec §4.4 step (c): a candidate is a move only when A and B
// hold the same number of occurrences of the run (one extra A occurrence
// for every B occurrence it could have come from), with a guard against
// calling an ambiguous single-line duplicate a move when B holds more than
// one copy of it.
func classify(aOccurrences []Section, bStarts []int, length int) bool {
	if length == 0 {
		return false
	}
	extraA := len(aOccurrences) - 1
	if extraA < 0 {
		extraA = 0
	}
	nb := len(bStarts)
	moved := extraA+1 == nb
	if length == 1 && nb > 1 {
		moved = false
	}
	return moved
}
