package blocks

import (
	"testing"

	"github.com/sagpant/docdiff/hashing"
	"github.com/sagpant/docdiff/lcsdiff"
)

func lineHashes(lines ...string) []uint64 {
	out := make([]uint64, len(lines))
	for i, l := range lines {
		out[i] = hashing.Line([]byte(l), hashing.Options{})
	}
	return out
}

func diffAndBuild(a, b []uint64) []*BlockRecord {
	ops := lcsdiff.Diff(lcsdiff.HashElements(a), lcsdiff.HashElements(b))
	blocks := BuildBlocks(ops)
	LinkReplacementPairs(blocks)
	return blocks
}

// TestDetectMovesSingleLineSwap covers spec §8 scenario 3: A=a,b,c,d vs
// B=a,c,b,d. The base LCS keeps one of {b,c} in place as an ordinary Match;
// the other becomes an (OnlyInA, OnlyInB) singleton pair that the Move
// Detector must classify as moved (single occurrence on both sides).
func TestDetectMovesSingleLineSwap(t *testing.T) {
	a := lineHashes("a", "b", "c", "d")
	b := lineHashes("a", "c", "b", "d")
	blks := diffAndBuild(a, b)

	DetectMoves(blks, a, b)

	var movedCount int
	for _, blk := range blks {
		for _, m := range blk.Matches {
			if m.IsMoved {
				movedCount++
			}
		}
	}
	// Each moved correspondence contributes one MatchSection per side.
	if movedCount != 2 {
		t.Fatalf("expected 2 moved MatchSection entries (one per side), got %d: %#v", movedCount, blks)
	}
}

// TestDetectMovesDuplicateRunNotOverclassified exercises the duplicate-run
// guard from spec §4.4's classify rule: when A holds more copies of a run
// than B does, the correspondence must not be called a move.
func TestDetectMovesDuplicateRunNotOverclassified(t *testing.T) {
	a := lineHashes("p", "q", "r", "p", "q", "r", "s")
	b := lineHashes("s", "p", "q", "r")
	blks := diffAndBuild(a, b)

	DetectMoves(blks, a, b)

	for _, blk := range blks {
		for _, m := range blk.Matches {
			if m.IsMoved && m.Section.Length > 1 {
				t.Errorf("multi-line duplicate run incorrectly classified as moved: %#v", m)
			}
		}
	}
}

func TestDetectMovesNoSpuriousMatches(t *testing.T) {
	a := lineHashes("a", "b", "c")
	b := lineHashes("x", "y", "z")
	blks := diffAndBuild(a, b)

	DetectMoves(blks, a, b)

	for _, blk := range blks {
		if len(blk.Matches) != 0 {
			t.Errorf("expected no move matches for disjoint content, got %#v", blk.Matches)
		}
	}
}
