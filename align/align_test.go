package align

import (
	"testing"

	"github.com/sagpant/docdiff/blocks"
	"github.com/sagpant/docdiff/hashing"
	"github.com/sagpant/docdiff/lcsdiff"
)

func lines(ss ...string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}

func hashesOf(lines [][]byte, opts hashing.Options) []uint64 {
	out := make([]uint64, len(lines))
	for i, l := range lines {
		out[i] = hashing.Line(l, opts)
	}
	return out
}

func buildBlocks(a, b [][]byte, opts hashing.Options) []*blocks.BlockRecord {
	ha, hb := hashesOf(a, opts), hashesOf(b, opts)
	ops := lcsdiff.Diff(lcsdiff.HashElements(ha), lcsdiff.HashElements(hb))
	blks := blocks.BuildBlocks(ops)
	blocks.LinkReplacementPairs(blks)
	return blks
}

func TestSynthesizeMatchOnly(t *testing.T) {
	a := lines("one", "two", "three")
	blks := buildBlocks(a, a, hashing.Options{})

	rows, _, _ := Synthesize(blks, 0, 0, Settings{OldSideIsA: true})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row (whole match run), got %d: %#v", len(rows), rows)
	}
	if rows[0].ALine != 0 || rows[0].BLine != 0 || rows[0].AMask != 0 || rows[0].BMask != 0 {
		t.Errorf("unexpected row: %#v", rows[0])
	}
}

func TestSynthesizeMonotonicAlignment(t *testing.T) {
	a := lines("one", "two", "three", "four")
	b := lines("one", "TWO", "three", "FOUR", "five")
	blks := buildBlocks(a, b, hashing.Options{})
	for i := 0; i+1 < len(blks); i++ {
		if blks[i].MatchPartner == i+1 {
			blocks.ApplySubBlockPairing(blks[i], blks[i+1], a, b, hashing.Options{})
		}
	}

	rows, _, _ := Synthesize(blks, 0, 0, Settings{OldSideIsA: true})

	lastA, lastB := -1, -1
	for _, r := range rows {
		if r.ALine < lastA {
			t.Fatalf("ALine not monotonic: %#v", rows)
		}
		lastA = r.ALine
		if r.BLine < lastB {
			t.Fatalf("BLine not monotonic: %#v", rows)
		}
		lastB = r.BLine
	}
}

func TestSynthesizeChangedLineGetsColumnSpans(t *testing.T) {
	a := lines("the quick fox")
	b := lines("the slow fox")
	blks := buildBlocks(a, b, hashing.Options{})
	for i := 0; i+1 < len(blks); i++ {
		if blks[i].MatchPartner == i+1 {
			blocks.ApplySubBlockPairing(blks[i], blks[i+1], a, b, hashing.Options{})
		}
	}

	rows, _, columnMarks := Synthesize(blks, 0, 0, Settings{OldSideIsA: true})

	var found bool
	for _, r := range rows {
		if r.AMask&Changed != 0 && r.BMask&Changed != 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected at least one Changed row, got %#v", rows)
	}
	if len(columnMarks) == 0 {
		t.Fatalf("expected at least one ColumnMark for the changed line, got none")
	}
}
