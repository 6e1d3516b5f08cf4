package blocks

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sagpant/docdiff/hashing"
)

func TestApplySubBlockPairingPopulatesBothSides(t *testing.T) {
	a := [][]byte{[]byte("the quick fox")}
	b := [][]byte{[]byte("the slow fox")}
	aBlk, bBlk := replacementBlocks(len(a), len(b))

	ApplySubBlockPairing(aBlk, bBlk, a, b, hashing.Options{})

	if len(aBlk.ChangedLines) != 1 || len(bBlk.ChangedLines) != 1 {
		t.Fatalf("expected one ChangedLine on each side, got a=%#v b=%#v", aBlk.ChangedLines, bBlk.ChangedLines)
	}
	if aBlk.ChangedLines[0].LineIndex != 0 || bBlk.ChangedLines[0].LineIndex != 0 {
		t.Errorf("unexpected LineIndex values: a=%#v b=%#v", aBlk.ChangedLines[0], bBlk.ChangedLines[0])
	}
}

func TestApplySubBlockPairingIdenticalLinesProduceNoChangedLine(t *testing.T) {
	a := [][]byte{[]byte("identical")}
	b := [][]byte{[]byte("identical")}
	aBlk, bBlk := replacementBlocks(len(a), len(b))

	ApplySubBlockPairing(aBlk, bBlk, a, b, hashing.Options{})

	if len(aBlk.ChangedLines) != 0 || len(bBlk.ChangedLines) != 0 {
		t.Errorf("expected no ChangedLine for identical paired lines, got a=%#v b=%#v", aBlk.ChangedLines, bBlk.ChangedLines)
	}
}

func TestApplySubBlockPairingChangedLinesAreIndexAligned(t *testing.T) {
	a := [][]byte{[]byte("the quick fox"), []byte("jumps high")}
	b := [][]byte{[]byte("the slow fox"), []byte("jumps far")}
	aBlk, bBlk := replacementBlocks(len(a), len(b))

	ApplySubBlockPairing(aBlk, bBlk, a, b, hashing.Options{})

	want := []ChangedLine{{LineIndex: 0}, {LineIndex: 1}}
	var gotA, gotB []ChangedLine
	for _, cl := range aBlk.ChangedLines {
		gotA = append(gotA, ChangedLine{LineIndex: cl.LineIndex})
	}
	for _, cl := range bBlk.ChangedLines {
		gotB = append(gotB, ChangedLine{LineIndex: cl.LineIndex})
	}
	if diff := cmp.Diff(want, gotA); diff != "" {
		t.Errorf("aBlk.ChangedLines LineIndex mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, gotB); diff != "" {
		t.Errorf("bBlk.ChangedLines LineIndex mismatch (-want +got):\n%s", diff)
	}
}
