package align

import (
	"testing"

	"github.com/sagpant/docdiff/hashing"
)

func TestFindUniqueDisjointLines(t *testing.T) {
	a := lines("alpha", "beta")
	b := lines("gamma", "delta")

	got := FindUnique(a, b, hashing.Options{})
	if len(got) != 4 {
		t.Fatalf("expected 4 unique results, got %d: %#v", len(got), got)
	}
}

func TestFindUniqueSharedLinesExcluded(t *testing.T) {
	a := lines("alpha", "beta", "gamma")
	b := lines("beta", "gamma", "delta")

	got := FindUnique(a, b, hashing.Options{})
	for _, r := range got {
		if r.ALine >= 0 && a[r.ALine][0] != 'a' {
			t.Errorf("shared line incorrectly reported unique in A: %#v", r)
		}
		if r.BLine >= 0 && b[r.BLine][0] != 'd' {
			t.Errorf("shared line incorrectly reported unique in B: %#v", r)
		}
	}
}

func TestFindUniqueSharedHashErasesWholeBucket(t *testing.T) {
	a := lines("x", "x", "x")
	b := lines("x")

	got := FindUnique(a, b, hashing.Options{})
	// The hash is present on both sides, so every line sharing it - all
	// three in A and the one in B - is common content, not unique.
	if len(got) != 0 {
		t.Errorf("expected no unique results when the hash is shared, got %#v", got)
	}
}

func TestFindUniqueDuplicatesAllReportedWhenHashAbsentOnOtherSide(t *testing.T) {
	a := lines("x", "x", "y")
	b := lines("z")

	got := FindUnique(a, b, hashing.Options{})
	var uniqueA, uniqueB int
	for _, r := range got {
		if r.ALine >= 0 {
			uniqueA++
		}
		if r.BLine >= 0 {
			uniqueB++
		}
	}
	if uniqueA != 3 || uniqueB != 1 {
		t.Errorf("expected 3 unique A lines and 1 unique B line, got a=%d b=%d (%#v)", uniqueA, uniqueB, got)
	}
}
