package hashing

import "testing"

func TestLineEmptyIsSeed(t *testing.T) {
	if h := Line(nil, Options{}); h != Seed {
		t.Errorf("Line(nil) = %#x, want seed %#x", h, Seed)
	}
	if h := Line([]byte(""), Options{}); h != Seed {
		t.Errorf("Line(\"\") = %#x, want seed %#x", h, Seed)
	}
}

func TestLineWhitespaceOnlyWithIgnoreWhitespaceIsSeed(t *testing.T) {
	h := Line([]byte("   \t "), Options{IgnoreWhitespace: true})
	if h != Seed {
		t.Errorf("Line(whitespace-only, ignore) = %#x, want seed %#x", h, Seed)
	}
}

func TestLineIgnoreCaseIdempotence(t *testing.T) {
	a := Line([]byte("Hello World"), Options{IgnoreCase: true})
	b := Line([]byte("hello world"), Options{IgnoreCase: true})
	if a != b {
		t.Errorf("case-folded hashes differ: %#x vs %#x", a, b)
	}
}

func TestLineIgnoreWhitespaceIdempotence(t *testing.T) {
	a := Line([]byte("hello world"), Options{IgnoreWhitespace: true})
	b := Line([]byte("hello  world "), Options{IgnoreWhitespace: true})
	if a != b {
		t.Errorf("whitespace-elided hashes differ: %#x vs %#x", a, b)
	}
}

func TestLineDistinctContentDistinctHash(t *testing.T) {
	a := Line([]byte("line one"), Options{})
	b := Line([]byte("line two"), Options{})
	if a == b {
		t.Errorf("distinct lines hashed equal: %#x", a)
	}
}

func TestLinesTrimsOneTrailingBlank(t *testing.T) {
	hashes, trimmed := Lines([][]byte{[]byte("a"), []byte("b"), []byte("")}, Options{})
	if !trimmed {
		t.Fatal("expected trimmed=true")
	}
	if len(hashes) != 2 {
		t.Fatalf("got %d hashes, want 2", len(hashes))
	}
}

func TestLinesDoesNotCascadeTrim(t *testing.T) {
	// Only the single final blank line is trimmed, never more than one,
	// per original_source's CalculateHash trailing-blank behavior.
	hashes, trimmed := Lines([][]byte{[]byte("a"), []byte(""), []byte("")}, Options{})
	if !trimmed {
		t.Fatal("expected trimmed=true")
	}
	if len(hashes) != 2 {
		t.Fatalf("got %d hashes, want 2 (only one trailing blank dropped)", len(hashes))
	}
	if hashes[1] != Seed {
		t.Errorf("expected the remaining interior blank line to keep seed hash")
	}
}

func TestLinesNoTrailingBlankNoTrim(t *testing.T) {
	hashes, trimmed := Lines([][]byte{[]byte("a"), []byte("b")}, Options{})
	if trimmed {
		t.Error("expected trimmed=false")
	}
	if len(hashes) != 2 {
		t.Fatalf("got %d hashes, want 2", len(hashes))
	}
}

func TestClassOf(t *testing.T) {
	cases := map[byte]CharClass{
		' ':  ClassSpace,
		'\t': ClassSpace,
		'a':  ClassAlnum,
		'Z':  ClassAlnum,
		'5':  ClassAlnum,
		'_':  ClassAlnum,
		'(':  ClassOther,
		'.':  ClassOther,
	}
	for b, want := range cases {
		if got := ClassOf(b); got != want {
			t.Errorf("ClassOf(%q) = %v, want %v", b, got, want)
		}
	}
}

func TestWordHashMatchesLineHashForSameBytes(t *testing.T) {
	// Word and line hashing share the same mixer and normalization rules.
	a := Word([]byte("token"), Options{})
	b := Line([]byte("token"), Options{})
	if a != b {
		t.Errorf("Word and Line hash the same bytes differently: %#x vs %#x", a, b)
	}
}
