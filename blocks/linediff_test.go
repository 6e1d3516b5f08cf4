package blocks

import (
	"reflect"
	"testing"

	"github.com/sagpant/docdiff/hashing"
)

func TestLineDiffSingleWordChange(t *testing.T) {
	a := []byte("the quick fox jumps")
	b := []byte("the slow fox jumps")

	cl := LineDiff(0, a, b, hashing.Options{})

	if len(cl.Changes) != 1 {
		t.Fatalf("expected 1 changed span, got %#v", cl.Changes)
	}
	span := cl.Changes[0]
	got := string(a[span.Offset : span.Offset+span.Length])
	if got != "quick" {
		t.Errorf("changed span = %q, want %q", got, "quick")
	}
	if cl.CaseOrWhitespaceOnly {
		t.Errorf("expected CaseOrWhitespaceOnly = false for a real word change")
	}
}

func TestLineDiffIdenticalLines(t *testing.T) {
	a := []byte("same line")
	cl := LineDiff(0, a, a, hashing.Options{})
	if len(cl.Changes) != 0 {
		t.Errorf("expected no changes for identical lines, got %#v", cl.Changes)
	}
	if cl.CaseOrWhitespaceOnly {
		t.Errorf("identical lines must not be CaseOrWhitespaceOnly")
	}
}

func TestLineDiffCaseOnlyChange(t *testing.T) {
	a := []byte("Hello World")
	b := []byte("hello world")
	opts := hashing.Options{IgnoreCase: true}

	cl := LineDiff(0, a, b, opts)
	if len(cl.Changes) != 0 {
		t.Fatalf("expected no word-level changes under IgnoreCase, got %#v", cl.Changes)
	}
	if !cl.CaseOrWhitespaceOnly {
		t.Errorf("expected CaseOrWhitespaceOnly = true for a pure case difference")
	}
}

func TestLineDiffWhitespaceOnlyChange(t *testing.T) {
	a := []byte("a  b")
	b := []byte("a b")
	opts := hashing.Options{IgnoreWhitespace: true}

	cl := LineDiff(0, a, b, opts)
	if len(cl.Changes) != 0 {
		t.Fatalf("expected no word-level changes under IgnoreWhitespace, got %#v", cl.Changes)
	}
	if !cl.CaseOrWhitespaceOnly {
		t.Errorf("expected CaseOrWhitespaceOnly = true for a pure whitespace difference")
	}
}

func TestLineDiffPureInsertionIsNotCaseOrWhitespaceOnly(t *testing.T) {
	a := []byte("the quick fox jumps")
	b := []byte("the quick fox jumps fast")

	cl := LineDiff(0, a, b, hashing.Options{})
	if cl.CaseOrWhitespaceOnly {
		t.Errorf("expected CaseOrWhitespaceOnly = false for a trailing word insertion, got true")
	}
	if len(cl.Changes) != 0 {
		t.Errorf("expected no A-side changed spans for a pure insertion, got %#v", cl.Changes)
	}
}

func TestLineDiffColumnSpansWithinBounds(t *testing.T) {
	a := []byte("alpha beta gamma delta")
	b := []byte("alpha GAMMA delta")

	cl := LineDiff(0, a, b, hashing.Options{})
	for _, span := range cl.Changes {
		if span.Offset < 0 || span.Offset+span.Length > len(a) {
			t.Fatalf("span %#v out of bounds for line of length %d", span, len(a))
		}
	}
	if reflect.DeepEqual(cl.Changes, []ColumnSpan(nil)) {
		t.Errorf("expected at least one changed span")
	}
}
