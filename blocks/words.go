package blocks

import (
	"github.com/sagpant/docdiff/hashing"
	"github.com/sagpant/docdiff/lcsdiff"
)

// word is one tokenized run from a source line: its column extent and its
// normalized hash (spec §4.2's Word). Words, not bytes, are the alphabet the
// Sub-Block Pairer and Line Differ operate over.
type word struct {
	span ColumnSpan
	hash uint64
}

func (w word) Equal(other lcsdiff.Element) bool {
	o, ok := other.(word)
	return ok && w.hash == o.hash
}

func (w word) Hash() uint64 { return w.hash }

func wordElements(words []word) []lcsdiff.Element {
	out := make([]lcsdiff.Element, len(words))
	for i, w := range words {
		out[i] = w
	}
	return out
}

// tokenize splits one source line into words (§3): maximal runs of a single
// hashing.CharClass. A ClassSpace run is itself a word (so its column is
// reserved and can be translated back into a ColumnSpan by the Line
// Differ), but per §3 it is omitted from the returned sequence when
// opts.IgnoreWhitespace is set — "their columns remain reserved, words
// carry original columns" describes the ColumnSpan math, not a requirement
// to keep SPACE tokens in the diffed sequence.
func tokenize(line []byte, opts hashing.Options) []word {
	var words []word
	i := 0
	for i < len(line) {
		class := hashing.ClassOf(line[i])
		j := i + 1
		for j < len(line) && hashing.ClassOf(line[j]) == class {
			j++
		}
		if class != hashing.ClassSpace || !opts.IgnoreWhitespace {
			words = append(words, word{
				span: ColumnSpan{Offset: i, Length: j - i},
				hash: hashing.Word(line[i:j], opts),
			})
		}
		i = j
	}
	return words
}

// charCount sums a line's word lengths (§4.5's a_line_char_count /
// b_line_char_count).
func charCount(words []word) int {
	total := 0
	for _, w := range words {
		total += w.span.Length
	}
	return total
}
