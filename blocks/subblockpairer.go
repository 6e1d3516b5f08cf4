package blocks

import (
	"sort"

	"github.com/sagpant/docdiff/hashing"
	"github.com/sagpant/docdiff/lcsdiff"
)

// LinePair is one line-to-line correspondence the Sub-Block Pairer (§4.5)
// has accepted between an ONLY_IN_A block's lines and its ONLY_IN_B
// partner's lines (both indices relative to the start of their own block).
type LinePair struct {
	ALine, BLine int
	Convergence  float64
}

// candidate is one (a_line, b_line) pair that cleared the §4.5 step-2
// convergence floor, before the greedy-expansion search in step 4.
type candidate struct {
	aLine, bLine int
	convergence  float64
}

// eligibleLines returns, for one block's lines, which local indices are
// still open for sub-block pairing: word list non-empty and not already
// consumed by a moved Move Detector match (§4.5 step 1).
func eligibleLines(blk *BlockRecord, tokenized [][]word, isA bool) []bool {
	eligible := make([]bool, len(tokenized))
	for i, words := range tokenized {
		eligible[i] = len(words) > 0
	}
	for _, m := range blk.Matches {
		if !m.IsMoved {
			continue
		}
		for local := m.Section.Offset - blockBase(blk, isA); local < m.Section.Offset-blockBase(blk, isA)+m.Section.Length; local++ {
			if local >= 0 && local < len(eligible) {
				eligible[local] = false
			}
		}
	}
	return eligible
}

func blockBase(blk *BlockRecord, isA bool) int {
	if isA {
		return blk.OffsetA
	}
	return blk.OffsetB
}

// PairSubBlocks runs the Sub-Block Pairer (spec §4.5) over one adjacent
// ONLY_IN_A / ONLY_IN_B replacement pair and returns the accepted,
// monotonic line correspondences, in ascending a_line order.
func PairSubBlocks(aBlk, bBlk *BlockRecord, aLines, bLines [][]byte, opts hashing.Options) []LinePair {
	aWords := make([][]word, len(aLines))
	for i, l := range aLines {
		aWords[i] = tokenize(l, opts)
	}
	bWords := make([][]word, len(bLines))
	for i, l := range bLines {
		bWords[i] = tokenize(l, opts)
	}

	aEligible := eligibleLines(aBlk, aWords, true)
	bEligible := eligibleLines(bBlk, bWords, false)

	var candidates []candidate
	for i := range aLines {
		if !aEligible[i] {
			continue
		}
		for j := range bLines {
			if !bEligible[j] {
				continue
			}
			if c, ok := scorePair(aWords[i], bWords[j]); ok {
				candidates = append(candidates, candidate{i, j, c})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].convergence != candidates[j].convergence {
			return candidates[i].convergence > candidates[j].convergence
		}
		if candidates[i].aLine != candidates[j].aLine {
			return candidates[i].aLine < candidates[j].aLine
		}
		return candidates[i].bLine < candidates[j].bLine
	})

	var bestMapping []candidate
	bestScore := -1.0
	for start := 0; start < len(candidates); start++ {
		mapping := greedyMapping(candidates, start)
		score := blockConvergence(mapping)
		if score > bestScore {
			bestScore = score
			bestMapping = mapping
		}
	}

	return monotonicSubsequence(bestMapping)
}

// scorePair is spec §4.5 step 2.
func scorePair(aWords, bWords []word) (float64, bool) {
	longWords, shortWords := aWords, bWords
	if len(shortWords) > len(longWords) {
		longWords, shortWords = shortWords, longWords
	}
	if len(shortWords) == 0 {
		return 0, false
	}
	if len(longWords) > 2*len(shortWords) {
		return 0, false
	}

	ops := lcsdiff.Diff(wordElements(aWords), wordElements(bWords))
	matchedWords, matchedChars := 0, 0
	for _, op := range ops {
		if op.Kind != lcsdiff.Match {
			continue
		}
		n := op.AEnd - op.AStart
		matchedWords += n
		for k := 0; k < n; k++ {
			matchedChars += aWords[op.AStart+k].span.Length
		}
	}

	wordConvergence := 100 * float64(matchedWords) / float64(len(longWords))

	aChars, bChars := charCount(aWords), charCount(bWords)
	maxChars := aChars
	if bChars > maxChars {
		maxChars = bChars
	}
	var charConvergence float64
	if maxChars > 0 {
		charConvergence = 100 * float64(matchedChars) / float64(maxChars)
	}

	convergence := wordConvergence
	if charConvergence > convergence {
		convergence = charConvergence
	}
	if convergence < 50 {
		return 0, false
	}
	return convergence, true
}

// greedyMapping builds one candidate mapping starting at position start in
// the sorted candidate list (spec §4.5 step 4).
func greedyMapping(candidates []candidate, start int) []candidate {
	usedA := make(map[int]bool)
	usedB := make(map[int]bool)
	var mapping []candidate
	for i := start; i < len(candidates); i++ {
		c := candidates[i]
		if usedA[c.aLine] || usedB[c.bLine] {
			continue
		}
		usedA[c.aLine] = true
		usedB[c.bLine] = true
		mapping = append(mapping, c)
	}
	return mapping
}

// blockConvergence sums convergence over the monotonic-by-b_line
// subsequence of mapping, when mapping is walked in a_line order.
func blockConvergence(mapping []candidate) float64 {
	sorted := append([]candidate(nil), mapping...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].aLine < sorted[j].aLine })

	total := 0.0
	prevB := -1
	for _, c := range sorted {
		if c.bLine > prevB {
			total += c.convergence
			prevB = c.bLine
		}
	}
	return total
}

// monotonicSubsequence extracts the final accepted pairing (spec §4.5 step
// 5): mapping walked in a_line order, keeping only entries whose b_line
// strictly exceeds the previously accepted one.
func monotonicSubsequence(mapping []candidate) []LinePair {
	sorted := append([]candidate(nil), mapping...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].aLine < sorted[j].aLine })

	var out []LinePair
	prevB := -1
	for _, c := range sorted {
		if c.bLine > prevB {
			out = append(out, LinePair{ALine: c.aLine, BLine: c.bLine, Convergence: c.convergence})
			prevB = c.bLine
		}
	}
	return out
}
