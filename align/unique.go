package align

import (
	"sort"

	"github.com/sagpant/docdiff/hashing"
)

// UniqueResult is one Find-Unique Mode row (spec §4.8): a line in A that has
// no counterpart anywhere in B, or vice versa. Unlike Synthesize's full
// alignment, Find-Unique Mode never runs the LCS differ; it is a coarser,
// hash-multimap-based classification used when a full ordered alignment
// isn't needed, only "what's unique to this side".
type UniqueResult struct {
	ALine, BLine int // -1 when the line has no side-B/side-A counterpart
}

// FindUnique implements spec §4.8: hash both sides, bucket line indices by
// hash per side, then intersect by hash value — any hash present on both
// sides is erased entirely (every line sharing that hash is common content,
// not unique, on both sides), and every line left in a surviving bucket is
// reported unique to its side. Order within a side preserves ascending line
// index.
func FindUnique(aLines, bLines [][]byte, opts hashing.Options) []UniqueResult {
	aByHash := bucketByHash(aLines, opts)
	bByHash := bucketByHash(bLines, opts)

	var results []UniqueResult
	for hash, aIdx := range aByHash {
		if _, shared := bByHash[hash]; shared {
			continue
		}
		for _, i := range aIdx {
			results = append(results, UniqueResult{ALine: i, BLine: -1})
		}
	}
	for hash, bIdx := range bByHash {
		if _, shared := aByHash[hash]; shared {
			continue
		}
		for _, i := range bIdx {
			results = append(results, UniqueResult{ALine: -1, BLine: i})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		ai, bi := results[i], results[j]
		if ai.BLine == -1 && bi.BLine == -1 {
			return ai.ALine < bi.ALine
		}
		if ai.ALine == -1 && bi.ALine == -1 {
			return ai.BLine < bi.BLine
		}
		// A-uniques sort ahead of B-uniques for a stable, deterministic order.
		return ai.BLine == -1
	})

	return results
}

func bucketByHash(lines [][]byte, opts hashing.Options) map[uint64][]int {
	out := make(map[uint64][]int, len(lines))
	for i, l := range lines {
		h := hashing.Line(l, opts)
		out[h] = append(out[h], i)
	}
	return out
}
