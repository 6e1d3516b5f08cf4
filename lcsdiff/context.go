package lcsdiff

// diffContext holds algorithm state for one compareSeq invocation. Adapted
// from the teacher's diffContext (context.go): same diagonal-array shape,
// generalized to the spec's OnlyInA/OnlyInB vocabulary instead of
// Delete/Insert, and with the heuristic early-termination fields removed —
// this spec's Canonicality invariant requires the true minimal edit script,
// so every call site in this codebase always asks for the exact result.
type diffContext struct {
	avec, bvec   []Element
	fdiag, bdiag []int
	achanges     []bool // marks elements of avec not in the LCS (OnlyInA)
	bchanges     []bool // marks elements of bvec not in the LCS (OnlyInB)
}

func newDiffContext(a, b []Element) *diffContext {
	n, m := len(a), len(b)
	diagSize := n + m + 3
	return &diffContext{
		avec:     a,
		bvec:     b,
		fdiag:    make([]int, diagSize),
		bdiag:    make([]int, diagSize),
		achanges: make([]bool, n),
		bchanges: make([]bool, m),
	}
}

func (ctx *diffContext) equal(i, j int) bool {
	return ctx.avec[i].Equal(ctx.bvec[j])
}

func (ctx *diffContext) markA(off, lim int) {
	for i := off; i < lim; i++ {
		ctx.achanges[i] = true
	}
}

func (ctx *diffContext) markB(off, lim int) {
	for i := off; i < lim; i++ {
		ctx.bchanges[i] = true
	}
}

// buildOps converts the change marks into a canonical sequence of Op: an
// OnlyInA run always precedes an adjacent OnlyInB run (spec §4.1), and no
// two Match ops are ever adjacent because a maximal equal run is always
// collected by a single pass of the first loop below.
func (ctx *diffContext) buildOps() []Op {
	var ops []Op
	n, m := len(ctx.avec), len(ctx.bvec)
	i, j := 0, 0

	for i < n || j < m {
		eqI, eqJ := i, j
		for i < n && j < m && !ctx.achanges[i] && !ctx.bchanges[j] {
			i++
			j++
		}
		if i > eqI {
			ops = append(ops, Op{Kind: Match, AStart: eqI, AEnd: i, BStart: eqJ, BEnd: j})
		}

		delStart := i
		for i < n && ctx.achanges[i] {
			i++
		}
		if i > delStart {
			ops = append(ops, Op{Kind: OnlyInA, AStart: delStart, AEnd: i, BStart: j, BEnd: j})
		}

		insStart := j
		for j < m && ctx.bchanges[j] {
			j++
		}
		if j > insStart {
			ops = append(ops, Op{Kind: OnlyInB, AStart: i, AEnd: i, BStart: insStart, BEnd: j})
		}
	}

	return ops
}
