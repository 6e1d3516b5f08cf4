package lcsdiff

// compareSeq is the divide-and-conquer core, adapted from the teacher's
// compareSeq (compare.go): trim common ends, recurse on the middle snake.
func compareSeq(ctx *diffContext, xoff, xlim, yoff, ylim int) {
	for xoff < xlim && yoff < ylim && ctx.equal(xoff, yoff) {
		xoff++
		yoff++
	}
	for xoff < xlim && yoff < ylim && ctx.equal(xlim-1, ylim-1) {
		xlim--
		ylim--
	}

	if xoff == xlim {
		ctx.markB(yoff, ylim)
		return
	}
	if yoff == ylim {
		ctx.markA(xoff, xlim)
		return
	}

	part := findMiddleSnake(ctx, xoff, xlim, yoff, ylim)
	compareSeq(ctx, xoff, part.xmid, yoff, part.ymid)
	compareSeq(ctx, part.xmid, xlim, part.ymid, ylim)
}

// Diff computes the canonical LCS block decomposition of a and b (spec
// §4.1). The result always starts and ends consistently with the standard
// Myers edit-script shape: a Match op never sits next to another Match op,
// and within a replacement, OnlyInA precedes OnlyInB.
func Diff(a, b []Element) []Op {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	if len(a) == 0 {
		return []Op{{Kind: OnlyInB, AStart: 0, AEnd: 0, BStart: 0, BEnd: len(b)}}
	}
	if len(b) == 0 {
		return []Op{{Kind: OnlyInA, AStart: 0, AEnd: len(a), BStart: 0, BEnd: 0}}
	}

	ctx := newDiffContext(a, b)
	compareSeq(ctx, 0, len(a), 0, len(b))
	return ctx.buildOps()
}
