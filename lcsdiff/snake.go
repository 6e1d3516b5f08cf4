package lcsdiff

// findMiddleSnake implements the bidirectional search from Myers 1986
// ("An O(ND) Difference Algorithm and Its Variations"), Section 4b. It finds
// the optimal split point for divide-and-conquer. Adapted from the teacher's
// findMiddleSnake (snake.go): the core forward/backward diagonal search is
// unchanged, but the heuristic cost-limit / "too expensive" / best-snake
// fallback paths are removed, since this spec always requires the exact
// minimal edit script (see lcsdiff/context.go's doc comment).
type partition struct {
	xmid, ymid int
}

func findMiddleSnake(ctx *diffContext, xoff, xlim, yoff, ylim int) partition {
	n := xlim - xoff
	m := ylim - yoff

	if n == 0 {
		return partition{xmid: xoff, ymid: ylim}
	}
	if m == 0 {
		return partition{xmid: xlim, ymid: yoff}
	}

	delta := n - m
	deltaOdd := delta&1 != 0
	offset := m + 1

	fdiag := ctx.fdiag
	bdiag := ctx.bdiag
	fdiag[offset+1] = 0
	bdiag[offset+delta-1] = n

	maxD := (n + m + 1) / 2

	for d := 0; d <= maxD; d++ {
		kMin := -d
		if kMin < -m {
			kMin = -m
		}
		kMax := d
		if kMax > n {
			kMax = n
		}
		if (kMin+d)%2 != 0 {
			kMin++
		}

		for k := kMin; k <= kMax; k += 2 {
			kIdx := offset + k
			if kIdx-1 < 0 || kIdx+1 >= len(fdiag) {
				continue
			}

			var x int
			if k == -d || (k != d && fdiag[kIdx-1] < fdiag[kIdx+1]) {
				x = fdiag[kIdx+1]
			} else {
				x = fdiag[kIdx-1] + 1
			}
			y := x - k

			if y < 0 || y > m || x < 0 || x > n {
				fdiag[kIdx] = x
				continue
			}

			for x < n && y < m && ctx.equal(xoff+x, yoff+y) {
				x++
				y++
			}
			fdiag[kIdx] = x

			if deltaOdd && k >= delta-(d-1) && k <= delta+(d-1) {
				bIdx := offset + k - delta
				if bIdx >= 0 && bIdx < len(bdiag) && fdiag[kIdx] >= bdiag[bIdx] {
					return partition{xmid: xoff + x, ymid: yoff + y}
				}
			}
		}

		bkMin := -d
		if bkMin < -m {
			bkMin = -m
		}
		bkMax := d
		if bkMax > n {
			bkMax = n
		}
		if (bkMin+d)%2 != 0 {
			bkMin++
		}

		for k := bkMin; k <= bkMax; k += 2 {
			kIdx := offset + k
			if kIdx-1 < 0 || kIdx+1 >= len(bdiag) {
				continue
			}

			var x int
			if k == d || (k != -d && bdiag[kIdx-1] < bdiag[kIdx+1]) {
				x = bdiag[kIdx-1]
			} else {
				x = bdiag[kIdx+1] - 1
			}
			y := x - k - delta

			if y < 0 || y > m || x < 0 || x > n {
				bdiag[kIdx] = x
				continue
			}

			for x > 0 && y > 0 && ctx.equal(xoff+x-1, yoff+y-1) {
				x--
				y--
			}
			bdiag[kIdx] = x

			if !deltaOdd && k+delta >= -d && k+delta <= d {
				fIdx := offset + k + delta
				if fIdx >= 0 && fIdx < len(fdiag) && fdiag[fIdx] >= bdiag[kIdx] {
					fx := fdiag[fIdx]
					fy := fx - (k + delta)
					return partition{xmid: xoff + fx, ymid: yoff + fy}
				}
			}
		}
	}

	// Unreachable for a correct Myers search: the forward and backward
	// frontiers are guaranteed to meet within maxD steps. A greedy
	// single-step fallback keeps compareSeq terminating if this invariant
	// is ever violated by a future change, rather than looping forever.
	return partition{xmid: xoff + 1, ymid: yoff}
}
