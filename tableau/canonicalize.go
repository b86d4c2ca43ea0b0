package tableau

import "github.com/clifford-go/gf2stab/pauli"

// Canonicalize implements spec.md §6's `canonicalize!`: symplectic
// Gauss-Jordan elimination that brings the tableau into reduced row-echelon
// form under the symplectic inner product, with every X-led row preceding
// every Z-led row.
//
// Algorithm (two passes, grounded on the teacher's pivoting loop in
// matrix/ops/lu.go adapted from real-number elimination to GF(2)):
//
//  1. X-pass: for each qubit column left to right, find the first
//     not-yet-used row with an X-bit set there, move it to the next free
//     slot, and XOR it into every other row that also has that bit set
//     (full Gauss-Jordan, not just below the pivot, so the X-led block
//     ends up in reduced form too).
//  2. Z-pass: identical, but scanning the Z-part of the remaining rows.
//
// Returns xBoundary (number of X-led rows) and zBoundary (xBoundary plus
// the number of Z-led rows); spec.md's `ranks` flag is folded away here
// since a second return value costs nothing in Go — callers that don't
// need the boundaries simply discard them with `_`.
func (t *Tableau) Canonicalize(phases bool) (xBoundary, zBoundary int) {
	next := t.eliminatePass(0, phases, nil, func(row *RowView) pauli.BitVec { return row.XView() })
	xBoundary = next
	next = t.eliminatePass(next, phases, nil, func(row *RowView) pauli.BitVec { return row.ZView() })
	zBoundary = next
	return xBoundary, zBoundary
}

// eliminatePass runs one Gauss-Jordan pass over `part` (X or Z view),
// starting pivot search at row index `next`, considering only the columns
// listed in `cols` (or every column 0..n-1 when cols is nil). Returns the
// updated `next` after consuming every independent pivot column found.
func (t *Tableau) eliminatePass(next int, phases bool, cols []int, part func(*RowView) pauli.BitVec) int {
	columns := cols
	if columns == nil {
		columns = make([]int, t.n)
		for i := range columns {
			columns[i] = i
		}
	}
	for _, col := range columns {
		pivot := -1
		for r := next; r < t.rows; r++ {
			if part(t.Row(r)).Get(col) {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			continue
		}
		if pivot != next {
			_ = t.RowSwap(pivot, next)
		}
		for r := 0; r < t.rows; r++ {
			if r == next {
				continue
			}
			if part(t.Row(r)).Get(col) {
				_ = t.MulLeftRow(r, next, phases)
			}
		}
		next++
	}
	return next
}
