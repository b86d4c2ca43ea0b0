package stabilizer

import (
	"fmt"

	"github.com/clifford-go/gf2stab/pauli"
)

// Generate implements spec.md §4.1's `generate!(P, S)`: rewrite p as a
// product of a subset of s's rows times a residual that is the identity up
// to phase, multiplying those rows into p in place.
//
// Precondition: s is canonicalized (rows in symplectic row-reduced echelon
// form, X-led rows before Z-led rows) — see tableau.Tableau.Canonicalize.
//
// On success, p holds the residual (identity up to phase; p.Phase is the
// reduction's resulting phase) and ok is true; usedIndices holds the
// 0-based row indices applied, in application order, when saveIndices is
// true (nil otherwise). On failure (p cannot be written as such a product)
// ok is false and p is left partially reduced — the Julia source leaves
// the same partial-mutation contract, which is why callers pass a copy.
func Generate(p *pauli.Operator, s *Stabilizer, saveIndices bool) (ok bool, usedIndices []int, err error) {
	if p.NQubits() != s.NQubits() {
		return false, nil, fmt.Errorf("Generate: %w", ErrQubitMismatch)
	}
	r := s.Rank()
	cursor := -1 // search is restricted to rows strictly after this index
	var indices []int

	reduce := func(bitOf func(*pauli.Operator) (int, bool), rowHasBit func(row int, qubit int) bool) bool {
		for {
			qubit, found := bitOf(p)
			if !found {
				return true
			}
			k := -1
			for row := cursor + 1; row < r; row++ {
				if rowHasBit(row, qubit) {
					k = row
					break
				}
			}
			if k == -1 {
				return false
			}
			if err := s.T.MulLeftInto(p, k, true); err != nil {
				return false
			}
			indices = append(indices, k)
			cursor = k
		}
	}

	okX := reduce(
		func(op *pauli.Operator) (int, bool) { return op.XView().NextSetBit(0) },
		func(row, qubit int) bool { return s.T.Row(row).XView().Get(qubit) },
	)
	if !okX {
		return false, nil, nil
	}
	okZ := reduce(
		func(op *pauli.Operator) (int, bool) { return op.ZView().NextSetBit(0) },
		func(row, qubit int) bool { return s.T.Row(row).ZView().Get(qubit) },
	)
	if !okZ {
		return false, nil, nil
	}

	if saveIndices {
		return true, indices, nil
	}
	return true, nil, nil
}
