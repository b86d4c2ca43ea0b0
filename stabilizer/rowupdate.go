package stabilizer

import (
	"github.com/clifford-go/gf2stab/pauli"
	"github.com/clifford-go/gf2stab/tableau"
)

// AnticommUpdateRows implements spec.md §4.6's `anticomm_update_rows(T, P,
// r, n, a, phases)`: given a pivot stabilizer row at absolute position n+a
// (a is 1-based, matching the spec's own numbering), it eliminates every
// p-anticommuting row across three disjoint ranges by left-multiplying the
// pivot into each offending row. A row is updated iff comm(p, row) == 1.
//
//   - rows r+1..n       (logical-X block):                        phases as requested.
//   - rows n+a+1..2n    (stabilizers after the pivot, + logical-Z): phases as requested.
//   - rows 1..r, i != a (destabilizer block):                      phases disabled (not physical).
//
// t must be a 2n-row tableau laid out as a MixedDestabilizer
// (destab[0,n) | stab[n,2n), further split by r/a as above).
func AnticommUpdateRows(t *tableau.Tableau, p *pauli.Operator, r, n, a int, phases bool) error {
	pivotAbs := n + (a - 1)
	pivot := t.Row(pivotAbs)

	eliminate := func(from, to, exclude int, trackPhases bool) error {
		for i := from; i < to; i++ {
			if i == exclude {
				continue
			}
			row := t.Row(i)
			c, err := pauli.Comm(p, row)
			if err != nil {
				return err
			}
			if c == 1 {
				if err := pauli.MulLeft(row, pivot, trackPhases); err != nil {
					return err
				}
			}
		}
		return nil
	}

	// logical-X block: rows r+1..n (1-based) == abs0 [r, n)
	if err := eliminate(r, n, -1, phases); err != nil {
		return err
	}
	// stabilizers after the pivot + all logical-Z: abs0 [n+a, 2n)
	if err := eliminate(pivotAbs+1, 2*n, -1, phases); err != nil {
		return err
	}
	// destabilizer block excluding the pivot's own partner (index a-1):
	// abs0 [0, r), phases always disabled.
	if err := eliminate(0, r, a-1, false); err != nil {
		return err
	}
	return nil
}
