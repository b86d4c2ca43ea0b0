package tableau

import (
	"fmt"
	"sort"

	"github.com/clifford-go/gf2stab/pauli"
)

// CanonicalizeRREF implements spec.md §6's `canonicalize_rref!(T, Q;
// phases)`: the same Gauss-Jordan elimination as Canonicalize, but with
// pivot search and elimination restricted to the qubit columns in Q. After
// elimination the rows with no support on Q are moved to the front, and the
// pivot rows (those that still touch Q) follow them (traceout!/
// reset_qubits! rely on this to keep the generators that avoid Q).
//
// Returns the number of rows with no support on Q. Complexity: O(|Q| * r)
// word-level row operations.
func (t *Tableau) CanonicalizeRREF(qubits []int, phases bool) (int, error) {
	seen := make(map[int]bool, len(qubits))
	cols := make([]int, 0, len(qubits))
	for _, q := range qubits {
		if q < 0 || q >= t.n {
			return 0, fmt.Errorf("CanonicalizeRREF: qubit %d: %w", q, ErrQubitOutOfRange)
		}
		if seen[q] {
			continue
		}
		seen[q] = true
		cols = append(cols, q)
	}
	sort.Ints(cols)

	next := t.eliminatePass(0, phases, cols, func(row *RowView) pauli.BitVec { return row.XView() })
	next = t.eliminatePass(next, phases, cols, func(row *RowView) pauli.BitVec { return row.ZView() })

	// Rows [next, rows) no longer touch Q; rotate them ahead of the pivots.
	free := t.rows - next
	if next > 0 && free > 0 {
		src := t.Clone()
		for i := 0; i < free; i++ {
			_ = t.SetRow(i, src.Row(next+i))
		}
		for i := 0; i < next; i++ {
			_ = t.SetRow(free+i, src.Row(i))
		}
	}
	return free, nil
}
