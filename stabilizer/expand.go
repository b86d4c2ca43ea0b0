package stabilizer

import "github.com/clifford-go/gf2stab/pauli"

// expandPauli implements spec.md §9's `_expand_pauli` scratch allocation:
// it places op's k-th Pauli at the qubits[k]-th position of an n-qubit
// identity, carrying op's phase unchanged. Used by reset_qubits! to lift a
// caller-supplied newstate row from the |Q|-qubit subspace onto the full
// n-qubit tableau.
func expandPauli(op *pauli.Operator, qubits []int, n int) *pauli.Operator {
	out := pauli.Zero(n)
	out.SetPhase(op.GetPhase())
	ox, oz := op.XView(), op.ZView()
	nx, nz := out.XView(), out.ZView()
	for k, q := range qubits {
		if ox.Get(k) {
			nx.Set(q, true)
		}
		if oz.Get(k) {
			nz.Set(q, true)
		}
	}
	return out
}
