package tableau

import "github.com/clifford-go/gf2stab/pauli"

// RowView aliases a single row's storage inside a Tableau. It implements
// pauli.Paulike so every pauli-level kernel (Comm, MulLeft, Equal) runs
// against a tableau row exactly as it would against a standalone
// *pauli.Operator, with zero copying.
type RowView struct {
	n int
	x, z pauli.BitVec
	t    *Tableau
	i    int
}

var _ pauli.Paulike = (*RowView)(nil)

// NQubits returns the row's qubit count.
func (r *RowView) NQubits() int { return r.n }

// XView returns the aliased X-part bit-vector.
func (r *RowView) XView() pauli.BitVec { return r.x }

// ZView returns the aliased Z-part bit-vector.
func (r *RowView) ZView() pauli.BitVec { return r.z }

// GetPhase reads this row's phase from the parent tableau.
func (r *RowView) GetPhase() pauli.Phase { return r.t.phases[r.i] }

// SetPhase writes this row's phase back into the parent tableau.
func (r *RowView) SetPhase(p pauli.Phase) { r.t.phases[r.i] = p }

// Index returns the row's position within its tableau.
func (r *RowView) Index() int { return r.i }

// IsZero reports whether this row's X and Z parts are both all-zero,
// irrespective of phase.
func (r *RowView) IsZero() bool { return r.x.IsZero() && r.z.IsZero() }

// ToOperator copies this row out into a standalone, independently-backed
// *pauli.Operator. Used when a caller needs a row's value to outlive
// subsequent mutation of the tableau (e.g. generate!'s caller-supplied
// copy).
func (r *RowView) ToOperator() *pauli.Operator {
	op := pauli.Zero(r.n)
	_ = op.CopyFrom(r)
	return op
}
