package stabilizer

import (
	"fmt"

	"github.com/clifford-go/gf2stab/pauli"
	"github.com/clifford-go/gf2stab/tableau"
)

// Residual represents the "result" slot returned by generate! and project!:
// either a found phase (0 or 2, semantically +1/-1, but any value mod 4 may
// transiently appear on an un-normalized residual) or not-in-group. Per
// spec.md's Design Notes, this is deliberately an option type rather than a
// single integer with a magic sentinel, so a valid zero phase is never
// confusable with failure.
type Residual struct {
	Phase pauli.Phase
	Found bool
}

// NotInGroup is the not-in-group residual: spec.md §7 taxonomy item 1.
var NotInGroup = Residual{Found: false}

// FoundPhase wraps a successfully-reduced residual phase.
func FoundPhase(p pauli.Phase) Residual { return Residual{Phase: p, Found: true} }

// Stabilizer is a tableau of r <= n rows, all meaningful, pairwise
// commuting and independent over GF(2) (spec.md §3).
type Stabilizer struct {
	T *tableau.Tableau
}

// NewStabilizer wraps an existing tableau as a Stabilizer. Every row of t
// is taken to be meaningful.
func NewStabilizer(t *tableau.Tableau) *Stabilizer {
	return &Stabilizer{T: t}
}

// NQubits returns the number of qubits.
func (s *Stabilizer) NQubits() int { return s.T.NQubits() }

// Rank returns the number of meaningful rows (== T.Size() for a plain
// Stabilizer; there is no scratch tail).
func (s *Stabilizer) Rank() int { return s.T.Size() }

// Destabilizer is a full-rank (r == n) stabilizer plus its n destabilizer
// rows, stored as a single 2n-row tableau: rows [0,n) are the destabilizer
// block, rows [n,2n) are the stabilizer block (spec.md §3).
//
// Rank is tracked explicitly (defaulting to N) purely so ProjectDestabilizer
// can raise spec.md §7's "bad data structure" error if a caller ever hands
// it a tableau that has silently fallen out of full rank; in ordinary use
// Rank always equals N.
type Destabilizer struct {
	T    *tableau.Tableau
	N    int
	Rank int
}

// NewDestabilizer wraps a 2n-row tableau as a full-rank Destabilizer.
func NewDestabilizer(t *tableau.Tableau) (*Destabilizer, error) {
	n := t.NQubits()
	if t.Size() != 2*n {
		return nil, fmt.Errorf("NewDestabilizer: %w", ErrSizeMismatch)
	}
	return &Destabilizer{T: t, N: n, Rank: n}, nil
}

// NQubits returns n.
func (d *Destabilizer) NQubits() int { return d.N }

func (d *Destabilizer) destab(i int) *tableau.RowView { return d.T.Row(i) }
func (d *Destabilizer) stab(i int) *tableau.RowView { return d.T.Row(d.N + i) }

// DestabilizerView returns the i-th destabilizer row.
func (d *Destabilizer) DestabilizerView(i int) *tableau.RowView { return d.destab(i) }

// StabilizerView returns the i-th stabilizer row.
func (d *Destabilizer) StabilizerView(i int) *tableau.RowView { return d.stab(i) }

// MixedStabilizer is a stabilizer tableau with physical capacity n but an
// explicit Rank field; only rows [0,Rank) are meaningful (spec.md §3).
type MixedStabilizer struct {
	T    *tableau.Tableau
	Rank int
}

// NewMixedStabilizer wraps a capacity-n tableau with the given initial
// rank (rows [0,rank) must already hold the caller's generators).
func NewMixedStabilizer(t *tableau.Tableau, rank int) (*MixedStabilizer, error) {
	if rank < 0 || rank > t.Size() {
		return nil, fmt.Errorf("NewMixedStabilizer: %w", ErrSizeMismatch)
	}
	return &MixedStabilizer{T: t, Rank: rank}, nil
}

// NQubits returns the number of qubits.
func (m *MixedStabilizer) NQubits() int { return m.T.NQubits() }

// MixedDestabilizer is a 2n-row tableau partitioned into four blocks of
// sizes r, n-r, r, n-r: destabilizers, logical-X, stabilizers, logical-Z
// (spec.md §3), tracked via N and Rank.
type MixedDestabilizer struct {
	T    *tableau.Tableau
	N    int
	Rank int
}

// NewMixedDestabilizer wraps a 2n-row tableau with the given initial rank.
// Rows [0,rank) are the destabilizer block, [rank,n) logical-X,
// [n,n+rank) the stabilizer block, [n+rank,2n) logical-Z.
func NewMixedDestabilizer(t *tableau.Tableau, rank int) (*MixedDestabilizer, error) {
	n := t.NQubits()
	if t.Size() != 2*n {
		return nil, fmt.Errorf("NewMixedDestabilizer: %w", ErrSizeMismatch)
	}
	if rank < 0 || rank > n {
		return nil, fmt.Errorf("NewMixedDestabilizer: %w", ErrSizeMismatch)
	}
	return &MixedDestabilizer{T: t, N: n, Rank: rank}, nil
}

func (d *MixedDestabilizer) destab(i int) *tableau.RowView { return d.T.Row(i) }
func (d *MixedDestabilizer) logicalX(i int) *tableau.RowView { return d.T.Row(d.Rank + i) }
func (d *MixedDestabilizer) stab(i int) *tableau.RowView { return d.T.Row(d.N + i) }
func (d *MixedDestabilizer) logicalZ(i int) *tableau.RowView { return d.T.Row(d.N + d.Rank + i) }

// DestabilizerView returns the i-th destabilizer row (i in [0,Rank)).
func (d *MixedDestabilizer) DestabilizerView(i int) *tableau.RowView { return d.destab(i) }

// StabilizerView returns the i-th stabilizer row (i in [0,Rank)).
func (d *MixedDestabilizer) StabilizerView(i int) *tableau.RowView { return d.stab(i) }

// LogicalXView returns the i-th logical-X row (i in [0,N-Rank)).
func (d *MixedDestabilizer) LogicalXView(i int) *tableau.RowView { return d.logicalX(i) }

// LogicalZView returns the i-th logical-Z row (i in [0,N-Rank)).
func (d *MixedDestabilizer) LogicalZView(i int) *tableau.RowView { return d.logicalZ(i) }
