package stabilizer

import (
	"fmt"

	"github.com/clifford-go/gf2stab/pauli"
)

// ProjectDestabilizer implements spec.md §4.3's `project!(D, P;
// keep_result, phases)`, the O(n^2) variant that exploits the destabilizer
// dual basis instead of canonicalizing.
//
// Only applicable when d.Rank == d.N (a full-rank stabilizer); otherwise
// it fails fatally with ErrBadDataStructure, per spec.md §7 taxonomy item 2.
func ProjectDestabilizer(d *Destabilizer, p *pauli.Operator, opts ...ProjectOption) (int, Residual, error) {
	cfg := resolveProjectOptions(opts)
	if d.N != p.NQubits() {
		return 0, NotInGroup, fmt.Errorf("ProjectDestabilizer: %w", ErrQubitMismatch)
	}
	if d.Rank != d.N {
		return 0, NotInGroup, fmt.Errorf("ProjectDestabilizer: %w", ErrBadDataStructure)
	}
	n := d.N

	a := 0
	for i := 0; i < n; i++ {
		c, err := pauli.Comm(p, d.stab(i))
		if err != nil {
			return 0, NotInGroup, err
		}
		if c == 1 {
			a = i + 1
			break
		}
	}

	if a == 0 {
		if !cfg.KeepResult {
			return 0, NotInGroup, nil
		}
		phase, err := destabilizerPhase(d, p)
		if err != nil {
			return 0, NotInGroup, err
		}
		return 0, FoundPhase(phase), nil
	}

	idx := a - 1
	for i := idx + 1; i < n; i++ {
		c, err := pauli.Comm(p, d.stab(i))
		if err != nil {
			return 0, NotInGroup, err
		}
		if c == 1 {
			if err := pauli.MulLeft(d.stab(i), d.stab(idx), cfg.Phases); err != nil {
				return 0, NotInGroup, err
			}
		}
	}
	// Eliminate P-anticommuting destabilizer rows using the OLD stab[idx]
	// (not yet overwritten), phase tracking disabled (not physical).
	oldStab := d.stab(idx).ToOperator()
	for i := 0; i < n; i++ {
		if i == idx {
			continue
		}
		c, err := pauli.Comm(p, d.destab(i))
		if err != nil {
			return 0, NotInGroup, err
		}
		if c == 1 {
			if err := pauli.MulLeft(d.destab(i), oldStab, false); err != nil {
				return 0, NotInGroup, err
			}
		}
	}
	if err := d.T.SetRow(idx, oldStab); err != nil { // destab[idx] <- old S[idx]
		return 0, NotInGroup, err
	}
	if err := d.T.SetRow(n+idx, p); err != nil { // S[idx] <- P
		return 0, NotInGroup, err
	}
	return a, NotInGroup, nil
}

// destabilizerPhase implements the O(n^2) residual-phase computation
// spec.md §4.3 describes: start from an identity Pauli carrying p's phase,
// then left-multiply in every stabilizer row whose destabilizer partner
// anticommutes with p.
func destabilizerPhase(d *Destabilizer, p *pauli.Operator) (pauli.Phase, error) {
	q := pauli.Zero(d.N)
	q.SetPhase(p.Phase)
	for i := 0; i < d.N; i++ {
		c, err := pauli.Comm(p, d.destab(i))
		if err != nil {
			return 0, err
		}
		if c == 1 {
			if err := pauli.MulLeft(q, d.stab(i), true); err != nil {
				return 0, err
			}
		}
	}
	return q.Phase, nil
}
