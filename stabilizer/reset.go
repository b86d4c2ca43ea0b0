package stabilizer

import (
	"fmt"

	"github.com/clifford-go/gf2stab/pauli"
)

// checkNewStateWidth enforces spec.md §7 taxonomy item 3's reset_qubits!
// precondition that every row of newstate is defined on exactly |Q|
// qubits, failing loudly instead of expanding a mismatched row silently.
func checkNewStateWidth(fn string, newstate []*pauli.Operator, qubits []int) error {
	for _, row := range newstate {
		if row.NQubits() != len(qubits) {
			return fmt.Errorf("%s: %w", fn, ErrNewStateSizeMismatch)
		}
	}
	return nil
}

// ResetQubitsStabilizer implements spec.md §4.8's `reset_qubits!(T,
// newstate, Q; phases)` for a plain Stabilizer. Per the resolved open
// question in spec.md §9, it does not perform the leading full
// canonicalize! the source comments flag as cosmetic; it runs
// canonicalize_rref! restricted to Q directly.
func ResetQubitsStabilizer(s *Stabilizer, newstate []*pauli.Operator, qubits []int, opts ...ResetOption) error {
	if err := checkNewStateWidth("ResetQubitsStabilizer", newstate, qubits); err != nil {
		return err
	}
	cfg := resolveResetOptions(opts)
	rrefI, err := s.T.CanonicalizeRREF(qubits, cfg.Phases)
	if err != nil {
		return fmt.Errorf("ResetQubitsStabilizer: %w", err)
	}
	if rrefI+len(newstate) > s.T.Size() {
		return fmt.Errorf("ResetQubitsStabilizer: %w", ErrCapacityExceeded)
	}
	for j, row := range newstate {
		expanded := expandPauli(row, qubits, s.NQubits())
		if err := s.T.SetRow(rrefI+j, expanded); err != nil {
			return fmt.Errorf("ResetQubitsStabilizer: %w", err)
		}
	}
	for row := rrefI + len(newstate); row < s.T.Size(); row++ {
		if err := s.T.ZeroRow(row); err != nil {
			return fmt.Errorf("ResetQubitsStabilizer: %w", err)
		}
	}
	return nil
}

// ResetQubitsMixedStabilizer is the mixed-rank analogue: rref is restricted
// to the active prefix, and rank is set to rrefI + len(newstate).
func ResetQubitsMixedStabilizer(m *MixedStabilizer, newstate []*pauli.Operator, qubits []int, opts ...ResetOption) error {
	if err := checkNewStateWidth("ResetQubitsMixedStabilizer", newstate, qubits); err != nil {
		return err
	}
	cfg := resolveResetOptions(opts)
	sub := m.T.Sub(m.Rank)
	rrefI, err := sub.CanonicalizeRREF(qubits, cfg.Phases)
	if err != nil {
		return fmt.Errorf("ResetQubitsMixedStabilizer: %w", err)
	}
	m.T.WriteBack(sub)
	newRank := rrefI + len(newstate)
	if newRank > m.T.Size() {
		return fmt.Errorf("ResetQubitsMixedStabilizer: %w", ErrCapacityExceeded)
	}
	for j, row := range newstate {
		expanded := expandPauli(row, qubits, m.NQubits())
		if err := m.T.SetRow(rrefI+j, expanded); err != nil {
			return fmt.Errorf("ResetQubitsMixedStabilizer: %w", err)
		}
	}
	m.Rank = newRank
	return nil
}

// ResetQubitsMixedDestabilizer implements the MixedDestabilizer variant:
// each newstate row is expanded onto the full qubit count and projected;
// the projection result determines which of the three branches of spec.md
// §4.8 assigns the caller's requested phase.
func ResetQubitsMixedDestabilizer(d *MixedDestabilizer, newstate []*pauli.Operator, qubits []int, opts ...ResetOption) error {
	if err := checkNewStateWidth("ResetQubitsMixedDestabilizer", newstate, qubits); err != nil {
		return err
	}
	cfg := resolveResetOptions(opts)
	for _, p := range newstate {
		q := expandPauli(p, qubits, d.N)
		anticom, res, err := ProjectMixedDestabilizer(d, q, WithKeepResult(true), WithPhases(cfg.Phases))
		if err != nil {
			return fmt.Errorf("ResetQubitsMixedDestabilizer: %w", err)
		}

		switch {
		case anticom != 0:
			// Branch 1: q was assigned to the newly-anticommuting
			// stabilizer row; the projection left its phase as q's, so
			// pin it to the caller's requested phase.
			d.stab(anticom - 1).SetPhase(p.GetPhase())

		case !res.Found:
			// Branch 2: q was appended as a brand new stabilizer row,
			// which now sits at the last promoted stabilizer slot.
			d.stab(d.Rank - 1).SetPhase(p.GetPhase())

		default:
			// Branch 3: q is already in the group. Only disturb the
			// tableau if the caller asked for phase tracking and the
			// group's residual phase disagrees with what was requested.
			if !cfg.Phases || res.Phase == pauli.PhasePlusOne {
				continue
			}
			loc := -1
			for i := 0; i < d.Rank; i++ {
				c, err := pauli.Comm(q, d.destab(i))
				if err != nil {
					return fmt.Errorf("ResetQubitsMixedDestabilizer: %w", err)
				}
				if c == 1 {
					loc = i
					break
				}
			}
			if loc < 0 {
				continue
			}
			for i := loc + 1; i < d.Rank; i++ {
				c, err := pauli.Comm(q, d.destab(i))
				if err != nil {
					return fmt.Errorf("ResetQubitsMixedDestabilizer: %w", err)
				}
				if c == 1 {
					if err := pauli.MulLeft(d.destab(i), d.destab(loc), false); err != nil {
						return fmt.Errorf("ResetQubitsMixedDestabilizer: %w", err)
					}
				}
			}
			if err := d.T.SetRow(d.N+loc, q); err != nil {
				return fmt.Errorf("ResetQubitsMixedDestabilizer: %w", err)
			}
		}
	}
	return nil
}
