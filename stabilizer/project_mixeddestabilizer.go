package stabilizer

import (
	"fmt"

	"github.com/clifford-go/gf2stab/pauli"
)

// ProjectMixedDestabilizer implements spec.md §4.5's `project!(D, P;
// keep_result, phases)`, the hardest of the four variants: it dispatches on
// whether P anticommutes with a current stabilizer row (Case A), a logical
// operator (Case B, rank growth), or is already in the group (Case B,
// not-found).
func ProjectMixedDestabilizer(d *MixedDestabilizer, p *pauli.Operator, opts ...ProjectOption) (int, Residual, error) {
	cfg := resolveProjectOptions(opts)
	if d.N != p.NQubits() {
		return 0, NotInGroup, fmt.Errorf("ProjectMixedDestabilizer: %w", ErrQubitMismatch)
	}
	n, r := d.N, d.Rank

	anticommutes := 0
	for i := 0; i < r; i++ {
		c, err := pauli.Comm(p, d.stab(i))
		if err != nil {
			return 0, NotInGroup, err
		}
		if c == 1 {
			anticommutes = i + 1
			break
		}
	}

	if anticommutes != 0 {
		if err := AnticommUpdateRows(d.T, p, r, n, anticommutes, cfg.Phases); err != nil {
			return 0, NotInGroup, err
		}
		idx := anticommutes - 1
		oldStab := d.stab(idx).ToOperator()
		if err := d.T.SetRow(idx, oldStab); err != nil { // destab[idx] <- old S[idx]
			return anticommutes, NotInGroup, err
		}
		if err := d.T.SetRow(n+idx, p); err != nil { // S[idx] <- P
			return anticommutes, NotInGroup, err
		}
		return anticommutes, NotInGroup, nil
	}

	// Case B: search logical-X rows, then logical-Z rows, for an
	// anticommuting partner.
	foundX, foundZ := -1, -1
	for j := 0; j < n-r; j++ {
		c, err := pauli.Comm(p, d.logicalX(j))
		if err != nil {
			return 0, NotInGroup, err
		}
		if c == 1 {
			foundX = j
			break
		}
	}
	if foundX < 0 {
		for j := 0; j < n-r; j++ {
			c, err := pauli.Comm(p, d.logicalZ(j))
			if err != nil {
				return 0, NotInGroup, err
			}
			if c == 1 {
				foundZ = j
				break
			}
		}
	}

	if foundX >= 0 || foundZ >= 0 {
		absLog := -1
		if foundX >= 0 {
			absLog = r + foundX
			if err := d.T.RowSwap(n+r, absLog); err != nil {
				return 0, NotInGroup, err
			}
			if n-1 != r && absLog != r {
				if err := d.T.RowSwap(r, absLog+n); err != nil {
					return 0, NotInGroup, err
				}
			}
		} else {
			absLog = n + r + foundZ
			if err := d.T.RowSwap(r, absLog-n); err != nil {
				return 0, NotInGroup, err
			}
			if err := d.T.RowSwap(n+r, absLog); err != nil {
				return 0, NotInGroup, err
			}
		}

		if err := AnticommUpdateRows(d.T, p, r+1, n, r+1, cfg.Phases); err != nil {
			return 0, NotInGroup, err
		}
		d.Rank++
		oldVal := d.T.Row(n + r).ToOperator()
		if err := d.T.SetRow(r, oldVal); err != nil { // destab slot <- old rotated partner
			return 0, NotInGroup, err
		}
		if err := d.T.SetRow(n+r, p); err != nil { // stab slot <- P
			return 0, NotInGroup, err
		}
		return 0, NotInGroup, nil
	}

	// B-not-found: P is already in the group.
	if !cfg.KeepResult {
		return 0, NotInGroup, nil
	}
	phase, err := destabilizerPhaseMixed(d, p)
	if err != nil {
		return 0, NotInGroup, err
	}
	return 0, FoundPhase(phase), nil
}

// destabilizerPhaseMixed mirrors destabilizerPhase for the active rank-r
// prefix of a MixedDestabilizer.
func destabilizerPhaseMixed(d *MixedDestabilizer, p *pauli.Operator) (pauli.Phase, error) {
	q := pauli.Zero(d.N)
	q.SetPhase(p.Phase)
	for i := 0; i < d.Rank; i++ {
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
