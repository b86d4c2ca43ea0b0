package stabilizer

import (
	"fmt"

	"github.com/clifford-go/gf2stab/pauli"
	"github.com/clifford-go/gf2stab/tableau"
)

// projectOverRows implements spec.md §4.2's algorithm against the first
// `activeRows` rows of t, regardless of t's full physical capacity. Plain
// ProjectStabilizer calls this with activeRows == t.Size(); MixedStabilizer
// delegates to it with activeRows == its current Rank, per spec.md §4.4
// ("Delegates to §4.2 on the active prefix of M").
//
// Returns the 1-based anticommuting row index (0 if none) and the residual
// phase. On the commuting branch with KeepResult set, it canonicalizes the
// active prefix in place (writing the canonical form back into t) before
// calling Generate, exactly as spec.md §4.2 describes.
func projectOverRows(t *tableau.Tableau, activeRows int, p *pauli.Operator, cfg ProjectOptions) (int, Residual, error) {
	if t.NQubits() != p.NQubits() {
		return 0, NotInGroup, fmt.Errorf("projectOverRows: %w", ErrQubitMismatch)
	}

	a := 0
	for i := 0; i < activeRows; i++ {
		c, err := pauli.Comm(p, t.Row(i))
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
		sub := t.Sub(activeRows)
		sub.Canonicalize(cfg.Phases)
		t.WriteBack(sub)
		stab := NewStabilizer(sub)
		residualOp := p.Clone()
		ok, _, err := Generate(residualOp, stab, false)
		if err != nil {
			return 0, NotInGroup, err
		}
		if !ok {
			return 0, NotInGroup, nil
		}
		return 0, FoundPhase(residualOp.Phase), nil
	}

	idx := a - 1
	for i := idx + 1; i < activeRows; i++ {
		c, err := pauli.Comm(p, t.Row(i))
		if err != nil {
			return 0, NotInGroup, err
		}
		if c == 1 {
			if err := t.MulLeftRow(i, idx, cfg.Phases); err != nil {
				return 0, NotInGroup, err
			}
		}
	}
	if err := t.SetRow(idx, p); err != nil {
		return 0, NotInGroup, err
	}
	return a, NotInGroup, nil
}
