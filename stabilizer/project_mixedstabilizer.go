package stabilizer

import "github.com/clifford-go/gf2stab/pauli"

// ProjectMixedStabilizer implements spec.md §4.4's `project!(M, P;
// keep_result, phases)`. It delegates to the shared §4.2 core over M's
// active prefix, then appends P as a new generator and grows the rank
// when the delegate reports P outside the group but commuting with it.
func ProjectMixedStabilizer(m *MixedStabilizer, p *pauli.Operator, opts ...ProjectOption) (int, Residual, error) {
	cfg := resolveProjectOptions(opts)
	a, res, err := projectOverRows(m.T, m.Rank, p, cfg)
	if err != nil {
		return 0, NotInGroup, err
	}
	if a != 0 || res.Found {
		return a, res, nil
	}

	// P commutes with the whole active prefix and is not already a member:
	// append it as a new generator.
	if err := m.T.SetRow(m.Rank, p); err != nil {
		return a, res, err
	}
	if cfg.KeepResult {
		m.Rank++
		return a, res, nil
	}

	sub := m.T.Sub(m.Rank + 1)
	sub.Canonicalize(cfg.Phases)
	m.T.WriteBack(sub)
	if !sub.Row(m.Rank).IsZero() {
		m.Rank++
	}
	return a, res, nil
}
