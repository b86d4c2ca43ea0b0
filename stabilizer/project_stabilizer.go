package stabilizer

import "github.com/clifford-go/gf2stab/pauli"

// ProjectStabilizer implements spec.md §4.2's `project!(S, P; keep_result,
// phases)`. Returns the 1-based index of the first anticommuting row (0 if
// p commutes with every row) and the residual phase.
//
// Complexity: O(n^3) when the operator commutes with the whole group and
// KeepResult is set (canonicalization dominates); O(n^2) otherwise.
func ProjectStabilizer(s *Stabilizer, p *pauli.Operator, opts ...ProjectOption) (int, Residual, error) {
	cfg := resolveProjectOptions(opts)
	return projectOverRows(s.T, s.Rank(), p, cfg)
}
