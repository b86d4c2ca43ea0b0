package stabilizer

import "fmt"

// checkSubsetSize enforces spec.md §7 taxonomy item 3's traceout!
// precondition |Q| <= rank, which the spec documents but leaves
// unenforced; this implementation fails loudly instead of letting
// canonicalize_rref! run against an over-large subset.
func checkSubsetSize(fn string, qubits []int, rank int) error {
	if len(qubits) > rank {
		return fmt.Errorf("%s: %w", fn, ErrSubsetTooLarge)
	}
	return nil
}

// TraceoutStabilizer implements spec.md §4.7's `traceout!(T, Q; phases,
// rank)` for a plain Stabilizer: canonicalize_rref! restricted to qubits,
// then overwrite every row past the rows with no support on Q with the
// identity, collapsing the state's support onto Q's complement. Returns
// the number of rows kept.
func TraceoutStabilizer(s *Stabilizer, qubits []int, opts ...TraceoutOption) (int, error) {
	if err := checkSubsetSize("TraceoutStabilizer", qubits, s.Rank()); err != nil {
		return 0, err
	}
	cfg := resolveTraceoutOptions(opts)
	i, err := s.T.CanonicalizeRREF(qubits, cfg.Phases)
	if err != nil {
		return 0, fmt.Errorf("TraceoutStabilizer: %w", err)
	}
	for row := i; row < s.T.Size(); row++ {
		if err := s.T.ZeroRow(row); err != nil {
			return 0, fmt.Errorf("TraceoutStabilizer: %w", err)
		}
	}
	return i, nil
}

// TraceoutMixedStabilizer implements the mixed-rank variant: rank is set
// to the count of rows with no support on Q; the tail is left in place but
// is implicitly discarded (no longer addressed by Rank).
func TraceoutMixedStabilizer(m *MixedStabilizer, qubits []int, opts ...TraceoutOption) (int, error) {
	if err := checkSubsetSize("TraceoutMixedStabilizer", qubits, m.Rank); err != nil {
		return 0, err
	}
	cfg := resolveTraceoutOptions(opts)
	sub := m.T.Sub(m.Rank)
	i, err := sub.CanonicalizeRREF(qubits, cfg.Phases)
	if err != nil {
		return 0, fmt.Errorf("TraceoutMixedStabilizer: %w", err)
	}
	m.T.WriteBack(sub)
	m.Rank = i
	return i, nil
}

// TraceoutMixedDestabilizer implements the mixed-rank destabilizer
// variant: canonicalize_rref! restricted to Q over the active stabilizer
// block only, then set rank to the resulting count. The destabilizer and
// logical partitions are left untouched; their boundaries move implicitly
// with Rank on subsequent operations.
func TraceoutMixedDestabilizer(d *MixedDestabilizer, qubits []int, opts ...TraceoutOption) (int, error) {
	if err := checkSubsetSize("TraceoutMixedDestabilizer", qubits, d.Rank); err != nil {
		return 0, err
	}
	cfg := resolveTraceoutOptions(opts)
	sub := d.T.SubRange(d.N, d.Rank)
	i, err := sub.CanonicalizeRREF(qubits, cfg.Phases)
	if err != nil {
		return 0, fmt.Errorf("TraceoutMixedDestabilizer: %w", err)
	}
	d.T.WriteBackAt(d.N, sub)
	d.Rank = i
	return i, nil
}
