package stabilizer

import "errors"

// Sentinel errors for the stabilizer package, prefixed "stabilizer: " for
// consistent grepping across the module.
var (
	// ErrQubitMismatch indicates a Pauli argument's qubit count does not
	// match the tableau it is being projected against.
	ErrQubitMismatch = errors.New("stabilizer: qubit count mismatch")

	// ErrBadDataStructure is spec.md §7 taxonomy item 2: a project! call on
	// a Destabilizer whose tracked Rank is below full rank n. Destabilizer
	// cannot distinguish "in group" from "logical" in sub-cubic time once
	// rank-deficient; callers must switch to MixedDestabilizer.
	ErrBadDataStructure = errors.New("stabilizer: bad data structure for this operation")

	// ErrSizeMismatch indicates a tableau passed to a constructor does not
	// have the row count its type requires (e.g. Destabilizer needs 2n
	// rows for n qubits).
	ErrSizeMismatch = errors.New("stabilizer: tableau size mismatch")

	// ErrSubsetTooLarge is spec.md §7 taxonomy item 3: traceout! called
	// with |Q| > rank. Documented as undefined behavior by spec.md §4.7;
	// this implementation chooses to fail loudly instead of silently
	// corrupting the tableau.
	ErrSubsetTooLarge = errors.New("stabilizer: qubit subset larger than rank")

	// ErrNewStateSizeMismatch is spec.md §7 taxonomy item 3 for
	// reset_qubits!: a row of the supplied replacement state is not defined
	// on exactly as many qubits as the subset being reset.
	ErrNewStateSizeMismatch = errors.New("stabilizer: replacement state size mismatch")

	// ErrCapacityExceeded indicates a MixedStabilizer/MixedDestabilizer
	// append would exceed the tableau's physical row capacity (n rows of
	// rank). This should not occur for a correctly-sized tableau; it
	// guards against a caller-supplied undersized one.
	ErrCapacityExceeded = errors.New("stabilizer: rank capacity exceeded")
)
