package tableau

import "errors"

// Sentinel errors for the tableau package, prefixed "tableau: " for
// consistent grepping, matching matrix/errors.go's convention in the
// teacher repo.
var (
	// ErrInvalidDimensions is returned when NewTableau is asked for a
	// non-positive qubit count or row count.
	ErrInvalidDimensions = errors.New("tableau: dimensions must be > 0")

	// ErrRowOutOfRange indicates a row index outside [0, Size()) was used.
	ErrRowOutOfRange = errors.New("tableau: row index out of range")

	// ErrQubitOutOfRange indicates a qubit index outside [0, NQubits()) was
	// used, e.g. in CanonicalizeRREF's qubit subset.
	ErrQubitOutOfRange = errors.New("tableau: qubit index out of range")
)
