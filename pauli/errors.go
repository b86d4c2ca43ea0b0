package pauli

import "errors"

// Sentinel errors for the pauli package. All messages are prefixed with
// "pauli: " for consistent grepping across the module, matching the
// teacher's convention of one error block per package.
var (
	// ErrQubitCountMismatch indicates two operators with different qubit
	// counts were combined (Comm, MulLeft, CopyFrom).
	ErrQubitCountMismatch = errors.New("pauli: qubit count mismatch")

	// ErrIndexOutOfRange indicates a qubit index outside [0, n) was used.
	ErrIndexOutOfRange = errors.New("pauli: qubit index out of range")

	// ErrInvalidLiteral indicates a malformed single-qubit symbol outside
	// the {I, X, Y, Z} alphabet was encountered while decoding.
	ErrInvalidLiteral = errors.New("pauli: invalid Pauli literal")
)
