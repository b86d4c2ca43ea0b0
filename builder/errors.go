// errors.go — sentinel errors for the builder package.
//
// Error policy: only package-level sentinels are exposed; callers branch
// with errors.Is. Implementations attach context with %w.

package builder

import "errors"

// ErrEmptyInput indicates a Pauli-string constructor was given zero rows
// where at least one is required.
var ErrEmptyInput = errors.New("builder: empty input")

// ErrLengthMismatch indicates the rows passed to a stabilizer/destabilizer
// constructor do not all share the same qubit count.
var ErrLengthMismatch = errors.New("builder: row length mismatch")

// ErrInvalidLetter indicates a Pauli string contains a rune outside
// {I, X, Y, Z} (case-insensitive).
var ErrInvalidLetter = errors.New("builder: invalid Pauli letter")

// ErrInvalidSign indicates a Pauli string's leading sign character is
// neither '+' nor '-'.
var ErrInvalidSign = errors.New("builder: invalid sign prefix")
