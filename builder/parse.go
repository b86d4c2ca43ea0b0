package builder

import (
	"fmt"

	"github.com/clifford-go/gf2stab/pauli"
)

const methodParsePauli = "ParsePauli"

// ParsePauli parses a compact Pauli-string literal into an Operator: an
// optional leading '+' or '-' sign (default '+'), followed by exactly one
// letter per qubit drawn from {I, X, Y, Z} (case-insensitive). "XXII" is
// the +1-phase X1X2 operator on 4 qubits; "-ZZI" carries phase -1.
//
// Complexity: O(n).
func ParsePauli(s string) (*pauli.Operator, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("%s: %w", methodParsePauli, ErrEmptyInput)
	}

	phase := pauli.PhasePlusOne
	body := s
	switch s[0] {
	case '+':
		body = s[1:]
	case '-':
		phase = pauli.PhaseMinusOne
		body = s[1:]
	default:
		if s[0] < 'A' || (s[0] > 'Z' && s[0] < 'a') || s[0] > 'z' {
			return nil, fmt.Errorf("%s: %q: %w", methodParsePauli, s, ErrInvalidSign)
		}
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%s: %q: %w", methodParsePauli, s, ErrEmptyInput)
	}

	op := pauli.Zero(len(body))
	op.SetPhase(phase)
	x, z := op.XView(), op.ZView()
	for k := 0; k < len(body); k++ {
		switch body[k] {
		case 'I', 'i':
			// no-op: identity on this qubit
		case 'X', 'x':
			x.Set(k, true)
		case 'Z', 'z':
			z.Set(k, true)
		case 'Y', 'y':
			x.Set(k, true)
			z.Set(k, true)
		default:
			return nil, fmt.Errorf("%s: %q: letter %q at qubit %d: %w", methodParsePauli, s, body[k], k, ErrInvalidLetter)
		}
	}
	return op, nil
}

// MustParsePauli is like ParsePauli but panics on error. Intended for
// table-driven tests and examples where the literal is a compile-time
// constant known to be well-formed.
func MustParsePauli(s string) *pauli.Operator {
	op, err := ParsePauli(s)
	if err != nil {
		panic(err)
	}
	return op
}
