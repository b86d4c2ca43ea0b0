package builder

import (
	"fmt"
	"strings"

	"github.com/clifford-go/gf2stab/stabilizer"
)

const methodGHZ = "GHZ"
const methodIdentityDestabilizer = "IdentityDestabilizer"
const minStateQubits = 2

// GHZ returns the canonical stabilizer of the n-qubit GHZ state
// (|0...0> + |1...1>)/sqrt(2): generators X1X2...Xn, Z1Z2, Z2Z3, ...,
// Z_{n-1}Zn.
func GHZ(n int) (*stabilizer.Stabilizer, error) {
	if n < minStateQubits {
		return nil, fmt.Errorf("%s: n=%d (must be >= %d): %w", methodGHZ, n, minStateQubits, ErrEmptyInput)
	}
	rows := make([]string, n)
	rows[0] = strings.Repeat("X", n)
	for i := 1; i < n; i++ {
		var b strings.Builder
		b.WriteString(strings.Repeat("I", i-1))
		b.WriteString("ZZ")
		b.WriteString(strings.Repeat("I", n-i-1))
		rows[i] = b.String()
	}
	return StabilizerFromStrings(rows)
}

// IdentityDestabilizer returns the trivial full-rank Destabilizer of the
// n-qubit all-zero computational basis state: destabilizer row i is X_i,
// stabilizer row i is Z_i.
func IdentityDestabilizer(n int) (*stabilizer.Destabilizer, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d (must be >= 1): %w", methodIdentityDestabilizer, n, ErrEmptyInput)
	}
	destab := make([]string, n)
	stab := make([]string, n)
	for i := 0; i < n; i++ {
		destab[i] = singleLetterRow(n, i, 'X')
		stab[i] = singleLetterRow(n, i, 'Z')
	}
	return DestabilizerFromStrings(destab, stab)
}

func singleLetterRow(n, k int, letter byte) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'I'
	}
	b[k] = letter
	return string(b)
}
