package builder

import (
	"fmt"

	"github.com/clifford-go/gf2stab/pauli"
	"github.com/clifford-go/gf2stab/stabilizer"
	"github.com/clifford-go/gf2stab/tableau"
)

const methodStabilizerFromStrings = "StabilizerFromStrings"
const methodDestabilizerFromStrings = "DestabilizerFromStrings"

// StabilizerFromStrings builds a Stabilizer whose rows are the parsed Pauli
// strings, in the order given. All rows must share the same qubit count.
func StabilizerFromStrings(rows []string) (*stabilizer.Stabilizer, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", methodStabilizerFromStrings, ErrEmptyInput)
	}
	ops := make([]*pauli.Operator, len(rows))
	n := -1
	for i, row := range rows {
		op, err := ParsePauli(row)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", methodStabilizerFromStrings, i, err)
		}
		if n == -1 {
			n = op.NQubits()
		} else if op.NQubits() != n {
			return nil, fmt.Errorf("%s: row %d: %w", methodStabilizerFromStrings, i, ErrLengthMismatch)
		}
		ops[i] = op
	}

	t, err := tableau.NewTableau(len(rows), n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodStabilizerFromStrings, err)
	}
	for i, op := range ops {
		if err := t.SetRow(i, op); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", methodStabilizerFromStrings, i, err)
		}
	}
	return stabilizer.NewStabilizer(t), nil
}

// DestabilizerFromStrings builds a full-rank Destabilizer from n
// destabilizer rows and n stabilizer rows, both given as Pauli strings on n
// qubits. destabRows[i] must anticommute with stabRows[i] and commute with
// every other row, a precondition this constructor does not verify.
func DestabilizerFromStrings(destabRows, stabRows []string) (*stabilizer.Destabilizer, error) {
	if len(destabRows) == 0 || len(stabRows) == 0 {
		return nil, fmt.Errorf("%s: %w", methodDestabilizerFromStrings, ErrEmptyInput)
	}
	if len(destabRows) != len(stabRows) {
		return nil, fmt.Errorf("%s: %w", methodDestabilizerFromStrings, ErrLengthMismatch)
	}
	n := len(destabRows)

	t, err := tableau.NewTableau(2*n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDestabilizerFromStrings, err)
	}
	for i, row := range destabRows {
		op, err := ParsePauli(row)
		if err != nil {
			return nil, fmt.Errorf("%s: destab row %d: %w", methodDestabilizerFromStrings, i, err)
		}
		if op.NQubits() != n {
			return nil, fmt.Errorf("%s: destab row %d: %w", methodDestabilizerFromStrings, i, ErrLengthMismatch)
		}
		if err := t.SetRow(i, op); err != nil {
			return nil, fmt.Errorf("%s: destab row %d: %w", methodDestabilizerFromStrings, i, err)
		}
	}
	for i, row := range stabRows {
		op, err := ParsePauli(row)
		if err != nil {
			return nil, fmt.Errorf("%s: stab row %d: %w", methodDestabilizerFromStrings, i, err)
		}
		if op.NQubits() != n {
			return nil, fmt.Errorf("%s: stab row %d: %w", methodDestabilizerFromStrings, i, ErrLengthMismatch)
		}
		if err := t.SetRow(n+i, op); err != nil {
			return nil, fmt.Errorf("%s: stab row %d: %w", methodDestabilizerFromStrings, i, err)
		}
	}
	return stabilizer.NewDestabilizer(t)
}
