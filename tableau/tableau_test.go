package tableau_test

import (
	"testing"

	"github.com/clifford-go/gf2stab/pauli"
	"github.com/clifford-go/gf2stab/tableau"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRow(t *tableau.Tableau, i int, xs, zs []bool, phase pauli.Phase) {
	row := t.Row(i)
	for k, v := range xs {
		row.XView().Set(k, v)
	}
	for k, v := range zs {
		row.ZView().Set(k, v)
	}
	row.SetPhase(phase)
}

func TestRowSwapAndMulLeft(t *testing.T) {
	tb, err := tableau.NewTableau(2, 3)
	require.NoError(t, err)

	// row0 = X I I, row1 = I X I
	setRow(tb, 0, []bool{true, false, false}, []bool{false, false, false}, pauli.PhasePlusOne)
	setRow(tb, 1, []bool{false, true, false}, []bool{false, false, false}, pauli.PhasePlusOne)

	require.NoError(t, tb.RowSwap(0, 1))
	assert.True(t, tb.Row(0).XView().Get(1))
	assert.True(t, tb.Row(1).XView().Get(0))

	require.NoError(t, tb.MulLeftRow(0, 1, true))
	// row0 was IXI, multiplied by row1 (XII) -> XXI
	assert.True(t, tb.Row(0).XView().Get(0))
	assert.True(t, tb.Row(0).XView().Get(1))
}

func TestCanonicalize_GHZ(t *testing.T) {
	// XXXX; ZZII; IZZI; IIZZ
	tb, err := tableau.NewTableau(4, 4)
	require.NoError(t, err)
	setRow(tb, 0, []bool{true, true, true, true}, []bool{false, false, false, false}, pauli.PhasePlusOne)
	setRow(tb, 1, []bool{false, false, false, false}, []bool{true, true, false, false}, pauli.PhasePlusOne)
	setRow(tb, 2, []bool{false, false, false, false}, []bool{false, true, true, false}, pauli.PhasePlusOne)
	setRow(tb, 3, []bool{false, false, false, false}, []bool{false, false, true, true}, pauli.PhasePlusOne)

	xb, zb := tb.Canonicalize(true)
	assert.Equal(t, 1, xb) // one independent X-led row
	assert.Equal(t, 4, zb) // three more Z-led rows
}

func TestCanonicalizeRREF_QubitSubset(t *testing.T) {
	tb, err := tableau.NewTableau(4, 4)
	require.NoError(t, err)
	setRow(tb, 0, []bool{true, true, true, true}, []bool{false, false, false, false}, pauli.PhasePlusOne)
	setRow(tb, 1, []bool{false, false, false, false}, []bool{true, true, false, false}, pauli.PhasePlusOne)
	setRow(tb, 2, []bool{false, false, false, false}, []bool{false, true, true, false}, pauli.PhasePlusOne)
	setRow(tb, 3, []bool{false, false, false, false}, []bool{false, false, true, true}, pauli.PhasePlusOne)

	n, err := tb.CanonicalizeRREF([]int{0}, true)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 0)
}

func TestCanonicalizeRREF_InvalidQubit(t *testing.T) {
	tb, err := tableau.NewTableau(2, 3)
	require.NoError(t, err)
	_, err = tb.CanonicalizeRREF([]int{7}, true)
	assert.ErrorIs(t, err, tableau.ErrQubitOutOfRange)
}
