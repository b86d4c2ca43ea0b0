package pauli_test

import (
	"testing"

	"github.com/clifford-go/gf2stab/pauli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// single-qubit helper: builds a 1-qubit Operator for X, Y or Z.
func single(x, z bool, phase pauli.Phase) *pauli.Operator {
	op := pauli.Zero(1)
	op.XView().Set(0, x)
	op.ZView().Set(0, z)
	op.SetPhase(phase)
	return op
}

func TestMulLeft_SingleQubitProducts(t *testing.T) {
	X := func() *pauli.Operator { return single(true, false, pauli.PhasePlusOne) }
	Y := func() *pauli.Operator { return single(true, true, pauli.PhasePlusOne) }
	Z := func() *pauli.Operator { return single(false, true, pauli.PhasePlusOne) }

	t.Run("X*Y=iZ", func(t *testing.T) {
		dst := Y()
		require.NoError(t, pauli.MulLeft(dst, X(), true))
		assert.True(t, pauli.Equal(dst, single(false, true, pauli.PhasePlusI)))
	})
	t.Run("Y*Z=iX", func(t *testing.T) {
		dst := Z()
		require.NoError(t, pauli.MulLeft(dst, Y(), true))
		assert.True(t, pauli.Equal(dst, single(true, false, pauli.PhasePlusI)))
	})
	t.Run("Z*X=iY", func(t *testing.T) {
		dst := X()
		require.NoError(t, pauli.MulLeft(dst, Z(), true))
		assert.True(t, pauli.Equal(dst, single(true, true, pauli.PhasePlusI)))
	})
	t.Run("X*X=I", func(t *testing.T) {
		dst := X()
		require.NoError(t, pauli.MulLeft(dst, X(), true))
		assert.True(t, pauli.IsIdentityUpToPhase(dst))
		assert.Equal(t, pauli.PhasePlusOne, dst.GetPhase())
	})
}

func TestComm(t *testing.T) {
	X := single(true, false, pauli.PhasePlusOne)
	Z := single(false, true, pauli.PhasePlusOne)
	I := pauli.Zero(1)

	c, err := pauli.Comm(X, Z)
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	c, err = pauli.Comm(X, X)
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	c, err = pauli.Comm(X, I)
	require.NoError(t, err)
	assert.Equal(t, 0, c)
}

func TestComm_QubitMismatch(t *testing.T) {
	_, err := pauli.Comm(pauli.Zero(2), pauli.Zero(3))
	assert.ErrorIs(t, err, pauli.ErrQubitCountMismatch)
}

func TestBitVec_NextSetBit(t *testing.T) {
	v := pauli.NewBitVec(130)
	v.Set(5, true)
	v.Set(64, true)
	v.Set(129, true)

	i, ok := v.NextSetBit(0)
	require.True(t, ok)
	assert.Equal(t, 5, i)

	i, ok = v.NextSetBit(6)
	require.True(t, ok)
	assert.Equal(t, 64, i)

	i, ok = v.NextSetBit(65)
	require.True(t, ok)
	assert.Equal(t, 129, i)

	_, ok = v.NextSetBit(130)
	assert.False(t, ok)
}
