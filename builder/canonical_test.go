package builder_test

import (
	"testing"

	"github.com/clifford-go/gf2stab/builder"
	"github.com/clifford-go/gf2stab/pauli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGHZ(t *testing.T) {
	s, err := builder.GHZ(4)
	require.NoError(t, err)
	assert.Equal(t, 4, s.NQubits())
	assert.Equal(t, 4, s.Rank())

	x, z := s.T.Canonicalize(true)
	assert.Equal(t, 1, x)
	assert.Equal(t, 4, z)
}

func TestIdentityDestabilizer(t *testing.T) {
	d, err := builder.IdentityDestabilizer(3)
	require.NoError(t, err)
	assert.Equal(t, 3, d.N)
	assert.Equal(t, 3, d.Rank)

	for i := 0; i < 3; i++ {
		c, err := pauli.Comm(d.DestabilizerView(i).ToOperator(), d.StabilizerView(i).ToOperator())
		require.NoError(t, err)
		assert.Equal(t, 1, c, "destab[%d] must anticommute with stab[%d]", i, i)
	}
}

func TestStabilizerFromStrings_LengthMismatch(t *testing.T) {
	_, err := builder.StabilizerFromStrings([]string{"XX", "XXX"})
	assert.ErrorIs(t, err, builder.ErrLengthMismatch)
}
