package stabilizer_test

import (
	"testing"

	"github.com/clifford-go/gf2stab/builder"
	"github.com/clifford-go/gf2stab/pauli"
	"github.com/clifford-go/gf2stab/stabilizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetQubitsStabilizer(t *testing.T) {
	s, err := builder.StabilizerFromStrings([]string{"XXXX", "ZZII", "IZZI", "IIZZ"})
	require.NoError(t, err)

	newstate := []*pauli.Operator{builder.MustParsePauli("Z")}
	err = stabilizer.ResetQubitsStabilizer(s, newstate, []int{0})
	require.NoError(t, err)

	for i := 0; i < s.T.Size(); i++ {
		for j := i + 1; j < s.T.Size(); j++ {
			c, err := pauli.Comm(s.T.Row(i), s.T.Row(j))
			require.NoError(t, err)
			assert.Equal(t, 0, c, "rows %d,%d must commute after reset", i, j)
		}
	}
}

func TestResetQubitsStabilizer_SizeMismatch(t *testing.T) {
	s, err := builder.StabilizerFromStrings([]string{"XXXX"})
	require.NoError(t, err)
	newstate := []*pauli.Operator{builder.MustParsePauli("ZZ")}
	err = stabilizer.ResetQubitsStabilizer(s, newstate, []int{0})
	assert.ErrorIs(t, err, stabilizer.ErrNewStateSizeMismatch)
}

func TestResetQubitsMixedDestabilizer(t *testing.T) {
	d, err := builder.IdentityDestabilizer(3)
	require.NoError(t, err)
	md, err := stabilizer.NewMixedDestabilizer(d.T, 3)
	require.NoError(t, err)

	newstate := []*pauli.Operator{builder.MustParsePauli("-Z")}
	err = stabilizer.ResetQubitsMixedDestabilizer(md, newstate, []int{0})
	require.NoError(t, err)

	c, err := pauli.Comm(md.DestabilizerView(0).ToOperator(), md.StabilizerView(0).ToOperator())
	require.NoError(t, err)
	assert.Equal(t, 1, c)
}
