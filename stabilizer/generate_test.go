package stabilizer_test

import (
	"testing"

	"github.com/clifford-go/gf2stab/builder"
	"github.com/clifford-go/gf2stab/pauli"
	"github.com/clifford-go/gf2stab/stabilizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_RoundTrip(t *testing.T) {
	s, err := builder.StabilizerFromStrings([]string{"XXXX", "ZZII", "IZZI", "IIZZ"})
	require.NoError(t, err)
	s.T.Canonicalize(true)

	// product of rows 0 and 2 (post-canonicalization order may differ, so
	// build the product directly from the canonicalized tableau's own rows).
	p := s.T.Row(0).ToOperator()
	require.NoError(t, pauli.MulLeft(p, s.T.Row(2), true))

	ok, indices, err := stabilizer.Generate(p, s, true)
	require.NoError(t, err)
	require.True(t, ok)
	assert.ElementsMatch(t, []int{0, 2}, indices)
	assert.True(t, pauli.IsIdentityUpToPhase(p))
}

func TestGenerate_NotInGroup(t *testing.T) {
	s, err := builder.StabilizerFromStrings([]string{"XII", "IZI"})
	require.NoError(t, err)
	s.T.Canonicalize(true)

	p := builder.MustParsePauli("IIX")
	ok, _, err := stabilizer.Generate(p, s, false)
	require.NoError(t, err)
	assert.False(t, ok)
}
