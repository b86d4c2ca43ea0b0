package stabilizer_test

import (
	"testing"

	"github.com/clifford-go/gf2stab/builder"
	"github.com/clifford-go/gf2stab/pauli"
	"github.com/clifford-go/gf2stab/stabilizer"
	"github.com/clifford-go/gf2stab/tableau"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectStabilizer_GHZDestruction(t *testing.T) {
	s, err := builder.StabilizerFromStrings([]string{"XXXX", "ZZII", "IZZI", "IIZZ"})
	require.NoError(t, err)

	p := builder.MustParsePauli("ZIII")
	anticom, result, err := stabilizer.ProjectStabilizer(s, p)
	require.NoError(t, err)
	assert.Equal(t, 1, anticom)
	assert.False(t, result.Found)

	s.T.Canonicalize(true)
	want := []string{"ZIII", "IZII", "IIZI", "IIIZ"}
	for i, w := range want {
		assert.True(t, pauli.Equal(s.T.Row(i), builder.MustParsePauli(w)), "row %d", i)
	}
}

func TestProjectStabilizer_ConsistentProjection(t *testing.T) {
	s, err := builder.StabilizerFromStrings([]string{"ZII", "IXI", "IIY"})
	require.NoError(t, err)
	s.T.Canonicalize(true)

	before := s.T.Clone()
	p := builder.MustParsePauli("-ZII")
	anticom, result, err := stabilizer.ProjectStabilizer(s, p, stabilizer.WithKeepResult(true))
	require.NoError(t, err)
	assert.Equal(t, 0, anticom)
	require.True(t, result.Found)
	assert.Equal(t, pauli.PhaseMinusOne, result.Phase)

	for i := 0; i < s.T.Size(); i++ {
		assert.True(t, pauli.Equal(s.T.Row(i), before.Row(i)), "row %d unchanged", i)
	}
}

func TestProjectStabilizer_MixedOutsideGroup(t *testing.T) {
	s, err := builder.StabilizerFromStrings([]string{"XZI", "IZI"})
	require.NoError(t, err)

	p := builder.MustParsePauli("IIX")
	anticom, result, err := stabilizer.ProjectStabilizer(s, p)
	require.NoError(t, err)
	assert.Equal(t, 0, anticom)
	assert.False(t, result.Found)
}

func TestProjectMixedStabilizer_GrowsRank(t *testing.T) {
	tb, err := tableau.NewTableau(3, 3)
	require.NoError(t, err)
	require.NoError(t, tb.SetRow(0, builder.MustParsePauli("XZI")))
	require.NoError(t, tb.SetRow(1, builder.MustParsePauli("IZI")))
	m, err := stabilizer.NewMixedStabilizer(tb, 2)
	require.NoError(t, err)

	p := builder.MustParsePauli("IIX")
	anticom, result, err := stabilizer.ProjectMixedStabilizer(m, p)
	require.NoError(t, err)
	assert.Equal(t, 0, anticom)
	assert.False(t, result.Found)
	assert.Equal(t, 3, m.Rank)
	assert.True(t, pauli.Equal(m.T.Row(2), p))
}

func TestProjectMixedStabilizer_FreshRank2(t *testing.T) {
	tb, err := tableau.NewTableau(3, 3)
	require.NoError(t, err)
	require.NoError(t, tb.SetRow(0, builder.MustParsePauli("ZII")))
	require.NoError(t, tb.SetRow(1, builder.MustParsePauli("IZI")))
	m, err := stabilizer.NewMixedStabilizer(tb, 2)
	require.NoError(t, err)

	p := builder.MustParsePauli("IIX")
	_, _, err = stabilizer.ProjectMixedStabilizer(m, p)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rank)
}

func TestProjectMixedDestabilizer_RankGrowth(t *testing.T) {
	d, err := builder.IdentityDestabilizer(3)
	require.NoError(t, err)
	md, err := stabilizer.NewMixedDestabilizer(d.T, 2)
	require.NoError(t, err)

	p := builder.MustParsePauli("IIX")
	anticom, result, err := stabilizer.ProjectMixedDestabilizer(md, p)
	require.NoError(t, err)
	assert.Equal(t, 0, anticom)
	assert.False(t, result.Found)
	assert.Equal(t, 3, md.Rank)

	for i := 0; i < md.Rank; i++ {
		c, err := pauli.Comm(md.DestabilizerView(i).ToOperator(), md.StabilizerView(i).ToOperator())
		require.NoError(t, err)
		assert.Equal(t, 1, c, "destab[%d] anticommutes with stab[%d]", i, i)
		for j := 0; j < md.Rank; j++ {
			if j == i {
				continue
			}
			cij, err := pauli.Comm(md.DestabilizerView(i).ToOperator(), md.StabilizerView(j).ToOperator())
			require.NoError(t, err)
			assert.Equal(t, 0, cij, "destab[%d] commutes with stab[%d]", i, j)
		}
	}
}

func TestProjectDestabilizer_AgreesWithStabilizer(t *testing.T) {
	d, err := builder.IdentityDestabilizer(3)
	require.NoError(t, err)

	s, err := builder.StabilizerFromStrings([]string{"ZII", "IZI", "IIZ"})
	require.NoError(t, err)
	s.T.Canonicalize(true)

	p := builder.MustParsePauli("ZII")
	_, resD, err := stabilizer.ProjectDestabilizer(d, p)
	require.NoError(t, err)
	_, resS, err := stabilizer.ProjectStabilizer(s, p, stabilizer.WithKeepResult(true))
	require.NoError(t, err)

	require.True(t, resD.Found)
	require.True(t, resS.Found)
	assert.Equal(t, resS.Phase, resD.Phase)
}

func TestProjectDestabilizer_BadDataStructure(t *testing.T) {
	d, err := builder.IdentityDestabilizer(3)
	require.NoError(t, err)
	d.Rank = 2

	p := builder.MustParsePauli("ZII")
	_, _, err = stabilizer.ProjectDestabilizer(d, p)
	assert.ErrorIs(t, err, stabilizer.ErrBadDataStructure)
}

// assertDestabilizerDuality checks that destab[i] anticommutes with stab[i]
// and commutes with every stab[j], j != i, for i,j in [0, rank) — the
// defining invariant of a destabilizer dual basis.
func assertDestabilizerDuality(t *testing.T, destab func(int) *tableau.RowView, stab func(int) *tableau.RowView, rank int) {
	t.Helper()
	for i := 0; i < rank; i++ {
		for j := 0; j < rank; j++ {
			c, err := pauli.Comm(destab(i).ToOperator(), stab(j).ToOperator())
			require.NoError(t, err)
			if i == j {
				assert.Equal(t, 1, c, "destab[%d] must anticommute with stab[%d]", i, j)
			} else {
				assert.Equal(t, 0, c, "destab[%d] must commute with stab[%d]", i, j)
			}
		}
	}
}

// TestProjectDestabilizer_AnticommutingNonEdgeRow drives a non-degenerate
// a!=0 path through ProjectDestabilizer: P anticommutes with a non-edge
// stabilizer row (idx=1 of 4) and with a later one too, so the post-idx
// stabilizer elimination loop performs a real update, and P also
// anticommutes with a destabilizer row other than its own partner, so the
// destabilizer elimination loop (phases disabled) performs a real update
// too. Both updated rows are asserted via the full duality invariant
// afterward, not just via rank bookkeeping.
func TestProjectDestabilizer_AnticommutingNonEdgeRow(t *testing.T) {
	d, err := builder.IdentityDestabilizer(4)
	require.NoError(t, err)

	p := builder.MustParsePauli("IXZX")
	anticom, result, err := stabilizer.ProjectDestabilizer(d, p)
	require.NoError(t, err)
	assert.Equal(t, 2, anticom)
	assert.False(t, result.Found)

	assertDestabilizerDuality(t, d.DestabilizerView, d.StabilizerView, d.N)
}

// TestProjectMixedDestabilizer_AnticommutingStabRow drives Case A of
// ProjectMixedDestabilizer (anticommutes with an active stabilizer row,
// not a logical row) on a non-degenerate n=4, r=2 setup where P also
// anticommutes with a logical-X row, so AnticommUpdateRows's logical-X
// elimination range performs a real update instead of a no-op. Rank must
// stay at 2 (Case A never grows rank), and the resulting destabilizer/
// stabilizer pairing must still satisfy the full duality invariant.
func TestProjectMixedDestabilizer_AnticommutingStabRow(t *testing.T) {
	d, err := builder.IdentityDestabilizer(4)
	require.NoError(t, err)
	md, err := stabilizer.NewMixedDestabilizer(d.T, 2)
	require.NoError(t, err)

	p := builder.MustParsePauli("XIZI")
	anticom, result, err := stabilizer.ProjectMixedDestabilizer(md, p)
	require.NoError(t, err)
	assert.Equal(t, 1, anticom)
	assert.False(t, result.Found)
	assert.Equal(t, 2, md.Rank)

	assertDestabilizerDuality(t, md.DestabilizerView, md.StabilizerView, md.Rank)
}
