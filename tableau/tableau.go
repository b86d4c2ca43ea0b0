package tableau

import (
	"fmt"

	"github.com/clifford-go/gf2stab/pauli"
)

// Tableau is a flat, row-major store of r Pauli rows on n qubits. Row i's
// X-part occupies xWords machine words, immediately followed by its
// Z-part's zWords words, inside a single shared buffer so whole-tableau
// allocation is one make() call (matrix/impl_dense.go's style, carried
// over to a bit-packed element type).
type Tableau struct {
	n       int // qubits per row
	rows    int // number of rows (physical capacity)
	xWords  int // words per X block
	zWords  int // words per Z block
	stride  int // xWords + zWords, words per row
	buf     []uint64
	phases  []pauli.Phase
}

// NewTableau allocates an r-row tableau on n qubits, every row initialized
// to the identity with phase +1. Complexity: O(r*n/64).
func NewTableau(rows, n int) (*Tableau, error) {
	if rows <= 0 || n <= 0 {
		return nil, ErrInvalidDimensions
	}
	xw, zw := pauli.WordsFor(n), pauli.WordsFor(n)
	stride := xw + zw
	return &Tableau{
		n:      n,
		rows:   rows,
		xWords: xw,
		zWords: zw,
		stride: stride,
		buf:    make([]uint64, rows*stride),
		phases: make([]pauli.Phase, rows),
	}, nil
}

// NQubits returns n, the number of qubits each row acts on.
func (t *Tableau) NQubits() int { return t.n }

// Size returns r, the number of physical rows.
func (t *Tableau) Size() int { return t.rows }

func (t *Tableau) checkRow(i int) error {
	if i < 0 || i >= t.rows {
		return fmt.Errorf("row %d: %w", i, ErrRowOutOfRange)
	}
	return nil
}

// Row returns a RowView aliasing row i's storage. Mutating the view
// mutates the tableau in place; no copy is made. Complexity: O(1).
func (t *Tableau) Row(i int) *RowView {
	off := i * t.stride
	return &RowView{
		n: t.n,
		x: pauli.WrapBitVec(t.n, t.buf[off:off+t.xWords]),
		z: pauli.WrapBitVec(t.n, t.buf[off+t.xWords:off+t.stride]),
		t: t,
		i: i,
	}
}

// RowSwap implements spec.md §6's `rowswap!`: exchange rows i and j,
// including their phases. Complexity: O(n/64).
func (t *Tableau) RowSwap(i, j int) error {
	if err := t.checkRow(i); err != nil {
		return fmt.Errorf("RowSwap: %w", err)
	}
	if err := t.checkRow(j); err != nil {
		return fmt.Errorf("RowSwap: %w", err)
	}
	if i == j {
		return nil
	}
	oi, oj := i*t.stride, j*t.stride
	for k := 0; k < t.stride; k++ {
		t.buf[oi+k], t.buf[oj+k] = t.buf[oj+k], t.buf[oi+k]
	}
	t.phases[i], t.phases[j] = t.phases[j], t.phases[i]
	return nil
}

// MulLeftRow implements the `mul_left!(T, i, j; phases)` overload: row i <-
// row j * row i. Complexity: O(n/64).
func (t *Tableau) MulLeftRow(i, j int, phases bool) error {
	if err := t.checkRow(i); err != nil {
		return fmt.Errorf("MulLeftRow: %w", err)
	}
	if err := t.checkRow(j); err != nil {
		return fmt.Errorf("MulLeftRow: %w", err)
	}
	return pauli.MulLeft(t.Row(i), t.Row(j), phases)
}

// MulLeftInto implements the `mul_left!(P, T, i; phases)` overload: p <-
// row i * p, where p is any standalone Paulike (typically a *pauli.Operator
// scratch value supplied by the caller).
func (t *Tableau) MulLeftInto(p pauli.Paulike, i int, phases bool) error {
	if err := t.checkRow(i); err != nil {
		return fmt.Errorf("MulLeftInto: %w", err)
	}
	return pauli.MulLeft(p, t.Row(i), phases)
}

// SetRow overwrites row i with the contents of src (X, Z and phase).
func (t *Tableau) SetRow(i int, src pauli.Paulike) error {
	if err := t.checkRow(i); err != nil {
		return fmt.Errorf("SetRow: %w", err)
	}
	row := t.Row(i)
	row.XView().CopyFrom(src.XView())
	row.ZView().CopyFrom(src.ZView())
	row.SetPhase(src.GetPhase())
	return nil
}

// ZeroRow resets row i to the identity Pauli with phase +1.
func (t *Tableau) ZeroRow(i int) error {
	if err := t.checkRow(i); err != nil {
		return fmt.Errorf("ZeroRow: %w", err)
	}
	row := t.Row(i)
	row.XView().Clear()
	row.ZView().Clear()
	row.SetPhase(pauli.PhasePlusOne)
	return nil
}

// Sub returns a new, independently-backed Tableau holding a copy of t's
// first `rows` rows. Used by callers that must canonicalize only an active
// prefix of a larger scratch-tailed tableau (MixedStabilizer,
// MixedDestabilizer) without disturbing the unused tail.
func (t *Tableau) Sub(rows int) *Tableau {
	return t.SubRange(0, rows)
}

// WriteBack copies src's rows into t's first src.Size() rows. src must
// share t's qubit count; this is the inverse of Sub, used to persist a
// canonicalized sub-tableau back into its parent.
func (t *Tableau) WriteBack(src *Tableau) {
	t.WriteBackAt(0, src)
}

// SubRange returns a new, independently-backed Tableau holding a copy of
// t's `rows` rows starting at absolute row `start`. Generalizes Sub to an
// arbitrary block, used to isolate the stabilizer block of a destabilizer
// tableau for canonicalization.
func (t *Tableau) SubRange(start, rows int) *Tableau {
	out, _ := NewTableau(rows, t.n)
	for i := 0; i < rows; i++ {
		_ = out.SetRow(i, t.Row(start+i))
	}
	return out
}

// WriteBackAt copies src's rows into t's rows [start, start+src.Size()).
// Inverse of SubRange.
func (t *Tableau) WriteBackAt(start int, src *Tableau) {
	for i := 0; i < src.Size(); i++ {
		_ = t.SetRow(start+i, src.Row(i))
	}
}

// Clone returns a deep, independently-backed copy of t.
func (t *Tableau) Clone() *Tableau {
	out := &Tableau{n: t.n, rows: t.rows, xWords: t.xWords, zWords: t.zWords, stride: t.stride}
	out.buf = make([]uint64, len(t.buf))
	copy(out.buf, t.buf)
	out.phases = make([]pauli.Phase, len(t.phases))
	copy(out.phases, t.phases)
	return out
}
