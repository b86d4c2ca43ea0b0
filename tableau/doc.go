// Package tableau implements the physical row store shared by every
// stabilizer/destabilizer data structure in this module: an ordered
// sequence of Pauli rows whose X-bits and Z-bits are interleaved into a
// single flat word buffer, so that a whole-row GF(2) combination
// (mul_left!) is one word-wise XOR loop rather than per-cell writes.
//
// This mirrors lvlath/matrix's Dense: one contiguous []float64 backing a
// row-major matrix, with bounds-checked accessors and no per-cell
// allocation (matrix/impl_dense.go). Tableau plays the same role for
// bit-packed Pauli rows instead of float64 cells.
//
// Tableau itself knows nothing about stabilizer/destabilizer/rank
// semantics; that partitioning lives one layer up, in package stabilizer.
// Tableau only provides: row storage, row-level mutation (RowSwap,
// MulLeftRow, MulLeftInto) and the two external canonicalization
// contracts (Canonicalize, CanonicalizeRREF) restated in spec.md §6.
package tableau
