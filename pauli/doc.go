// Package pauli implements the bit-packed n-qubit Pauli operator: the atomic
// unit every stabilizer-tableau algorithm in this module is built from.
//
// A Pauli operator on n qubits is stored as two word-packed bit-vectors (the
// X-part and the Z-part) plus a two-bit phase counting powers of i. Qubit k
// carries I, X, Z or Y depending on the pair (x_k, z_k):
//
//	(0,0) -> I    (1,0) -> X    (0,1) -> Z    (1,1) -> Y
//
// so that P = i^Phase * bigotimes_k sigma(x_k, z_k).
//
// BitVec is the shared word-packed representation used both by standalone
// Operator values and by rows aliased out of a tableau.Tableau, so that the
// same comm/MulLeft kernels run identically over either storage without
// copying. See the Paulike interface for how the two converge.
package pauli
