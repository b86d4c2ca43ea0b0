// Package builder provides reusable construction helpers for Pauli
// operators, stabilizers and destabilizers: a compact string notation for
// Pauli strings ("XXII", "-ZZI") and a handful of canonical-state
// constructors (GHZ, the identity destabilizer) composed on top of it.
//
// It lives alongside pauli, tableau and stabilizer to centralize the
// string-to-tableau conversion so tests and examples never hand-build bit
// vectors.
package builder
