// Package gf2stab is a bit-packed stabilizer-formalism simulator: Pauli
// operators, symplectic tableaux, and the generate!/project!/traceout!/
// reset_qubits! algebra that drives Clifford-circuit simulation.
//
// 🚀 What is gf2stab?
//
//	A small, dependency-light library built around four concerns:
//
//	  • Pauli operators: word-packed X/Z bit vectors plus a mod-4 phase
//	  • Tableau storage: flat row-major backing array, symplectic Gauss-Jordan
//	  • Projection: generate!, and the four project! variants over
//	    Stabilizer, Destabilizer, MixedStabilizer, MixedDestabilizer
//	  • Qubit-subset operations: traceout! and reset_qubits!
//
// ✨ Design
//
//   - Deterministic       — project! never randomizes a collapsed phase
//   - Explicit options     — keep_result/phases are functional options, not bools buried in positional args
//   - No magic sentinels   — Residual is a {Phase, Found} pair, not an int
//   - Pure Go              — no cgo, only testify as a test dependency
//
// Everything is organized under four subpackages:
//
//	pauli/      — BitVec and Operator: the bit-packed Pauli algebra
//	tableau/    — Tableau and RowView: storage, RowSwap/MulLeftRow, canonicalization
//	stabilizer/ — Stabilizer/Destabilizer/MixedStabilizer/MixedDestabilizer and their operations
//	builder/    — Pauli-string parsing and canonical-state constructors (GHZ, identity)
//
// The worked scenarios are exercised by the tests in stabilizer/; see
// DESIGN.md for the grounding ledger behind each package's design choices.
package gf2stab
