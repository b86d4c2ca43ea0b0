// Package stabilizer implements the stabilizer-formalism projection core:
// generate! (reduce a Pauli by a canonicalized stabilizer), the four
// project! variants (Stabilizer, Destabilizer, MixedStabilizer,
// MixedDestabilizer), traceout! and reset_qubits!.
//
// The four project! entry points are polymorphic over two independent
// capabilities — "has a destabilizer dual basis" and "has an explicit rank
// field for a mixed-rank state" — so the shared algorithmic core (the
// stabilizer-row scan, the mul_left! elimination loop, and the
// destabilizer-phase accumulation) is extracted into named subroutines
// (projectOverRows, AnticommUpdateRows, destabilizerPhase) rather than
// duplicated per type, per spec.md §9's design note.
//
// Every routine mutates its tableau argument in place and also returns it
// implicitly by reference (Go convention: pointer receivers, no copying);
// the project! variants' explicit return values are
// (anticommutingIndex, residual, error) as
// spec.md's Design Notes request — residual is a Phase-or-not-found value,
// never a magic integer sentinel.
package stabilizer
