package pauli

import "fmt"

// Phase is the two-bit exponent of i carried by a Pauli operator or by the
// residual of a generate!/project! reduction. Value is always taken mod 4;
// valid generator phases are restricted to {0, 2} (see Operator doc).
type Phase uint8

const (
	PhasePlusOne  Phase = 0 // +1
	PhasePlusI    Phase = 1 // +i
	PhaseMinusOne Phase = 2 // -1
	PhaseMinusI   Phase = 3 // -i
)

// Operator is a Pauli operator on n qubits: P = i^Phase * bigotimes sigma(x,z).
//
// Invariant: when Operator represents a stored stabilizer generator, Phase
// is restricted to {PhasePlusOne, PhaseMinusOne}; this is a convention
// enforced by callers (generate!/project!), not by the type itself, since a
// freshly-multiplied intermediate Pauli may transiently carry any phase.
type Operator struct {
	n     int
	x, z  BitVec
	Phase Phase
}

// Paulike is satisfied by anything that behaves like a single Pauli row:
// a standalone *Operator, or a row view aliased out of a tableau.Tableau.
// comm/MulLeft operate purely in terms of this interface so the same
// kernels serve both storage shapes without copying (spec.md §6).
type Paulike interface {
	NQubits() int
	XView() BitVec
	ZView() BitVec
	GetPhase() Phase
	SetPhase(Phase)
}

var _ Paulike = (*Operator)(nil)

// Zero constructs the n-qubit identity operator (all-I, phase +1),
// matching the external `zero(PauliOperator, n)` constructor of spec.md §6.
func Zero(n int) *Operator {
	return &Operator{n: n, x: NewBitVec(n), z: NewBitVec(n), Phase: PhasePlusOne}
}

// NQubits returns the number of qubits this operator acts on.
func (p *Operator) NQubits() int { return p.n }

// XView returns the mutable X-part bit-vector (spec.md §6 `xview`).
func (p *Operator) XView() BitVec { return p.x }

// ZView returns the mutable Z-part bit-vector (spec.md §6 `zview`).
func (p *Operator) ZView() BitVec { return p.z }

// GetPhase returns the current phase.
func (p *Operator) GetPhase() Phase { return p.Phase }

// SetPhase overwrites the phase.
func (p *Operator) SetPhase(ph Phase) { p.Phase = ph }

// Clone returns an independent deep copy of p.
func (p *Operator) Clone() *Operator {
	out := Zero(p.n)
	out.x.CopyFrom(p.x)
	out.z.CopyFrom(p.z)
	out.Phase = p.Phase
	return out
}

// CopyFrom overwrites p in place with the contents of src. Both must share
// the same qubit count.
func (p *Operator) CopyFrom(src Paulike) error {
	if p.n != src.NQubits() {
		return fmt.Errorf("CopyFrom: %w", ErrQubitCountMismatch)
	}
	p.x.CopyFrom(src.XView())
	p.z.CopyFrom(src.ZView())
	p.Phase = src.GetPhase()
	return nil
}

// Equal reports whether a and b carry identical X, Z and phase.
func Equal(a, b Paulike) bool {
	if a.NQubits() != b.NQubits() {
		return false
	}
	ax, az := a.XView(), a.ZView()
	bx, bz := b.XView(), b.ZView()
	for i := 0; i < a.NQubits(); i++ {
		if ax.Get(i) != bx.Get(i) || az.Get(i) != bz.Get(i) {
			return false
		}
	}
	return a.GetPhase() == b.GetPhase()
}

// IsIdentityUpToPhase reports whether p's X and Z parts are all-zero, i.e.
// p is a (possibly phased) multiple of the identity. Used to check
// generate!'s residual after reduction.
func IsIdentityUpToPhase(p Paulike) bool {
	return p.XView().IsZero() && p.ZView().IsZero()
}

// Comm computes the symplectic commutator of a and b: 0 if they commute, 1
// if they anticommute. This is spec.md §6's `comm(P, T, i)` generalized to
// two arbitrary Paulike operands: comm(a,b) = sum_k (a.x_k*b.z_k + a.z_k*b.x_k) mod 2.
func Comm(a, b Paulike) (int, error) {
	if a.NQubits() != b.NQubits() {
		return 0, fmt.Errorf("Comm: %w", ErrQubitCountMismatch)
	}
	ax, az := a.XView(), a.ZView()
	bx, bz := b.XView(), b.ZView()
	return ax.AndPopcount(bz) ^ az.AndPopcount(bx), nil
}

// gExponent computes the single-qubit phase exponent contributed by
// multiplying sigma(x1,z1) on the left of sigma(x2,z2), using the standard
// tableau phase-tracking formula (Aaronson & Gottesman, "Improved
// Simulation of Stabilizer Circuits", Fig. 4). The result is in {-1,0,1}.
func gExponent(x1, z1, x2, z2 bool) int {
	switch {
	case !x1 && !z1: // I
		return 0
	case x1 && z1: // Y
		switch {
		case z2 && !x2:
			return 1
		case x2 && !z2:
			return -1
		default:
			return 0
		}
	case x1 && !z1: // X
		if z2 {
			if x2 {
				return 1
			}
			return -1
		}
		return 0
	default: // Z (!x1 && z1)
		if x2 {
			if z2 {
				return -1
			}
			return 1
		}
		return 0
	}
}

// MulLeft implements both overloads of spec.md §6's `mul_left!`: it
// computes dst <- src * dst (GF(2) XOR on x/z, standard phase product when
// phases is true) and writes the result back into dst. The same function
// serves `mul_left!(T, i, j)` (dst, src both tableau rows) and
// `mul_left!(P, T, i)` (dst a standalone Pauli, src a tableau row) because
// both arguments are merely Paulike.
func MulLeft(dst, src Paulike, phases bool) error {
	if dst.NQubits() != src.NQubits() {
		return fmt.Errorf("MulLeft: %w", ErrQubitCountMismatch)
	}
	n := dst.NQubits()
	if phases {
		exponent := int(src.GetPhase()) + int(dst.GetPhase())
		dx, dz := dst.XView(), dst.ZView()
		sx, sz := src.XView(), src.ZView()
		for k := 0; k < n; k++ {
			exponent += gExponent(sx.Get(k), sz.Get(k), dx.Get(k), dz.Get(k))
		}
		dst.SetPhase(Phase(((exponent % 4) + 4) % 4))
	}
	dst.XView().XorInto(src.XView())
	dst.ZView().XorInto(src.ZView())
	return nil
}
