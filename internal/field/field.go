// Package field defines the capability bundle a prime field must provide to
// the rest of this module, and a concrete instantiation over BN254's
// scalar field (which doubles as Grumpkin's coordinate field).
//
// The bundle is a plain struct of values and closures rather than a method
// set on a type parameter: this module's algorithms are generic over the
// field, and passing an explicit dictionary keeps that genericity without
// requiring the field type itself to satisfy some large interface.
package field

import "math/big"

// Ops is the capability bundle a prime field 𝔽 provides.
//
// F is the concrete element type (e.g. a wrapped gnark-crypto fr.Element).
// All binary operations are pure: they return a new F rather than mutating
// an argument, matching this module's value-semantics convention even
// though the underlying field library mutates receivers internally.
type Ops[F any] struct {
	Zero F
	One  F

	Add    func(a, b F) F
	Sub    func(a, b F) F
	Neg    func(a F) F
	Mul    func(a, b F) F
	Square func(a F) F
	// Invert returns (0, false) when a is zero; invert is total on nonzero
	// elements.
	Invert func(a F) (F, bool)
	Pow    func(a F, e *big.Int) F

	Equal  func(a, b F) bool
	IsZero func(a F) bool

	FromUint64 func(u uint64) F
	// Bytes serializes an element to little-endian bytes.
	Bytes func(a F) []byte

	// TwoAdicity is the largest S such that the field has a primitive
	// 2^S-th root of unity.
	TwoAdicity int
	// Omega returns a primitive 2^logN-th root of unity, logN <= TwoAdicity.
	Omega func(logN int) F
	// OmegaInv returns the inverse of Omega(logN).
	OmegaInv func(logN int) F
	TwoInv   F

	// NTT evaluates (or interpolates, if invert is true) a, whose length
	// must be a power of two, at the powers of a primitive len(a)-th root
	// of unity, in place. Implementations must leave a in natural
	// (non-bit-reversed) coefficient/evaluation order on return.
	NTT func(a []F, invert bool)
}
