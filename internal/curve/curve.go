// Package curve defines the capability bundle an elliptic curve in short
// Weierstrass form must provide, plus a concrete Grumpkin
// instantiation (grumpkin.go). Like internal/field, the bundle is a
// dictionary of values/closures rather than a method set, so the rest of
// this module stays generic over (coordinate field, scalar field) pairs
// without deep interface inheritance.
package curve

import (
	"math/big"

	"github.com/eagenproofs/msmwitness/internal/field"
)

// Point is an affine point on E: y² = x³ + a·x + b, or the identity.
// Infinity == true means "at infinity"; X, Y are then meaningless.
type Point[F any] struct {
	X, Y     F
	Infinity bool
}

// Ops is the capability bundle for curve E over coordinate field F with
// scalar field S.
type Ops[F, S any] struct {
	Field  field.Ops[F]
	Scalar field.ScalarOps[S]

	// A, B are the short Weierstrass coefficients: y² = x³ + A·x + B.
	A, B F

	Identity   Point[F]
	IsIdentity func(p Point[F]) bool
	Neg        func(p Point[F]) Point[F]
	Add        func(p, q Point[F]) Point[F]
	Double     func(p Point[F]) Point[F]
	// ScalarMul computes k*p via double-and-add; k is taken as a *big.Int
	// to keep it agnostic to which of S, F (or a plain uint64) the caller
	// has on hand; the driver passes its small integer base.
	ScalarMul func(p Point[F], k *big.Int) Point[F]

	// Coordinates extracts (x, y, ok); ok is false for the identity.
	Coordinates func(p Point[F]) (x, y F, ok bool)
	FromXY      func(x, y F) Point[F]
}

// Equal reports whether p and q are the same point.
func Equal[F, S any](ops Ops[F, S], p, q Point[F]) bool {
	if p.Infinity || q.Infinity {
		return p.Infinity == q.Infinity
	}
	return ops.Field.Equal(p.X, q.X) && ops.Field.Equal(p.Y, q.Y)
}
