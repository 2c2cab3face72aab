package curve

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/eagenproofs/msmwitness/internal/field"
)

// Grumpkin returns the capability bundle for the Grumpkin curve
// y² = x³ - 17 over BN254's scalar field (Grumpkin's coordinate field),
// with scalars drawn from BN254's base field (Grumpkin's scalar field).
// gnark-crypto does not ship a Grumpkin package at the pinned version, so
// point arithmetic is implemented here directly from the standard affine
// short-Weierstrass addition/doubling formulas.
func Grumpkin() Ops[fr.Element, fp.Element] {
	fieldOps := field.BN254Fr()
	scalarOps := field.BN254Fp()

	var negSeventeen fr.Element
	negSeventeen.SetUint64(17)
	negSeventeen.Neg(&negSeventeen)

	ops := Ops[fr.Element, fp.Element]{
		Field:    fieldOps,
		Scalar:   scalarOps,
		A:        fieldOps.Zero,
		B:        negSeventeen,
		Identity: Point[fr.Element]{Infinity: true},
	}
	ops.IsIdentity = func(p Point[fr.Element]) bool { return p.Infinity }
	ops.Neg = func(p Point[fr.Element]) Point[fr.Element] {
		if p.Infinity {
			return p
		}
		return Point[fr.Element]{X: p.X, Y: fieldOps.Neg(p.Y)}
	}
	ops.Coordinates = func(p Point[fr.Element]) (fr.Element, fr.Element, bool) {
		if p.Infinity {
			return fieldOps.Zero, fieldOps.Zero, false
		}
		return p.X, p.Y, true
	}
	ops.FromXY = func(x, y fr.Element) Point[fr.Element] {
		return Point[fr.Element]{X: x, Y: y}
	}
	ops.Double = func(p Point[fr.Element]) Point[fr.Element] {
		return double(fieldOps, ops.A, p)
	}
	ops.Add = func(p, q Point[fr.Element]) Point[fr.Element] {
		return add(fieldOps, ops.A, p, q)
	}
	ops.ScalarMul = func(p Point[fr.Element], k *big.Int) Point[fr.Element] {
		return scalarMul(ops, p, k)
	}
	return ops
}

func add(f field.Ops[fr.Element], a fr.Element, p, q Point[fr.Element]) Point[fr.Element] {
	if p.Infinity {
		return q
	}
	if q.Infinity {
		return p
	}
	if f.Equal(p.X, q.X) {
		sum := f.Add(p.Y, q.Y)
		if f.IsZero(sum) {
			return Point[fr.Element]{Infinity: true}
		}
		return double(f, a, p)
	}

	num := f.Sub(q.Y, p.Y)
	den := f.Sub(q.X, p.X)
	denInv, _ := f.Invert(den)
	lambda := f.Mul(num, denInv)

	x3 := f.Sub(f.Sub(f.Square(lambda), p.X), q.X)
	y3 := f.Sub(f.Mul(lambda, f.Sub(p.X, x3)), p.Y)
	return Point[fr.Element]{X: x3, Y: y3}
}

func double(f field.Ops[fr.Element], a fr.Element, p Point[fr.Element]) Point[fr.Element] {
	if p.Infinity || f.IsZero(p.Y) {
		return Point[fr.Element]{Infinity: true}
	}
	three := f.FromUint64(3)
	two := f.FromUint64(2)

	num := f.Add(f.Mul(three, f.Square(p.X)), a)
	den := f.Mul(two, p.Y)
	denInv, _ := f.Invert(den)
	lambda := f.Mul(num, denInv)

	x3 := f.Sub(f.Square(lambda), f.Mul(two, p.X))
	y3 := f.Sub(f.Mul(lambda, f.Sub(p.X, x3)), p.Y)
	return Point[fr.Element]{X: x3, Y: y3}
}

// scalarMul computes k*p by left-to-right double-and-add. A negative k
// multiplies by |k| and negates the result.
func scalarMul(ops Ops[fr.Element, fp.Element], p Point[fr.Element], k *big.Int) Point[fr.Element] {
	if k.Sign() == 0 || ops.IsIdentity(p) {
		return ops.Identity
	}
	abs := new(big.Int).Abs(k)
	acc := ops.Identity
	for i := abs.BitLen() - 1; i >= 0; i-- {
		acc = ops.Double(acc)
		if abs.Bit(i) == 1 {
			acc = ops.Add(acc, p)
		}
	}
	if k.Sign() < 0 {
		acc = ops.Neg(acc)
	}
	return acc
}
