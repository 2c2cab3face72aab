package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

// ScalarOps is the capability bundle for Grumpkin's scalar field (BN254's
// base field Fp), used to validate and decompose MSM scalars (Modulus sets
// the driver's range bound, ToBigInt feeds the digit decomposition). It is
// intentionally smaller than Ops[F]: the scalar field never needs an NTT
// or root of unity in this module.
type ScalarOps[S any] struct {
	Zero, One  S
	Add, Sub   func(a, b S) S
	Neg        func(a S) S
	Mul        func(a, b S) S
	FromUint64 func(u uint64) S
	FromBigInt func(n *big.Int) S
	ToBigInt   func(a S) *big.Int
	Equal      func(a, b S) bool
	// Modulus is the field's prime order.
	Modulus *big.Int
}

// BN254Fp returns the scalar-field bundle.
func BN254Fp() ScalarOps[fp.Element] {
	return ScalarOps[fp.Element]{
		Zero: fp.Element{},
		One:  func() fp.Element { var e fp.Element; e.SetOne(); return e }(),

		Add: func(a, b fp.Element) fp.Element { var z fp.Element; z.Add(&a, &b); return z },
		Sub: func(a, b fp.Element) fp.Element { var z fp.Element; z.Sub(&a, &b); return z },
		Neg: func(a fp.Element) fp.Element { var z fp.Element; z.Neg(&a); return z },
		Mul: func(a, b fp.Element) fp.Element { var z fp.Element; z.Mul(&a, &b); return z },

		FromUint64: func(u uint64) fp.Element { var e fp.Element; e.SetUint64(u); return e },
		FromBigInt: func(n *big.Int) fp.Element { var e fp.Element; e.SetBigInt(n); return e },
		ToBigInt: func(a fp.Element) *big.Int {
			var n big.Int
			a.BigInt(&n)
			return &n
		},
		Equal: func(a, b fp.Element) bool { return a.Equal(&b) },

		Modulus: fp.Modulus(),
	}
}
