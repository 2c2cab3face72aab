package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
)

// BN254Fr returns the capability bundle for BN254's scalar field, which is
// Grumpkin's coordinate field 𝔽. It is the sole instantiation this module
// ships, since the BN254/Grumpkin cycle is the only curve pair in scope.
func BN254Fr() Ops[fr.Element] {
	return Ops[fr.Element]{
		Zero: fr.Element{},
		One:  func() fr.Element { var e fr.Element; e.SetOne(); return e }(),

		Add:    func(a, b fr.Element) fr.Element { var z fr.Element; z.Add(&a, &b); return z },
		Sub:    func(a, b fr.Element) fr.Element { var z fr.Element; z.Sub(&a, &b); return z },
		Neg:    func(a fr.Element) fr.Element { var z fr.Element; z.Neg(&a); return z },
		Mul:    func(a, b fr.Element) fr.Element { var z fr.Element; z.Mul(&a, &b); return z },
		Square: func(a fr.Element) fr.Element { var z fr.Element; z.Square(&a); return z },
		Invert: func(a fr.Element) (fr.Element, bool) {
			if a.IsZero() {
				return fr.Element{}, false
			}
			var z fr.Element
			z.Inverse(&a)
			return z, true
		},
		Pow: func(a fr.Element, e *big.Int) fr.Element {
			var z fr.Element
			z.Exp(a, e)
			return z
		},

		Equal:  func(a, b fr.Element) bool { return a.Equal(&b) },
		IsZero: func(a fr.Element) bool { return a.IsZero() },

		FromUint64: func(u uint64) fr.Element { var e fr.Element; e.SetUint64(u); return e },
		// Bytes re-orders gnark-crypto's big-endian canonical encoding to
		// the little-endian convention the field capability surface
		// exposes.
		Bytes: func(a fr.Element) []byte {
			be := a.Bytes()
			le := make([]byte, len(be))
			for i, b := range be {
				le[len(be)-1-i] = b
			}
			return le
		},

		// BN254's scalar field has multiplicative order p-1 = 2^28 * odd,
		// so 28 is the largest power-of-two domain fft.NewDomain can build.
		TwoAdicity: 28,
		Omega: func(logN int) fr.Element {
			return fft.NewDomain(uint64(1) << uint(logN)).Generator
		},
		OmegaInv: func(logN int) fr.Element {
			return fft.NewDomain(uint64(1) << uint(logN)).GeneratorInv
		},
		TwoInv: func() fr.Element {
			var two, inv fr.Element
			two.SetUint64(2)
			inv.Inverse(&two)
			return inv
		}(),

		NTT: ntt,
	}
}

// ntt runs an in-place NTT (or inverse NTT) of a, whose length must be a
// power of two, using gnark-crypto's FFT domain. Forward: natural-order
// coefficients in, natural-order evaluations out. Inverse: natural-order
// evaluations in, natural-order coefficients out (already scaled by N^-1,
// gnark-crypto's FFTInverse does this internally).
func ntt(a []fr.Element, invert bool) {
	n := uint64(len(a))
	domain := fft.NewDomain(n)
	if !invert {
		domain.FFT(a, fft.DIF)
		fft.BitReverse(a)
		return
	}
	fft.BitReverse(a)
	domain.FFTInverse(a, fft.DIT)
}
