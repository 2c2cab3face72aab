// This example builds a small random multi-scalar-multiplication instance
// over the Grumpkin/BN254 curve cycle, computes its left-hand-side divisor
// witness, and prints a short summary of the produced regular functions.
// It is meant as something a developer can `go run` to sanity-check the
// wiring without writing a test file.
package main

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/eagenproofs/msmwitness"
)

const (
	numTerms = 4
	base     = 4
)

func main() {
	points := make([]msmwitness.Point, numTerms)
	next := curvePointGenerator()
	for i := range points {
		points[i] = next()
	}

	scalars := make([]msmwitness.Scalar, numTerms)
	for i := range scalars {
		scalars[i] = randomScalar()
	}

	result, witnesses, err := msmwitness.ComputeLHSWitness(scalars, points, base)
	if err != nil {
		log.Fatalf("computing LHS witness: %v", err)
	}

	fmt.Printf("MSM of %d terms in base %d\n", numTerms, base)
	fmt.Printf("result point: %s\n", formatPoint(result))
	fmt.Printf("produced %d digit-position witnesses\n", len(witnesses))
	for i, w := range witnesses {
		fmt.Printf("  digit %2d: deg(a)=%-3d deg(b)=%-3d\n", i, len(w.A.Coeffs)-1, len(w.B.Coeffs)-1)
	}
}

func formatPoint(p msmwitness.Point) string {
	if p.Infinity {
		return "identity"
	}
	return fmt.Sprintf("(%s, %s)", p.X.String(), p.Y.String())
}

// curvePointGenerator returns a closure that yields successive points on
// y² = x³ - 17, found by scanning x = 1, 2, ... for a quadratic residue
// right-hand side. This is a demo convenience, not a generator search
// suitable for production key material.
func curvePointGenerator() func() msmwitness.Point {
	var seventeen fr.Element
	seventeen.SetUint64(17)
	next := uint64(1)

	return func() msmwitness.Point {
		var x, rhs fr.Element
		for ; ; next++ {
			x.SetUint64(next)
			rhs.Square(&x)
			rhs.Mul(&rhs, &x)
			rhs.Sub(&rhs, &seventeen)

			var y fr.Element
			if y.Sqrt(&rhs) != nil {
				next++
				return msmwitness.Point{X: x, Y: y}
			}
		}
	}
}

func randomScalar() msmwitness.Scalar {
	n, err := rand.Int(rand.Reader, big.NewInt(1<<20))
	if err != nil {
		log.Fatalf("generating random scalar: %v", err)
	}
	var s fp.Element
	s.SetBigInt(n)
	return s
}
