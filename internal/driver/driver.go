// Package driver implements the MSM-argument driver: scalar decomposition,
// precomputed point multiples, and the digit-position folding that turns
// an MSM instance into a carry point and a list of per-digit regular
// function witnesses.
package driver

import (
	"fmt"
	"math/big"

	"github.com/eagenproofs/msmwitness/internal/apperr"
	"github.com/eagenproofs/msmwitness/internal/curve"
	"github.com/eagenproofs/msmwitness/internal/negbase"
	"github.com/eagenproofs/msmwitness/internal/regularfunc"
	"github.com/eagenproofs/msmwitness/internal/witness"
)

// PrecomputeMultiples returns, for each point P in points, the table row
// [P, 2P, ..., (base-1)P].
func PrecomputeMultiples[F, S any](ops curve.Ops[F, S], points []curve.Point[F], base uint8) [][]curve.Point[F] {
	table := make([][]curve.Point[F], len(points))
	for j, p := range points {
		row := make([]curve.Point[F], int(base)-1)
		acc := p
		row[0] = acc
		for k := 1; k < len(row); k++ {
			acc = ops.Add(acc, p)
			row[k] = acc
		}
		table[j] = row
	}
	return table
}

// ceilSqrt returns ceil(sqrt(n)) for n >= 0.
func ceilSqrt(n *big.Int) *big.Int {
	root := new(big.Int).Sqrt(n)
	sq := new(big.Int).Mul(root, root)
	if sq.Cmp(n) != 0 {
		root.Add(root, big.NewInt(1))
	}
	return root
}

// digitLength returns floor(log_base(n)) for n > 0.
func digitLength(n *big.Int, base uint8) int {
	b := big.NewInt(int64(base))
	v := new(big.Int).Set(n)
	count := -1
	for v.Sign() > 0 {
		v.Div(v, b)
		count++
	}
	if count < 0 {
		return 0
	}
	return count
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// ComputeLHSWitness pairs scalars positionally with points, validates each
// scalar is within [0, ceil(sqrt(p))+2), decomposes every scalar into
// negabase-b digits, and folds digit positions most-significant-first into
// a running carry point, calling the divisor-witness builder once per
// position. It returns the final carry (the MSM result, up to the base's
// sign convention) and the per-digit witnesses in least-significant-first
// order.
func ComputeLHSWitness[F, S any](ops curve.Ops[F, S], scalars []S, points []curve.Point[F], base uint8) (curve.Point[F], []regularfunc.RegularFunction[F], error) {
	if len(scalars) != len(points) {
		return curve.Point[F]{}, nil, apperr.ErrShapeMismatch
	}
	if base < 2 {
		return curve.Point[F]{}, nil, fmt.Errorf("%w: base %d is below the minimum of 2", apperr.ErrRangeViolation, base)
	}

	n := len(scalars)
	sqrtP := ceilSqrt(ops.Scalar.Modulus)
	bound := new(big.Int).Add(sqrtP, big.NewInt(2))

	scalarInts := make([]*big.Int, n)
	for i, s := range scalars {
		v := ops.Scalar.ToBigInt(s)
		if err := negbase.RangeCheck(v, bound); err != nil {
			return curve.Point[F]{}, nil, fmt.Errorf("%w: scalar %d: %v", apperr.ErrRangeViolation, i, err)
		}
		scalarInts[i] = v
	}

	d := digitLength(sqrtP, base) + 2

	digits := make([][]byte, n)
	for i, v := range scalarInts {
		dd, err := negbase.Decompose(v, base)
		if err != nil {
			return curve.Point[F]{}, nil, fmt.Errorf("msmwitness: decomposing scalar %d: %w", i, err)
		}
		if len(dd) > d {
			return curve.Point[F]{}, nil, fmt.Errorf("%w: scalar %d needs %d digits, exceeding the allotted %d", apperr.ErrRangeViolation, i, len(dd), d)
		}
		padded := make([]byte, d)
		copy(padded, dd)
		reverse(padded)
		digits[i] = padded
	}

	table := PrecomputeMultiples(ops, points, base)

	outputs := make([]regularfunc.RegularFunction[F], d)
	carry := ops.Identity
	bBig := big.NewInt(int64(base))

	for i := 0; i < d; i++ {
		var t []curve.Point[F]

		if !ops.IsIdentity(carry) {
			negCarry := ops.Neg(carry)
			for k := uint8(0); k < base; k++ {
				t = append(t, negCarry)
			}
		}

		carry = ops.Neg(ops.ScalarMul(carry, bBig))

		for j := 0; j < n; j++ {
			dig := digits[j][i]
			if dig > 0 {
				idx, _ := negbase.IDByDigit(dig)
				multiple := table[j][idx]
				t = append(t, multiple)
				carry = ops.Add(carry, multiple)
			}
		}

		t = append(t, ops.Neg(carry))

		wtns, err := witness.BuildDivisorWitnessStrict(ops, t)
		if err != nil {
			return curve.Point[F]{}, nil, fmt.Errorf("msmwitness: digit position %d: %w", i, err)
		}
		outputs[i] = wtns
	}

	reverse(outputs)
	return carry, outputs, nil
}
