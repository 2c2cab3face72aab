// Package negbase implements the redundant positive-digit decomposition
// used by the MSM-argument driver: digits d_0, d_1, ... in {0, ...,
// base-1} such that n = Σ d_i·(-base)^i, paired with the
// digit-to-precomputed-multiple-index mapping.
package negbase

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNegativeInput is returned by Decompose when n < 0.
var ErrNegativeInput = errors.New("negbase: n must be non-negative")

// ErrBaseTooSmall is returned when base < 2.
var ErrBaseTooSmall = errors.New("negbase: base must be at least 2")

// Decompose returns the least-significant-digit-first negabase-b digit
// sequence of n: digits d_i in [0, base) such that
// n = Σ_i d_i · (-base)^i. base is a uint8 so every digit fits in a byte
// by construction; base must still be at least 2.
func Decompose(n *big.Int, base uint8) ([]byte, error) {
	if n.Sign() < 0 {
		return nil, ErrNegativeInput
	}
	if base < 2 {
		return nil, ErrBaseTooSmall
	}

	b := big.NewInt(int64(base))
	negB := new(big.Int).Neg(b)

	v := new(big.Int).Set(n)
	var digits []byte

	// Each step replaces v by (v-r)/(-base), so |v| shrinks by about a
	// factor of base and an n-bit input needs at most about n+2 digits.
	// maxDigits is a generous safety net against a logic error turning the
	// loop below into an infinite one, not a tight analytical bound.
	maxDigits := 4*n.BitLen() + 64

	for v.Sign() != 0 {
		if len(digits) > maxDigits {
			return nil, fmt.Errorf("negbase: decomposition of %s base %d did not terminate", n, base)
		}
		r := new(big.Int).Mod(v, b) // Euclidean mod: 0 <= r < base
		digits = append(digits, byte(r.Uint64()))
		v.Sub(v, r)
		v.Div(v, negB)
	}
	return digits, nil
}

// IDByDigit maps digit 0 to "absent" (ok=false) and digit k>0 to index k-1
// into a precomputed-multiples table.
func IDByDigit(d byte) (idx int, ok bool) {
	if d == 0 {
		return 0, false
	}
	return int(d) - 1, true
}

// DigitByID is the inverse of IDByDigit: index k-1 maps back to digit k.
func DigitByID(idx int) byte {
	return byte(idx + 1)
}

// RangeCheck fails if n is negative or not strictly less than bound.
func RangeCheck(n, bound *big.Int) error {
	if n.Sign() < 0 || n.Cmp(bound) >= 0 {
		return fmt.Errorf("negbase: %s out of range [0, %s)", n, bound)
	}
	return nil
}
