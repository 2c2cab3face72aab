// Package poly implements a dense univariate polynomial kernel: addition,
// shifting, scaling, Horner evaluation, Kate division by a linear factor,
// and a multiply that switches between schoolbook and FFT multiplication
// at a size threshold. It is generic over a field capability bundle
// (internal/field.Ops[F]) rather than any concrete field.
package poly

import "github.com/eagenproofs/msmwitness/internal/field"

// naiveMultiplyThreshold is the minimum of the two operand lengths below
// which Multiply uses schoolbook multiplication instead of FFT: FFT setup
// overhead dominates below this size.
const naiveMultiplyThreshold = 32

// Polynomial is a dense coefficient vector, index = degree. Trailing zero
// coefficients are not trimmed; callers must tolerate them, and KateDiv
// preserves length even for all-zero input.
type Polynomial[F any] struct {
	Coeffs []F
}

// New wraps coeffs without copying.
func New[F any](coeffs []F) Polynomial[F] {
	return Polynomial[F]{Coeffs: coeffs}
}

// Len returns the number of coefficients (degree + 1, ignoring trimming).
func (p Polynomial[F]) Len() int { return len(p.Coeffs) }

// Add returns p + q, with length equal to the longer operand.
func Add[F any](ops field.Ops[F], p, q Polynomial[F]) Polynomial[F] {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	out := make([]F, n)
	for i := 0; i < n; i++ {
		a, b := ops.Zero, ops.Zero
		if i < len(p.Coeffs) {
			a = p.Coeffs[i]
		}
		if i < len(q.Coeffs) {
			b = q.Coeffs[i]
		}
		out[i] = ops.Add(a, b)
	}
	return New(out)
}

// ShiftUp returns p * x^k, i.e. k leading zero coefficients prepended.
func ShiftUp[F any](ops field.Ops[F], p Polynomial[F], k int) Polynomial[F] {
	out := make([]F, k+len(p.Coeffs))
	for i := 0; i < k; i++ {
		out[i] = ops.Zero
	}
	copy(out[k:], p.Coeffs)
	return New(out)
}

// Scale returns c * p, coefficient-wise.
func Scale[F any](ops field.Ops[F], p Polynomial[F], c F) Polynomial[F] {
	out := make([]F, len(p.Coeffs))
	for i, v := range p.Coeffs {
		out[i] = ops.Mul(v, c)
	}
	return New(out)
}

// Evaluate computes p(x) by Horner's rule. An empty polynomial evaluates to
// zero.
func Evaluate[F any](ops field.Ops[F], p Polynomial[F], x F) F {
	acc := ops.Zero
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		acc = ops.Add(ops.Mul(acc, x), p.Coeffs[i])
	}
	return acc
}

// KateDiv returns q such that p(x) = q(x)*(x-t) + p(t), discarding the
// remainder p(t). len(q) == len(p)-1 always, even when p is all zero;
// callers must not trim leading or trailing zeros afterward.
func KateDiv[F any](ops field.Ops[F], p Polynomial[F], t F) Polynomial[F] {
	n := len(p.Coeffs)
	if n == 0 {
		return New[F](nil)
	}
	out := make([]F, n-1)
	// Synthetic division from the top coefficient down: out[n-2] = p[n-1],
	// out[i-1] = p[i] + t*out[i] for i = n-2 downto 1.
	if n == 1 {
		return New(out)
	}
	out[n-2] = p.Coeffs[n-1]
	for i := n - 2; i >= 1; i-- {
		out[i-1] = ops.Add(p.Coeffs[i], ops.Mul(t, out[i]))
	}
	return New(out)
}

// MulNaive multiplies p and q with the schoolbook O(len(p)*len(q)) method.
func MulNaive[F any](ops field.Ops[F], p, q Polynomial[F]) Polynomial[F] {
	if len(p.Coeffs) == 0 || len(q.Coeffs) == 0 {
		return New[F](nil)
	}
	out := make([]F, len(p.Coeffs)+len(q.Coeffs)-1)
	for i := range out {
		out[i] = ops.Zero
	}
	for i, a := range p.Coeffs {
		if ops.IsZero(a) {
			continue
		}
		for j, b := range q.Coeffs {
			out[i+j] = ops.Add(out[i+j], ops.Mul(a, b))
		}
	}
	return New(out)
}

// MulFFT multiplies p and q via a size-N NTT, N the next power of two at
// least as large as the product length.
func MulFFT[F any](ops field.Ops[F], p, q Polynomial[F]) Polynomial[F] {
	length := len(p.Coeffs) + len(q.Coeffs) - 1
	logN := bitLen(length - 1)
	n := 1 << uint(logN)
	if logN > ops.TwoAdicity {
		panic("poly: FFT size exceeds field 2-adicity")
	}

	a := padded(ops, p.Coeffs, n)
	b := padded(ops, q.Coeffs, n)

	ops.NTT(a, false)
	ops.NTT(b, false)
	for i := range a {
		a[i] = ops.Mul(a[i], b[i])
	}
	ops.NTT(a, true)

	return New(a[:length])
}

// Multiply dispatches to MulNaive below naiveMultiplyThreshold, else MulFFT.
func Multiply[F any](ops field.Ops[F], p, q Polynomial[F]) Polynomial[F] {
	if len(p.Coeffs) == 0 || len(q.Coeffs) == 0 {
		return New[F](nil)
	}
	if min(len(p.Coeffs), len(q.Coeffs)) < naiveMultiplyThreshold {
		return MulNaive(ops, p, q)
	}
	return MulFFT(ops, p, q)
}

func padded[F any](ops field.Ops[F], c []F, n int) []F {
	out := make([]F, n)
	copy(out, c)
	for i := len(c); i < n; i++ {
		out[i] = ops.Zero
	}
	return out
}

func bitLen(x int) int {
	n := 0
	for (1 << uint(n)) <= x {
		n++
	}
	return n
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
