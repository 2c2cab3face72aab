// Package regularfunc implements regular functions a(x) + y·b(x) on a
// short-Weierstrass curve and the line-through-two-points
// construction.
package regularfunc

import (
	"github.com/eagenproofs/msmwitness/internal/curve"
	"github.com/eagenproofs/msmwitness/internal/field"
	"github.com/eagenproofs/msmwitness/internal/poly"
)

// RegularFunction represents a(x) + y·b(x) on E: y² = x³ + α·x + β.
type RegularFunction[F any] struct {
	A, B poly.Polynomial[F]
}

// Const returns the constant function c.
func Const[F any](ops field.Ops[F], c F) RegularFunction[F] {
	return RegularFunction[F]{A: poly.New([]F{c}), B: poly.New[F](nil)}
}

// Add returns r1 + r2.
func Add[F any](ops field.Ops[F], r1, r2 RegularFunction[F]) RegularFunction[F] {
	return RegularFunction[F]{
		A: poly.Add(ops, r1.A, r2.A),
		B: poly.Add(ops, r1.B, r2.B),
	}
}

// Scale returns c * r.
func Scale[F any](ops field.Ops[F], r RegularFunction[F], c F) RegularFunction[F] {
	return RegularFunction[F]{A: poly.Scale(ops, r.A, c), B: poly.Scale(ops, r.B, c)}
}

// Multiply returns r1 * r2, substituting y² ← x³ + α·x + β (curveOps.A/B).
func Multiply[F, S any](ops curve.Ops[F, S], r1, r2 RegularFunction[F]) RegularFunction[F] {
	f := ops.Field
	// rhs(x) = x^3 + A*x + B
	rhs := poly.New([]F{ops.B, ops.A, f.Zero, f.One})

	aa := poly.Multiply(f, r1.A, r2.A)
	bb := poly.Multiply(f, r1.B, r2.B)
	bbRhs := poly.Multiply(f, bb, rhs)

	ab := poly.Multiply(f, r1.A, r2.B)
	ba := poly.Multiply(f, r1.B, r2.A)

	return RegularFunction[F]{
		A: poly.Add(f, aa, bbRhs),
		B: poly.Add(f, ab, ba),
	}
}

// Evaluate computes a(P.X) + b(P.X)*P.Y. Evaluating at the identity is
// unspecified and must not occur in correct use.
func Evaluate[F, S any](ops curve.Ops[F, S], r RegularFunction[F], p curve.Point[F]) F {
	f := ops.Field
	x, y, _ := ops.Coordinates(p)
	return f.Add(poly.Evaluate(f, r.A, x), f.Mul(poly.Evaluate(f, r.B, x), y))
}
