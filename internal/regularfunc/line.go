package regularfunc

import (
	"github.com/eagenproofs/msmwitness/internal/apperr"
	"github.com/eagenproofs/msmwitness/internal/curve"
	"github.com/eagenproofs/msmwitness/internal/field"
	"github.com/eagenproofs/msmwitness/internal/poly"
)

// Line returns the regular function vanishing at a, b, and their third
// collinear intersection point -(a+b), normalized so the coefficient of y
// is 1 (or, in the vertical cases, so the coefficient of x is 1 and the
// y-coefficient is 0).
func Line[F, S any](ops curve.Ops[F, S], a, b curve.Point[F]) (RegularFunction[F], error) {
	f := ops.Field

	aIdentity := ops.IsIdentity(a)
	bIdentity := ops.IsIdentity(b)

	switch {
	case aIdentity && bIdentity:
		return RegularFunction[F]{}, apperr.ErrDegenerateLine
	case aIdentity:
		x, _, _ := ops.Coordinates(b)
		return verticalLine(f, x), nil
	case bIdentity:
		x, _, _ := ops.Coordinates(a)
		return verticalLine(f, x), nil
	}

	if curve.Equal(ops, a, ops.Neg(b)) {
		// a = -b: vertical line through their shared x coordinate.
		x, _, _ := ops.Coordinates(a)
		return verticalLine(f, x), nil
	}

	if curve.Equal(ops, a, b) {
		// Tangent case: substitute b with c = -(a+b) = -2a to avoid
		// dividing by zero in the general-case slope derivation below.
		c := ops.Neg(ops.Double(a))
		b = c
	}

	ax, ay, _ := ops.Coordinates(a)
	bx, by, _ := ops.Coordinates(b)

	// Preliminary form (bx-ax)*y - (by-ay)*x, i.e. a=[0, ay-by], b=[bx-ax].
	line := RegularFunction[F]{
		A: poly.New([]F{f.Zero, f.Sub(ay, by)}),
		B: poly.New([]F{f.Sub(bx, ax)}),
	}

	// Offset so it vanishes at a.
	offset := Const(f, f.Neg(Evaluate(ops, line, a)))
	line = Add(f, line, offset)

	// Normalize so the y-coefficient is 1.
	leadInv, _ := f.Invert(line.B.Coeffs[0])
	return Scale(f, line, leadInv), nil
}

// verticalLine returns x - x0, represented as a = [-x0, 1], b = [0].
func verticalLine[F any](f field.Ops[F], x0 F) RegularFunction[F] {
	return RegularFunction[F]{
		A: poly.New([]F{f.Neg(x0), f.One}),
		B: poly.New([]F{f.Zero}),
	}
}
