package witness

import (
	"github.com/eagenproofs/msmwitness/internal/apperr"
	"github.com/eagenproofs/msmwitness/internal/curve"
	"github.com/eagenproofs/msmwitness/internal/regularfunc"
)

// BuildDivisorWitness returns (wtns, output) where output = -sum(points)
// and wtns is a regular function vanishing at every point in points and at
// output. Never fails for a non-empty input; an empty input returns the
// constant function 1 paired with the identity, without ever constructing
// a propagation tree.
func BuildDivisorWitness[F, S any](ops curve.Ops[F, S], points []curve.Point[F]) (regularfunc.RegularFunction[F], curve.Point[F], error) {
	if len(points) == 0 {
		return regularfunc.Const(ops.Field, ops.Field.One), ops.Identity, nil
	}

	props := make([]Propagation[F, S], len(points))
	for i, p := range points {
		props[i] = FromPoint(ops, p)
	}

	result := GroupMerge(ops, props)
	return result.Wtns, result.Output, nil
}

// BuildDivisorWitnessStrict is BuildDivisorWitness with the residual
// checked to be the identity: the caller asserts points sums to zero.
func BuildDivisorWitnessStrict[F, S any](ops curve.Ops[F, S], points []curve.Point[F]) (regularfunc.RegularFunction[F], error) {
	wtns, output, err := BuildDivisorWitness(ops, points)
	if err != nil {
		return regularfunc.RegularFunction[F]{}, err
	}
	if !ops.IsIdentity(output) {
		return regularfunc.RegularFunction[F]{}, apperr.ErrNonzeroResidual
	}
	return wtns, nil
}
