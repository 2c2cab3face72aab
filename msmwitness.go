package msmwitness

import (
	"github.com/eagenproofs/msmwitness/internal/driver"
	"github.com/eagenproofs/msmwitness/internal/witness"
)

// BuildDivisorWitness returns (wtns, output) where output = -sum(points)
// and wtns is a regular function vanishing at every point in points and
// at output. It never fails for a non-empty input; an empty input yields
// the constant function 1 paired with the identity.
func BuildDivisorWitness(points []Point) (RegularFunction, Point, error) {
	return witness.BuildDivisorWitness(grumpkin, points)
}

// BuildDivisorWitnessStrict is BuildDivisorWitness with the additional
// requirement that points sums to the identity; it returns
// ErrNonzeroResidual otherwise.
func BuildDivisorWitnessStrict(points []Point) (RegularFunction, error) {
	return witness.BuildDivisorWitnessStrict(grumpkin, points)
}

// ComputeLHSWitness decomposes each scalar into negabase-base digits and
// folds the resulting digit positions, most-significant first, into a
// running carry point and a list of per-digit regular-function witnesses,
// returned least-significant-digit first. It fails if scalars and points
// differ in length, if base < 2, or if any scalar is out of range.
func ComputeLHSWitness(scalars []Scalar, points []Point, base uint8) (Point, []RegularFunction, error) {
	return driver.ComputeLHSWitness(grumpkin, scalars, points, base)
}
