// Package msmwitness computes the left-hand-side divisor witness for
// Eagen's curve-cycle MSM argument over the BN254/Grumpkin pair: points
// live on Grumpkin, scalars are drawn from Grumpkin's scalar field
// (BN254's base field), and every regular function returned has its
// polynomial coefficients in BN254's scalar field (Grumpkin's coordinate
// field).
//
// The three entry points are BuildDivisorWitness, BuildDivisorWitnessStrict,
// and ComputeLHSWitness; internal/... packages implement the field,
// curve, polynomial, and divisor-witness machinery generically, and this
// package wires them to the one concrete curve/field pair the module
// supports.
package msmwitness

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/eagenproofs/msmwitness/internal/curve"
	"github.com/eagenproofs/msmwitness/internal/poly"
	"github.com/eagenproofs/msmwitness/internal/regularfunc"
)

// Point is a Grumpkin affine point (or the identity).
type Point = curve.Point[fr.Element]

// Scalar is an element of Grumpkin's scalar field.
type Scalar = fp.Element

// Polynomial is a dense polynomial over BN254's scalar field.
type Polynomial = poly.Polynomial[fr.Element]

// RegularFunction is a regular function a(x) + y·b(x) on Grumpkin.
type RegularFunction = regularfunc.RegularFunction[fr.Element]

var grumpkin = curve.Grumpkin()
