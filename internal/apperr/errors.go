// Package apperr declares the sentinel error values shared across this
// module's internal packages, re-exported by the root package so callers
// never need to import internal/... directly.
package apperr

import "errors"

var (
	// ErrShapeMismatch: scalar and point list lengths differ.
	ErrShapeMismatch = errors.New("msmwitness: scalar and point list lengths differ")
	// ErrRangeViolation: a scalar is outside [0, ceil(sqrt(p))+2).
	ErrRangeViolation = errors.New("msmwitness: scalar out of range")
	// ErrDegenerateLine: both arguments to the line function are identity.
	ErrDegenerateLine = errors.New("msmwitness: line through two points at infinity is undefined")
	// ErrNonzeroResidual: a strict divisor-witness call's input multiset
	// did not sum to identity.
	ErrNonzeroResidual = errors.New("msmwitness: divisor witness residual is not the identity")
	// ErrFFTPrecondition: a requested transform size exceeds the field's
	// 2-adicity.
	ErrFFTPrecondition = errors.New("msmwitness: requested NTT size exceeds field 2-adicity")
	// ErrEmptyInput: GroupMerge was called with zero propagations.
	ErrEmptyInput = errors.New("msmwitness: divisor witness requires at least an implicit empty input")
)
