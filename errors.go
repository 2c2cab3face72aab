package msmwitness

import "github.com/eagenproofs/msmwitness/internal/apperr"

// Sentinel errors for this module's error kinds. Callers should compare
// with errors.Is: some call sites return a sentinel as is, others wrap it
// with additional detail via fmt.Errorf("%w: ..."). The polynomial kernel
// panics, rather than returning ErrFFTPrecondition, when a product would
// need an NTT larger than the field's 2-adicity allows.
var (
	ErrShapeMismatch   = apperr.ErrShapeMismatch
	ErrRangeViolation  = apperr.ErrRangeViolation
	ErrDegenerateLine  = apperr.ErrDegenerateLine
	ErrNonzeroResidual = apperr.ErrNonzeroResidual
	ErrFFTPrecondition = apperr.ErrFFTPrecondition
)
