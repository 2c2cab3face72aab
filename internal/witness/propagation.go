// Package witness implements the divisor-witness builder:
// propagations, their pairwise merge, and the balanced reduction that
// combines a multiset of curve points into a single regular function
// vanishing on exactly that multiset (plus a residual output point).
package witness

import (
	"context"
	"runtime"

	"github.com/eagenproofs/msmwitness/internal/apperr"
	"github.com/eagenproofs/msmwitness/internal/curve"
	"github.com/eagenproofs/msmwitness/internal/poly"
	"github.com/eagenproofs/msmwitness/internal/regularfunc"
	"golang.org/x/sync/errgroup"
)

// Propagation holds a multiset of "input" points, an "output" point such
// that sum(inputs) + output = identity, and a regular function vanishing
// on inputs ∪ {output}.
type Propagation[F, S any] struct {
	Inputs []curve.Point[F]
	Output curve.Point[F]
	Wtns   regularfunc.RegularFunction[F]
}

// FromPoint lifts a single point into a propagation. The identity maps to
// the empty propagation (constant-1 witness, empty inputs, identity
// output).
func FromPoint[F, S any](ops curve.Ops[F, S], p curve.Point[F]) Propagation[F, S] {
	if ops.IsIdentity(p) {
		return Empty[F, S](ops)
	}
	negP := ops.Neg(p)
	line, err := regularfunc.Line(ops, p, negP)
	if err != nil {
		// p and -p are both finite (p is not identity), so Line never
		// degenerates here.
		panic(err)
	}
	return Propagation[F, S]{Inputs: []curve.Point[F]{p}, Output: negP, Wtns: line}
}

// Empty returns the propagation for the empty multiset: no inputs, output
// is the identity, witness is the constant function 1.
func Empty[F, S any](ops curve.Ops[F, S]) Propagation[F, S] {
	return Propagation[F, S]{
		Inputs: nil,
		Output: ops.Identity,
		Wtns:   regularfunc.Const(ops.Field, ops.Field.One),
	}
}

// Merge combines two propagations into one whose inputs are the union of
// the two, whose output is their sum, and whose witness vanishes on the
// union and on the new output.
func Merge[F, S any](ops curve.Ops[F, S], u, v Propagation[F, S]) Propagation[F, S] {
	inputs := make([]curve.Point[F], 0, len(u.Inputs)+len(v.Inputs))
	inputs = append(inputs, u.Inputs...)
	inputs = append(inputs, v.Inputs...)
	output := ops.Add(u.Output, v.Output)

	// Identity-absorbing shortcuts: the line through an identity point
	// degenerates, but the product of witnesses alone already vanishes on
	// everything required.
	if ops.IsIdentity(u.Output) || ops.IsIdentity(v.Output) {
		return Propagation[F, S]{
			Inputs: inputs,
			Output: output,
			Wtns:   regularfunc.Multiply(ops, u.Wtns, v.Wtns),
		}
	}

	negUOut := ops.Neg(u.Output)
	negVOut := ops.Neg(v.Output)

	line, err := regularfunc.Line(ops, negUOut, negVOut)
	if err != nil {
		// Unreachable: both operands are finite here (checked above).
		panic(err)
	}

	numerator := regularfunc.Multiply(ops, regularfunc.Multiply(ops, u.Wtns, v.Wtns), line)

	ux, _, _ := ops.Coordinates(negUOut)
	vx, _, _ := ops.Coordinates(negVOut)

	// The numerator vanishes at both negUOut and negVOut; divide out both
	// linear factors in sequence.
	f := ops.Field
	a := poly.KateDiv(f, poly.KateDiv(f, numerator.A, ux), vx)
	b := poly.KateDiv(f, poly.KateDiv(f, numerator.B, ux), vx)

	return Propagation[F, S]{
		Inputs: inputs,
		Output: output,
		Wtns:   regularfunc.RegularFunction[F]{A: a, B: b},
	}
}

// MaybePair is the "maybe-pair" slot used during balanced reduction: it
// holds either a single propagation awaiting a partner, or a completed
// pair ready to merge.
type MaybePair[F, S any] struct {
	single Propagation[F, S]
	left   Propagation[F, S]
	right  Propagation[F, S]
	isPair bool
}

func unit[F, S any](p Propagation[F, S]) MaybePair[F, S] {
	return MaybePair[F, S]{single: p}
}

func pair[F, S any](l, r Propagation[F, S]) MaybePair[F, S] {
	return MaybePair[F, S]{left: l, right: r, isPair: true}
}

func resolve[F, S any](ops curve.Ops[F, S], m MaybePair[F, S]) Propagation[F, S] {
	if m.isPair {
		return Merge(ops, m.left, m.right)
	}
	return m.single
}

// pushMaybePair appends a propagation to the running list of slots,
// pairing it with the most recent unpaired slot if one exists: the first
// propagation fills a slot, the next pairs it, the third opens a new slot,
// and so on.
func pushMaybePair[F, S any](slots []MaybePair[F, S], p Propagation[F, S]) []MaybePair[F, S] {
	if len(slots) == 0 {
		return append(slots, unit(p))
	}
	last := &slots[len(slots)-1]
	if last.isPair {
		return append(slots, unit(p))
	}
	*last = pair(last.single, p)
	return slots
}

// parallelism threshold below which a reduction level runs inline instead
// of spawning goroutines: at the leaves, merges are degree-2 x degree-2
// and goroutine overhead would dominate.
const inlineLevelThreshold = 8

// GroupMerge reduces arr to a single propagation via balanced pairwise
// merging, parallelizing each reduction level across an errgroup once the
// level is large enough to be worth it.
func GroupMerge[F, S any](ops curve.Ops[F, S], arr []Propagation[F, S]) Propagation[F, S] {
	if len(arr) == 0 {
		panic(apperr.ErrEmptyInput)
	}
	if len(arr) == 1 {
		return arr[0]
	}

	var slots []MaybePair[F, S]
	for _, p := range arr {
		slots = pushMaybePair(slots, p)
	}

	next := make([]Propagation[F, S], len(slots))
	if len(slots) < inlineLevelThreshold {
		for i, m := range slots {
			next[i] = resolve(ops, m)
		}
	} else {
		g, _ := errgroup.WithContext(context.Background())
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i, m := range slots {
			i, m := i, m
			g.Go(func() error {
				next[i] = resolve(ops, m)
				return nil
			})
		}
		_ = g.Wait() // resolve never returns an error
	}

	return GroupMerge(ops, next)
}
