package witness

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/eagenproofs/msmwitness/internal/curve"
	"github.com/eagenproofs/msmwitness/internal/regularfunc"
)

func findPoint(ops curve.Ops[fr.Element, fp.Element], start uint64) curve.Point[fr.Element] {
	var seventeen fr.Element
	seventeen.SetUint64(17)
	for i := start; ; i++ {
		var x, rhs fr.Element
		x.SetUint64(i)
		rhs.Square(&x)
		rhs.Mul(&rhs, &x)
		rhs.Sub(&rhs, &seventeen)

		var y fr.Element
		if y.Sqrt(&rhs) != nil {
			return ops.FromXY(x, y)
		}
	}
}

func points(ops curve.Ops[fr.Element, fp.Element], n int) []curve.Point[fr.Element] {
	out := make([]curve.Point[fr.Element], n)
	x := uint64(1)
	for i := range out {
		out[i] = findPoint(ops, x)
		x = out[i].X.Uint64() + 1
	}
	return out
}

// E1: an empty multiset yields the constant-1 witness and identity output.
func TestBuildDivisorWitnessEmpty(t *testing.T) {
	ops := curve.Grumpkin()
	wtns, output, err := BuildDivisorWitness[fr.Element, fp.Element](ops, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ops.IsIdentity(output) {
		t.Errorf("output = %v, want identity", output)
	}
	if wtns.A.Len() != 1 || !wtns.A.Coeffs[0].IsOne() {
		t.Errorf("wtns = %v, want constant 1", wtns)
	}
}

// E2: two mutually-inverse points sum to identity; the strict builder
// must succeed and the witness must vanish at both.
func TestBuildDivisorWitnessTwoInversePoints(t *testing.T) {
	ops := curve.Grumpkin()
	p := findPoint(ops, 1)
	negP := ops.Neg(p)

	wtns, err := BuildDivisorWitnessStrict(ops, []curve.Point[fr.Element]{p, negP})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, q := range []curve.Point[fr.Element]{p, negP} {
		v := regularfunc.Evaluate(ops, wtns, q)
		if !v.IsZero() {
			t.Errorf("witness does not vanish at %v: %s", q, v.String())
		}
	}
}

// E3: three collinear points (the two endpoints and their negated sum)
// sum to identity and must pass the strict builder.
func TestBuildDivisorWitnessThreeCollinearPoints(t *testing.T) {
	ops := curve.Grumpkin()
	a := points(ops, 2)
	p, q := a[0], a[1]
	r := ops.Neg(ops.Add(p, q))

	wtns, err := BuildDivisorWitnessStrict(ops, []curve.Point[fr.Element]{p, q, r})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, pt := range []curve.Point[fr.Element]{p, q, r} {
		v := regularfunc.Evaluate(ops, wtns, pt)
		if !v.IsZero() {
			t.Errorf("witness does not vanish at %v: %s", pt, v.String())
		}
	}
}

// E4: a larger multiset of points summing to identity still produces a
// vanishing witness, exercising the balanced-merge recursion beyond a
// single tree level and both the inline and parallel merge paths.
func TestBuildDivisorWitnessManyPoints(t *testing.T) {
	ops := curve.Grumpkin()
	const n = 17
	pts := points(ops, n)
	last := ops.Identity
	for _, p := range pts[:n-1] {
		last = ops.Add(last, p)
	}
	pts[n-1] = ops.Neg(last)

	wtns, err := BuildDivisorWitnessStrict(ops, pts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range pts {
		v := regularfunc.Evaluate(ops, wtns, p)
		if !v.IsZero() {
			t.Errorf("witness does not vanish at %v: %s", p, v.String())
		}
	}
}

// E4: many copies of one point plus a single closing point that cancels
// their sum. Merging two subtrees built from equally many copies of the
// point gives U.Output == V.Output, starting with the first level of
// merges, so Line takes its tangent branch and Merge Kate-divides twice at
// the same x-coordinate: this is the path distinct points never exercise.
func TestBuildDivisorWitnessRepeatedPointPlusClosingPoint(t *testing.T) {
	ops := curve.Grumpkin()
	const k = 50
	p := findPoint(ops, 1)

	pts := make([]curve.Point[fr.Element], k+1)
	for i := 0; i < k; i++ {
		pts[i] = p
	}
	pts[k] = ops.Neg(ops.ScalarMul(p, big.NewInt(k)))

	wtns, err := BuildDivisorWitnessStrict(ops, pts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, pt := range pts {
		v := regularfunc.Evaluate(ops, wtns, pt)
		if !v.IsZero() {
			t.Errorf("witness does not vanish at %v: %s", pt, v.String())
		}
	}
}

func TestBuildDivisorWitnessStrictFailsOnNonzeroResidual(t *testing.T) {
	ops := curve.Grumpkin()
	p := findPoint(ops, 1)
	_, err := BuildDivisorWitnessStrict(ops, []curve.Point[fr.Element]{p})
	if err == nil {
		t.Fatalf("expected an error for a non-identity residual")
	}
}

func TestGroupMergeSingleElement(t *testing.T) {
	ops := curve.Grumpkin()
	p := FromPoint[fr.Element, fp.Element](ops, findPoint(ops, 1))
	got := GroupMerge(ops, []Propagation[fr.Element, fp.Element]{p})
	if !curve.Equal(ops, got.Output, p.Output) {
		t.Errorf("GroupMerge of a single element changed the output")
	}
}

// Property 7: merging the same multiset via two different association
// patterns yields witnesses that vanish on the same point set, since both
// are minimal-degree divisors for that set up to a scalar constant.
func TestMergeAssociativityVanishingSetAgrees(t *testing.T) {
	ops := curve.Grumpkin()
	pts := points(ops, 4)
	a, b, c, d := FromPoint[fr.Element, fp.Element](ops, pts[0]),
		FromPoint[fr.Element, fp.Element](ops, pts[1]),
		FromPoint[fr.Element, fp.Element](ops, pts[2]),
		FromPoint[fr.Element, fp.Element](ops, pts[3])

	leftBalanced := Merge(ops, Merge(ops, a, b), Merge(ops, c, d))
	rightLeaning := Merge(ops, a, Merge(ops, b, Merge(ops, c, d)))

	if !curve.Equal(ops, leftBalanced.Output, rightLeaning.Output) {
		t.Fatalf("outputs differ: %v vs %v", leftBalanced.Output, rightLeaning.Output)
	}

	for _, p := range pts {
		v1 := regularfunc.Evaluate(ops, leftBalanced.Wtns, p)
		v2 := regularfunc.Evaluate(ops, rightLeaning.Wtns, p)
		if !v1.IsZero() || !v2.IsZero() {
			t.Errorf("witness for %v: balanced=%s leaning=%s, want both zero", p, v1.String(), v2.String())
		}
	}
}
