package poly

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/eagenproofs/msmwitness/internal/field"
)

func randomElements(n int) []fr.Element {
	out := make([]fr.Element, n)
	for i := range out {
		out[i].SetRandom()
	}
	return out
}

func TestMultiplyIsRingHomomorphism(t *testing.T) {
	ops := field.BN254Fr()
	p := New(randomElements(17))
	q := New(randomElements(23))

	var x fr.Element
	x.SetRandom()

	got := Evaluate(ops, Multiply(ops, p, q), x)

	var want fr.Element
	want.Mul(ptr(Evaluate(ops, p, x)), ptr(Evaluate(ops, q, x)))

	if !got.Equal(&want) {
		t.Errorf("Multiply(p,q)(x) = %s, want p(x)*q(x) = %s", got.String(), want.String())
	}
}

func ptr(e fr.Element) *fr.Element { return &e }

func TestKateDivIdentity(t *testing.T) {
	ops := field.BN254Fr()
	p := New(randomElements(11))
	var t0 fr.Element
	t0.SetRandom()

	q := KateDiv(ops, p, t0)
	if q.Len() != p.Len()-1 {
		t.Fatalf("KateDiv length = %d, want %d", q.Len(), p.Len()-1)
	}

	var x fr.Element
	x.SetRandom()

	lhs := Evaluate(ops, p, x)
	pt := Evaluate(ops, p, t0)

	var xMinusT, rhs fr.Element
	xMinusT.Sub(&x, &t0)
	rhs.Mul(ptr(Evaluate(ops, q, x)), &xMinusT)
	rhs.Add(&rhs, &pt)

	if !lhs.Equal(&rhs) {
		t.Errorf("p(x) = %s, want q(x)*(x-t) + p(t) = %s", lhs.String(), rhs.String())
	}
}

func TestKateDivPreservesLengthOnZeroPolynomial(t *testing.T) {
	ops := field.BN254Fr()
	zero := New(make([]fr.Element, 5))
	var t0 fr.Element
	t0.SetRandom()

	q := KateDiv(ops, zero, t0)
	if q.Len() != 4 {
		t.Fatalf("KateDiv(zero-5) length = %d, want 4", q.Len())
	}
	for i, c := range q.Coeffs {
		if !c.IsZero() {
			t.Errorf("coefficient %d = %s, want zero", i, c.String())
		}
	}
}

func TestMultiplySchoolbookMatchesFFT(t *testing.T) {
	ops := field.BN254Fr()
	p := New(randomElements(40))
	q := New(randomElements(50))

	naive := MulNaive(ops, p, q)
	viaFFT := MulFFT(ops, p, q)

	if naive.Len() != viaFFT.Len() {
		t.Fatalf("length mismatch: naive=%d fft=%d", naive.Len(), viaFFT.Len())
	}
	for i := range naive.Coeffs {
		if !naive.Coeffs[i].Equal(&viaFFT.Coeffs[i]) {
			t.Errorf("coefficient %d: naive=%s fft=%s", i, naive.Coeffs[i].String(), viaFFT.Coeffs[i].String())
		}
	}
}

func TestMultiplyDispatchesOnSize(t *testing.T) {
	ops := field.BN254Fr()
	small := New(randomElements(3))
	large := New(randomElements(40))

	// Below the threshold, Multiply must still equal schoolbook multiplication.
	got := Multiply(ops, small, small)
	want := MulNaive(ops, small, small)
	for i := range want.Coeffs {
		if !got.Coeffs[i].Equal(&want.Coeffs[i]) {
			t.Errorf("small*small coefficient %d: got=%s want=%s", i, got.Coeffs[i].String(), want.Coeffs[i].String())
		}
	}

	got = Multiply(ops, large, large)
	want = MulFFT(ops, large, large)
	for i := range want.Coeffs {
		if !got.Coeffs[i].Equal(&want.Coeffs[i]) {
			t.Errorf("large*large coefficient %d: got=%s want=%s", i, got.Coeffs[i].String(), want.Coeffs[i].String())
		}
	}
}

func TestEvaluateEmptyPolynomialIsZero(t *testing.T) {
	ops := field.BN254Fr()
	var x fr.Element
	x.SetRandom()
	got := Evaluate(ops, New[fr.Element](nil), x)
	if !got.IsZero() {
		t.Errorf("Evaluate(empty, x) = %s, want 0", got.String())
	}
}
