package cplx

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestPolarRoundTrip(t *testing.T) {
	z := Polar(2, math.Pi/4)
	if !almostEqual(z.Re, math.Sqrt2, 1e-12) || !almostEqual(z.Im, math.Sqrt2, 1e-12) {
		t.Fatalf("polar(2, pi/4) = %+v, want (sqrt2, sqrt2)", z)
	}
	if !almostEqual(z.Abs(), 2, 1e-12) {
		t.Fatalf("Abs() = %v, want 2", z.Abs())
	}
	if !almostEqual(z.Arg(), math.Pi/4, 1e-12) {
		t.Fatalf("Arg() = %v, want pi/4", z.Arg())
	}
}

func TestAddSubInverse(t *testing.T) {
	a := New(1.5, -2.5)
	b := New(-0.5, 3.0)
	if got := a.Add(b).Sub(b); !almostEqual(got.Re, a.Re, 1e-12) || !almostEqual(got.Im, a.Im, 1e-12) {
		t.Fatalf("Add then Sub failed: got %+v want %+v", got, a)
	}
}

func TestMulDivInverse(t *testing.T) {
	a := New(3, 4)
	b := New(-1, 2)
	prod := a.Mul(b)
	got, err := prod.Div(b)
	if err != nil {
		t.Fatalf("Div returned error: %v", err)
	}
	if !almostEqual(got.Re, a.Re, 1e-9) || !almostEqual(got.Im, a.Im, 1e-9) {
		t.Fatalf("Mul then Div failed: got %+v want %+v", got, a)
	}
}

func TestDivByZero(t *testing.T) {
	if _, err := New(1, 1).Div(Zero); err != ErrDivByZero {
		t.Fatalf("Div by zero returned %v, want ErrDivByZero", err)
	}
}

func TestArgRange(t *testing.T) {
	cases := []Complex{New(1, 0), New(0, 1), New(-1, 0), New(0, -1), New(-1, -1)}
	for _, z := range cases {
		a := z.Arg()
		if a <= -math.Pi || a > math.Pi {
			t.Fatalf("Arg(%+v) = %v out of (-pi, pi]", z, a)
		}
	}
}
