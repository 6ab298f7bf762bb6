package tf

import (
	"math"
	"testing"
)

func TestFreqResponseSimpleLowPass(t *testing.T) {
	g, err := New([]float64{1}, []float64{1, 1.0 / (2 * math.Pi * 10)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	v, err := g.FreqResponse(2 * math.Pi * 10)
	if err != nil {
		t.Fatalf("FreqResponse: %v", err)
	}
	// At the corner frequency, |G| should be 1/sqrt(2).
	if math.Abs(v.Abs()-1/math.Sqrt2) > 1e-9 {
		t.Fatalf("|G(j*wc)| = %v, want 1/sqrt2", v.Abs())
	}
}

func TestFreqResponseZeroPole(t *testing.T) {
	g, _ := New([]float64{1}, []float64{0, 1})
	if _, err := g.FreqResponse(0); err != ErrZeroPole {
		t.Fatalf("FreqResponse at pole returned %v, want ErrZeroPole", err)
	}
}

func TestCascadeWithIdentity(t *testing.T) {
	one := One()
	v, err := one.FreqResponse(5)
	if err != nil {
		t.Fatalf("FreqResponse: %v", err)
	}
	if v.Re != 1 || v.Im != 0 {
		t.Fatalf("One() response = %+v, want 1+0j", v)
	}
}

func TestString(t *testing.T) {
	g, _ := New([]float64{1, 2}, []float64{1, 0, 3})
	got := g.String()
	want := "(1 + 2*s) / (1 + 3*s^2)"
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestIsStableFirstOrder(t *testing.T) {
	stable, _ := mustTF(t, []float64{1}, []float64{1, 1}).IsStable()
	if !stable {
		t.Fatalf("1/(1+s) should be stable")
	}
	unstable, _ := mustTF(t, []float64{1}, []float64{1, -1}).IsStable()
	if unstable {
		t.Fatalf("1/(1-s) should be unstable")
	}
}

func TestIsStableSecondOrder(t *testing.T) {
	// s^2 + 2*zeta*wn*s + wn^2 with zeta, wn > 0 is stable.
	wn := 2 * math.Pi * 5
	zeta := 0.3
	g := mustTF(t, []float64{1}, []float64{wn * wn, 2 * zeta * wn, 1})
	stable, err := g.IsStable()
	if err != nil {
		t.Fatalf("IsStable: %v", err)
	}
	if !stable {
		t.Fatalf("underdamped stable 2nd order system reported unstable")
	}

	bad := mustTF(t, []float64{1}, []float64{1, -0.1, 1})
	stable, err = bad.IsStable()
	if err != nil {
		t.Fatalf("IsStable: %v", err)
	}
	if stable {
		t.Fatalf("system with negative s^1 coefficient should be unstable")
	}
}

func TestIsStableDegreeRange(t *testing.T) {
	g := mustTF(t, []float64{1}, []float64{1})
	if _, err := g.IsStable(); err != ErrDegreeRange {
		t.Fatalf("IsStable on constant denominator returned %v, want ErrDegreeRange", err)
	}
}

func TestZerosPolesRoundTrip(t *testing.T) {
	// den(s) = (1+2s)(1+3s) = 1 + 5s + 6s^2
	g := mustTF(t, []float64{1}, []float64{1, 5, 6})
	_, poles, err := g.ZerosPoles()
	if err != nil {
		t.Fatalf("ZerosPoles: %v", err)
	}
	if len(poles) != 2 {
		t.Fatalf("len(poles) = %d, want 2", len(poles))
	}
	// roots of 6s^2+5s+1 are s=-1/2, s=-1/3
	found := map[float64]bool{}
	for _, p := range poles {
		if math.Abs(p.Im) > 1e-6 {
			t.Fatalf("expected real poles, got %+v", p)
		}
		found[math.Round(p.Re*6)/6] = true
	}
	if !found[-0.5] || !found[-1.0/3.0] {
		t.Fatalf("poles = %+v, want -1/2 and -1/3", poles)
	}
}

func TestZerosPolesCubic(t *testing.T) {
	// den(s) = (1+s)(1+2s)(1+3s) = 1 + 6s + 11s^2 + 6s^3
	g := mustTF(t, []float64{1}, []float64{1, 6, 11, 6})
	_, poles, err := g.ZerosPoles()
	if err != nil {
		t.Fatalf("ZerosPoles: %v", err)
	}
	if len(poles) != 3 {
		t.Fatalf("len(poles) = %d, want 3", len(poles))
	}
	wantRe := []float64{-1, -0.5, -1.0 / 3.0}
	for _, w := range wantRe {
		ok := false
		for _, p := range poles {
			if math.Abs(p.Im) < 1e-6 && math.Abs(p.Re-w) < 1e-6 {
				ok = true
			}
		}
		if !ok {
			t.Fatalf("poles = %+v, missing root near %v", poles, w)
		}
	}
}

func mustTF(t *testing.T, num, den []float64) TF {
	t.Helper()
	g, err := New(num, den)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}
