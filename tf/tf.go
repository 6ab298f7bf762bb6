package tf

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/zhidao-sysid/sysid/cplx"
	"github.com/zhidao-sysid/sysid/poly"
)

// ErrZeroPole is returned by FreqResponse when the denominator vanishes at
// the requested frequency (a sample exactly on a pole).
var ErrZeroPole = errors.New("tf: denominator vanishes at this frequency")

// ErrDegenerate is returned by ZerosPoles when a polynomial's leading
// coefficient is zero, making its declared degree degenerate.
var ErrDegenerate = errors.New("tf: leading coefficient is zero")

// ErrDegreeRange is returned when a denominator has degree < 1.
var ErrDegreeRange = errors.New("tf: denominator degree must be >= 1")

// TF is a polynomial rational transfer function num(s)/den(s).
type TF struct {
	Num poly.Polynomial
	Den poly.Polynomial
}

// New builds a TF from numerator and denominator coefficient lists in
// ascending power order.
func New(numCoeffs, denCoeffs []float64) (TF, error) {
	num, err := poly.FromCoeffs(numCoeffs...)
	if err != nil {
		return TF{}, fmt.Errorf("tf: numerator: %w", err)
	}
	den, err := poly.FromCoeffs(denCoeffs...)
	if err != nil {
		return TF{}, fmt.Errorf("tf: denominator: %w", err)
	}
	return TF{Num: num, Den: den}, nil
}

// One returns the identity transfer function G(s) = 1.
func One() TF {
	num, _ := poly.FromCoeffs(1)
	den, _ := poly.FromCoeffs(1)
	return TF{Num: num, Den: den}
}

// FreqResponse returns num(j*omega) / den(j*omega), failing with
// ErrZeroPole if the denominator vanishes exactly.
func (t TF) FreqResponse(omega float64) (cplx.Complex, error) {
	n := t.Num.EvalJOmega(omega)
	d := t.Den.EvalJOmega(omega)
	v, err := n.Div(d)
	if err != nil {
		return cplx.Complex{}, ErrZeroPole
	}
	return v, nil
}

// String renders "(b0 + b1*s + ...) / (1 + a1*s + ...)" with zero
// coefficients elided, a Go rendition of the reference library's
// dzTFExpr dump.
func (t TF) String() string {
	return fmt.Sprintf("(%s) / (%s)", exprString(t.Num), exprString(t.Den))
}

func exprString(p poly.Polynomial) string {
	var b strings.Builder
	wrote := false
	for i, c := range p.Coeffs {
		if c == 0 {
			continue
		}
		if wrote {
			if c > 0 {
				b.WriteString(" + ")
			} else {
				b.WriteString(" - ")
			}
		} else if c < 0 {
			b.WriteString("-")
		}
		mag := math.Abs(c)
		switch i {
		case 0:
			fmt.Fprintf(&b, "%g", mag)
		case 1:
			fmt.Fprintf(&b, "%g*s", mag)
		default:
			fmt.Fprintf(&b, "%g*s^%d", mag, i)
		}
		wrote = true
	}
	if !wrote {
		b.WriteString("0")
	}
	return b.String()
}
