package poly

import (
	"errors"
	"math"

	"github.com/zhidao-sysid/sysid/cplx"
)

// ErrEmpty is returned when a Polynomial is constructed with no coefficients.
var ErrEmpty = errors.New("poly: coefficient list must be non-empty")

// ErrArity is returned when a coefficient list's length disagrees with a
// polynomial's declared degree.
var ErrArity = errors.New("poly: coefficient count does not match degree")

// Polynomial holds real coefficients c[0..=n] in ascending power order,
// where index i is the coefficient of s^i. Degree is fixed at creation.
type Polynomial struct {
	Coeffs []float64
}

// New allocates a zero polynomial of the given degree (degree+1 coefficients).
func New(degree int) Polynomial {
	return Polynomial{Coeffs: make([]float64, degree+1)}
}

// FromCoeffs builds a Polynomial from an explicit, ascending-power
// coefficient list. It replaces the source's unchecked variadic setter: the
// length of coeffs becomes the polynomial's degree+1, with no arity
// ambiguity possible by construction.
func FromCoeffs(coeffs ...float64) (Polynomial, error) {
	if len(coeffs) == 0 {
		return Polynomial{}, ErrEmpty
	}
	out := make([]float64, len(coeffs))
	copy(out, coeffs)
	return Polynomial{Coeffs: out}, nil
}

// SetCoeffs overwrites p's coefficients in place, failing with ErrArity if
// values does not have exactly p.Degree()+1 entries.
func (p *Polynomial) SetCoeffs(values ...float64) error {
	if len(values) != len(p.Coeffs) {
		return ErrArity
	}
	copy(p.Coeffs, values)
	return nil
}

// Degree returns the highest power of s with a (possibly zero) coefficient.
func (p Polynomial) Degree() int {
	return len(p.Coeffs) - 1
}

// At returns the coefficient of s^i.
func (p Polynomial) At(i int) float64 {
	return p.Coeffs[i]
}

// Clone returns an independent copy of p.
func (p Polynomial) Clone() Polynomial {
	out := make([]float64, len(p.Coeffs))
	copy(out, p.Coeffs)
	return Polynomial{Coeffs: out}
}

// EvalAt evaluates p(s) for an arbitrary complex argument via Horner's
// method. Used by root-finding and verification code; the frequency-
// response hot path uses EvalJOmega instead, which avoids repeated complex
// multiplication by pre-splitting on the parity of the exponent.
func (p Polynomial) EvalAt(s cplx.Complex) cplx.Complex {
	acc := cplx.Zero
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(s).Add(cplx.New(p.Coeffs[i], 0))
	}
	return acc
}

// EvalJOmega evaluates p(s) at s = j*omega, splitting real and imaginary
// contributions by the parity of the exponent: for even j the term
// contributes c_j * omega^j * (-1)^(j/2) to the real part, for odd j it
// contributes c_j * omega^j * (-1)^((j-1)/2) to the imaginary part.
func (p Polynomial) EvalJOmega(omega float64) cplx.Complex {
	var re, im float64
	pow := 1.0
	for j, c := range p.Coeffs {
		switch j % 4 {
		case 0:
			re += c * pow
		case 1:
			im += c * pow
		case 2:
			re -= c * pow
		case 3:
			im -= c * pow
		}
		pow *= omega
	}
	return cplx.New(re, im)
}

// JOmegaPowers returns (j*omega)^k for k = 0..n, split into real/imaginary
// tables, computed by incremental complex multiplication (start at 1+0j,
// multiply by j*omega each step) rather than a manual mod-4 sign table.
// The two constructions agree to within floating-point tolerance.
func JOmegaPowers(omega float64, n int) (re, im []float64) {
	re = make([]float64, n+1)
	im = make([]float64, n+1)
	jw := cplx.New(0, omega)
	acc := cplx.One
	for k := 0; k <= n; k++ {
		re[k], im[k] = acc.Re, acc.Im
		acc = acc.Mul(jw)
	}
	return re, im
}

// Add returns p + q. Both must have equal length (equal declared degree).
func (p Polynomial) Add(q Polynomial) Polynomial {
	r := New(p.Degree())
	for i := range p.Coeffs {
		r.Coeffs[i] = p.Coeffs[i] + q.Coeffs[i]
	}
	return r
}

// Sub returns p - q. Both must have equal length (equal declared degree).
func (p Polynomial) Sub(q Polynomial) Polynomial {
	r := New(p.Degree())
	for i := range p.Coeffs {
		r.Coeffs[i] = p.Coeffs[i] - q.Coeffs[i]
	}
	return r
}

// ScalarMul returns p scaled by s.
func (p Polynomial) ScalarMul(s float64) Polynomial {
	r := New(p.Degree())
	for i := range p.Coeffs {
		r.Coeffs[i] = p.Coeffs[i] * s
	}
	return r
}

// IsMonicAtZero reports whether the constant coefficient equals 1.0 bitwise.
func (p Polynomial) IsMonicAtZero() bool {
	return len(p.Coeffs) > 0 && p.Coeffs[0] == 1.0
}

// approxEqual reports whether a and b agree within a relative tolerance,
// falling back to an absolute comparison near zero.
func approxEqual(a, b, tol float64) bool {
	diff := math.Abs(a - b)
	if diff <= tol {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= tol*scale
}

// Equal reports whether p and q agree coefficient-wise within tol.
func (p Polynomial) Equal(q Polynomial, tol float64) bool {
	if len(p.Coeffs) != len(q.Coeffs) {
		return false
	}
	for i := range p.Coeffs {
		if !approxEqual(p.Coeffs[i], q.Coeffs[i], tol) {
			return false
		}
	}
	return true
}
