package cplx

import (
	"errors"
	"math"
)

// ErrDivByZero is returned by Div when the divisor is zero.
var ErrDivByZero = errors.New("cplx: division by zero")

// Complex is a Cartesian complex number with float64 parts.
type Complex struct {
	Re, Im float64
}

// Zero is the additive identity.
var Zero = Complex{}

// One is the multiplicative identity.
var One = Complex{Re: 1}

// New builds a Complex from real and imaginary parts.
func New(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// Polar builds r*(cos(theta) + j*sin(theta)).
func Polar(r, theta float64) Complex {
	return Complex{Re: r * math.Cos(theta), Im: r * math.Sin(theta)}
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{Re: z.Re - w.Re, Im: z.Im - w.Im}
}

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{Re: -z.Re, Im: -z.Im}
}

// Mul returns z * w.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// Scale returns z * s for a real scalar s.
func (z Complex) Scale(s float64) Complex {
	return Complex{Re: z.Re * s, Im: z.Im * s}
}

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex {
	return Complex{Re: z.Re, Im: -z.Im}
}

// Div returns z / w, failing with ErrDivByZero if w is zero.
func (z Complex) Div(w Complex) (Complex, error) {
	d := w.Re*w.Re + w.Im*w.Im
	if d == 0 {
		return Complex{}, ErrDivByZero
	}
	return Complex{
		Re: (z.Re*w.Re + z.Im*w.Im) / d,
		Im: (z.Im*w.Re - z.Re*w.Im) / d,
	}, nil
}

// Abs returns |z|.
func (z Complex) Abs() float64 {
	return math.Hypot(z.Re, z.Im)
}

// AbsSq returns |z|^2, cheaper than Abs when only the square is needed.
func (z Complex) AbsSq() float64 {
	return z.Re*z.Re + z.Im*z.Im
}

// Arg returns the argument of z in (-pi, pi], per math.Atan2's convention
// except that Atan2's -pi (negative-zero imaginary part) is mapped to pi.
func (z Complex) Arg() float64 {
	a := math.Atan2(z.Im, z.Re)
	if a == -math.Pi {
		return math.Pi
	}
	return a
}

// IsZero reports whether z is exactly the zero complex number.
func (z Complex) IsZero() bool {
	return z.Re == 0 && z.Im == 0
}
