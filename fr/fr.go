package fr

import (
	"math"

	"github.com/zhidao-sysid/sysid/cplx"
)

// FR is a single frequency-response sample: frequency in hertz, gain in
// decibels, phase in degrees.
type FR struct {
	F float64
	G float64
	P float64
}

// ToComplex converts the sample to its complex gain and angular frequency:
// c = 10^(g/20) * (cos(p deg) + j*sin(p deg)); omega = 2*pi*f.
func (s FR) ToComplex() (c cplx.Complex, omega float64) {
	mag := math.Pow(10, s.G/20)
	rad := s.P * math.Pi / 180
	return cplx.Polar(mag, rad), 2 * math.Pi * s.F
}

// FromComplex builds an FR from a complex gain and angular frequency:
// f = omega/(2*pi); g = 20*log10|c|; p = arg(c) in degrees.
func FromComplex(c cplx.Complex, omega float64) FR {
	return FR{
		F: omega / (2 * math.Pi),
		G: 20 * math.Log10(c.Abs()),
		P: c.Arg() * 180 / math.Pi,
	}
}
