package tf

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/zhidao-sysid/sysid/cplx"
	"github.com/zhidao-sysid/sysid/poly"
)

// ErrRootsNonconvergent is returned when Durand-Kerner fails to settle
// within maxRootTrials.
var ErrRootsNonconvergent = errors.New("tf: root iteration did not converge")

// ZerosPoles extracts the roots of the numerator and denominator
// polynomials, supplementing the reference library's dzTFZeroPole (dropped
// by the distillation). Ownership of the returned slices transfers to the
// caller; there is no raw handle to free.
func (t TF) ZerosPoles() (zeros, poles []cplx.Complex, err error) {
	zeros, err = roots(t.Num)
	if err != nil {
		return nil, nil, err
	}
	poles, err = roots(t.Den)
	if err != nil {
		return nil, nil, err
	}
	return zeros, poles, nil
}

// maxRootTrials bounds the Durand-Kerner iteration for degree >= 3
// polynomials; it is a simultaneous method so this is a single shared
// bound across all roots, not a per-root retry count.
const maxRootTrials = 500

// rootTol is the convergence tolerance on the largest per-root update.
const rootTol = 1e-10

// roots finds the roots of p, the highest-degree coefficient must be
// nonzero or ErrDegenerate is returned.
func roots(p poly.Polynomial) ([]cplx.Complex, error) {
	n := p.Degree()
	lead := p.Coeffs[n]
	if lead == 0 {
		return nil, ErrDegenerate
	}
	if n == 0 {
		return nil, nil
	}
	if n == 1 {
		// c0 + c1*s = 0 -> s = -c0/c1
		return []cplx.Complex{cplx.New(-p.Coeffs[0]/lead, 0)}, nil
	}
	if n == 2 {
		return quadraticRoots(p.Coeffs[0]/lead, p.Coeffs[1]/lead), nil
	}
	return durandKerner(p, lead)
}

// quadraticRoots solves s^2 + b*s + c = 0 (monic, b and c already
// normalized by the leading coefficient) with the standard formula in
// complex arithmetic so complex-conjugate pairs fall out naturally.
func quadraticRoots(c, b float64) []cplx.Complex {
	disc := complex(b*b-4*c, 0)
	sq := cmplx.Sqrt(disc)
	r1 := (complex(-b, 0) + sq) / 2
	r2 := (complex(-b, 0) - sq) / 2
	return []cplx.Complex{
		cplx.New(real(r1), imag(r1)),
		cplx.New(real(r2), imag(r2)),
	}
}

// durandKerner finds all n roots of p simultaneously via the Weierstrass
// (Durand-Kerner) iteration: each root estimate is pulled toward the true
// root by dividing out the polynomial's value at the estimate by its
// product of distances to every other current estimate. Converges from
// essentially any distinct starting ring for well-separated roots without
// needing a matrix eigenvalue solve.
func durandKerner(p poly.Polynomial, lead float64) ([]cplx.Complex, error) {
	n := p.Degree()
	monic := make([]float64, n+1)
	for i := range monic {
		monic[i] = p.Coeffs[i] / lead
	}

	roots := make([]cplx.Complex, n)
	radius := initialRadius(monic)
	for k := range roots {
		theta := 2 * math.Pi * float64(k) / float64(n)
		roots[k] = cplx.New(radius*math.Cos(theta)+0.4, radius*math.Sin(theta)+0.9)
	}

	evalMonic := func(z cplx.Complex) cplx.Complex {
		acc := cplx.Zero
		for i := n; i >= 0; i-- {
			acc = acc.Mul(z).Add(cplx.New(monic[i], 0))
		}
		return acc
	}

	for iter := 0; iter < maxRootTrials; iter++ {
		maxDelta := 0.0
		next := make([]cplx.Complex, n)
		for i := range roots {
			denom := cplx.One
			for j := range roots {
				if i == j {
					continue
				}
				denom = denom.Mul(roots[i].Sub(roots[j]))
			}
			num := evalMonic(roots[i])
			delta, err := num.Div(denom)
			if err != nil {
				// Coincident estimates; nudge this one and let the next
				// iteration retry from the nudged position.
				roots[i] = roots[i].Add(cplx.New(1e-3, 1e-3))
				next[i] = roots[i]
				continue
			}
			next[i] = roots[i].Sub(delta)
			if d := delta.Abs(); d > maxDelta {
				maxDelta = d
			}
		}
		roots = next
		if maxDelta < rootTol {
			return roots, nil
		}
	}
	return nil, ErrRootsNonconvergent
}

// initialRadius returns a Cauchy-bound-derived radius for the Durand-Kerner
// starting ring, large enough to enclose every root of the monic
// polynomial with the given coefficients.
func initialRadius(monicCoeffs []float64) float64 {
	n := len(monicCoeffs) - 1
	maxAbs := 0.0
	for i := 0; i < n; i++ {
		if a := math.Abs(monicCoeffs[i]); a > maxAbs {
			maxAbs = a
		}
	}
	return 1 + maxAbs
}
