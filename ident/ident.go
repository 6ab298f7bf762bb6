package ident

import (
	"math"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/zhidao-sysid/sysid/errs"
	"github.com/zhidao-sysid/sysid/fr"
	"github.com/zhidao-sysid/sysid/linalg"
	"github.com/zhidao-sysid/sysid/poly"
	"github.com/zhidao-sysid/sysid/tf"
)

// DefaultTolerance is the convergence threshold on successive step sizes,
// applied to |d_t - d_t-1| where d_t is the norm of the parameter update at
// iteration t. Matches config.Default()'s Tolerance field.
const DefaultTolerance = 1e-11

// DefaultMaxIter bounds the number of reweighting passes before Identify
// gives up and reports Nonconvergent. Matches config.Default()'s MaxIter
// field.
const DefaultMaxIter = 1000

// maxWidth bounds n_n+n_d+1 so that the working set's O(width^2) normal
// matrix cannot be driven to an unreasonable allocation by a malformed
// degree request.
const maxWidth = 4096

// workset holds the per-sample tables built once from the input data and
// reused across reweighting iterations, the shape of ntru/ntrusolve.go's
// working buffers generalized from a single solve to a loop of solves over
// a fixed-size problem.
type workset struct {
	omega  []float64   // angular frequency per sample
	gRe    []float64   // Re(measured complex gain) per sample
	gIm    []float64   // Im(measured complex gain) per sample
	psRe   [][]float64 // psRe[k][j] = Re((j*omega_k)^j)
	psIm   [][]float64 // psIm[k][j] = Im((j*omega_k)^j)
	weight []float64   // per-sample row-scale factor, init 1.0

	nn, nd, width int
}

// buildWorkset precomputes angular frequencies, measured complex gains, and
// the (j*omega)^p power tables shared by numerator and denominator terms
// (p ranges 0..max(nn,nd)).
func buildWorkset(samples []fr.FR, nn, nd int) (*workset, error) {
	n := len(samples)
	width := nn + nd + 1
	m := nn
	if nd > m {
		m = nd
	}

	ws := &workset{
		omega:  make([]float64, n),
		gRe:    make([]float64, n),
		gIm:    make([]float64, n),
		psRe:   make([][]float64, n),
		psIm:   make([][]float64, n),
		weight: make([]float64, n),
		nn:     nn,
		nd:     nd,
		width:  width,
	}
	for k, s := range samples {
		c, omega := s.ToComplex()
		ws.omega[k] = omega
		ws.gRe[k] = c.Re
		ws.gIm[k] = c.Im
		ws.psRe[k], ws.psIm[k] = poly.JOmegaPowers(omega, m)
		ws.weight[k] = 1.0
	}
	return ws, nil
}

// accumulate builds the symmetric normal-equation matrix Q (row-major,
// width*width) and right-hand side P for the current weight vector: each
// sample contributes two real rows (real and imaginary part of the
// residual G(j*omega_k) - N(j*omega_k)/D(j*omega_k), cleared of its
// denominator and scaled by the sample weight), accumulated as
// Q += x*x^T, P += g*x.
func (ws *workset) accumulate() (q, p []float64) {
	width := ws.width
	q = make([]float64, width*width)
	p = make([]float64, width)

	xr := make([]float64, width)
	xi := make([]float64, width)

	for k := range ws.omega {
		w := ws.weight[k]
		gr, gi := ws.gRe[k], ws.gIm[k]
		psRe, psIm := ws.psRe[k], ws.psIm[k]

		// Numerator columns 0..nn: coefficient b_j multiplies (j*omega)^j.
		for j := 0; j <= ws.nn; j++ {
			xr[j] = psRe[j] * w
			xi[j] = psIm[j] * w
		}
		// Denominator columns nn+1..nn+nd: coefficient a_j multiplies
		// -G(j*omega)*(j*omega)^j (moved to the left-hand side, since
		// a_0 == 1 is fixed and folded into the right-hand side below).
		for j := 1; j <= ws.nd; j++ {
			frRe := gr*psRe[j] - gi*psIm[j]
			frIm := gr*psIm[j] + gi*psRe[j]
			xr[ws.nn+j] = -frRe * w
			xi[ws.nn+j] = -frIm * w
		}
		gwRe := gr * w
		gwIm := gi * w

		for row := 0; row < width; row++ {
			p[row] += gwRe*xr[row] + gwIm*xi[row]
			for col := 0; col < width; col++ {
				q[row*width+col] += xr[row]*xr[col] + xi[row]*xi[col]
			}
		}

		if debugOn {
			dbg(os.Stderr, "ident: sample %d omega=%g w=%g gr=%g gi=%g\n", k, ws.omega[k], w, gr, gi)
		}
	}
	return q, p
}

// reweight recomputes each sample's row-scale factor from the current
// denominator coefficient estimate, the Sanathanan-Koerner reweighting
// step. a has length nd and holds a_1..a_nd (a_0 == 1 implicit).
//
// accumulate scales both the numerator and denominator regressor columns by
// ws.weight[k] and squares that scaling when it forms Q = sum(x*x^T), so
// the stored factor must be 1/|D(j*omega_k; a)|, not its square: squaring
// it there is what reproduces the textbook SK weight 1/|D|^2 on the
// residual.
func (ws *workset) reweight(a []float64) error {
	for k := range ws.omega {
		psRe, psIm := ws.psRe[k], ws.psIm[k]
		dRe, dIm := 1.0, 0.0
		for j := 1; j <= ws.nd; j++ {
			dRe += a[j-1] * psRe[j]
			dIm += a[j-1] * psIm[j]
		}
		mag2 := dRe*dRe + dIm*dIm
		if mag2 == 0 {
			return errs.New(errs.NumericDomain, "denominator estimate vanishes at a sample frequency")
		}
		ws.weight[k] = 1.0 / math.Sqrt(mag2)
	}
	return nil
}

// vecDiffNorm returns the Euclidean norm of a-b.
func vecDiffNorm(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Identify fits a transfer function of numerator degree nn and denominator
// degree nd to samples using the Sanathanan-Koerner iterative complex
// least-squares procedure. maxIter bounds the reweighting loop; tolerance
// is the convergence threshold on successive step sizes. A zero or
// negative maxIter/tolerance falls back to DefaultMaxIter/DefaultTolerance.
//
// On Nonconvergent, Identify still returns the last iterate's transfer
// function alongside the error: the estimate is advisory, not discarded,
// since a failed-to-converge result still carries information for the
// caller.
func Identify(samples []fr.FR, nn, nd int, maxIter int, tolerance float64) (tf.TF, error) {
	result, _, err := identify(samples, nn, nd, maxIter, tolerance)
	return result, err
}

// IdentifyWithHistory runs the same procedure as Identify but additionally
// returns the step-size sequence |phi_t - phi_t-1| recorded at each
// reweighting iteration after the first, for callers that want to inspect
// or plot convergence behavior. Every recorded value is finite: the first
// iteration's step, taken from the all-+Inf initial estimate, is omitted.
func IdentifyWithHistory(samples []fr.FR, nn, nd int, maxIter int, tolerance float64) (tf.TF, []float64, error) {
	return identify(samples, nn, nd, maxIter, tolerance)
}

func identify(samples []fr.FR, nn, nd int, maxIter int, tolerance float64) (tf.TF, []float64, error) {
	if nd < 1 || nn < 0 {
		return tf.TF{}, nil, errs.New(errs.DegreeOutOfRange, "denominator degree must be >= 1 and numerator degree >= 0")
	}
	width := nn + nd + 1
	if width > maxWidth {
		return tf.TF{}, nil, errs.New(errs.AllocationFailed, "requested degrees exceed the working-set size limit")
	}
	if len(samples) == 0 || len(samples) < width {
		return tf.TF{}, nil, errs.New(errs.InsufficientData, "fewer samples than free parameters")
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	ws, err := buildWorkset(samples, nn, nd)
	if err != nil {
		return tf.TF{}, nil, err
	}

	phiPrev := make([]float64, width)
	for i := range phiPrev {
		phiPrev[i] = math.Inf(1)
	}
	dPrev := math.Inf(1)

	history := make([]float64, 0, maxIter)
	var phi []float64
	converged := false
	for iter := 0; iter < maxIter; iter++ {
		q, p := ws.accumulate()
		sol, err := linalg.Solve(width, q, p)
		if err != nil {
			return tf.TF{}, history, errs.Wrap(errs.Singular, "normal-equation solve failed", err)
		}
		phi = sol

		d := vecDiffNorm(phi, phiPrev)
		if !math.IsInf(d, 0) {
			// The first step is measured from the all-+Inf initial estimate;
			// it only seeds the convergence test and is not recorded.
			history = append(history, d)
		}
		log.Debug().Int("iter", iter).Float64("step", d).Msg("identify: iteration")

		if iter > 0 && math.Abs(d-dPrev) < tolerance {
			converged = true
			phiPrev = phi
			break
		}
		dPrev = d
		phiPrev = phi

		if err := ws.reweight(phi[nn+1:]); err != nil {
			return tf.TF{}, history, err
		}
	}

	result := phiToTF(phi, nn, nd)
	if !converged {
		log.Warn().Int("max_iter", maxIter).Msg("identify: reweighting loop did not converge")
		return result, history, errs.New(errs.Nonconvergent, "reweighting loop reached max_iter without meeting tolerance")
	}
	return result, history, nil
}

// phiToTF assembles a TF from a solved parameter vector: numerator
// coefficients b_0..b_nn occupy phi[0:nn+1], denominator coefficients
// a_1..a_nd occupy phi[nn+1:], with a_0 fixed at exactly 1.0.
func phiToTF(phi []float64, nn, nd int) tf.TF {
	num := make([]float64, nn+1)
	copy(num, phi[:nn+1])
	den := make([]float64, nd+1)
	den[0] = 1.0
	copy(den[1:], phi[nn+1:])

	numPoly, _ := poly.FromCoeffs(num...)
	denPoly, _ := poly.FromCoeffs(den...)
	return tf.TF{Num: numPoly, Den: denPoly}
}
