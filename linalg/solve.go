package linalg

import (
	"errors"
	"math"
)

// ErrSingular is returned when Q is rank-deficient beyond tolerance and no
// usable pivot remains.
var ErrSingular = errors.New("linalg: matrix is singular to working precision")

// ErrDimension is returned when Q is not n-by-n or P does not have n entries.
var ErrDimension = errors.New("linalg: dimension mismatch")

// pivotTol bounds how small a pivot may be, relative to the matrix's
// largest entry, before the elimination declares the system singular.
const pivotTol = 1e-14

// Solve finds x such that Q*x = P for a square n-by-n matrix Q (given
// row-major, Q[i*n+j] is row i, column j) and a length-n vector P, using
// Gaussian elimination with partial pivoting. It does not assume Q is
// symmetric, but the identifier only ever calls it with a symmetric
// positive-semidefinite normal-equation matrix; no positive-definiteness
// is required by the elimination itself, only that some pivot order keeps
// row-scale manageable, which partial pivoting provides.
//
// Q and P are not modified; Solve works on an internal copy.
func Solve(n int, q []float64, p []float64) ([]float64, error) {
	if n <= 0 || len(q) != n*n || len(p) != n {
		return nil, ErrDimension
	}

	a := make([]float64, len(q))
	copy(a, q)
	x := make([]float64, n)
	copy(x, p)

	maxAbs := 0.0
	for _, v := range a {
		if av := math.Abs(v); av > maxAbs {
			maxAbs = av
		}
	}
	if maxAbs == 0 {
		maxAbs = 1
	}

	for col := 0; col < n; col++ {
		pivotRow := col
		pivotVal := math.Abs(a[col*n+col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(a[r*n+col]); v > pivotVal {
				pivotVal = v
				pivotRow = r
			}
		}
		if pivotVal < pivotTol*maxAbs {
			return nil, ErrSingular
		}
		if pivotRow != col {
			swapRows(a, n, col, pivotRow)
			x[col], x[pivotRow] = x[pivotRow], x[col]
		}

		pivot := a[col*n+col]
		for r := col + 1; r < n; r++ {
			factor := a[r*n+col] / pivot
			if factor == 0 {
				continue
			}
			for c := col; c < n; c++ {
				a[r*n+c] -= factor * a[col*n+c]
			}
			x[r] -= factor * x[col]
		}
	}

	out := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		sum := x[r]
		for c := r + 1; c < n; c++ {
			sum -= a[r*n+c] * out[c]
		}
		diag := a[r*n+r]
		if math.Abs(diag) < pivotTol*maxAbs {
			return nil, ErrSingular
		}
		out[r] = sum / diag
	}
	return out, nil
}

func swapRows(a []float64, n, i, j int) {
	if i == j {
		return
	}
	for c := 0; c < n; c++ {
		a[i*n+c], a[j*n+c] = a[j*n+c], a[i*n+c]
	}
}
