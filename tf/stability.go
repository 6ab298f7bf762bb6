package tf

// IsStable checks whether the denominator's roots all have negative real
// part by Routh-Hurwitz's method, supplementing the reference library's
// dzTFIsStable (dropped by the distillation). Returns ErrDegreeRange if the
// denominator has degree < 1.
func (t TF) IsStable() (bool, error) {
	n := t.Den.Degree()
	if n < 1 {
		return false, ErrDegreeRange
	}

	// Routh array rows are indexed by descending power; row 0 holds the
	// even-indexed coefficients (from the top), row 1 the odd-indexed.
	c := t.Den.Coeffs // ascending power, c[n] is the leading term
	width := n/2 + 1
	row0 := make([]float64, width)
	row1 := make([]float64, width)
	for i := 0; i <= n; i++ {
		power := n - i
		val := c[power]
		col := i / 2
		if i%2 == 0 {
			row0[col] = val
		} else {
			row1[col] = val
		}
	}

	rows := [][]float64{row0, row1}
	for len(rows) < n+1 {
		prev, prev2 := rows[len(rows)-1], rows[len(rows)-2]
		if allZero(prev) {
			return false, nil
		}
		next := make([]float64, width)
		lead := prev[0]
		if lead == 0 {
			// Zero in the first column with a nonzero row: perturb, the
			// classical epsilon trick, to keep the array well-defined.
			lead = 1e-12
		}
		for k := 0; k < width-1; k++ {
			a := lead*prev2[k+1] - prev2[0]*prev[k+1]
			next[k] = a / lead
		}
		rows = append(rows, next)
	}

	signs := 0
	prevSign := sign(rows[0][0])
	for _, r := range rows[1:] {
		s := sign(r[0])
		if s != 0 && prevSign != 0 && s != prevSign {
			signs++
		}
		if s != 0 {
			prevSign = s
		}
	}
	return signs == 0, nil
}

func allZero(row []float64) bool {
	for _, v := range row {
		if v != 0 {
			return false
		}
	}
	return true
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
