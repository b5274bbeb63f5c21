package topics

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

const nmfEpsilon = 1e-9

// factorize approximates the nonnegative matrix v (docs × terms) as the
// product w·h with w (docs × k) and h (k × terms), using Lee-Seung
// multiplicative updates. Initialization is driven by the given seed so
// identical input always factors identically. Returns ok=false when the
// iteration budget runs out before the reconstruction error settles.
func factorize(v *mat.Dense, k, maxIter int, tol float64, seed int64) (w, h *mat.Dense, ok bool) {
	rows, cols := v.Dims()
	if k <= 0 || k > rows || k > cols {
		return nil, nil, false
	}

	rng := rand.New(rand.NewSource(seed))
	w = mat.NewDense(rows, k, nil)
	h = mat.NewDense(k, cols, nil)

	// Scale the random init to the magnitude of v, mirroring the usual
	// sqrt(mean(v)/k) heuristic.
	scale := math.Sqrt(mat.Sum(v)/float64(rows*cols*k)) + nmfEpsilon
	for i := 0; i < rows; i++ {
		for j := 0; j < k; j++ {
			w.Set(i, j, scale*rng.Float64())
		}
	}
	for i := 0; i < k; i++ {
		for j := 0; j < cols; j++ {
			h.Set(i, j, scale*rng.Float64())
		}
	}

	var (
		num, gram, den, approx mat.Dense
		prevErr                = math.Inf(1)
	)

	for iter := 0; iter < maxIter; iter++ {
		// The scratch matrices change shape between the H and W
		// updates; Reset lets Mul re-size them instead of panicking.
		num.Reset()
		gram.Reset()
		den.Reset()

		// H update: H *= (Wt V) / (Wt W H)
		num.Mul(w.T(), v)
		gram.Mul(w.T(), w)
		den.Mul(&gram, h)
		hadamardUpdate(h, &num, &den)

		num.Reset()
		gram.Reset()
		den.Reset()

		// W update: W *= (V Ht) / (W H Ht)
		num.Mul(v, h.T())
		gram.Mul(h, h.T())
		den.Mul(w, &gram)
		hadamardUpdate(w, &num, &den)

		approx.Reset()
		approx.Mul(w, h)
		approx.Sub(v, &approx)
		errNorm := mat.Norm(&approx, 2)

		if math.Abs(prevErr-errNorm) <= tol*math.Max(errNorm, nmfEpsilon) {
			return w, h, true
		}
		prevErr = errNorm
	}

	return w, h, false
}

// hadamardUpdate applies m *= num/den elementwise with a small epsilon
// guard against zero denominators.
func hadamardUpdate(m, num, den *mat.Dense) {
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.Set(i, j, m.At(i, j)*num.At(i, j)/(den.At(i, j)+nmfEpsilon))
		}
	}
}
