package solver

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/gosimp/topopt/utils"
)

const (
	DefaultCGTolerance = 1e-10
)

// CG is the iterative backend: plain conjugate gradients on the
// symmetric system. The lower triangle is mirrored into a full CSR
// once per Solve so each iteration is a single sparse matvec.
type CG struct {
	MaxIterations int // 0 selects 10*n
	Tolerance     float64
}

func NewCG() *CG {
	return &CG{Tolerance: DefaultCGTolerance}
}

func (c *CG) Solve(lower utils.CSR, b []float64) (x []float64, err error) {
	if err = checkInput(lower, b); err != nil {
		return
	}
	n, _ := lower.Dims()
	full := mirror(lower, n)

	maxIter := c.MaxIterations
	if maxIter <= 0 {
		maxIter = 10 * n
	}
	tol := c.Tolerance
	if tol <= 0 {
		tol = DefaultCGTolerance
	}

	var (
		x0 = make([]float64, n)
		r  = make([]float64, n)
		p  = make([]float64, n)
		Ap = make([]float64, n)
	)
	copy(r, b)
	copy(p, b)
	rr := floats.Dot(r, r)
	bNorm := math.Sqrt(rr)
	if bNorm == 0 {
		x = x0
		return
	}
	target := tol * bNorm

	for iter := 0; iter < maxIter; iter++ {
		matVec(full, p, Ap)
		pAp := floats.Dot(p, Ap)
		if pAp <= 0 {
			err = &Error{Stage: "solve", Kind: KindNumericalIssue,
				Detail: "encountered non-positive curvature direction"}
			return
		}
		alpha := rr / pAp
		floats.AddScaled(x0, alpha, p)
		floats.AddScaled(r, -alpha, Ap)
		rrNew := floats.Dot(r, r)
		if math.Sqrt(rrNew) <= target {
			x = x0
			return
		}
		beta := rrNew / rr
		rr = rrNew
		for i := range p {
			p[i] = r[i] + beta*p[i]
		}
	}
	err = &Error{Stage: "solve", Kind: KindNoConvergence,
		Detail: "residual tolerance not reached"}
	return
}

func mirror(lower utils.CSR, n int) utils.CSR {
	dok := utils.NewDOK(n, n)
	lower.DoNonZero(func(i, j int, v float64) {
		dok.Set(i, j, v)
		if i != j {
			dok.Set(j, i, v)
		}
	})
	return dok.ToCSR()
}

func matVec(A utils.CSR, x, y []float64) {
	for i := range y {
		y[i] = 0
	}
	A.DoNonZero(func(i, j int, v float64) {
		y[i] += v * x[j]
	})
}
