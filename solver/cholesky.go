package solver

import (
	"gonum.org/v1/gonum/mat"

	"github.com/gosimp/topopt/utils"
)

// Cholesky is the direct backend: it expands the lower triangle into a
// dense symmetric matrix and factorizes it with gonum. Suitable for
// small and moderate meshes; use CG when the free-DOF count is large.
type Cholesky struct{}

func NewCholesky() *Cholesky { return &Cholesky{} }

func (c *Cholesky) Solve(lower utils.CSR, b []float64) (x []float64, err error) {
	if err = checkInput(lower, b); err != nil {
		return
	}
	n, _ := lower.Dims()
	A := mat.NewSymDense(n, nil)
	lower.DoNonZero(func(i, j int, v float64) {
		A.SetSym(j, i, v)
	})

	var chol mat.Cholesky
	if ok := chol.Factorize(A); !ok {
		err = &Error{Stage: "factorization", Kind: KindNumericalIssue,
			Detail: "matrix is not positive definite"}
		return
	}
	sol := mat.NewVecDense(n, nil)
	if serr := chol.SolveVecTo(sol, mat.NewVecDense(n, b)); serr != nil {
		err = &Error{Stage: "solve", Kind: KindNumericalIssue, Detail: serr.Error()}
		return
	}
	x = sol.RawVector().Data
	return
}
