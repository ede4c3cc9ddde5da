package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v",
				nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{m}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }
func (m Matrix) Set(i, j int, val float64) { m.M.Set(i, j, val) }

func (m Matrix) IsSymmetric(tol float64) bool {
	var (
		nr, nc = m.Dims()
	)
	if nr != nc {
		return false
	}
	for i := 0; i < nr; i++ {
		for j := 0; j < i; j++ {
			d := m.At(i, j) - m.At(j, i)
			if d > tol || d < -tol {
				return false
			}
		}
	}
	return true
}

// QuadForm computes v' * M * v for a square matrix and a vector of
// matching length
func (m Matrix) QuadForm(v []float64) (q float64) {
	var (
		nr, nc = m.Dims()
		data   = m.RawMatrix().Data
	)
	if nr != nc || len(v) != nr {
		panic(fmt.Errorf("QuadForm dimension mismatch: matrix %dx%d, vector %d", nr, nc, len(v)))
	}
	for i := 0; i < nr; i++ {
		row := data[i*nc : (i+1)*nc]
		var s float64
		for j, val := range row {
			s += val * v[j]
		}
		q += v[i] * s
	}
	return
}
