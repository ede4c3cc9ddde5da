package utils

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// DOK wraps a dictionary-of-keys sparse matrix used as the accumulation
// target during assembly. Accumulate sums contributions sharing a
// (row,col) key, which is the semantic the global stiffness assembly
// requires.
type DOK struct {
	M *sparse.DOK
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{sparse.NewDOK(nr, nc)}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)        { return m.M.Dims() }
func (m DOK) At(i, j int) float64     { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix           { return m.M.T() }
func (m DOK) Set(i, j int, v float64) { m.M.Set(i, j, v) }

func (m DOK) Accumulate(i, j int, v float64) {
	m.M.Set(i, j, m.M.At(i, j)+v)
}

func (m DOK) ToCSR() CSR {
	return CSR{m.M.ToCSR()}
}

// CSR wraps the compressed-sparse-row form handed to the linear solver.
type CSR struct {
	M *sparse.CSR
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)    { return m.M.Dims() }
func (m CSR) At(i, j int) float64 { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix       { return m.M.T() }

func (m CSR) NNZ() int { return m.M.NNZ() }

func (m CSR) DoNonZero(fn func(i, j int, v float64)) {
	m.M.DoNonZero(fn)
}
