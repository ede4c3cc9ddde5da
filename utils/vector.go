package utils

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (v Vector) {
	if len(dataO) != 0 {
		v = Vector{mat.NewVecDense(n, dataO[0])}
	} else {
		v = Vector{mat.NewVecDense(n, make([]float64, n))}
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)    { return v.V.Dims() }
func (v Vector) At(i, j int) float64 { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix       { return v.V.T() }
func (v Vector) AtVec(i int) float64 { return v.V.AtVec(i) }
func (v Vector) Len() int            { return v.V.Len() }
func (v Vector) DataP() []float64    { return v.V.RawVector().Data }

// Chainable (extended) methods
func (v Vector) Copy() (r Vector) {
	data := make([]float64, v.Len())
	copy(data, v.DataP())
	return NewVector(v.Len(), data)
}

func (v Vector) Subtract(a Vector) Vector {
	var (
		data  = v.DataP()
		dataA = a.DataP()
	)
	for i := range data {
		data[i] -= dataA[i]
	}
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	var (
		data = v.DataP()
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) Norm2() (n float64) {
	var (
		data = v.DataP()
	)
	for _, val := range data {
		n += val * val
	}
	return math.Sqrt(n)
}

func (v Vector) Max() (max float64) {
	var (
		data = v.DataP()
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}
