// Package filter implements the density filter: a radially symmetric
// cone kernel correlated over the element grid with boundary
// truncation. Taps falling outside the grid are skipped, not
// zero-padded, so boundary cells see a partial-support sum; the
// precomputed Weights field holds exactly the kernel mass each cell
// actually received and normalizes both the forward filter and its
// adjoint use on sensitivity fields.
package filter

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/gosimp/topopt/utils"
)

// Kernel is a square cone kernel of half-width ceil(radius)-1 whose
// entries decay linearly with Euclidean distance from the center and
// vanish beyond the cutoff radius
type Kernel struct {
	Radius    float64
	HalfWidth int
	Size      int
	Data      []float64 // Size*Size, row-major
}

func NewKernel(radius float64) (k *Kernel, err error) {
	if radius < 1 {
		err = fmt.Errorf("filter radius must be >= 1, have %v", radius)
		return
	}
	hw := int(math.Ceil(radius)) - 1
	size := 2*hw + 1
	k = &Kernel{
		Radius:    radius,
		HalfWidth: hw,
		Size:      size,
		Data:      make([]float64, size*size),
	}
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			di, dj := float64(i-hw), float64(j-hw)
			k.Data[i*size+j] = math.Max(0, radius-math.Sqrt(di*di+dj*dj))
		}
	}
	return
}

func (k *Kernel) Sum() float64 { return floats.Sum(k.Data) }

// Filter binds a kernel to a fixed element grid. Fields are laid out
// column-wise (cell = row + col*NumRows) to match the element
// numbering of the mesh.
type Filter struct {
	Kernel           *Kernel
	NumRows, NumCols int
	// Weights is Correlate applied to a field of ones: the per-cell
	// kernel mass that survives boundary truncation
	Weights []float64
}

func New(radius float64, numRows, numCols int) (f *Filter, err error) {
	kernel, err := NewKernel(radius)
	if err != nil {
		return
	}
	f = &Filter{
		Kernel:  kernel,
		NumRows: numRows,
		NumCols: numCols,
	}
	f.Weights = f.Correlate(utils.ConstArray(numRows*numCols, 1))
	return
}

// Correlate computes the 2-D correlation of field with the kernel,
// skipping any tap outside the grid bounds. Output has the same shape
// and layout as the input.
func (f *Filter) Correlate(field []float64) (out []float64) {
	var (
		nr, nc = f.NumRows, f.NumCols
		hw     = f.Kernel.HalfWidth
		size   = f.Kernel.Size
		data   = f.Kernel.Data
	)
	out = make([]float64, nr*nc)
	for c := 0; c < nc; c++ {
		for r := 0; r < nr; r++ {
			var sum float64
			for kc := -hw; kc <= hw; kc++ {
				cc := c + kc
				if cc < 0 || cc >= nc {
					continue
				}
				col := field[cc*nr : (cc+1)*nr]
				krow := data[(kc+hw)*size:]
				for kr := -hw; kr <= hw; kr++ {
					rr := r + kr
					if rr < 0 || rr >= nr {
						continue
					}
					sum += col[rr] * krow[kr+hw]
				}
			}
			out[r+c*nr] = sum
		}
	}
	return
}

// Forward maps a raw density field to the physical field: correlate,
// then normalize by the truncated kernel mass. A convex combination of
// inputs in [0,1] stays in [0,1].
func (f *Filter) Forward(raw []float64) (physical []float64) {
	physical = f.Correlate(raw)
	floats.Div(physical, f.Weights)
	return
}

// Adjoint applies the chain rule for physical = Correlate(raw)/Weights
// to a sensitivity field: divide by Weights first, then correlate. The
// kernel is symmetric, so the same operator serves both directions.
func (f *Filter) Adjoint(sensitivity []float64) (filtered []float64) {
	scaled := make([]float64, len(sensitivity))
	copy(scaled, sensitivity)
	floats.Div(scaled, f.Weights)
	filtered = f.Correlate(scaled)
	return
}
