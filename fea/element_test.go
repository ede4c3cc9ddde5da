package fea

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementStiffness(t *testing.T) {
	es := NewElementStiffness(PoissonRatio)
	// symmetric with positive diagonal
	assert.True(t, es.K0.IsSymmetric(1e-14))
	for i := 0; i < NumElementDofs; i++ {
		assert.True(t, es.K0.At(i, i) > 0)
	}
	// the 36 values land on the lower triangle in PairI/PairJ order
	p, err := NewProblem(1, 1)
	assert.NoError(t, err)
	for k := 0; k < NumElementPairs; k++ {
		assert.Equal(t, es.Values[k], es.K0.At(p.PairI[k], p.PairJ[k]))
	}
}

func TestElementRigidBodyModes(t *testing.T) {
	// rigid translations produce no elastic force: K0 * t == 0
	es := NewElementStiffness(PoissonRatio)
	translations := [][]float64{
		{1, 0, 1, 0, 1, 0, 1, 0},
		{0, 1, 0, 1, 0, 1, 0, 1},
	}
	for _, tr := range translations {
		for i := 0; i < NumElementDofs; i++ {
			var f float64
			for j := 0; j < NumElementDofs; j++ {
				f += es.K0.At(i, j) * tr[j]
			}
			assert.True(t, math.Abs(f) < 1e-12)
		}
	}
}

func TestElementQuadFormNonNegative(t *testing.T) {
	es := NewElementStiffness(PoissonRatio)
	// positive semi-definite: arbitrary displacement has nonnegative
	// strain energy
	u := []float64{0.3, -1.2, 0.7, 0.1, -0.4, 0.9, 0.0, -0.5}
	assert.True(t, es.K0.QuadForm(u) >= 0)
}
