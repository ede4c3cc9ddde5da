package fea

import (
	"github.com/gosimp/topopt/utils"
)

const (
	YoungModulus    = 1.0
	YoungModulusMin = 1e-9
	PoissonRatio    = 0.3
)

// ElementStiffness is the unit-modulus, unit-thickness plane-stress
// quad element stiffness template. Values holds the 36 unique
// lower-triangle entries in the PairI/PairJ ordering; K0 is the full
// symmetric 8x8 expansion used by the sensitivity analysis. Modulus
// scaling happens per element during assembly, never here.
type ElementStiffness struct {
	Values [NumElementPairs]float64
	K0     utils.Matrix
}

// The two coefficient tables combine as (c1 + nu*c2)/(24*(1-nu^2))
var (
	stiffnessCoefficients1 = [NumElementPairs]float64{
		12, 3, -6, -3, -6, -3, 0, 3, 12, 3, 0, -3, -6, -3, -6, 12, -3, 0,
		-3, -6, 3, 12, 3, -6, 3, -6, 12, 3, -6, -3, 12, 3, 0, 12, -3, 12,
	}
	stiffnessCoefficients2 = [NumElementPairs]float64{
		-4, 3, -2, 9, 2, -3, 4, -9, -4, -9, 4, -3, 2, 9, -2, -4, -3, 4,
		9, 2, 3, -4, -9, -2, 3, 2, -4, 3, -2, 9, -4, -9, 4, -4, -3, -4,
	}
)

func NewElementStiffness(poissonRatio float64) (es *ElementStiffness) {
	es = &ElementStiffness{}
	scale := 1. / (24. * (1. - poissonRatio*poissonRatio))
	for k := 0; k < NumElementPairs; k++ {
		es.Values[k] = scale * (stiffnessCoefficients1[k] + poissonRatio*stiffnessCoefficients2[k])
	}
	es.K0 = es.expand()
	return
}

func (es *ElementStiffness) expand() (K0 utils.Matrix) {
	K0 = utils.NewMatrix(NumElementDofs, NumElementDofs)
	var k int
	for j := 0; j < NumElementDofs; j++ {
		for i := j; i < NumElementDofs; i++ {
			K0.Set(i, j, es.Values[k])
			K0.Set(j, i, es.Values[k])
			k++
		}
	}
	return
}
