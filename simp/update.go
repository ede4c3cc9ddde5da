package simp

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/gosimp/topopt/utils"
)

const (
	bisectionTolerance = 1e-3
	lagrangeUpperBound = 1e9
)

// Update applies the optimality-criteria rule to the raw design
// variables using the filtered sensitivity fields from the last Step.
// The Lagrange multiplier of the volume constraint is found by
// bisection; each candidate density is clamped to the move band around
// the current value and projected into [0,1]. Passive elements are
// re-pinned after the update.
func (o *Optimizer) Update(complianceSens, volumeSens []float64) {
	var (
		n      = len(o.DesignVars)
		xnew   = make([]float64, n)
		target = o.VolumeFraction * float64(n)
		l1, l2 = 0.0, lagrangeUpperBound
	)
	for (l2-l1)/(l1+l2) > bisectionTolerance {
		lmid := 0.5 * (l1 + l2)
		for e, x := range o.DesignVars {
			if o.Passive[e] != Active {
				xnew[e] = x
				continue
			}
			// dC <= 0 and dV > 0 keep the argument nonnegative
			cand := x * math.Sqrt(-complianceSens[e]/(volumeSens[e]*lmid))
			lo := math.Max(0, x-o.MoveLimit)
			hi := math.Min(1, x+o.MoveLimit)
			xnew[e] = utils.Clamp(cand, lo, hi)
		}
		if floats.Sum(xnew) > target {
			l1 = lmid
		} else {
			l2 = lmid
		}
	}
	copy(o.DesignVars, xnew)
	o.pin(o.DesignVars)
}
