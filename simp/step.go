package simp

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/gosimp/topopt/fea"
	"github.com/gosimp/topopt/utils"
)

// interpolate applies the SIMP power law E = Emin + rho^p (E0 - Emin)
// to the physical densities, and records the stiffness sensitivity
// dE/drho = -p (E0 - Emin) rho^(p-1) for active elements. Passive
// sensitivities are zeroed explicitly every call rather than left to
// stale state.
func (o *Optimizer) interpolate() {
	var (
		p     = o.Penalization
		delta = o.E0 - o.EMin
	)
	for e, rho := range o.Physical {
		o.YoungModuli[e] = o.EMin + math.Pow(rho, p)*delta
		if o.Passive[e] == Active {
			o.DEdRho[e] = -p * delta * math.Pow(rho, p-1)
		} else {
			o.DEdRho[e] = 0
		}
	}
}

// Step runs one optimization iteration: filter the raw densities,
// measure the change against the previous physical field, interpolate
// moduli, solve equilibrium, and produce the filtered compliance and
// volume sensitivity fields for the design update rule.
func (o *Optimizer) Step() (res StepResult, err error) {
	var (
		prob = o.Problem
		n    = prob.NumElements
	)
	o.applyFilter()

	diff := utils.NewVector(n, o.Physical).Copy().Subtract(utils.NewVector(n, o.PhysicalOld))
	res.Change = diff.Norm2() / math.Sqrt(float64(n))
	copy(o.PhysicalOld, o.Physical)

	if err = o.SolveEquilibrium(); err != nil {
		return
	}

	var (
		K0 = prob.Template.K0
		ue = make([]float64, fea.NumElementDofs)
		dC = make([]float64, n)
		dV = make([]float64, n)
	)
	volumeWeight := 1. / (float64(n) * o.VolumeFraction)
	for e := 0; e < n; e++ {
		if o.Passive[e] != Active {
			// pinned elements contribute compliance but no gradient
			for i, dof := range prob.Connectivity[e] {
				ue[i] = o.Displacements[dof]
			}
			res.Compliance += o.YoungModuli[e] * K0.QuadForm(ue)
			continue
		}
		for i, dof := range prob.Connectivity[e] {
			ue[i] = o.Displacements[dof]
		}
		strainEnergy := K0.QuadForm(ue)
		res.Compliance += o.YoungModuli[e] * strainEnergy
		dC[e] = o.DEdRho[e] * strainEnergy
		dV[e] = volumeWeight
	}

	res.ComplianceSens = o.Filter.Adjoint(dC)
	res.VolumeSens = o.Filter.Adjoint(dV)
	res.Volume = floats.Sum(o.Physical) / float64(n)
	return
}
