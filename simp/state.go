// Package simp holds the density-based material model and the
// optimization state mutated across iterations: SIMP modulus
// interpolation, compliance/volume sensitivity analysis with adjoint
// filtering, the optimality-criteria design update, and the driver
// loop tying them together.
package simp

import (
	"fmt"

	"github.com/gosimp/topopt/fea"
	"github.com/gosimp/topopt/filter"
	"github.com/gosimp/topopt/solver"
	"github.com/gosimp/topopt/utils"
)

// Passivity marks elements excluded from filtering and optimization:
// passive-solid densities are pinned to 1, passive-void to 0
type Passivity uint8

const (
	Active Passivity = iota
	PassiveSolid
	PassiveVoid
)

// Optimizer owns all mutable optimization state. The caller holds it
// for the lifetime of the run; nothing here is shared with concurrent
// consumers.
type Optimizer struct {
	Problem *fea.Problem
	Filter  *filter.Filter
	Solver  solver.Solver

	VolumeFraction float64
	Penalization   float64
	MoveLimit      float64
	E0, EMin       float64

	Passive []Passivity

	// DesignVars is the raw design field; Physical the filtered
	// densities; PhysicalOld the previous iteration's physical field
	// kept for the convergence metric
	DesignVars  []float64
	Physical    []float64
	PhysicalOld []float64

	YoungModuli   []float64
	DEdRho        []float64
	Displacements []float64
}

// StepResult is the caller-facing output of one optimization step. The
// filtered sensitivity fields are consumed by the design update rule;
// Change is a reporting metric only and never alters control flow
// inside the step.
type StepResult struct {
	Change         float64
	Compliance     float64
	Volume         float64
	ComplianceSens []float64
	VolumeSens     []float64
}

func New(problem *fea.Problem, s solver.Solver,
	volumeFraction, penalization, radius, move float64) (o *Optimizer, err error) {
	if problem == nil {
		err = fmt.Errorf("nil problem")
		return
	}
	if volumeFraction <= 0 || volumeFraction > 1 {
		err = fmt.Errorf("volume fraction must be in (0,1], have %v", volumeFraction)
		return
	}
	if penalization <= 1 {
		err = fmt.Errorf("penalization must be > 1, have %v", penalization)
		return
	}
	if move <= 0 {
		err = fmt.Errorf("move limit must be > 0, have %v", move)
		return
	}
	f, err := filter.New(radius, problem.NumElementsY, problem.NumElementsX)
	if err != nil {
		return
	}
	n := problem.NumElements
	o = &Optimizer{
		Problem:        problem,
		Filter:         f,
		Solver:         s,
		VolumeFraction: volumeFraction,
		Penalization:   penalization,
		MoveLimit:      move,
		E0:             fea.YoungModulus,
		EMin:           fea.YoungModulusMin,
		Passive:        make([]Passivity, n),
		DesignVars:     utils.ConstArray(n, volumeFraction),
		Physical:       utils.ConstArray(n, volumeFraction),
		PhysicalOld:    utils.ConstArray(n, volumeFraction),
		YoungModuli:    utils.ConstArray(n, fea.YoungModulus),
		DEdRho:         make([]float64, n),
	}
	return
}

// pin forces the pinned density values of passive elements
func (o *Optimizer) pin(field []float64) {
	for e, p := range o.Passive {
		switch p {
		case PassiveSolid:
			field[e] = 1
		case PassiveVoid:
			field[e] = 0
		}
	}
}

// applyFilter recomputes the physical densities of active elements
// from the raw field; passive elements keep their pinned values
func (o *Optimizer) applyFilter() {
	physical := o.Filter.Forward(o.DesignVars)
	for e := range physical {
		if o.Passive[e] == Active {
			o.Physical[e] = physical[e]
		}
	}
	o.pin(o.Physical)
}

// SolveEquilibrium interpolates the moduli from the current physical
// densities, solves the equilibrium system and stores the full-size
// displacement vector. Solver failures propagate with kind attached.
func (o *Optimizer) SolveEquilibrium() (err error) {
	o.interpolate()
	o.Displacements, err = o.Problem.SolveEquilibrium(o.YoungModuli, o.Solver)
	return
}
