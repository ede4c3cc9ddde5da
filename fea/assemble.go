package fea

import (
	"fmt"

	"github.com/gosimp/topopt/solver"
	"github.com/gosimp/topopt/utils"
)

// AssembleStiffness scales the element stiffness template by each
// element's Young modulus and accumulates the contributions into the
// lower-triangular free-DOF system. Contributions whose endpoints hit
// a fixed DOF are dropped; duplicate (row,col) keys from neighboring
// elements sum.
func (p *Problem) AssembleStiffness(youngModuli []float64) (K utils.CSR, err error) {
	if len(youngModuli) != p.NumElements {
		err = fmt.Errorf("modulus field has %d entries, mesh has %d elements",
			len(youngModuli), p.NumElements)
		return
	}
	nFree := len(p.FreeDofs)
	dok := utils.NewDOK(nFree, nFree)
	for e := 0; e < p.NumElements; e++ {
		modulus := youngModuli[e]
		base := e * NumElementPairs
		for k := 0; k < NumElementPairs; k++ {
			pair := p.GlobalPairs[base+k]
			mi, mj := p.AllToFree[pair[0]], p.AllToFree[pair[1]]
			if mi == -1 || mj == -1 {
				continue
			}
			dok.Accumulate(mi, mj, modulus*p.Template.Values[k])
		}
	}
	K = dok.ToCSR()
	return
}

// SolveEquilibrium assembles the free-DOF system for the given modulus
// field, solves it against the stored load, and scatters the solution
// into a full-size displacement vector with fixed DOFs zero. Solver
// failures propagate with their kind attached.
func (p *Problem) SolveEquilibrium(youngModuli []float64, s solver.Solver) (displacements []float64, err error) {
	K, err := p.AssembleStiffness(youngModuli)
	if err != nil {
		return
	}
	free, err := s.Solve(K, p.Forces)
	if err != nil {
		return
	}
	displacements = make([]float64, p.NumDofs)
	for k, d := range p.FreeDofs {
		displacements[d] = free[k]
	}
	return
}
