package fea

import (
	"github.com/gosimp/topopt/utils"
)

// buildBoundaryConditions fixes the x DOF of every node on the left
// vertical edge plus the y DOF of the last node (a roller support),
// builds the free/fixed partition and the all-to-free compaction map,
// and places a unit downward point load at the top-left corner node,
// pre-mapped into free-DOF space.
func (p *Problem) buildBoundaryConditions() {
	p.FixedDofs = make(utils.Index, 0, p.NumNodesY+1)
	for iy := 0; iy < p.NumNodesY; iy++ {
		p.FixedDofs = append(p.FixedDofs, NumDofsPerNode*iy)
	}
	p.FixedDofs = append(p.FixedDofs, NumDofsPerNode*(p.NumNodes-1)+1)

	p.FreeDofs = p.FixedDofs.Complement(p.NumDofs)

	p.AllToFree = make([]int, p.NumDofs)
	var next int
	for d := 0; d < p.NumDofs; d++ {
		if p.FreeDofs.Contains(d) {
			p.AllToFree[d] = next
			next++
		} else {
			p.AllToFree[d] = -1
		}
	}

	p.Forces = make([]float64, len(p.FreeDofs))
	loadDof := NumDofsPerNode*0 + 1 // y DOF of the top-left corner node
	if mapped := p.AllToFree[loadDof]; mapped != -1 {
		p.Forces[mapped] = -1.0
	}
}
