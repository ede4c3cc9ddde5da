package fea

import (
	"fmt"

	"github.com/gosimp/topopt/utils"
)

const (
	NumDofsPerNode = 2
	NumElementDofs = 8
	// NumElementPairs is the count of unique lower-triangle entries of
	// the symmetric 8x8 element stiffness matrix
	NumElementPairs = 36
)

// Problem holds the mesh, DOF bookkeeping and load for a rectangular
// plane-stress domain discretized into a regular grid of quad elements.
// Nodes are numbered column-wise: node = iy + ix*NumNodesY, so an
// element shares the numbering e = iy + ix*NumElementsY of its top-left
// node block. Everything here is computed once and never mutates.
type Problem struct {
	NumElementsX, NumElementsY int
	NumElements                int
	NumNodesX, NumNodesY       int
	NumNodes                   int
	NumDofs                    int

	// Connectivity holds, per element, the 8 global DOF indices of its
	// four nodes in counter-clockwise order with (x,y) DOF pairs
	Connectivity []utils.Index

	// PairI, PairJ enumerate the 36 unique (i>=j) local index pairs of
	// the lower triangle of the element stiffness matrix
	PairI, PairJ [NumElementPairs]int

	// GlobalPairs maps each element's 36 local pairs to global DOF
	// pairs, canonicalized as (max,min) so the assembled system is
	// lower-triangular. Laid out element-major: element e owns entries
	// [e*36, (e+1)*36)
	GlobalPairs [][2]int

	Template *ElementStiffness

	FixedDofs utils.Index
	FreeDofs  utils.Index
	// AllToFree maps each DOF to its position in compacted free-DOF
	// order, or -1 if the DOF is fixed
	AllToFree []int

	// Forces is the external load pre-mapped into compacted free-DOF
	// space
	Forces []float64
}

func NewProblem(numElementsX, numElementsY int) (p *Problem, err error) {
	if numElementsX < 1 || numElementsY < 1 {
		err = fmt.Errorf("invalid mesh dimensions: %dx%d elements", numElementsX, numElementsY)
		return
	}
	p = &Problem{
		NumElementsX: numElementsX,
		NumElementsY: numElementsY,
		NumElements:  numElementsX * numElementsY,
		NumNodesX:    numElementsX + 1,
		NumNodesY:    numElementsY + 1,
	}
	p.NumNodes = p.NumNodesX * p.NumNodesY
	p.NumDofs = p.NumNodes * NumDofsPerNode

	p.buildConnectivity()
	p.buildIndexPairs()
	p.Template = NewElementStiffness(PoissonRatio)
	p.buildBoundaryConditions()
	return
}

// buildConnectivity assigns each element its 8 global DOF indices. The
// base index is twice the element's top-left node index; the offsets
// walk the four corner nodes counter-clockwise
func (p *Problem) buildConnectivity() {
	var (
		nny     = p.NumNodesY
		offsets = utils.Index{
			2, 3,
			NumDofsPerNode*nny + 2, NumDofsPerNode*nny + 3,
			NumDofsPerNode * nny, NumDofsPerNode*nny + 1,
			0, 1,
		}
	)
	p.Connectivity = make([]utils.Index, p.NumElements)
	for ix := 0; ix < p.NumElementsX; ix++ {
		for iy := 0; iy < p.NumElementsY; iy++ {
			e := iy + ix*p.NumElementsY
			base := NumDofsPerNode * (iy + ix*nny)
			p.Connectivity[e] = offsets.Add(base)
		}
	}
}

// buildIndexPairs enumerates the lower triangle of the local 8x8
// matrix and expands it per element into canonicalized global pairs
func (p *Problem) buildIndexPairs() {
	var k int
	for j := 0; j < NumElementDofs; j++ {
		for i := j; i < NumElementDofs; i++ {
			p.PairI[k] = i
			p.PairJ[k] = j
			k++
		}
	}
	p.GlobalPairs = make([][2]int, p.NumElements*NumElementPairs)
	for e := 0; e < p.NumElements; e++ {
		conn := p.Connectivity[e]
		for k := 0; k < NumElementPairs; k++ {
			gi, gj := conn[p.PairI[k]], conn[p.PairJ[k]]
			if gi < gj {
				gi, gj = gj, gi
			}
			p.GlobalPairs[e*NumElementPairs+k] = [2]int{gi, gj}
		}
	}
}
