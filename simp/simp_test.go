package simp

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gosimp/topopt/fea"
	"github.com/gosimp/topopt/solver"
)

func newTestOptimizer(t *testing.T) *Optimizer {
	problem, err := fea.NewProblem(4, 2)
	assert.NoError(t, err)
	o, err := New(problem, solver.NewCholesky(), 0.5, 3.0, 1.5, 0.2)
	assert.NoError(t, err)
	return o
}

func TestNewValidation(t *testing.T) {
	problem, err := fea.NewProblem(4, 2)
	assert.NoError(t, err)
	s := solver.NewCholesky()
	_, err = New(problem, s, 0, 3, 1.5, 0.2)
	assert.Error(t, err)
	_, err = New(problem, s, 1.2, 3, 1.5, 0.2)
	assert.Error(t, err)
	_, err = New(problem, s, 0.5, 1, 1.5, 0.2)
	assert.Error(t, err)
	_, err = New(problem, s, 0.5, 3, 0.5, 0.2)
	assert.Error(t, err)
	_, err = New(problem, s, 0.5, 3, 1.5, 0)
	assert.Error(t, err)
	_, err = New(nil, s, 0.5, 3, 1.5, 0.2)
	assert.Error(t, err)
}

func TestEquilibriumSolve(t *testing.T) {
	o := newTestOptimizer(t)
	// uniform full-density field solves without error
	for e := range o.Physical {
		o.Physical[e] = 1
	}
	assert.NoError(t, o.SolveEquilibrium())
	for _, d := range o.Problem.FixedDofs {
		assert.Equal(t, 0.0, o.Displacements[d])
	}
	var maxAbs float64
	for _, u := range o.Displacements {
		maxAbs = math.Max(maxAbs, math.Abs(u))
	}
	assert.True(t, maxAbs > 0)
}

func TestInterpolation(t *testing.T) {
	o := newTestOptimizer(t)
	o.Physical[0] = 0
	o.Physical[1] = 1
	o.interpolate()
	// modulus floor keeps the system definite at zero density
	assert.Equal(t, o.EMin, o.YoungModuli[0])
	assert.InDelta(t, o.E0, o.YoungModuli[1], 1e-12)
	// dE/drho is nonpositive everywhere
	for _, d := range o.DEdRho {
		assert.True(t, d <= 0)
	}
}

func TestPassiveElements(t *testing.T) {
	o := newTestOptimizer(t)
	o.Passive[0] = PassiveVoid
	o.Passive[1] = PassiveSolid
	res, err := o.Step()
	assert.NoError(t, err)
	// pinned densities survive filtering
	assert.Equal(t, 0.0, o.Physical[0])
	assert.Equal(t, 1.0, o.Physical[1])
	// stiffness sensitivity zeroed explicitly for passive elements
	assert.Equal(t, 0.0, o.DEdRho[0])
	assert.Equal(t, 0.0, o.DEdRho[1])
	// update keeps the pins
	o.Update(res.ComplianceSens, res.VolumeSens)
	assert.Equal(t, 0.0, o.DesignVars[0])
	assert.Equal(t, 1.0, o.DesignVars[1])
}

func TestOptimizationStep(t *testing.T) {
	o := newTestOptimizer(t)
	res, err := o.Step()
	assert.NoError(t, err)

	n := o.Problem.NumElements
	assert.Equal(t, n, len(res.ComplianceSens))
	assert.Equal(t, n, len(res.VolumeSens))
	assert.False(t, math.IsNaN(res.Change))
	assert.False(t, math.IsInf(res.Change, 0))
	assert.True(t, res.Change >= 0)
	assert.True(t, res.Compliance > 0)

	// increasing density cannot increase compliance: filtered
	// compliance sensitivities stay nonpositive, volume ones positive
	for e := 0; e < n; e++ {
		assert.True(t, res.ComplianceSens[e] <= 0)
		assert.True(t, res.VolumeSens[e] > 0)
	}

	// the sign already holds before filtering: dE/drho <= 0 while the
	// element strain energy is nonnegative
	K0 := o.Problem.Template.K0
	ue := make([]float64, fea.NumElementDofs)
	for e := 0; e < n; e++ {
		for i, dof := range o.Problem.Connectivity[e] {
			ue[i] = o.Displacements[dof]
		}
		assert.True(t, o.DEdRho[e]*K0.QuadForm(ue) <= 0)
	}

	// PhysicalOld was refreshed: an immediate second step from the
	// same raw field reports zero change
	res2, err := o.Step()
	assert.NoError(t, err)
	assert.InDelta(t, 0, res2.Change, 1e-14)
}

func TestUpdateRespectsMoveAndBounds(t *testing.T) {
	o := newTestOptimizer(t)
	res, err := o.Step()
	assert.NoError(t, err)
	before := make([]float64, len(o.DesignVars))
	copy(before, o.DesignVars)
	o.Update(res.ComplianceSens, res.VolumeSens)
	for e, x := range o.DesignVars {
		assert.True(t, x >= 0 && x <= 1)
		assert.True(t, math.Abs(x-before[e]) <= o.MoveLimit+1e-12)
	}
	// the bisection keeps the raw volume near the constraint target
	var vol float64
	for _, x := range o.DesignVars {
		vol += x
	}
	vol /= float64(len(o.DesignVars))
	assert.InDelta(t, o.VolumeFraction, vol, o.MoveLimit)
}

func TestRunConverges(t *testing.T) {
	o := newTestOptimizer(t)
	res, err := o.Run(20, 1e-9)
	assert.NoError(t, err)
	assert.True(t, res.Compliance > 0)
	assert.True(t, res.Volume > 0 && res.Volume <= 1)
	for _, x := range o.DesignVars {
		assert.True(t, x >= 0 && x <= 1)
	}
}

func TestLoadDensities(t *testing.T) {
	o := newTestOptimizer(t)
	before := make([]float64, len(o.DesignVars))
	copy(before, o.DesignVars)

	// missing file leaves the field untouched
	assert.False(t, o.LoadDensities(filepath.Join(t.TempDir(), "missing.txt")))
	assert.Equal(t, before, o.DesignVars)

	// size mismatch leaves the field untouched
	short := filepath.Join(t.TempDir(), "short.txt")
	assert.NoError(t, os.WriteFile(short, []byte("0.1 0.2 0.3"), 0644))
	assert.False(t, o.LoadDensities(short))
	assert.Equal(t, before, o.DesignVars)

	// well-formed file replaces the raw field
	good := filepath.Join(t.TempDir(), "good.txt")
	data := ""
	for i := 0; i < o.Problem.NumElements; i++ {
		data += "0.25 "
	}
	assert.NoError(t, os.WriteFile(good, []byte(data), 0644))
	assert.True(t, o.LoadDensities(good))
	for _, x := range o.DesignVars {
		assert.Equal(t, 0.25, x)
	}
}
