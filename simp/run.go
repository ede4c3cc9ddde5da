package simp

import (
	"fmt"
)

const logFrequency = 10

// Run drives the optimization: repeat Step and Update until the change
// metric drops below tol or maxIterations is reached. Convergence is
// decided here, never inside the step. Returns the last step result.
func (o *Optimizer) Run(maxIterations int, tol float64) (res StepResult, err error) {
	for iter := 1; iter <= maxIterations; iter++ {
		if res, err = o.Step(); err != nil {
			return
		}
		o.Update(res.ComplianceSens, res.VolumeSens)
		if iter%logFrequency == 0 || iter == 1 {
			fmt.Printf("it = %4d, compliance = %10.4f, volume = %6.4f, change = %8.6f\n",
				iter, res.Compliance, res.Volume, res.Change)
		}
		// the first iteration's change only measures the initial field
		if iter > 1 && res.Change < tol {
			fmt.Printf("converged after %d iterations, change = %8.6f\n", iter, res.Change)
			return
		}
	}
	fmt.Printf("stopped at iteration limit %d, change = %8.6f\n", maxIterations, res.Change)
	return
}
