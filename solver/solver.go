// Package solver provides the linear-solver capability behind the
// equilibrium solve: given the lower triangle of a symmetric
// positive-definite sparse system and a dense right-hand side, return
// the unique solution. Failures carry a specific kind and are fatal
// for the call; no backend retries internally.
package solver

import (
	"fmt"

	"github.com/gosimp/topopt/utils"
)

type Kind uint8

const (
	KindNumericalIssue Kind = iota + 1
	KindNoConvergence
	KindInvalidInput
	KindFailure
)

func (k Kind) String() string {
	switch k {
	case KindNumericalIssue:
		return "NumericalIssue"
	case KindNoConvergence:
		return "NoConvergence"
	case KindInvalidInput:
		return "InvalidInput"
	}
	return "Failure"
}

// Error reports a solver failure with its stage (factorization or
// solve) and kind attached
type Error struct {
	Stage  string
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	if len(e.Detail) != 0 {
		return fmt.Sprintf("%s failed: %s (%s)", e.Stage, e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s failed: %s", e.Stage, e.Kind)
}

// KindOf extracts the failure kind from a solver error, or KindFailure
// for anything uncategorized
func KindOf(err error) Kind {
	if se, ok := err.(*Error); ok {
		return se.Kind
	}
	return KindFailure
}

// Solver solves A x = b where lower holds the lower triangle
// (including diagonal) of the symmetric positive-definite matrix A
type Solver interface {
	Solve(lower utils.CSR, b []float64) (x []float64, err error)
}

func checkInput(lower utils.CSR, b []float64) error {
	nr, nc := lower.Dims()
	if nr != nc {
		return &Error{Stage: "solve", Kind: KindInvalidInput,
			Detail: fmt.Sprintf("matrix is %dx%d, not square", nr, nc)}
	}
	if len(b) != nr {
		return &Error{Stage: "solve", Kind: KindInvalidInput,
			Detail: fmt.Sprintf("rhs length %d does not match dimension %d", len(b), nr)}
	}
	return nil
}
