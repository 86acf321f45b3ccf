package qp

import "time"

// Status classifies the outcome of a solve, independent of which
// backend produced it.
type Status int

const (
	// StatusOptimal indicates an optimal solution was found.
	StatusOptimal Status = iota
	// StatusOptimalInaccurate indicates a solution that satisfies the
	// backend's relaxed tolerances only.
	StatusOptimalInaccurate
	// StatusInfeasible indicates the problem has no feasible point.
	StatusInfeasible
	// StatusUnbounded indicates the objective is unbounded below.
	StatusUnbounded
	// StatusSolverError covers every backend status with no dedicated
	// mapping, including numerical failures and limit interruptions.
	StatusSolverError
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusOptimalInaccurate:
		return "OptimalInaccurate"
	case StatusInfeasible:
		return "Infeasible"
	case StatusUnbounded:
		return "Unbounded"
	case StatusSolverError:
		return "SolverError"
	default:
		return "Unknown"
	}
}

// IsOptimal reports whether the status represents a usable optimum,
// exact or inaccurate.
func (s Status) IsOptimal() bool {
	return s == StatusOptimal || s == StatusOptimalInaccurate
}

// Result carries a solved problem's solution in backend-independent
// form. It is created once per solve and not modified afterwards.
type Result struct {
	// Status is the translated solver status.
	Status Status

	// Objective is the objective value at X.
	Objective float64

	// X is the primal solution, one entry per variable.
	X []float64

	// DualEq holds the dual values of the equality constraints, in the
	// shared sign convention (backends fix up the native sign where it
	// differs).
	DualEq []float64

	// DualIneq holds the dual values of the inequality constraints.
	DualIneq []float64

	// DualLower and DualUpper hold the per-variable bound duals. They
	// are derived from reduced costs, so for each variable at most one
	// of the two is non-zero.
	DualLower []float64
	DualUpper []float64

	// SolveTime is the elapsed time of the backend's solve call,
	// measured by the backend library's own timer. Model setup is not
	// included.
	SolveTime time.Duration
}

// IsOptimal reports whether the result holds a usable optimum.
func (r *Result) IsOptimal() bool {
	return r.Status.IsOptimal()
}
