package highs

import (
	"math"

	"github.com/solversuite/quadprog/qp"
)

// reducedCostTol splits reduced costs between lower and upper bound
// dual attribution, same rule as the cplex backend.
const reducedCostTol = 1e-7

// HiGHS model status codes, as reported by Highs_getModelStatus.
const (
	modelStatusOptimal        = 7  // kHighsModelStatusOptimal
	modelStatusInfeasible     = 8  // kHighsModelStatusInfeasible
	modelStatusUnbounded      = 10 // kHighsModelStatusUnbounded
	modelStatusTimeLimit      = 13 // kHighsModelStatusTimeLimit
	modelStatusIterationLimit = 14 // kHighsModelStatusIterationLimit
)

// statusTable is intentionally partial; unmapped HiGHS statuses come
// back as StatusSolverError. Limit interruptions still carry the best
// point found, so they map to the inaccurate status.
var statusTable = map[int]qp.Status{
	modelStatusOptimal:        qp.StatusOptimal,
	modelStatusInfeasible:     qp.StatusInfeasible,
	modelStatusUnbounded:      qp.StatusUnbounded,
	modelStatusTimeLimit:      qp.StatusOptimalInaccurate,
	modelStatusIterationLimit: qp.StatusOptimalInaccurate,
}

func translateStatus(code int) qp.Status {
	if s, ok := statusTable[code]; ok {
		return s
	}
	return qp.StatusSolverError
}

// remapBounds rewrites infinite bound entries in place to ±inf, the
// finite sentinel HiGHS reports through Highs_getInfinity. The caller's
// slices are mutated.
func remapBounds(lower, upper []float64, inf float64) {
	for i := range lower {
		if math.IsInf(lower[i], -1) {
			lower[i] = -inf
		}
		if math.IsInf(lower[i], 1) {
			lower[i] = inf
		}
		if math.IsInf(upper[i], -1) {
			upper[i] = -inf
		}
		if math.IsInf(upper[i], 1) {
			upper[i] = inf
		}
	}
}

// rowBounds stacks the constraint systems into HiGHS row bounds:
// equality rows first (lower = upper = beq), then inequality rows
// (lower = -inf, upper = bineq).
func rowBounds(p *qp.Problem, inf float64) (lower, upper []float64) {
	rows := p.NumEq() + p.NumIneq()
	lower = make([]float64, 0, rows)
	upper = make([]float64, 0, rows)
	lower = append(lower, p.Beq...)
	upper = append(upper, p.Beq...)
	for _, b := range p.Bineq {
		lower = append(lower, -inf)
		upper = append(upper, b)
	}
	return lower, upper
}

// stackRows builds the rowwise constraint matrix, equality rows ahead
// of inequality rows in original order.
func stackRows(p *qp.Problem) (*qp.CSR, error) {
	nz := make([]qp.Nonzero, 0, len(p.Aeq)+len(p.Aineq))
	nz = append(nz, p.Aeq...)
	for _, n := range p.Aineq {
		nz = append(nz, qp.Nonzero{Row: n.Row + p.NumEq(), Col: n.Col, Val: n.Val})
	}
	return qp.CompressTriplets(nz, p.NumEq()+p.NumIneq(), false)
}

func negate(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = -x
	}
	return out
}

// splitReducedCosts derives bound duals from column duals (reduced
// costs); see the cplex backend for the rule. HiGHS does not expose
// per-bound duals either, so the same proxy applies.
func splitReducedCosts(rc []float64) (lower, upper []float64) {
	lower = make([]float64, len(rc))
	upper = make([]float64, len(rc))
	for i, v := range rc {
		if v >= reducedCostTol {
			lower[i] = v
		} else {
			upper[i] = -v
		}
	}
	return lower, upper
}
