package cplex

import (
	"math"

	"github.com/solversuite/quadprog/qp"
)

// InfBound is the finite value CPLEX uses to represent infinity
// (CPX_INFBOUND). Bounds at or beyond this magnitude are treated as
// unbounded by the library.
const InfBound = 1.0e20

// reducedCostTol decides whether a reduced cost is attributed to the
// lower or the upper bound dual.
const reducedCostTol = 1e-7

// CPLEX solution status codes, as reported by CPXgetstat.
const (
	statOptimal    = 1 // CPX_STAT_OPTIMAL
	statUnbounded  = 2 // CPX_STAT_UNBOUNDED
	statInfeasible = 3 // CPX_STAT_INFEASIBLE
	statNumBest    = 6 // CPX_STAT_NUM_BEST
)

// statusTable maps CPLEX status codes to the shared status enum. The
// table is intentionally partial: codes without an entry are reported
// as StatusSolverError rather than rejected.
var statusTable = map[int]qp.Status{
	statOptimal:    qp.StatusOptimal,
	statUnbounded:  qp.StatusUnbounded,
	statInfeasible: qp.StatusInfeasible,
	statNumBest:    qp.StatusOptimalInaccurate,
}

// translateStatus maps a raw CPXgetstat code to the shared enum.
func translateStatus(code int) qp.Status {
	if s, ok := statusTable[code]; ok {
		return s
	}
	return qp.StatusSolverError
}

// remapBounds rewrites infinite bound entries in place to CPLEX's
// finite infinity sentinel. The caller's slices are mutated.
func remapBounds(lower, upper []float64) {
	for i := range lower {
		if math.IsInf(lower[i], -1) {
			lower[i] = -InfBound
		}
		if math.IsInf(lower[i], 1) {
			lower[i] = InfBound
		}
		if math.IsInf(upper[i], -1) {
			upper[i] = -InfBound
		}
		if math.IsInf(upper[i], 1) {
			upper[i] = InfBound
		}
	}
}

// negate returns the element-wise negation of v.
//
// CPLEX reports equality duals with the opposite sign from the shared
// result convention.
func negate(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = -x
	}
	return out
}

// splitReducedCosts derives the bound duals from the reduced-cost
// vector: a reduced cost at or above the tolerance belongs to the lower
// bound, anything else is negated onto the upper bound. CPLEX has no
// first-class per-bound duals, so this split is a proxy; at most one of
// the two entries per variable ends up non-zero.
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

// stackRows concatenates the equality and inequality systems into one
// CSR block, equality rows first, together with the per-row sense
// characters ('E' then 'L') and the stacked right-hand side.
func stackRows(p *qp.Problem) (beg, ind []int, val []float64, sense []byte, rhs []float64, err error) {
	eq, err := qp.CompressTriplets(p.Aeq, p.NumEq(), false)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	ineq, err := qp.CompressTriplets(p.Aineq, p.NumIneq(), false)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}

	rows := p.NumEq() + p.NumIneq()
	beg = make([]int, 0, rows)
	beg = append(beg, eq.Start[:p.NumEq()]...)
	for _, s := range ineq.Start[:p.NumIneq()] {
		beg = append(beg, s+eq.Nonzeros())
	}

	ind = append(append([]int{}, eq.Index...), ineq.Index...)
	val = append(append([]float64{}, eq.Value...), ineq.Value...)

	sense = make([]byte, rows)
	for i := range sense {
		if i < p.NumEq() {
			sense[i] = 'E'
		} else {
			sense[i] = 'L'
		}
	}

	rhs = append(append([]float64{}, p.Beq...), p.Bineq...)
	return beg, ind, val, sense, rhs, nil
}
