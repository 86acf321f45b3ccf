package highs

import (
	"math"
	"testing"

	"github.com/solversuite/quadprog/qp"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// TestQP solves the same known instance as the cplex backend tests, so
// the two adapters can be compared result field by result field.
//
//	minimize   x^2 + y^2
//	subject to x + y = 1
//	           0 <= x, y <= 1
func TestQP(t *testing.T) {
	p := &qp.Problem{
		Q:     []qp.Nonzero{{0, 0, 2.0}, {1, 1, 2.0}},
		C:     []float64{0.0, 0.0},
		Aeq:   []qp.Nonzero{{0, 0, 1.0}, {0, 1, 1.0}},
		Beq:   []float64{1.0},
		Lower: []float64{0.0, 0.0},
		Upper: []float64{1.0, 1.0},
	}

	res, err := New().Solve(p)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if res.Status != qp.StatusOptimal {
		t.Fatalf("Expected optimal, got %s", res.Status)
	}
	if !almostEqual(res.Objective, 0.5, 1e-5) {
		t.Errorf("Objective = %f, expected 0.5", res.Objective)
	}
	if !almostEqual(res.X[0], 0.5, 1e-5) || !almostEqual(res.X[1], 0.5, 1e-5) {
		t.Errorf("x = %v, expected (0.5, 0.5)", res.X)
	}
	if !almostEqual(res.DualEq[0], -1.0, 1e-5) {
		t.Errorf("DualEq[0] = %f, expected -1.0", res.DualEq[0])
	}
	if len(res.DualIneq) != 0 {
		t.Errorf("DualIneq = %v, expected empty", res.DualIneq)
	}
}

// TestInequalityQP exercises the inequality path.
//
//	minimize   x^2
//	subject to -x <= -1   (x >= 1)
func TestInequalityQP(t *testing.T) {
	p := &qp.Problem{
		Q:     []qp.Nonzero{{0, 0, 2.0}},
		C:     []float64{0.0},
		Aineq: []qp.Nonzero{{0, 0, -1.0}},
		Bineq: []float64{-1.0},
		Lower: []float64{-10.0},
		Upper: []float64{10.0},
	}

	res, err := New().Solve(p)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if res.Status != qp.StatusOptimal {
		t.Fatalf("Expected optimal, got %s", res.Status)
	}
	if !almostEqual(res.X[0], 1.0, 1e-5) {
		t.Errorf("x = %f, expected 1.0", res.X[0])
	}
	if !almostEqual(res.Objective, 1.0, 1e-5) {
		t.Errorf("Objective = %f, expected 1.0", res.Objective)
	}
	// Row duals pass through without sign correction.
	if !almostEqual(res.DualIneq[0], -2.0, 1e-5) {
		t.Errorf("DualIneq[0] = %f, expected -2.0", res.DualIneq[0])
	}
}

// TestBoundDualSplit mirrors the cplex test: minimizer at the lower
// bounds, reduced costs attributed to the lower-bound duals.
func TestBoundDualSplit(t *testing.T) {
	p := &qp.Problem{
		Q:     []qp.Nonzero{{0, 0, 2.0}, {1, 1, 2.0}},
		C:     []float64{1.0, 1.0},
		Lower: []float64{0.0, 0.0},
		Upper: []float64{1.0, 1.0},
	}

	res, err := New().Solve(p)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if res.Status != qp.StatusOptimal {
		t.Fatalf("Expected optimal, got %s", res.Status)
	}
	for i := range res.X {
		if !almostEqual(res.DualLower[i], 1.0, 1e-5) {
			t.Errorf("DualLower[%d] = %f, expected 1.0", i, res.DualLower[i])
		}
		if res.DualLower[i] != 0 && res.DualUpper[i] != 0 {
			t.Errorf("variable %d has both bound duals set: %f, %f",
				i, res.DualLower[i], res.DualUpper[i])
		}
	}
}

// TestBoundRemap checks that caller infinities are rewritten in place
// to the HiGHS sentinel before the model is passed.
func TestBoundRemap(t *testing.T) {
	p := &qp.Problem{
		Q:     []qp.Nonzero{{0, 0, 2.0}},
		C:     []float64{0.0},
		Lower: []float64{math.Inf(-1)},
		Upper: []float64{math.Inf(1)},
	}

	res, err := New().Solve(p)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if res.Status != qp.StatusOptimal {
		t.Fatalf("Expected optimal, got %s", res.Status)
	}
	if math.IsInf(p.Lower[0], 0) || math.IsInf(p.Upper[0], 0) {
		t.Errorf("bounds still infinite: %f, %f", p.Lower[0], p.Upper[0])
	}
	if p.Upper[0] <= 0 || p.Lower[0] >= 0 {
		t.Errorf("sentinel signs wrong: %f, %f", p.Lower[0], p.Upper[0])
	}
}

// TestInfeasible checks status translation for an infeasible model.
// Unlike CPLEX, HiGHS still returns a (meaningless) solution vector, so
// the call itself succeeds.
func TestInfeasible(t *testing.T) {
	p := &qp.Problem{
		Q:     []qp.Nonzero{{0, 0, 2.0}},
		C:     []float64{0.0},
		Aineq: []qp.Nonzero{{0, 0, -1.0}},
		Bineq: []float64{-5.0},
		Lower: []float64{0.0},
		Upper: []float64{3.0},
	}

	res, err := New().Solve(p)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if res.Status != qp.StatusInfeasible {
		t.Errorf("Expected infeasible, got %s", res.Status)
	}
}

func TestTranslateStatus(t *testing.T) {
	cases := []struct {
		code int
		want qp.Status
	}{
		{modelStatusOptimal, qp.StatusOptimal},
		{modelStatusInfeasible, qp.StatusInfeasible},
		{modelStatusUnbounded, qp.StatusUnbounded},
		{modelStatusTimeLimit, qp.StatusOptimalInaccurate},
		{modelStatusIterationLimit, qp.StatusOptimalInaccurate},
		{0, qp.StatusSolverError},
		{9, qp.StatusSolverError}, // unbounded-or-infeasible is ambiguous
		{999, qp.StatusSolverError},
	}
	for _, c := range cases {
		if got := translateStatus(c.code); got != c.want {
			t.Errorf("translateStatus(%d) = %s, expected %s", c.code, got, c.want)
		}
	}
}

func TestRowBounds(t *testing.T) {
	p := &qp.Problem{
		C:     []float64{0},
		Beq:   []float64{1.0},
		Bineq: []float64{2.0, 3.0},
		Lower: []float64{0},
		Upper: []float64{1},
	}

	lower, upper := rowBounds(p, 1e30)
	if len(lower) != 3 || len(upper) != 3 {
		t.Fatalf("got %d/%d row bounds, expected 3/3", len(lower), len(upper))
	}
	if lower[0] != 1.0 || upper[0] != 1.0 {
		t.Errorf("equality row bounds = %f, %f, expected 1, 1", lower[0], upper[0])
	}
	if lower[1] != -1e30 || upper[1] != 2.0 {
		t.Errorf("inequality row bounds = %f, %f, expected -1e30, 2", lower[1], upper[1])
	}
	if lower[2] != -1e30 || upper[2] != 3.0 {
		t.Errorf("inequality row bounds = %f, %f, expected -1e30, 3", lower[2], upper[2])
	}
}
