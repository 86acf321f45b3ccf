// Package qp defines a solver-agnostic representation of quadratic
// programming problems and their results.
//
// A Problem describes the QP
//
//	Minimize:   0.5 * x' * Q * x + C · x
//	Subject to: Aeq·x  = Beq
//	            Aineq·x ≤ Bineq
//	            Lower ≤ x ≤ Upper
//
// in sparse triplet form. Backend packages (cplex, highs) translate a
// Problem into their solver's native model, run it, and translate the
// native solution back into a Result. All backends implement the Solver
// interface, so they are interchangeable from the caller's point of view.
//
// Example:
//
//	p := &qp.Problem{
//		Q:     []qp.Nonzero{{0, 0, 2.0}, {1, 1, 2.0}},
//		C:     []float64{0, 0},
//		Aeq:   []qp.Nonzero{{0, 0, 1.0}, {0, 1, 1.0}},
//		Beq:   []float64{1.0},
//		Lower: []float64{0, 0},
//		Upper: []float64{1, 1},
//	}
//	res, err := solver.Solve(p)
package qp

// Nonzero represents a non-zero entry in a sparse matrix.
// Row and Col are zero-indexed.
type Nonzero struct {
	Row int
	Col int
	Val float64
}

// Problem is a quadratic program in sparse triplet form.
//
// The number of variables is the length of the bound vectors; Q must be
// symmetric of that dimension and the objective it contributes is
// 0.5 * x'*Q*x, matching the convention of the commercial solver APIs the
// backends target.
//
// Backends rewrite infinite entries of Lower and Upper in place to their
// library's finite infinity sentinel before handing the vectors to the
// native API. Callers must not rely on the bound slices being preserved
// across a Solve call.
type Problem struct {
	// Q holds the non-zero entries of the quadratic cost matrix.
	Q []Nonzero

	// C is the linear cost vector, one entry per variable.
	C []float64

	// Aeq and Beq describe the equality system Aeq·x = Beq.
	Aeq []Nonzero
	Beq []float64

	// Aineq and Bineq describe the inequality system Aineq·x ≤ Bineq.
	Aineq []Nonzero
	Bineq []float64

	// Lower and Upper are the per-variable bounds. Use math.Inf for
	// unbounded directions; both slices must have one entry per variable.
	Lower []float64
	Upper []float64
}

// NumVars returns the number of variables, taken from the bound vectors.
func (p *Problem) NumVars() int {
	return len(p.Lower)
}

// NumEq returns the number of equality constraints.
func (p *Problem) NumEq() int {
	return len(p.Beq)
}

// NumIneq returns the number of inequality constraints.
func (p *Problem) NumIneq() int {
	return len(p.Bineq)
}

// Validate checks the problem's vector lengths for consistency.
// Positive semidefiniteness of Q is not checked here; that is left to
// the backend library.
func (p *Problem) Validate() error {
	n := p.NumVars()
	if len(p.Upper) != n {
		return errorf("Validate", "bound vectors disagree: %d lower, %d upper", n, len(p.Upper))
	}
	if len(p.C) != n {
		return errorf("Validate", "linear cost has %d entries for %d variables", len(p.C), n)
	}
	for _, nz := range p.Q {
		if nz.Row >= n || nz.Col >= n {
			return errorf("Validate", "quadratic cost entry (%d,%d) outside %d variables", nz.Row, nz.Col, n)
		}
	}
	for _, nz := range p.Aeq {
		if nz.Row >= p.NumEq() || nz.Col >= n {
			return errorf("Validate", "equality entry (%d,%d) outside %dx%d", nz.Row, nz.Col, p.NumEq(), n)
		}
	}
	for _, nz := range p.Aineq {
		if nz.Row >= p.NumIneq() || nz.Col >= n {
			return errorf("Validate", "inequality entry (%d,%d) outside %dx%d", nz.Row, nz.Col, p.NumIneq(), n)
		}
	}
	return nil
}
