package qp

import "gonum.org/v1/gonum/mat"

// Triplets extracts the non-zero entries of a dense gonum matrix as
// sparse triplets.
func Triplets(m mat.Matrix) []Nonzero {
	if m == nil {
		return nil
	}
	rows, cols := m.Dims()
	var nz []Nonzero
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := m.At(i, j); v != 0 {
				nz = append(nz, Nonzero{Row: i, Col: j, Val: v})
			}
		}
	}
	return nz
}

// FromDense builds a Problem from dense gonum matrices. The quadratic
// cost q must be symmetric; aeq and aineq may be nil when the problem
// has no constraints of that kind. Bound slices are used as-is, so the
// in-place infinity rewrite performed by backends applies to them.
func FromDense(q mat.Symmetric, c []float64, aeq mat.Matrix, beq []float64, aineq mat.Matrix, bineq []float64, lower, upper []float64) *Problem {
	return &Problem{
		Q:     Triplets(q),
		C:     c,
		Aeq:   Triplets(aeq),
		Beq:   beq,
		Aineq: Triplets(aineq),
		Bineq: bineq,
		Lower: lower,
		Upper: upper,
	}
}
