package main

import (
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/solversuite/quadprog/highs"
	"github.com/solversuite/quadprog/qp"
)

// Markowitz portfolio selection: minimize risk-adjusted variance
// mu * x'Sx - r·x over allocations x that sum to one, no short selling.
func main() {
	n := 4
	mu := 1.0

	// Asset return covariance and expected returns.
	cov := mat.NewSymDense(n, []float64{
		4e-2, 6e-3, -4e-3, 0.0,
		6e-3, 1e-2, 0.0, 0.0,
		-4e-3, 0.0, 2.5e-3, 0.0,
		0.0, 0.0, 0.0, 0.0,
	})
	returns := []float64{0.12, 0.10, 0.07, 0.03}

	// The shared objective is 0.5*x'Qx + c·x, so Q = 2*mu*S and c = -r.
	q := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			q.SetSym(i, j, 2*mu*cov.At(i, j))
		}
	}
	c := make([]float64, n)
	lower := make([]float64, n)
	upper := make([]float64, n)
	ones := mat.NewDense(1, n, nil)
	for i := 0; i < n; i++ {
		c[i] = -returns[i]
		upper[i] = qp.Inf()
		ones.Set(0, i, 1.0)
	}

	p := qp.FromDense(q, c, ones, []float64{1.0}, nil, nil, lower, upper)

	res, err := highs.New(highs.WithOutput(false)).Solve(p)
	if err != nil {
		log.Fatal(err)
	}
	if !res.IsOptimal() {
		log.Fatalf("no optimum: %s", res.Status)
	}

	ret, risk := 0.0, 0.0
	for i := 0; i < n; i++ {
		ret += returns[i] * res.X[i]
		for j := 0; j < n; j++ {
			risk += res.X[i] * cov.At(i, j) * res.X[j]
		}
	}

	fmt.Printf("status:    %s (in %v)\n", res.Status, res.SolveTime)
	for i, x := range res.X {
		fmt.Printf("asset %d:   %.4f\n", i, x)
	}
	fmt.Printf("return:    %.4f\n", ret)
	fmt.Printf("risk:      %.4f\n", math.Sqrt(risk))
	fmt.Printf("objective: %.6f\n", res.Objective)
}
