package qp

// Solver is the contract every backend adapter implements.
//
// Solve blocks for the full duration of the underlying library's solve
// call. Adapters hold no state across calls; concurrent Solve calls are
// as safe as the backend library itself permits.
type Solver interface {
	Solve(p *Problem) (*Result, error)
}
