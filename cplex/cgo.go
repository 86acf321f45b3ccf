//go:build (linux || darwin) && (amd64 || arm64)

// Package cplex adapts the shared QP representation to the IBM CPLEX
// Callable Library.
//
// The adapter is pure translation: it converts the caller's sparse
// triplet matrices to the row-wise compressed form CPLEX expects,
// rewrites infinite bounds to CPX_INFBOUND, stacks equality rows ahead
// of inequality rows with 'E'/'L' senses, passes the quadratic cost
// through unchanged, and maps the CPLEX solution (status code, primal
// values, duals, reduced costs, solve time) back into a qp.Result. All
// numerical work happens inside CPLEX.
//
// A CPLEX installation is required at build time; adjust the cgo flags
// below if yours is not under /opt/ibm/ILOG.
//
// Example:
//
//	solver := cplex.New(cplex.WithThreads(1))
//	res, err := solver.Solve(problem)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if res.IsOptimal() {
//		fmt.Println(res.X, res.Objective)
//	}
package cplex

/*
#cgo CFLAGS: -I/opt/ibm/ILOG/CPLEX_Studio2211/cplex/include
#cgo linux LDFLAGS: -L/opt/ibm/ILOG/CPLEX_Studio2211/cplex/lib/x86-64_linux/static_pic -lcplex -lm -lpthread -ldl
#cgo darwin LDFLAGS: -L/opt/ibm/ILOG/CPLEX_Studio2211/cplex/lib/arm64_osx/static_pic -lcplex -lm -lpthread

#include <stdlib.h>
#include <ilcplex/cplex.h>
*/
import "C"
import (
	"fmt"
	"time"
	"unsafe"

	"github.com/solversuite/quadprog/qp"
)

// Error represents a CPLEX failure with context about which call
// failed. Code is the raw CPLEX error code; Msg is the library's own
// description of it.
type Error struct {
	Op   string
	Code int
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("cplex: %s failed: %s", e.Op, e.Msg)
	}
	return fmt.Sprintf("cplex: %s failed with code %d", e.Op, e.Code)
}

// newError builds an *Error for a non-zero CPLEX return code, asking
// the library for the matching message. Returns nil for code 0.
func newError(env C.CPXENVptr, op string, code C.int) error {
	if code == 0 {
		return nil
	}
	e := &Error{Op: op, Code: int(code)}
	var buf [C.CPXMESSAGEBUFSIZE]C.char
	if msg := C.CPXgeterrorstring(env, code, &buf[0]); msg != nil {
		e.Msg = C.GoString(msg)
	}
	return e
}

// Solver solves qp.Problems through the CPLEX Callable Library. Each
// Solve call opens its own CPLEX environment and releases it before
// returning, so a Solver holds no state between calls.
type Solver struct {
	opts []SolveOption
}

var _ qp.Solver = (*Solver)(nil)

// New returns a CPLEX-backed solver. Options are applied to the CPLEX
// environment at the start of every Solve call.
func New(opts ...SolveOption) *Solver {
	return &Solver{opts: opts}
}

// Solve translates p into a CPLEX model, runs CPXqpopt and translates
// the solution back.
//
// Infinite entries of p.Lower and p.Upper are rewritten in place to
// ±CPX_INFBOUND. Any CPLEX failure during model construction, solve or
// solution retrieval is returned unmodified as *Error; there is no
// retry. An unrecognized solution status is not a failure: it comes
// back as a Result with StatusSolverError.
func (s *Solver) Solve(p *qp.Problem) (*qp.Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var code C.int
	env := C.CPXopenCPLEX(&code)
	if env == nil {
		return nil, &Error{Op: "CPXopenCPLEX", Code: int(code)}
	}
	defer C.CPXcloseCPLEX(&env)

	cfg := defaultSolveConfig()
	for _, opt := range s.opts {
		opt(cfg)
	}
	for param, value := range cfg.intParams {
		if err := newError(env, "CPXsetintparam", C.CPXsetintparam(env, C.int(param), C.CPXINT(value))); err != nil {
			return nil, err
		}
	}
	for param, value := range cfg.dblParams {
		if err := newError(env, "CPXsetdblparam", C.CPXsetdblparam(env, C.int(param), C.double(value))); err != nil {
			return nil, err
		}
	}

	name := C.CString("qp")
	defer C.free(unsafe.Pointer(name))
	lp := C.CPXcreateprob(env, &code, name)
	if lp == nil {
		return nil, newError(env, "CPXcreateprob", code)
	}
	defer C.CPXfreeprob(env, &lp)

	n := p.NumVars()
	if n == 0 {
		return &qp.Result{Status: qp.StatusOptimal}, nil
	}

	// CPLEX cannot take ±Inf; the caller's bound slices are rewritten
	// in place to the library sentinel.
	remapBounds(p.Lower, p.Upper)

	if err := newError(env, "CPXchgobjsen", C.CPXchgobjsen(env, lp, C.CPX_MIN)); err != nil {
		return nil, err
	}
	err := newError(env, "CPXnewcols", C.CPXnewcols(env, lp, C.int(n),
		(*C.double)(&p.C[0]), (*C.double)(&p.Lower[0]), (*C.double)(&p.Upper[0]),
		nil, nil))
	if err != nil {
		return nil, err
	}

	rows := p.NumEq() + p.NumIneq()
	if rows > 0 {
		beg, ind, val, sense, rhs, err := stackRows(p)
		if err != nil {
			return nil, err
		}
		cBeg := make([]C.int, len(beg))
		for i, v := range beg {
			cBeg[i] = C.int(v)
		}
		cInd := make([]C.int, len(ind))
		for i, v := range ind {
			cInd[i] = C.int(v)
		}
		var pInd *C.int
		var pVal *C.double
		if len(val) > 0 {
			pInd = &cInd[0]
			pVal = (*C.double)(&val[0])
		}
		err = newError(env, "CPXaddrows", C.CPXaddrows(env, lp,
			0, C.int(rows), C.int(len(val)),
			(*C.double)(&rhs[0]), (*C.char)(unsafe.Pointer(&sense[0])),
			&cBeg[0], pInd, pVal, nil, nil))
		if err != nil {
			return nil, err
		}
	}

	// Quadratic cost, row-wise sparse, values passed through unchanged.
	// CPLEX applies the 0.5 factor itself, matching the shared objective
	// convention.
	quad, err := qp.CompressTriplets(p.Q, n, false)
	if err != nil {
		return nil, err
	}
	if quad.Nonzeros() > 0 {
		qmatbeg := make([]C.int, n)
		qmatcnt := make([]C.int, n)
		for i := 0; i < n; i++ {
			qmatbeg[i] = C.int(quad.Start[i])
			qmatcnt[i] = C.int(quad.Start[i+1] - quad.Start[i])
		}
		qmatind := make([]C.int, quad.Nonzeros())
		for i, v := range quad.Index {
			qmatind[i] = C.int(v)
		}
		err = newError(env, "CPXcopyquad", C.CPXcopyquad(env, lp,
			&qmatbeg[0], &qmatcnt[0], &qmatind[0], (*C.double)(&quad.Value[0])))
		if err != nil {
			return nil, err
		}
	}

	// Solve, timed by the library's own clock. Setup is not included.
	var tStart, tEnd C.double
	if err := newError(env, "CPXgettime", C.CPXgettime(env, &tStart)); err != nil {
		return nil, err
	}
	if quad.Nonzeros() > 0 {
		err = newError(env, "CPXqpopt", C.CPXqpopt(env, lp))
	} else {
		// Without a quadratic cost the problem type stays LP, which
		// CPXqpopt rejects.
		err = newError(env, "CPXlpopt", C.CPXlpopt(env, lp))
	}
	if err != nil {
		return nil, err
	}
	if err := newError(env, "CPXgettime", C.CPXgettime(env, &tEnd)); err != nil {
		return nil, err
	}

	status := translateStatus(int(C.CPXgetstat(env, lp)))

	var objval C.double
	if err := newError(env, "CPXgetobjval", C.CPXgetobjval(env, lp, &objval)); err != nil {
		return nil, err
	}

	x := make([]float64, n)
	if err := newError(env, "CPXgetx", C.CPXgetx(env, lp, (*C.double)(&x[0]), 0, C.int(n-1))); err != nil {
		return nil, err
	}

	pi := make([]float64, rows)
	if rows > 0 {
		if err := newError(env, "CPXgetpi", C.CPXgetpi(env, lp, (*C.double)(&pi[0]), 0, C.int(rows-1))); err != nil {
			return nil, err
		}
	}

	rc := make([]float64, n)
	if err := newError(env, "CPXgetdj", C.CPXgetdj(env, lp, (*C.double)(&rc[0]), 0, C.int(n-1))); err != nil {
		return nil, err
	}

	// CPLEX uses the opposite sign for equality duals; inequality duals
	// pass through.
	dualEq := negate(pi[:p.NumEq()])
	dualIneq := append([]float64(nil), pi[p.NumEq():]...)
	dualLower, dualUpper := splitReducedCosts(rc)

	return &qp.Result{
		Status:    status,
		Objective: float64(objval),
		X:         x,
		DualEq:    dualEq,
		DualIneq:  dualIneq,
		DualLower: dualLower,
		DualUpper: dualUpper,
		SolveTime: time.Duration(float64(tEnd-tStart) * float64(time.Second)),
	}, nil
}
