//go:build (linux || darwin) && (amd64 || arm64)

// Package highs adapts the shared QP representation to the open-source
// HiGHS solver through its C API.
//
// It is interchangeable with the cplex backend: the same Problem goes
// in, the same Result shape comes out, with equality duals and bound
// duals translated to the shared conventions. HiGHS and CPLEX report
// LP/QP duals with the same sign convention, so the equality-dual
// negation and the reduced-cost split are applied identically in both
// backends.
//
// A HiGHS installation is required at build time (libhighs and the
// highs_c_api.h header).
package highs

/*
#cgo CFLAGS: -I/usr/include/highs -I/usr/local/include/highs
#cgo LDFLAGS: -lhighs

#include <stdlib.h>
#include "highs_c_api.h"
*/
import "C"
import (
	"fmt"
	"time"
	"unsafe"

	"github.com/solversuite/quadprog/qp"
)

// Error represents a HiGHS failure with context about which call
// failed.
type Error struct {
	Op   string
	Code int
}

func (e *Error) Error() string {
	return fmt.Sprintf("highs: %s failed with status %d", e.Op, e.Code)
}

// newError builds an *Error when a HiGHS call reports kHighsStatusError.
// Warnings are not failures.
func newError(op string, code C.HighsInt) error {
	if code != C.kHighsStatusError {
		return nil
	}
	return &Error{Op: op, Code: int(code)}
}

// Solver solves qp.Problems through HiGHS. Each Solve call creates its
// own HiGHS instance and destroys it before returning, so a Solver
// holds no state between calls.
type Solver struct {
	opts []SolveOption
}

var _ qp.Solver = (*Solver)(nil)

// New returns a HiGHS-backed solver. Options are applied to the HiGHS
// instance at the start of every Solve call.
func New(opts ...SolveOption) *Solver {
	return &Solver{opts: opts}
}

// Solve translates p into a rowwise HiGHS model, runs it and
// translates the solution back.
//
// Infinite entries of p.Lower and p.Upper are rewritten in place to the
// sentinel HiGHS reports through Highs_getInfinity. Library failures
// are returned as *Error; an unrecognized model status comes back as a
// Result with StatusSolverError.
func (s *Solver) Solve(p *qp.Problem) (*qp.Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	h := C.Highs_create()
	if h == nil {
		return nil, &Error{Op: "Highs_create"}
	}
	defer C.Highs_destroy(h)

	cfg := defaultSolveConfig()
	for _, opt := range s.opts {
		opt(cfg)
	}
	if err := applyConfig(h, cfg); err != nil {
		return nil, err
	}

	n := p.NumVars()
	if n == 0 {
		return &qp.Result{Status: qp.StatusOptimal}, nil
	}

	inf := float64(C.Highs_getInfinity(h))
	remapBounds(p.Lower, p.Upper, inf)

	rows := p.NumEq() + p.NumIneq()
	a, err := stackRows(p)
	if err != nil {
		return nil, err
	}
	rowLower, rowUpper := rowBounds(p, inf)

	var pRowLower, pRowUpper *C.double
	var pAStart, pAIndex *C.HighsInt
	var pAValue *C.double
	aStart := toHighsInts(a.Start[:rows])
	aIndex := toHighsInts(a.Index)
	if rows > 0 {
		pRowLower = (*C.double)(&rowLower[0])
		pRowUpper = (*C.double)(&rowUpper[0])
		pAStart = &aStart[0]
	}
	if a.Nonzeros() > 0 {
		pAIndex = &aIndex[0]
		pAValue = (*C.double)(&a.Value[0])
	}

	err = newError("Highs_passModel", C.Highs_passModel(h,
		C.HighsInt(n), C.HighsInt(rows),
		C.HighsInt(a.Nonzeros()), 0, // num_nz, q_num_nz
		C.kHighsMatrixFormatRowwise, C.kHighsHessianFormatTriangular,
		C.kHighsObjSenseMinimize, 0,
		(*C.double)(&p.C[0]), (*C.double)(&p.Lower[0]), (*C.double)(&p.Upper[0]),
		pRowLower, pRowUpper,
		pAStart, pAIndex, pAValue,
		nil, nil, nil, // Hessian passed separately
		nil))
	if err != nil {
		return nil, err
	}

	// HiGHS wants the upper triangle only; like CPLEX it applies the
	// 0.5 factor itself, so values pass through unchanged.
	quad, err := qp.CompressTriplets(qp.UpperTriangle(p.Q), n, true)
	if err != nil {
		return nil, err
	}
	if quad.Nonzeros() > 0 {
		qStart := toHighsInts(quad.Start[:n])
		qIndex := toHighsInts(quad.Index)
		err = newError("Highs_passHessian", C.Highs_passHessian(h,
			C.HighsInt(n), C.HighsInt(quad.Nonzeros()),
			C.kHighsHessianFormatTriangular,
			&qStart[0], &qIndex[0], (*C.double)(&quad.Value[0])))
		if err != nil {
			return nil, err
		}
	}

	// Highs_getRunTime is the library's own wall clock; the diff around
	// the run call excludes model setup.
	tStart := float64(C.Highs_getRunTime(h))
	if err := newError("Highs_run", C.Highs_run(h)); err != nil {
		return nil, err
	}
	tEnd := float64(C.Highs_getRunTime(h))

	status := translateStatus(int(C.Highs_getModelStatus(h)))

	colValue := make([]float64, n)
	colDual := make([]float64, n)
	rowValue := make([]float64, rows)
	rowDual := make([]float64, rows)
	var pRowValue, pRowDual *C.double
	if rows > 0 {
		pRowValue = (*C.double)(&rowValue[0])
		pRowDual = (*C.double)(&rowDual[0])
	}
	err = newError("Highs_getSolution", C.Highs_getSolution(h,
		(*C.double)(&colValue[0]), (*C.double)(&colDual[0]), pRowValue, pRowDual))
	if err != nil {
		return nil, err
	}

	dualEq := negate(rowDual[:p.NumEq()])
	dualIneq := append([]float64(nil), rowDual[p.NumEq():]...)
	dualLower, dualUpper := splitReducedCosts(colDual)

	return &qp.Result{
		Status:    status,
		Objective: float64(C.Highs_getObjectiveValue(h)),
		X:         colValue,
		DualEq:    dualEq,
		DualIneq:  dualIneq,
		DualLower: dualLower,
		DualUpper: dualUpper,
		SolveTime: time.Duration((tEnd - tStart) * float64(time.Second)),
	}, nil
}

func applyConfig(h unsafe.Pointer, cfg *solveConfig) error {
	for name, value := range cfg.boolOptions {
		cName := C.CString(name)
		var cVal C.HighsInt
		if value {
			cVal = 1
		}
		err := newError("Highs_setBoolOptionValue", C.Highs_setBoolOptionValue(h, cName, cVal))
		C.free(unsafe.Pointer(cName))
		if err != nil {
			return err
		}
	}
	for name, value := range cfg.intOptions {
		cName := C.CString(name)
		err := newError("Highs_setIntOptionValue", C.Highs_setIntOptionValue(h, cName, C.HighsInt(value)))
		C.free(unsafe.Pointer(cName))
		if err != nil {
			return err
		}
	}
	for name, value := range cfg.doubleOptions {
		cName := C.CString(name)
		err := newError("Highs_setDoubleOptionValue", C.Highs_setDoubleOptionValue(h, cName, C.double(value)))
		C.free(unsafe.Pointer(cName))
		if err != nil {
			return err
		}
	}
	return nil
}

func toHighsInts(v []int) []C.HighsInt {
	out := make([]C.HighsInt, len(v))
	for i, x := range v {
		out[i] = C.HighsInt(x)
	}
	return out
}
