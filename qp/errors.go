package qp

import "fmt"

// Error describes a problem-construction or translation failure with
// context about which operation rejected the input.
type Error struct {
	Op  string // Operation that failed (e.g., "Validate", "CSR")
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("qp: %s: %s", e.Op, e.Msg)
}

func errorf(op, format string, args ...interface{}) error {
	return &Error{Op: op, Msg: fmt.Sprintf(format, args...)}
}
