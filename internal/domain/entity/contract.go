package entity

import "fmt"

// ContractError is the panic value raised when a board or piece
// precondition is broken. It signals a programming error: valid input never
// produces one, and the simulation core never recovers from it.
type ContractError struct {
	Op     string
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("contract violated in %s: %s", e.Op, e.Reason)
}

func expect(cond bool, op, format string, args ...any) {
	if !cond {
		panic(&ContractError{Op: op, Reason: fmt.Sprintf(format, args...)})
	}
}
