package vm

import (
	"errors"
	"fmt"
)

// ErrExecutionReverted is returned when the REVERT opcode fires. Callers
// that care about the payload should inspect Result.ReturnData rather than
// this error's text.
var ErrExecutionReverted = errors.New("execution reverted")

// ErrInvalidOpcode is returned by the explicit INVALID opcode.
var ErrInvalidOpcode = errors.New("invalid opcode")

// ErrWriteProtection is returned when a state-mutating opcode runs under a
// static (writable=false) context.
var ErrWriteProtection = errors.New("write protection")

// ErrStackUnderflow reports an opcode that needed more operands than the
// stack held.
type ErrStackUnderflow struct {
	Have int
	Want int
}

func (e *ErrStackUnderflow) Error() string {
	return fmt.Sprintf("stack underflow: have %d, want %d", e.Have, e.Want)
}

// ErrStackOverflow reports a push past the 1024-element stack capacity.
type ErrStackOverflow struct {
	Have int
	Limit int
}

func (e *ErrStackOverflow) Error() string {
	return fmt.Sprintf("stack overflow: have %d, limit %d", e.Have, e.Limit)
}

// ErrInvalidJump reports a JUMP/JUMPI whose destination is not in the
// pre-computed valid-jump-destination set.
type ErrInvalidJump struct {
	Destination uint64
}

func (e *ErrInvalidJump) Error() string {
	return fmt.Sprintf("invalid jump destination %d", e.Destination)
}
