package vm

import "github.com/holiman/uint256"

// Result is the outcome of running a frame to completion: the final
// stack, any logs emitted, the return payload, and whether the frame
// succeeded. Per spec.md §7, Stack is empty by contract whenever Success
// is false.
type Result struct {
	Success    bool
	Stack      []uint256.Int
	ReturnData []byte
	Logs       []Log
}
