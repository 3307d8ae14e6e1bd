package vm

import "github.com/holiman/uint256"

// Stack manipulation handlers: PUSH/DUP/SWAP/POP, and the PC/JUMPDEST
// pseudo-ops that live alongside them in the dispatch table. Closure
// generators follow the makePush/makeDup/makeSwap pattern from
// other_examples' core-coin-go-core instructions.go.

func opPop(pc *uint64, f *Frame) ([]byte, error) {
	_, err := f.Stack.pop()
	return nil, err
}

func opPush0(pc *uint64, f *Frame) ([]byte, error) {
	return nil, f.Stack.push(new(uint256.Int))
}

// makePush returns a handler for PUSH1..PUSH32 that reads n big-endian
// immediate bytes starting at pc+1, zero-padding past the end of code.
func makePush(n int) executionFunc {
	return func(pc *uint64, f *Frame) ([]byte, error) {
		start := *pc + 1
		data := paddedSlice(f.Contract.Code, start, uint64(n))
		var v uint256.Int
		v.SetBytes(data)
		if err := f.Stack.push(&v); err != nil {
			return nil, err
		}
		*pc += uint64(n)
		return nil, nil
	}
}

// makeDup returns a handler for DUPn.
func makeDup(n int) executionFunc {
	return func(pc *uint64, f *Frame) ([]byte, error) {
		return nil, f.Stack.dup(n)
	}
}

// makeSwap returns a handler for SWAPn.
func makeSwap(n int) executionFunc {
	return func(pc *uint64, f *Frame) ([]byte, error) {
		return nil, f.Stack.swap(n)
	}
}

func opPc(pc *uint64, f *Frame) ([]byte, error) {
	return nil, f.Stack.push(uint256.NewInt(*pc))
}

func opJumpdest(pc *uint64, f *Frame) ([]byte, error) {
	return nil, nil
}
