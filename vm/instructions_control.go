package vm

import "github.com/ethereum/go-ethereum/common"

// Control-flow and halt handlers: JUMP/JUMPI, the four halt opcodes, and
// SELFDESTRUCT, grounded on spec.md §4.6-§4.7 and core-coin-go-core's
// opJump/opCreate-adjacent halt block.

func opJump(pc *uint64, f *Frame) ([]byte, error) {
	dest, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	if !dest.IsUint64() || !f.Contract.validJumpdest(dest.Uint64()) {
		return nil, &ErrInvalidJump{Destination: dest.Uint64()}
	}
	*pc = dest.Uint64()
	return nil, nil
}

func opJumpi(pc *uint64, f *Frame) ([]byte, error) {
	dest, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	cond, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	if cond.IsZero() {
		return nil, nil
	}
	if !dest.IsUint64() || !f.Contract.validJumpdest(dest.Uint64()) {
		return nil, &ErrInvalidJump{Destination: dest.Uint64()}
	}
	*pc = dest.Uint64()
	return nil, nil
}

func opStop(pc *uint64, f *Frame) ([]byte, error) {
	return nil, nil
}

func opReturn(pc *uint64, f *Frame) ([]byte, error) {
	offset, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	size, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	return f.Memory.Get(offset.Uint64(), size.Uint64()), nil
}

func opRevert(pc *uint64, f *Frame) ([]byte, error) {
	offset, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	size, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	ret := f.Memory.Get(offset.Uint64(), size.Uint64())
	return ret, ErrExecutionReverted
}

func opInvalid(pc *uint64, f *Frame) ([]byte, error) {
	return nil, ErrInvalidOpcode
}

func opSelfDestruct(pc *uint64, f *Frame) ([]byte, error) {
	if !f.Writable {
		return nil, ErrWriteProtection
	}
	beneficiary, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	addr := common.Address(beneficiary.Bytes20())
	f.evm.State.SelfDestruct(f.Contract.Address, addr)
	return nil, nil
}

// makeLog returns a handler for LOGn: pop (offset, length), then n topic
// words, and append a log record.
func makeLog(n int) executionFunc {
	return func(pc *uint64, f *Frame) ([]byte, error) {
		if !f.Writable {
			return nil, ErrWriteProtection
		}
		offset, err := f.Stack.pop()
		if err != nil {
			return nil, err
		}
		size, err := f.Stack.pop()
		if err != nil {
			return nil, err
		}
		topics := make([]common.Hash, n)
		for i := 0; i < n; i++ {
			t, err := f.Stack.pop()
			if err != nil {
				return nil, err
			}
			topics[i] = common.Hash(t.Bytes32())
		}
		data := f.Memory.Get(offset.Uint64(), size.Uint64())
		f.Logs = append(f.Logs, Log{
			Address: f.Contract.Address,
			Topics:  topics,
			Data:    data,
		})
		return nil, nil
	}
}
