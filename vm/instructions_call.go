package vm

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Call and create handlers, grounded on the opCall/opCallCode/
// opDelegateCall/opStaticCall/opCreate/opCreate2 family in
// other_examples' core-coin-go-core instructions.go: pop args, invoke the
// EVM's recursive entry point, push a success flag, copy return data into
// memory, and record the full sub-return for RETURNDATASIZE/COPY.

func opCall(pc *uint64, f *Frame) ([]byte, error) {
	return doCall(CALL, f, true)
}

func opCallCode(pc *uint64, f *Frame) ([]byte, error) {
	return doCall(CALLCODE, f, true)
}

func opDelegateCall(pc *uint64, f *Frame) ([]byte, error) {
	return doCall(DELEGATECALL, f, false)
}

func opStaticCall(pc *uint64, f *Frame) ([]byte, error) {
	return doCall(STATICCALL, f, false)
}

// doCall implements the shared operand layout of spec.md §4.5. hasValue
// is false for DELEGATECALL/STATICCALL, whose operand list omits value.
func doCall(kind OpCode, f *Frame, hasValue bool) ([]byte, error) {
	_, err := f.Stack.pop() // gas: unmetered, read and discarded
	if err != nil {
		return nil, err
	}
	addrWord, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	var value *uint256.Int
	if hasValue {
		v, err := f.Stack.pop()
		if err != nil {
			return nil, err
		}
		value = &v
		if kind == CALL && !f.Writable && !v.IsZero() {
			return nil, ErrWriteProtection
		}
	}
	argsOffset, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	argsSize, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	retOffset, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	retSize, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}

	addr := common.Address(addrWord.Bytes20())
	args := f.Memory.Get(argsOffset.Uint64(), argsSize.Uint64())

	ret, success := f.evm.call(kind, f, addr, value, args, f.Writable)
	f.LastSubReturn = ret

	n := retSize.Uint64()
	if n > uint64(len(ret)) {
		n = uint64(len(ret))
	}
	if n > 0 {
		f.Memory.Set(retOffset.Uint64(), n, ret[:n])
	}

	result := new(uint256.Int)
	if success {
		result.SetOne()
	}
	return nil, f.Stack.push(result)
}

func opCreate(pc *uint64, f *Frame) ([]byte, error) {
	return doCreate(f, false)
}

func opCreate2(pc *uint64, f *Frame) ([]byte, error) {
	return doCreate(f, true)
}

func doCreate(f *Frame, hasSalt bool) ([]byte, error) {
	if !f.Writable {
		return nil, ErrWriteProtection
	}
	value, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	offset, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	size, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	var salt *uint256.Int
	if hasSalt {
		s, err := f.Stack.pop()
		if err != nil {
			return nil, err
		}
		salt = &s
	}

	initcode := f.Memory.Get(offset.Uint64(), size.Uint64())
	addr, success := f.evm.create(f, &value, initcode, salt)

	result := new(uint256.Int)
	if success {
		result.SetBytes(addr.Bytes())
	}
	return nil, f.Stack.push(result)
}
