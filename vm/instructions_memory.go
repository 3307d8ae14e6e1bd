package vm

import "github.com/holiman/uint256"

// Memory access handlers, grounded on spec.md §4.3 and the opMload/
// opMstore pair in other_examples' core-coin-go-core instructions.go.

func opMload(pc *uint64, f *Frame) ([]byte, error) {
	offsetWord, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	offset := offsetWord.Uint64()
	data := f.Memory.GetPtr(offset, 32)
	offsetWord.SetBytes(data)
	return nil, nil
}

func opMstore(pc *uint64, f *Frame) ([]byte, error) {
	offset, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	val, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	f.Memory.Set32(offset.Uint64(), &val)
	return nil, nil
}

func opMstore8(pc *uint64, f *Frame) ([]byte, error) {
	offset, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	val, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	f.Memory.SetByte(offset.Uint64(), byte(val.Uint64()))
	return nil, nil
}

func opMsize(pc *uint64, f *Frame) ([]byte, error) {
	v := uint256.NewInt(uint64(f.Memory.Len()))
	return nil, f.Stack.push(v)
}
