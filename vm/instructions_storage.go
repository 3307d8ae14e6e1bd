package vm

// Storage handlers, grounded on spec.md §4.4 and core-coin-go-core's
// opSload/opSstore.

func opSload(pc *uint64, f *Frame) ([]byte, error) {
	loc, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	val := f.evm.State.GetState(f.Contract.Address, *loc)
	loc.Set(&val)
	return nil, nil
}

func opSstore(pc *uint64, f *Frame) ([]byte, error) {
	if !f.Writable {
		return nil, ErrWriteProtection
	}
	key, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	val, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	f.evm.State.SetState(f.Contract.Address, key, val)
	return nil, nil
}
