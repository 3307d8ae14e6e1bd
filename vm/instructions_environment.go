package vm

import (
	"github.com/holiman/uint256"
)

// Environment accessor handlers: transaction, block, code and state
// inspection opcodes, grounded on the ADDRESS/BALANCE/ORIGIN/CALLER/...
// block in other_examples' core-coin-go-core instructions.go.

func opAddress(pc *uint64, f *Frame) ([]byte, error) {
	var v uint256.Int
	v.SetBytes(f.Contract.Address.Bytes())
	return nil, f.Stack.push(&v)
}

func opBalance(pc *uint64, f *Frame) ([]byte, error) {
	addrWord, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	addr := addrWord.Bytes20()
	bal := f.evm.State.GetBalance(addr)
	addrWord.Set(bal)
	return nil, nil
}

func opOrigin(pc *uint64, f *Frame) ([]byte, error) {
	var v uint256.Int
	v.SetBytes(f.evm.Tx.Origin.Bytes())
	return nil, f.Stack.push(&v)
}

func opCaller(pc *uint64, f *Frame) ([]byte, error) {
	var v uint256.Int
	v.SetBytes(f.Contract.CallerAddress.Bytes())
	return nil, f.Stack.push(&v)
}

func opCallValue(pc *uint64, f *Frame) ([]byte, error) {
	v := new(uint256.Int)
	if f.Contract.Value != nil {
		v.Set(f.Contract.Value)
	}
	return nil, f.Stack.push(v)
}

func opCallDataLoad(pc *uint64, f *Frame) ([]byte, error) {
	offsetWord, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	offset := offsetWord.Uint64()
	data := paddedSlice(f.Contract.Input, offset, 32)
	offsetWord.SetBytes(data)
	return nil, nil
}

func opCallDataSize(pc *uint64, f *Frame) ([]byte, error) {
	v := uint256.NewInt(uint64(len(f.Contract.Input)))
	return nil, f.Stack.push(v)
}

func opCallDataCopy(pc *uint64, f *Frame) ([]byte, error) {
	memOffset, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	dataOffset, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	size, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	data := paddedSlice(f.Contract.Input, dataOffset.Uint64(), size.Uint64())
	f.Memory.Set(memOffset.Uint64(), size.Uint64(), data)
	return nil, nil
}

func opCodeSize(pc *uint64, f *Frame) ([]byte, error) {
	v := uint256.NewInt(uint64(len(f.Contract.Code)))
	return nil, f.Stack.push(v)
}

func opCodeCopy(pc *uint64, f *Frame) ([]byte, error) {
	memOffset, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	codeOffset, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	size, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	data := paddedSlice(f.Contract.Code, codeOffset.Uint64(), size.Uint64())
	f.Memory.Set(memOffset.Uint64(), size.Uint64(), data)
	return nil, nil
}

func opGasPrice(pc *uint64, f *Frame) ([]byte, error) {
	v := new(uint256.Int)
	if f.evm.Tx.GasPrice != nil {
		v.Set(f.evm.Tx.GasPrice)
	}
	return nil, f.Stack.push(v)
}

func opExtCodeSize(pc *uint64, f *Frame) ([]byte, error) {
	addrWord, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	addr := addrWord.Bytes20()
	addrWord.SetUint64(uint64(f.evm.State.GetCodeSize(addr)))
	return nil, nil
}

func opExtCodeCopy(pc *uint64, f *Frame) ([]byte, error) {
	addrWord, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	memOffset, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	codeOffset, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	size, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	code := f.evm.State.GetCode(addrWord.Bytes20())
	data := paddedSlice(code, codeOffset.Uint64(), size.Uint64())
	f.Memory.Set(memOffset.Uint64(), size.Uint64(), data)
	return nil, nil
}

func opReturnDataSize(pc *uint64, f *Frame) ([]byte, error) {
	v := uint256.NewInt(uint64(len(f.LastSubReturn)))
	return nil, f.Stack.push(v)
}

func opReturnDataCopy(pc *uint64, f *Frame) ([]byte, error) {
	memOffset, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	dataOffset, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	size, err := f.Stack.pop()
	if err != nil {
		return nil, err
	}
	data := paddedSlice(f.LastSubReturn, dataOffset.Uint64(), size.Uint64())
	f.Memory.Set(memOffset.Uint64(), size.Uint64(), data)
	return nil, nil
}

func opExtCodeHash(pc *uint64, f *Frame) ([]byte, error) {
	addrWord, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	addr := addrWord.Bytes20()
	if !f.evm.State.Exist(addr) {
		addrWord.Clear()
		return nil, nil
	}
	hash := keccakSum(f.evm.State.GetCode(addr))
	addrWord.SetBytes(hash)
	return nil, nil
}

func opBlockhash(pc *uint64, f *Frame) ([]byte, error) {
	v, err := f.Stack.peek()
	if err != nil {
		return nil, err
	}
	// No chain history is modeled; every block hash is unknown.
	v.Clear()
	return nil, nil
}

func opCoinbase(pc *uint64, f *Frame) ([]byte, error) {
	var v uint256.Int
	v.SetBytes(f.evm.Block.Coinbase.Bytes())
	return nil, f.Stack.push(&v)
}

func opTimestamp(pc *uint64, f *Frame) ([]byte, error) {
	return nil, f.Stack.push(uint256.NewInt(f.evm.Block.Time))
}

func opNumber(pc *uint64, f *Frame) ([]byte, error) {
	v := new(uint256.Int)
	if f.evm.Block.BlockNumber != nil {
		v.Set(f.evm.Block.BlockNumber)
	}
	return nil, f.Stack.push(v)
}

func opDifficulty(pc *uint64, f *Frame) ([]byte, error) {
	v := new(uint256.Int)
	if f.evm.Block.Difficulty != nil {
		v.Set(f.evm.Block.Difficulty)
	}
	return nil, f.Stack.push(v)
}

func opGasLimit(pc *uint64, f *Frame) ([]byte, error) {
	return nil, f.Stack.push(uint256.NewInt(f.evm.Block.GasLimit))
}

func opChainID(pc *uint64, f *Frame) ([]byte, error) {
	v := new(uint256.Int)
	if f.evm.Block.ChainID != nil {
		v.Set(f.evm.Block.ChainID)
	}
	return nil, f.Stack.push(v)
}

func opSelfBalance(pc *uint64, f *Frame) ([]byte, error) {
	bal := f.evm.State.GetBalance(f.Contract.Address)
	return nil, f.Stack.push(bal)
}

func opBaseFee(pc *uint64, f *Frame) ([]byte, error) {
	v := new(uint256.Int)
	if f.evm.Block.BaseFee != nil {
		v.Set(f.evm.Block.BaseFee)
	}
	return nil, f.Stack.push(v)
}

func opGas(pc *uint64, f *Frame) ([]byte, error) {
	return nil, f.Stack.push(sentinelGas)
}

// paddedSlice returns size bytes of src starting at offset, zero-extended
// when the requested range runs past the end of src (or starts past it).
func paddedSlice(src []byte, offset, size uint64) []byte {
	out := make([]byte, size)
	if offset >= uint64(len(src)) {
		return out
	}
	end := offset + size
	if end > uint64(len(src)) {
		end = uint64(len(src))
	}
	copy(out, src[offset:end])
	return out
}
