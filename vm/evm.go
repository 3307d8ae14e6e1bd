package vm

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	"github.com/nimbusvm/evmcore/state"
)

// BlockContext carries the immutable per-block values visible to block-
// field opcodes. Field naming follows spec.md §3 exactly, including the
// pre-merge "difficulty" name (rather than the post-merge PREVRANDAO
// rename some later references use).
type BlockContext struct {
	Coinbase   common.Address
	GasLimit   uint64
	BlockNumber *uint256.Int
	Time       uint64
	Difficulty *uint256.Int
	BaseFee    *uint256.Int
	ChainID    *uint256.Int
}

// TxContext carries the immutable per-transaction values visible to
// environment-accessor opcodes. GasPrice is fixed for the lifetime of the
// outermost call and is never rewritten by a nested CALL's gas operand
// (spec.md §9 redesign flag).
type TxContext struct {
	Origin   common.Address
	GasPrice *uint256.Int
}

// maxCallDepth bounds sub-call recursion so a pathological program cannot
// blow the host Go stack; spec.md does not name a limit but every real EVM
// enforces one (1024), which this mirrors.
const maxCallDepth = 1024

// sentinelGas is what GAS always reports: gas is explicitly not a metered
// resource in this interpreter (spec.md §1).
var sentinelGas = func() *uint256.Int {
	v := new(uint256.Int)
	return v.Not(v) // 2^256 - 1
}()

// EVM ties together the two contexts, the world state, and the dispatch
// table, and is the recursion point for CALL/CALLCODE/DELEGATECALL/
// STATICCALL/CREATE/CREATE2.
type EVM struct {
	Block BlockContext
	Tx    TxContext
	State *state.State
	Config

	jumpTable *JumpTable
	depth     int
}

// NewEVM builds an EVM ready to run frames against st.
func NewEVM(block BlockContext, tx TxContext, st *state.State, cfg Config) *EVM {
	return &EVM{
		Block:     block,
		Tx:        tx,
		State:     st,
		Config:    cfg,
		jumpTable: NewJumpTable(),
	}
}

// Frame is one activation of the interpreter: its own pc (held externally
// by the dispatch loop), stack, memory, logs, and return buffers, plus the
// contract under execution and whether it may mutate state.
type Frame struct {
	evm      *EVM
	Contract *Contract
	Stack    *Stack
	Memory   *Memory
	Logs     []Log

	ReturnValue   []byte
	LastSubReturn []byte

	Writable bool
	depth    int
}

func newFrame(evm *EVM, contract *Contract, writable bool, depth int) *Frame {
	return &Frame{
		evm:      evm,
		Contract: contract,
		Stack:    newStack(),
		Memory:   newMemory(),
		Writable: writable,
		depth:    depth,
	}
}

// Run executes code as a brand-new top-level frame: the single exported
// entry point matching spec.md §6.
func (evm *EVM) Run(code []byte, caller, address common.Address, value *uint256.Int, input []byte, writable bool) (*Result, error) {
	contract := newContract(caller, address, value, code, input)
	return evm.run(contract, input, writable, 0)
}

func (evm *EVM) run(contract *Contract, input []byte, writable bool, depth int) (*Result, error) {
	frame := newFrame(evm, contract, writable, depth)
	return runFrame(evm, frame, input)
}

// call is the shared sub-call implementation for CALL/CALLCODE/
// DELEGATECALL/STATICCALL, implementing the frame-derivation table of
// spec.md §4.5.
func (evm *EVM) call(kind OpCode, caller *Frame, addr common.Address, value *uint256.Int, input []byte, writable bool) ([]byte, bool) {
	if evm.depth+1 > maxCallDepth {
		return nil, false
	}

	var calleeAddr, calleeCaller common.Address
	var calleeValue *uint256.Int
	calleeWritable := writable

	switch kind {
	case CALL:
		calleeAddr = addr
		calleeCaller = caller.Contract.Address
		calleeValue = value
	case CALLCODE:
		calleeAddr = caller.Contract.Address
		calleeCaller = caller.Contract.Address
		calleeValue = value
	case DELEGATECALL:
		calleeAddr = caller.Contract.Address
		calleeCaller = caller.Contract.CallerAddress
		calleeValue = caller.Contract.Value
	case STATICCALL:
		calleeAddr = addr
		calleeCaller = caller.Contract.Address
		calleeValue = uint256.NewInt(0)
		calleeWritable = false
	}

	code := evm.State.GetCode(addr)

	snap := evm.State.Snapshot()
	if value != nil && !value.IsZero() && kind != STATICCALL && kind != DELEGATECALL {
		evm.State.SubBalance(caller.Contract.Address, value)
		evm.State.AddBalance(calleeAddr, value)
	}

	evm.depth++
	contract := newContract(calleeCaller, calleeAddr, calleeValue, code, input)
	sub, err := evm.run(contract, input, calleeWritable, evm.depth)
	evm.depth--

	if err != nil || !sub.Success {
		evm.State.RevertToSnapshot(snap)
		if sub != nil {
			return sub.ReturnData, false
		}
		return nil, false
	}
	return sub.ReturnData, true
}

// create is the shared sub-call implementation for CREATE/CREATE2.
func (evm *EVM) create(caller *Frame, value *uint256.Int, initcode []byte, salt *uint256.Int) (common.Address, bool) {
	if evm.depth+1 > maxCallDepth {
		return common.Address{}, false
	}

	nonce := evm.State.GetNonce(caller.Contract.Address)
	var newAddr common.Address
	if salt == nil {
		newAddr = crypto.CreateAddress(caller.Contract.Address, nonce)
	} else {
		saltBytes := salt.Bytes32()
		newAddr = crypto.CreateAddress2(caller.Contract.Address, saltBytes, crypto.Keccak256(initcode))
	}
	evm.State.SetNonce(caller.Contract.Address, nonce+1)

	snap := evm.State.Snapshot()
	if value != nil && !value.IsZero() {
		evm.State.SubBalance(caller.Contract.Address, value)
		evm.State.AddBalance(newAddr, value)
	}
	evm.State.CreateAccount(newAddr)
	evm.depth++
	contract := newContract(caller.Contract.Address, newAddr, value, initcode, nil)
	sub, err := evm.run(contract, nil, true, evm.depth)
	evm.depth--

	if err != nil || !sub.Success {
		evm.State.RevertToSnapshot(snap)
		return common.Address{}, false
	}
	evm.State.SetCode(newAddr, sub.ReturnData)
	return newAddr, true
}
