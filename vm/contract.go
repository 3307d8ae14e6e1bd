package vm

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Contract is the executing code, its immutable call frame arguments, and
// the cached result of its jump-destination analysis.
type Contract struct {
	CallerAddress common.Address
	Address       common.Address
	Value         *uint256.Int
	Code          []byte
	Input         []byte

	jumpdests map[uint64]struct{}
	analyzed  bool
}

func newContract(caller, address common.Address, value *uint256.Int, code, input []byte) *Contract {
	return &Contract{
		CallerAddress: caller,
		Address:       address,
		Value:         value,
		Code:          code,
		Input:         input,
	}
}

// GetOp returns the opcode at position n, or STOP past the end of code —
// matching the EVM convention that execution "falls off the end" cleanly.
func (c *Contract) GetOp(n uint64) OpCode {
	if n < uint64(len(c.Code)) {
		return OpCode(c.Code[n])
	}
	return STOP
}

// validJumpdest reports whether dest is a JUMPDEST not embedded in a PUSH
// immediate, per spec.md's valid-jump-destination set. The analysis runs
// once per contract and is cached.
func (c *Contract) validJumpdest(dest uint64) bool {
	if !c.analyzed {
		c.analyzeJumpdests()
	}
	if dest >= uint64(len(c.Code)) {
		return false
	}
	_, ok := c.jumpdests[dest]
	return ok
}

func (c *Contract) analyzeJumpdests() {
	c.jumpdests = make(map[uint64]struct{})
	code := c.Code
	for pc := uint64(0); pc < uint64(len(code)); pc++ {
		op := OpCode(code[pc])
		if op == JUMPDEST {
			c.jumpdests[pc] = struct{}{}
			continue
		}
		if op.IsPush() {
			pc += uint64(op-PUSH1) + 1
		}
	}
	c.analyzed = true
}
