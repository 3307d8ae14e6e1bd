package vm

import (
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/nimbusvm/evmcore/state"
)

func newTestEVM() *EVM {
	st := state.New()
	return NewEVM(BlockContext{}, TxContext{GasPrice: new(uint256.Int)}, st, Config{})
}

func runCode(t *testing.T, code []byte, input []byte) *Result {
	t.Helper()
	evm := newTestEVM()
	addr := common.HexToAddress("0x00000000000000000000000000000000000001")
	res, err := evm.Run(code, common.Address{}, addr, new(uint256.Int), input, true)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return res
}

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

// Scenario 1: 6001 6002 01 00 -> success, stack [0x3]
func TestScenarioAdd(t *testing.T) {
	code := hexBytes(t, "600160020100")
	res := runCode(t, code, nil)
	if !res.Success {
		t.Fatal("expected success")
	}
	if len(res.Stack) != 1 || res.Stack[0].Uint64() != 3 {
		t.Fatalf("unexpected stack: %v", res.Stack)
	}
}

// Scenario 2: 6005 6003 03 00 -> stack [2^256 - 2]
func TestScenarioSubUnderflowWraps(t *testing.T) {
	code := hexBytes(t, "600560030300")
	res := runCode(t, code, nil)
	if !res.Success {
		t.Fatal("expected success")
	}
	want := new(uint256.Int).Sub(uint256.NewInt(3), uint256.NewInt(5))
	if len(res.Stack) != 1 || !res.Stack[0].Eq(want) {
		t.Fatalf("unexpected stack: %v want %v", res.Stack, want)
	}
}

// Scenario 3: MSTORE 10 at offset 4; MLOAD 4 -> stack [0x0a]
func TestScenarioMstoreMload(t *testing.T) {
	code := hexBytes(t, "600a60045260045100")
	res := runCode(t, code, nil)
	if !res.Success {
		t.Fatal("expected success")
	}
	if len(res.Stack) != 1 || res.Stack[0].Uint64() != 10 {
		t.Fatalf("unexpected stack: %v", res.Stack)
	}
}

// Scenario 4: REVERT with empty payload -> success=false, return=0x
func TestScenarioRevertEmpty(t *testing.T) {
	code := hexBytes(t, "60006000fd")
	res := runCode(t, code, nil)
	if res.Success {
		t.Fatal("expected failure")
	}
	if len(res.ReturnData) != 0 {
		t.Fatalf("expected empty return data, got %x", res.ReturnData)
	}
}

// Scenario 5: one log, address = tx.address, data = 0x00...00ff (32
// bytes), topics = [].
func TestScenarioLog0(t *testing.T) {
	code := hexBytes(t, "60ff60005260206000a000")
	res := runCode(t, code, nil)
	if !res.Success {
		t.Fatal("expected success")
	}
	if len(res.Logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(res.Logs))
	}
	l := res.Logs[0]
	if len(l.Topics) != 0 {
		t.Fatalf("expected 0 topics, got %d", len(l.Topics))
	}
	if len(l.Data) != 32 || l.Data[31] != 0xff {
		t.Fatalf("unexpected log data: %x", l.Data)
	}
}

// Scenario 6: conditional JUMPI on 3 != 0 lands at JUMPDEST. The three
// PUSH1s leave [5,3,8] on the stack; JUMPI consumes the top two (d=8,
// cond=3) and takes the jump, leaving a single element (5) for the ADD
// that follows — one operand short, so the frame fails with a stack
// underflow rather than the clean success spec.md's prose suggests. See
// DESIGN.md for this Open Question resolution.
func TestScenarioJumpi(t *testing.T) {
	code := hexBytes(t, "60056003600857005b0100")
	res := runCode(t, code, nil)
	if res.Success {
		t.Fatal("expected stack underflow on the trailing ADD")
	}
}

// TestJumpiTakenBranch isolates the JUMP/JUMPDEST mechanics the scenario
// above exercises, without the trailing underflow.
func TestJumpiTakenBranch(t *testing.T) {
	// PUSH1 3 (cond), PUSH1 6 (dest, the JUMPDEST below), JUMPI, STOP,
	// JUMPDEST, STOP
	code := hexBytes(t, "6003600657005b00")
	res := runCode(t, code, nil)
	if !res.Success {
		t.Fatal("expected success")
	}
	if len(res.Stack) != 0 {
		t.Fatalf("expected empty stack, got %v", res.Stack)
	}
}

func TestDivByZero(t *testing.T) {
	code := hexBytes(t, "600060050400")
	res := runCode(t, code, nil)
	if !res.Success || res.Stack[0].Uint64() != 0 {
		t.Fatalf("expected DIV(5,0)==0, got %v", res.Stack)
	}
}

func TestShlPlainLogicalShift(t *testing.T) {
	// SHL(1, 1) == 2, exercising the fixed (non-masked) shift semantics.
	code := hexBytes(t, "600160011b00")
	res := runCode(t, code, nil)
	if !res.Success || res.Stack[0].Uint64() != 2 {
		t.Fatalf("expected SHL(1,1)==2, got %v", res.Stack)
	}
}

func TestInvalidJump(t *testing.T) {
	code := hexBytes(t, "60055600")
	res := runCode(t, code, nil)
	if res.Success {
		t.Fatal("expected invalid jump to fail the frame")
	}
}

func TestStaticContextRejectsSstore(t *testing.T) {
	evm := newTestEVM()
	addr := common.HexToAddress("0x0000000000000000000000000000000000000002")
	code := hexBytes(t, "600160005500")
	res, err := evm.Run(code, common.Address{}, addr, new(uint256.Int), nil, false)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Success {
		t.Fatal("expected SSTORE under writable=false to fail")
	}
}
