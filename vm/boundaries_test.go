package vm

import (
	"testing"

	"github.com/holiman/uint256"
)

// Boundaries from spec.md §8: DIV/MOD/ADDMOD by zero, SHL/SHR/SAR at and
// past 256, SIGNEXTEND(31, x), BYTE(32, x).

func TestModByZeroIsZero(t *testing.T) {
	// PUSH1 0, PUSH1 5, MOD, STOP -> MOD(5, 0) == 0
	code := hexBytes(t, "600060050600")
	res := runCode(t, code, nil)
	if !res.Success || res.Stack[0].Uint64() != 0 {
		t.Fatalf("expected MOD(5,0)==0, got %v", res.Stack)
	}
}

func TestAddmodWithZeroModulusIsZero(t *testing.T) {
	// ADDMOD(2, 3, 0): PUSH1 0 (n), PUSH1 3 (b), PUSH1 2 (a), ADDMOD
	code := hexBytes(t, "6000600360020800")
	res := runCode(t, code, nil)
	if !res.Success || res.Stack[0].Uint64() != 0 {
		t.Fatalf("expected ADDMOD(2,3,0)==0, got %v", res.Stack)
	}
}

func TestMulmodWithZeroModulusIsZero(t *testing.T) {
	code := hexBytes(t, "6000600360020900")
	res := runCode(t, code, nil)
	if !res.Success || res.Stack[0].Uint64() != 0 {
		t.Fatalf("expected MULMOD(2,3,0)==0, got %v", res.Stack)
	}
}

func TestShlAtBoundaryIsZero(t *testing.T) {
	// SHL(256, 1): PUSH1 1, PUSH2 0x0100, SHL
	code := hexBytes(t, "6001610100" + "1b" + "00")
	res := runCode(t, code, nil)
	if !res.Success || !res.Stack[0].IsZero() {
		t.Fatalf("expected SHL(256,x)==0, got %v", res.Stack)
	}
}

func TestShrAtBoundaryIsZero(t *testing.T) {
	code := hexBytes(t, "6001610100" + "1c" + "00")
	res := runCode(t, code, nil)
	if !res.Success || !res.Stack[0].IsZero() {
		t.Fatalf("expected SHR(256,x)==0, got %v", res.Stack)
	}
}

func TestSarPastBoundaryPositiveIsZero(t *testing.T) {
	// SAR(256, 1): positive value -> 0
	code := hexBytes(t, "6001610100" + "1d" + "00")
	res := runCode(t, code, nil)
	if !res.Success || !res.Stack[0].IsZero() {
		t.Fatalf("expected SAR(256, positive)==0, got %v", res.Stack)
	}
}

func TestSarPastBoundaryNegativeIsAllOnes(t *testing.T) {
	// PUSH32 all-ones (negative in two's complement), PUSH2 256, SAR
	code := append([]byte{byte(PUSH32)}, make([]byte, 32)...)
	for i := range code[1:] {
		code[i+1] = 0xff
	}
	code = append(code, byte(PUSH2), 0x01, 0x00, byte(SAR), byte(STOP))
	res := runCode(t, code, nil)
	if !res.Success {
		t.Fatal("expected success")
	}
	allOnes := new(uint256.Int).Not(new(uint256.Int))
	if !res.Stack[0].Eq(allOnes) {
		t.Fatalf("expected SAR(256, negative)==2^256-1, got %v", res.Stack[0].Hex())
	}
}

func TestSignExtend31IsNoop(t *testing.T) {
	// SIGNEXTEND(31, X) == X for any X
	code := hexBytes(t, "60ab" + "601f" + "0b" + "00")
	res := runCode(t, code, nil)
	if !res.Success || res.Stack[0].Uint64() != 0xab {
		t.Fatalf("expected SIGNEXTEND(31,0xab)==0xab, got %v", res.Stack)
	}
}

func TestSignExtendNegativeByte(t *testing.T) {
	// SIGNEXTEND(0, 0xff) sign-extends the low byte 0xff (negative) to all ones.
	code := hexBytes(t, "60ff" + "6000" + "0b" + "00")
	res := runCode(t, code, nil)
	if !res.Success {
		t.Fatal("expected success")
	}
	allOnes := new(uint256.Int).Not(new(uint256.Int))
	if !res.Stack[0].Eq(allOnes) {
		t.Fatalf("expected sign-extended 0xff to be all ones, got %v", res.Stack[0].Hex())
	}
}

func TestByteOutOfRangeIsZero(t *testing.T) {
	// BYTE(32, X) == 0 for any X: PUSH1 1, PUSH1 32, BYTE
	code := hexBytes(t, "6001" + "6020" + "1a" + "00")
	res := runCode(t, code, nil)
	if !res.Success || !res.Stack[0].IsZero() {
		t.Fatalf("expected BYTE(32,x)==0, got %v", res.Stack)
	}
}

func TestPushRoundTripAllSizes(t *testing.T) {
	for n := 1; n <= 32; n++ {
		op := byte(PUSH1) + byte(n-1)
		imm := make([]byte, n)
		for i := range imm {
			imm[i] = byte(i + 1)
		}
		code := append([]byte{op}, imm...)
		code = append(code, byte(STOP))
		res := runCode(t, code, nil)
		if !res.Success {
			t.Fatalf("PUSH%d: expected success", n)
		}
		want := new(uint256.Int).SetBytes(imm)
		if !res.Stack[0].Eq(want) {
			t.Fatalf("PUSH%d: got %v want %v", n, res.Stack[0].Hex(), want.Hex())
		}
	}
}

func TestDup1PopIsNoop(t *testing.T) {
	// PUSH1 5, DUP1, POP, STOP -> stack [5]
	code := hexBytes(t, "6005" + "80" + "50" + "00")
	res := runCode(t, code, nil)
	if !res.Success || len(res.Stack) != 1 || res.Stack[0].Uint64() != 5 {
		t.Fatalf("expected [5] after DUP1;POP, got %v", res.Stack)
	}
}

func TestMsizeIsAlwaysWordAligned(t *testing.T) {
	// MSTORE8 at offset 0, then MSIZE
	code := hexBytes(t, "6001" + "6000" + "53" + "59" + "00")
	res := runCode(t, code, nil)
	if !res.Success {
		t.Fatal("expected success")
	}
	if res.Stack[0].Uint64()%32 != 0 {
		t.Fatalf("expected msize to be word-aligned, got %v", res.Stack[0].Uint64())
	}
	if res.Stack[0].Uint64() != 32 {
		t.Fatalf("expected msize==32 after touching byte 0, got %v", res.Stack[0].Uint64())
	}
}

func TestStackOverflow(t *testing.T) {
	code := make([]byte, 0, (stackLimit+1)*2+1)
	for i := 0; i < stackLimit+1; i++ {
		code = append(code, byte(PUSH1), 0x01)
	}
	code = append(code, byte(STOP))
	res := runCode(t, code, nil)
	if res.Success {
		t.Fatal("expected stack overflow to fail the frame")
	}
}

func TestUnknownOpcodeIsNoop(t *testing.T) {
	// 0x0c is unassigned; it must execute as a silent no-op, not an error.
	code := hexBytes(t, "600160020c00")
	res := runCode(t, code, nil)
	if !res.Success {
		t.Fatal("expected unknown opcode to be a no-op, not a failure")
	}
	if len(res.Stack) != 2 {
		t.Fatalf("expected untouched stack of 2, got %v", res.Stack)
	}
}

func TestInvalidOpcodeFails(t *testing.T) {
	code := hexBytes(t, "fe")
	res := runCode(t, code, nil)
	if res.Success {
		t.Fatal("expected INVALID to fail the frame")
	}
}

func TestDeterminismOfPureArithmetic(t *testing.T) {
	// PUSH1 9, PUSH1 10, MUL, PUSH1 7, ADD, STOP -> deterministic result
	code := hexBytes(t, "6009600a0260070100")
	res1 := runCode(t, code, nil)
	res2 := runCode(t, code, nil)
	if !res1.Success || !res2.Success {
		t.Fatal("expected success")
	}
	if len(res1.Stack) != len(res2.Stack) {
		t.Fatalf("nondeterministic stack length: %v vs %v", res1.Stack, res2.Stack)
	}
	for i := range res1.Stack {
		if !res1.Stack[i].Eq(&res2.Stack[i]) {
			t.Fatalf("nondeterministic result at %d: %v vs %v", i, res1.Stack[i], res2.Stack[i])
		}
	}
}
