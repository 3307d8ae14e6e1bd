// Copyright 2014 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package vm

// runFrame is the fetch/decode/dispatch loop. One opcode is decoded per
// step. After the handler runs, pc advances by one, except: PUSHn (the
// handler itself consumes its immediate bytes and advances pc further),
// JUMP/JUMPI on a taken branch (the handler sets pc directly; the
// dispatcher still applies the +1 afterward), and halts (pc is forced to
// len(code) by returning immediately). Unrecognized opcodes are silent
// no-ops; INVALID always fails.
func runFrame(evm *EVM, frame *Frame, input []byte) (*Result, error) {
	contract := frame.Contract
	code := contract.Code

	var pc uint64
	for pc < uint64(len(code)) {
		op := contract.GetOp(pc)
		opFn := evm.jumpTable[op]

		if evm.Tracer != nil {
			evm.Tracer.OnStep(pc, op, frame.Stack.Len(), frame.Memory.Len(), frame.depth)
		}

		if opFn == nil {
			// Unrecognized opcode: silent no-op, per spec.md §4.1.
			pc++
			continue
		}

		if err := frame.Stack.require(opFn.minStack); err != nil {
			return &Result{Success: false}, nil
		}
		if opFn.maxStack > 0 && frame.Stack.Len() > opFn.maxStack {
			return &Result{Success: false}, nil
		}
		if opFn.writes && !frame.Writable {
			return &Result{Success: false}, nil
		}

		ret, err := opFn.execute(&pc, frame)
		if err != nil {
			if err == ErrExecutionReverted {
				return &Result{Success: false, ReturnData: ret}, nil
			}
			return &Result{Success: false}, nil
		}

		if opFn.halts {
			frame.ReturnValue = ret
			return &Result{
				Success:    true,
				Stack:      frame.Stack.Data(),
				ReturnData: ret,
				Logs:       frame.Logs,
			}, nil
		}

		pc++
	}

	// Fell off the end of code: clean halt, same as STOP.
	return &Result{
		Success: true,
		Stack:   frame.Stack.Data(),
		Logs:    frame.Logs,
	}, nil
}
