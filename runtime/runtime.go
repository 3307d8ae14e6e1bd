// Copyright 2015 The go-ethereum Authors
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

// Package runtime is the top-level Execute wrapper, adapted from
// Gealber-evm-simulator/vm/runtime/runtime.go's Config/SetDefaults/Execute
// shape. Unlike the teacher's version, this Config carries no gas-market
// or chain-config fields (gas is an explicit non-goal) and Execute drives
// this module's own vm.EVM rather than go-ethereum's core/vm.
package runtime

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/nimbusvm/evmcore/state"
	"github.com/nimbusvm/evmcore/vm"
)

// Config specifies the transaction and block context an Execute call runs
// under, along with the debug tracer hook.
type Config struct {
	Origin      common.Address
	Coinbase    common.Address
	BlockNumber *uint256.Int
	Time        uint64
	Difficulty  *uint256.Int
	GasLimit    uint64
	GasPrice    *uint256.Int
	BaseFee     *uint256.Int
	ChainID     *uint256.Int
	Value       *uint256.Int

	// ReadOnly forces a static (writable=false) top-level call. The
	// zero value runs writable, matching spec.md §6's default.
	ReadOnly bool

	EVMConfig vm.Config
}

// SetDefaults fills in zero-value fields with the same unbounded-resource
// defaults the teacher's SetDefaults used for its gas-market fields,
// adapted to this module's much smaller field set.
func SetDefaults(cfg *Config) {
	if cfg.Difficulty == nil {
		cfg.Difficulty = new(uint256.Int)
	}
	if cfg.GasPrice == nil {
		cfg.GasPrice = new(uint256.Int)
	}
	if cfg.Value == nil {
		cfg.Value = new(uint256.Int)
	}
	if cfg.BlockNumber == nil {
		cfg.BlockNumber = new(uint256.Int)
	}
	if cfg.BaseFee == nil {
		cfg.BaseFee = new(uint256.Int)
	}
	if cfg.ChainID == nil {
		cfg.ChainID = uint256.NewInt(1)
	}
	if cfg.GasLimit == 0 {
		cfg.GasLimit = ^uint64(0)
	}
}

// ExecutionResult is what Execute reports back: the interpreter result
// plus which address the code ran at. Unlike the teacher's
// ExecutionResult, there is no GasUsed/Refund/IntrinsicGas — gas is not a
// tracked resource here.
type ExecutionResult struct {
	*vm.Result
	Address common.Address
}

// Execute sets up an EVM over st and runs code at address with the given
// input, mirroring the teacher's own Execute but against an explicitly
// supplied *state.State instead of a forked go-ethereum StateDB.
func Execute(address common.Address, code, input []byte, cfg *Config, st *state.State) (*ExecutionResult, error) {
	if cfg == nil {
		cfg = new(Config)
	}
	SetDefaults(cfg)

	if st == nil {
		return nil, errors.New("runtime: state is required")
	}

	if !st.Exist(address) {
		st.CreateAccount(address)
		st.SetCode(address, code)
	}

	block := vm.BlockContext{
		Coinbase:    cfg.Coinbase,
		GasLimit:    cfg.GasLimit,
		BlockNumber: cfg.BlockNumber,
		Time:        cfg.Time,
		Difficulty:  cfg.Difficulty,
		BaseFee:     cfg.BaseFee,
		ChainID:     cfg.ChainID,
	}
	tx := vm.TxContext{
		Origin:   cfg.Origin,
		GasPrice: cfg.GasPrice,
	}

	evm := vm.NewEVM(block, tx, st, cfg.EVMConfig)
	result, err := evm.Run(code, cfg.Origin, address, cfg.Value, input, !cfg.ReadOnly)
	if err != nil {
		return nil, err
	}
	return &ExecutionResult{Result: result, Address: address}, nil
}
