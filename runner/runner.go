// Package runner adapts Gealber-evm-simulator/simulator/simulator.go's
// Simulator.SimulateBundle: execute a sequence of fixtures against one
// shared, evolving state, carrying mutations from one fixture to the
// next. The teacher's version re-derives state from a fresh access-list
// every iteration to optimize a live RPC-backed gas estimate; this
// module has no chain to fork from and no gas to estimate, so it keeps
// the single idea worth keeping — "one state, many executions in
// sequence" — and drops the two-pass access-list machinery entirely.
package runner

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/nimbusvm/evmcore/fixture"
	"github.com/nimbusvm/evmcore/runtime"
	"github.com/nimbusvm/evmcore/state"
	"github.com/nimbusvm/evmcore/vm"
)

// Outcome is one fixture's result paired with the fixture it came from.
type Outcome struct {
	Fixture *fixture.Fixture
	Result  *vm.Result
}

// Run executes fixtures in order against a single, shared world state,
// returning one Outcome per fixture. An error from any fixture aborts the
// remaining run.
func Run(fixtures []*fixture.Fixture, st *state.State) ([]*Outcome, error) {
	if st == nil {
		st = state.New()
	}
	outcomes := make([]*Outcome, 0, len(fixtures))
	for i, fx := range fixtures {
		seedState(st, fx)

		cfg := configFromFixture(fx)
		addr := contractAddress(fx)
		code := fx.Code
		if len(code) == 0 {
			code = st.GetCode(addr)
		}
		input := []byte(nil)
		if fx.Tx != nil {
			input = fx.Tx.Data
		}

		result, err := runtime.Execute(addr, code, input, cfg, st)
		if err != nil {
			return outcomes, fmt.Errorf("fixture %d: %w", i, err)
		}
		outcomes = append(outcomes, &Outcome{Fixture: fx, Result: result.Result})
	}
	return outcomes, nil
}

// seedState applies a fixture's optional "state" section to st before
// running it, so a bundle's later fixtures can observe storage seeded (or
// left behind) by earlier ones.
func seedState(st *state.State, fx *fixture.Fixture) {
	for addr, acc := range fx.State {
		st.CreateAccount(addr)
		if acc.Balance != nil {
			st.SetBalance(addr, uint256.MustFromBig(acc.Balance.ToInt()))
		}
		if len(acc.Code) > 0 {
			st.SetCode(addr, acc.Code)
		}
		if acc.Nonce != 0 {
			st.SetNonce(addr, uint64(acc.Nonce))
		}
		for k, v := range acc.Storage {
			st.SetState(addr, *uint256.MustFromBig(k.Big()), *uint256.MustFromBig(v.Big()))
		}
	}
}

func contractAddress(fx *fixture.Fixture) common.Address {
	if fx.Tx != nil && fx.Tx.To != nil {
		return *fx.Tx.To
	}
	return common.Address{}
}

func configFromFixture(fx *fixture.Fixture) *runtime.Config {
	cfg := &runtime.Config{}
	if fx.Tx != nil {
		if fx.Tx.Origin != nil {
			cfg.Origin = *fx.Tx.Origin
		}
		if fx.Tx.GasPrice != nil {
			cfg.GasPrice = uint256.MustFromBig(fx.Tx.GasPrice.ToInt())
		}
		if fx.Tx.Value != nil {
			cfg.Value = uint256.MustFromBig(fx.Tx.Value.ToInt())
		}
	}
	if fx.Block != nil {
		if fx.Block.Coinbase != nil {
			cfg.Coinbase = *fx.Block.Coinbase
		}
		if fx.Block.BaseFee != nil {
			cfg.BaseFee = uint256.MustFromBig(fx.Block.BaseFee.ToInt())
		}
		cfg.Time = uint64(fx.Block.Timestamp)
		if fx.Block.Number != nil {
			cfg.BlockNumber = uint256.MustFromBig(fx.Block.Number.ToInt())
		}
		if fx.Block.Difficulty != nil {
			cfg.Difficulty = uint256.MustFromBig(fx.Block.Difficulty.ToInt())
		}
		cfg.GasLimit = uint64(fx.Block.GasLimit)
		if fx.Block.ChainID != nil {
			cfg.ChainID = uint256.MustFromBig(fx.Block.ChainID.ToInt())
		}
	}
	runtime.SetDefaults(cfg)
	return cfg
}
