// Package fixture loads the JSON test-fixture format described in
// spec.md §6, adapted from Gealber-evm-simulator/rpc/rpc.go's JSON
// request/response envelope idiom — the same marshal/unmarshal-typed-
// struct-plus-hex-string approach, retargeted from an HTTP RPC transport
// to plain file reads, since this module has no chain to fork from.
package fixture

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// AccountState is one entry of the fixture's optional "state" map.
type AccountState struct {
	Balance *hexutil.Big               `json:"balance,omitempty"`
	Nonce   hexutil.Uint64              `json:"nonce,omitempty"`
	Code    hexutil.Bytes               `json:"code,omitempty"`
	Storage map[common.Hash]common.Hash `json:"storage,omitempty"`
}

// TxFixture is the optional "tx" object of a fixture.
type TxFixture struct {
	To       *common.Address `json:"to,omitempty"`
	From     *common.Address `json:"from,omitempty"`
	Origin   *common.Address `json:"origin,omitempty"`
	GasPrice *hexutil.Big    `json:"gasprice,omitempty"`
	Value    *hexutil.Big    `json:"value,omitempty"`
	Data     hexutil.Bytes   `json:"data,omitempty"`
}

// BlockFixture is the optional "block" object of a fixture.
type BlockFixture struct {
	Coinbase   *common.Address `json:"coinbase,omitempty"`
	BaseFee    *hexutil.Big    `json:"basefee,omitempty"`
	Timestamp  hexutil.Uint64  `json:"timestamp,omitempty"`
	Number     *hexutil.Big    `json:"number,omitempty"`
	Difficulty *hexutil.Big    `json:"difficulty,omitempty"`
	GasLimit   hexutil.Uint64  `json:"gaslimit,omitempty"`
	ChainID    *hexutil.Big    `json:"chainid,omitempty"`
}

// ExpectedLog is one entry of the fixture's "expect.logs" array.
type ExpectedLog struct {
	Address common.Address `json:"address"`
	Data    hexutil.Bytes  `json:"data"`
	Topics  []common.Hash  `json:"topics"`
}

// Expectation is the fixture's required "expect" object.
type Expectation struct {
	Success bool           `json:"success"`
	Stack   []hexutil.Big  `json:"stack,omitempty"`
	Return  hexutil.Bytes  `json:"return,omitempty"`
	Logs    []ExpectedLog  `json:"logs,omitempty"`
}

// Fixture is one complete test case per spec.md §6's fixture format.
type Fixture struct {
	Code   hexutil.Bytes                    `json:"code.bin"`
	Tx     *TxFixture                        `json:"tx,omitempty"`
	Block  *BlockFixture                     `json:"block,omitempty"`
	State  map[common.Address]*AccountState `json:"state,omitempty"`
	Expect Expectation                       `json:"expect"`
}

// Parse decodes a single fixture from raw JSON bytes.
func Parse(data []byte) (*Fixture, error) {
	var fx Fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &fx, nil
}

// ParseBundle decodes a JSON array of fixtures, for the batch runner.
func ParseBundle(data []byte) ([]*Fixture, error) {
	var fixtures []*Fixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("parse fixture bundle: %w", err)
	}
	return fixtures, nil
}
