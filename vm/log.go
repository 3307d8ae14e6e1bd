package vm

import "github.com/ethereum/go-ethereum/common"

// Log is one append-only log record emitted by a LOGn opcode.
type Log struct {
	Address common.Address
	Topics  []common.Hash
	Data    []byte
}
