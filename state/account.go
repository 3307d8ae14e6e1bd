package state

import "github.com/holiman/uint256"

// Account is one entry of the world state: a balance, a nonce, immutable
// code, and a persistent word-to-word storage map, per spec.md §3.
type Account struct {
	Balance *uint256.Int
	Nonce   uint64
	Code    []byte
	Storage map[uint256.Int]uint256.Int
}

func newAccount() *Account {
	return &Account{
		Balance: new(uint256.Int),
		Storage: make(map[uint256.Int]uint256.Int),
	}
}

func (a *Account) clone() *Account {
	cp := &Account{
		Balance: new(uint256.Int).Set(a.Balance),
		Nonce:   a.Nonce,
		Code:    a.Code, // immutable, shareable per spec.md §5
		Storage: make(map[uint256.Int]uint256.Int, len(a.Storage)),
	}
	for k, v := range a.Storage {
		cp.Storage[k] = v
	}
	return cp
}
