package state

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// State is the world state: a mutable mapping from address to account,
// shared by reference across call frames so that storage writes in a
// callee are observable to its caller (spec.md §3, §5).
//
// Snapshot/RevertToSnapshot keep a journal of full copies of the account
// map, taken eagerly at each Snapshot; a sub-call's failure restores
// exactly the state the sub-call observed on entry.
type State struct {
	accounts map[common.Address]*Account
	journal  []map[common.Address]*Account
}

// New returns an empty world state.
func New() *State {
	return &State{accounts: make(map[common.Address]*Account)}
}

func (s *State) getOrCreate(addr common.Address) *Account {
	acc, ok := s.accounts[addr]
	if !ok {
		acc = newAccount()
		s.accounts[addr] = acc
	}
	return acc
}

// CreateAccount ensures addr has an account entry, leaving any existing
// balance untouched.
func (s *State) CreateAccount(addr common.Address) {
	s.getOrCreate(addr)
}

// Exist reports whether addr has an account entry.
func (s *State) Exist(addr common.Address) bool {
	_, ok := s.accounts[addr]
	return ok
}

// GetBalance returns addr's balance, or 0 if it has no account.
func (s *State) GetBalance(addr common.Address) *uint256.Int {
	if acc, ok := s.accounts[addr]; ok {
		return new(uint256.Int).Set(acc.Balance)
	}
	return new(uint256.Int)
}

// SetBalance overwrites addr's balance.
func (s *State) SetBalance(addr common.Address, v *uint256.Int) {
	s.getOrCreate(addr).Balance = new(uint256.Int).Set(v)
}

// AddBalance credits addr's balance by v.
func (s *State) AddBalance(addr common.Address, v *uint256.Int) {
	acc := s.getOrCreate(addr)
	acc.Balance.Add(acc.Balance, v)
}

// SubBalance debits addr's balance by v.
func (s *State) SubBalance(addr common.Address, v *uint256.Int) {
	acc := s.getOrCreate(addr)
	acc.Balance.Sub(acc.Balance, v)
}

// GetNonce returns addr's nonce.
func (s *State) GetNonce(addr common.Address) uint64 {
	if acc, ok := s.accounts[addr]; ok {
		return acc.Nonce
	}
	return 0
}

// SetNonce overwrites addr's nonce.
func (s *State) SetNonce(addr common.Address, nonce uint64) {
	s.getOrCreate(addr).Nonce = nonce
}

// GetCode returns addr's code, or nil if it has none.
func (s *State) GetCode(addr common.Address) []byte {
	if acc, ok := s.accounts[addr]; ok {
		return acc.Code
	}
	return nil
}

// SetCode overwrites addr's code.
func (s *State) SetCode(addr common.Address, code []byte) {
	s.getOrCreate(addr).Code = code
}

// GetCodeSize returns len(GetCode(addr)).
func (s *State) GetCodeSize(addr common.Address) int {
	return len(s.GetCode(addr))
}

// GetState reads addr's storage at key, returning the zero word for an
// absent key (spec.md §3: "absent keys read as 0").
func (s *State) GetState(addr common.Address, key uint256.Int) uint256.Int {
	if acc, ok := s.accounts[addr]; ok {
		if v, ok := acc.Storage[key]; ok {
			return v
		}
	}
	return uint256.Int{}
}

// SetState writes addr's storage at key.
func (s *State) SetState(addr common.Address, key, value uint256.Int) {
	s.getOrCreate(addr).Storage[key] = value
}

// SelfDestruct transfers addr's entire balance to beneficiary and removes
// addr from world state, per spec.md §4.6.
func (s *State) SelfDestruct(addr, beneficiary common.Address) {
	acc, ok := s.accounts[addr]
	if !ok {
		return
	}
	if addr != beneficiary {
		s.AddBalance(beneficiary, acc.Balance)
	}
	delete(s.accounts, addr)
}

// Snapshot records the current state and returns an identifier that can
// later be passed to RevertToSnapshot.
func (s *State) Snapshot() int {
	clone := make(map[common.Address]*Account, len(s.accounts))
	for addr, acc := range s.accounts {
		clone[addr] = acc.clone()
	}
	s.journal = append(s.journal, clone)
	return len(s.journal) - 1
}

// RevertToSnapshot restores the state as it was when Snapshot returned id,
// discarding every mutation made since.
func (s *State) RevertToSnapshot(id int) {
	if id < 0 || id >= len(s.journal) {
		return
	}
	s.accounts = s.journal[id]
	s.journal = s.journal[:id]
}
