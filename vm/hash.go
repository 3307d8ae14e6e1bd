package vm

import "github.com/nimbusvm/evmcore/evmhash"

// keccakSum is the host-supplied Keccak-256 primitive spec.md §6 requires
// for SHA3 and EXTCODEHASH.
func keccakSum(data []byte) []byte {
	return evmhash.Keccak256(data)
}
