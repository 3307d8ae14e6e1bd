// Package evmhash supplies the Keccak-256 primitive spec.md §6 requires
// the host environment to provide for SHA3 and EXTCODEHASH.
package evmhash

import "golang.org/x/crypto/sha3"

// Keccak256 returns the 32-byte Keccak-256 digest of data.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		h.Write(b)
	}
	return h.Sum(nil)
}
