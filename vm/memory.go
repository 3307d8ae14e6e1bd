package vm

import "github.com/holiman/uint256"

// Memory is a byte-addressable, zero-extended, word-aligned volatile
// buffer, reset per frame.
type Memory struct {
	store []byte
}

func newMemory() *Memory {
	return &Memory{}
}

// Len returns the current size of memory in bytes (always a multiple of
// 32 once anything has been touched).
func (m *Memory) Len() int {
	return len(m.store)
}

// Data returns the raw backing buffer. Callers must not retain it past the
// frame's lifetime.
func (m *Memory) Data() []byte {
	return m.store
}

// Resize grows memory to at least size bytes, zero-filling the new
// region. It never shrinks.
func (m *Memory) Resize(size uint64) {
	if uint64(len(m.store)) >= size {
		return
	}
	grown := make([]byte, size)
	copy(grown, m.store)
	m.store = grown
}

// wordAligned rounds size up to the next multiple of 32, per spec.md's
// msize rule.
func wordAligned(size uint64) uint64 {
	if size == 0 {
		return 0
	}
	return ((size + 31) / 32) * 32
}

// Set writes value into memory at offset, resizing as needed.
func (m *Memory) Set(offset, size uint64, value []byte) {
	if size == 0 {
		return
	}
	m.Resize(wordAligned(offset + size))
	copy(m.store[offset:offset+size], value)
}

// Set32 writes val as a 32-byte big-endian word at offset.
func (m *Memory) Set32(offset uint64, val *uint256.Int) {
	m.Resize(wordAligned(offset + 32))
	b := val.Bytes32()
	copy(m.store[offset:offset+32], b[:])
}

// SetByte writes the single low byte of val at offset (MSTORE8).
func (m *Memory) SetByte(offset uint64, val byte) {
	m.Resize(wordAligned(offset + 1))
	m.store[offset] = val
}

// Get returns a fresh copy of size bytes starting at offset, zero-extended
// past the end of memory; it does not grow memory (pure read).
func (m *Memory) Get(offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	out := make([]byte, size)
	if offset >= uint64(len(m.store)) {
		return out
	}
	end := offset + size
	if end > uint64(len(m.store)) {
		end = uint64(len(m.store))
	}
	copy(out, m.store[offset:end])
	return out
}

// GetPtr returns a slice view of size bytes at offset, growing memory
// first if needed (used by opcodes that read after guaranteeing the
// region exists, e.g. MLOAD).
func (m *Memory) GetPtr(offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	m.Resize(wordAligned(offset + size))
	return m.store[offset : offset+size]
}
