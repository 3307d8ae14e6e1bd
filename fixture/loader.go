package fixture

import (
	"fmt"
	"os"
)

// Load reads and parses a single fixture file from disk, in the same
// read-then-unmarshal shape Gealber-evm-simulator/rpc/rpc.go used for an
// HTTP response body.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	return Parse(data)
}

// LoadBundle reads and parses a JSON array of fixtures from disk.
func LoadBundle(path string) ([]*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture bundle %s: %w", path, err)
	}
	return ParseBundle(data)
}
