// Package random provides cryptographic seed generation helpers.
//
// Seeds drawn here initialize the math/rand sources behind dice rolls, so a
// demo gets fresh entropy per run while tests can still pin a seed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	return NewSeedFrom(crand.Reader)
}

// NewSeedFrom reads a little-endian int64 seed from r.
func NewSeedFrom(r io.Reader) (int64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
