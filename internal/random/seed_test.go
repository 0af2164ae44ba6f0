package random

import (
	"bytes"
	"testing"
)

// TestNewSeedFromReadsLittleEndian pins the byte order of seeds.
func TestNewSeedFromReadsLittleEndian(t *testing.T) {
	seed, err := NewSeedFrom(bytes.NewReader([]byte{1, 0, 0, 0, 0, 0, 0, 0}))
	if err != nil {
		t.Fatalf("new seed: %v", err)
	}
	if seed != 1 {
		t.Fatalf("seed = %d, want 1", seed)
	}
}

// TestNewSeedFromShortRead verifies short reads fail.
func TestNewSeedFromShortRead(t *testing.T) {
	if _, err := NewSeedFrom(bytes.NewReader([]byte{1, 2, 3})); err == nil {
		t.Fatal("expected short read error")
	}
}

// TestNewSeedVaries checks fresh seeds differ.
func TestNewSeedVaries(t *testing.T) {
	first, err := NewSeed()
	if err != nil {
		t.Fatalf("new seed: %v", err)
	}
	for i := 0; i < 8; i++ {
		next, err := NewSeed()
		if err != nil {
			t.Fatalf("new seed: %v", err)
		}
		if next != first {
			return
		}
	}
	t.Fatal("expected crypto seeds to vary")
}
