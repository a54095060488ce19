package util

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed draws a seed from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// New returns a deterministic source for seed. Seed 0 asks for a fresh
// crypto seed, which is returned so a match can be reproduced.
func New(seed int64) (*rand.Rand, int64, error) {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			return nil, 0, err
		}
		if s == 0 {
			s = 1
		}
		seed = s
	}
	return rand.New(rand.NewSource(seed)), seed, nil
}
