// Package random provides the injectable randomness used by the card engine.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"
)

// Source abstracts random number generation for deterministic testing.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
	// Float64 returns a random float in [0.0, 1.0).
	Float64() float64
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// NewSeeded returns a PCG-backed source for the given seed.
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// New returns a source seeded from crypto/rand.
func New() (*rand.Rand, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewSeeded(seed), nil
}

// Locked serializes access to a Source shared between goroutines.
type Locked struct {
	mu  sync.Mutex
	src Source
}

func NewLocked(src Source) *Locked {
	return &Locked{src: src}
}

func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}
