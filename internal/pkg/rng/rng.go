// Package rng provides seedable random sources that satisfy the rpg-toolkit
// dice.Roller interface, so combat can be replayed from a seed.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-duel/internal/errors"
)

// SeededRoller rolls dice from a math/rand source seeded at construction.
// Two rollers built from the same seed produce the same sequence.
type SeededRoller struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed int64
}

var _ dice.Roller = (*SeededRoller)(nil)

// NewSeeded creates a roller for the given seed
func NewSeeded(seed int64) *SeededRoller {
	return &SeededRoller{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the roller was built from
func (r *SeededRoller) Seed() int64 {
	return r.seed
}

// Roll returns a value in [1, size]
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rng.Intn(size) + 1, nil
}

// RollN rolls count dice of the given size. Zero dice is an empty roll.
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative, got %d", count)
	}
	if size <= 0 {
		return nil, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	results := make([]int, count)
	for i := range results {
		results[i] = r.rng.Intn(size) + 1
	}
	return results, nil
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, errors.Wrap(err, "failed to read random seed")
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
