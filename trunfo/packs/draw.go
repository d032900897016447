// Package packs draws NPC cards into packs and commits them to a profile.
package packs

import (
	"errors"

	"github.com/amigotrunfo/trunfo/trunfo/cards"
	"github.com/amigotrunfo/trunfo/trunfo/random"
)

var (
	ErrEmptyPool        = errors.New("npc pool is empty")
	ErrNoPacksAvailable = errors.New("no packs available")
	ErrDrawInProgress   = errors.New("a pack is already being opened for this profile")
	ErrInvalidCount     = errors.New("pack size must be at least 1")
)

// Draw returns min(count, len(pool)) cards sampled without replacement.
// It permutes a copy of the pool with Fisher-Yates and takes the prefix,
// so every pool member is equally likely in every slot.
func Draw(pool []cards.Card, count int, rng random.Source) ([]cards.Card, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	if count < 1 {
		return nil, ErrInvalidCount
	}

	shuffled := make([]cards.Card, len(pool))
	copy(shuffled, pool)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled[:min(count, len(shuffled))], nil
}
