package packs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amigotrunfo/trunfo/trunfo/cards"
	"github.com/amigotrunfo/trunfo/trunfo/logger"
	"github.com/amigotrunfo/trunfo/trunfo/random"
)

// Store is the persistence the pack service depends on.
type Store interface {
	ListNPCPool(ctx context.Context) ([]cards.Card, error)
	GetProgress(ctx context.Context, profileID string) (cards.Progress, error)
	// CommitPack links every drawn card to the profile and decrements
	// packs_available by one, atomically. It returns the packs left.
	CommitPack(ctx context.Context, profileID string, drawn []cards.Card) (int, error)
}

// Result is a committed pack.
type Result struct {
	Cards          []cards.Card `json:"cards"`
	PacksRemaining int          `json:"packs_remaining"`
}

type Service struct {
	store    Store
	rng      random.Source
	locker   *Locker
	packSize int
}

func NewService(store Store, rng random.Source, locker *Locker, packSize int) *Service {
	return &Service{
		store:    store,
		rng:      rng,
		locker:   locker,
		packSize: packSize,
	}
}

// Open draws one pack for profileID and commits it. Nothing is committed
// when the pool is empty or the profile has no packs.
func (s *Service) Open(ctx context.Context, profileID string) (*Result, error) {
	sess, ok := s.locker.Lock(profileID)
	if !ok {
		return nil, ErrDrawInProgress
	}
	defer s.locker.Release(profileID, sess)

	start := time.Now()

	progress, err := s.store.GetProgress(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	if progress.PacksAvailable <= 0 {
		return nil, ErrNoPacksAvailable
	}

	pool, err := s.store.ListNPCPool(ctx)
	if err != nil {
		return nil, fmt.Errorf("list npc pool: %w", err)
	}

	drawn, err := Draw(pool, s.packSize, s.rng)
	if err != nil {
		return nil, err
	}

	remaining, err := s.store.CommitPack(ctx, profileID, drawn)
	if err != nil {
		return nil, fmt.Errorf("commit pack: %w", err)
	}

	logger.LogGame("Pack opened",
		slog.String("profile_id", profileID),
		slog.Int("cards", len(drawn)),
		slog.Int("packs_remaining", remaining),
		slog.Duration("took", time.Since(start)))

	return &Result{Cards: drawn, PacksRemaining: remaining}, nil
}
