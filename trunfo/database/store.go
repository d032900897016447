package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amigotrunfo/trunfo/trunfo/battle"
	"github.com/amigotrunfo/trunfo/trunfo/cards"
	"github.com/amigotrunfo/trunfo/trunfo/database/models"
	"github.com/amigotrunfo/trunfo/trunfo/database/repositories"
	"github.com/amigotrunfo/trunfo/trunfo/logger"
	"github.com/amigotrunfo/trunfo/trunfo/onboarding"
	"github.com/amigotrunfo/trunfo/trunfo/packs"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

var ErrNotFound = repositories.ErrNotFound

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

var (
	_ packs.Store      = (*Store)(nil)
	_ battle.Store     = (*Store)(nil)
	_ onboarding.Store = (*Store)(nil)
)

// ProfileView is a profile with its collection, avatar first.
type ProfileView struct {
	ID       string
	Username string
	Progress cards.Progress
	Cards    []cards.Card
}

type Store struct {
	db        *bun.DB
	tx        *TxManager
	cards     repositories.CardRepository
	profiles  repositories.ProfileRepository
	userCards repositories.UserCardRepository
	pool      *repositories.NPCPoolCache
}

func NewStore(db *DB, poolCacheTTL time.Duration) *Store {
	bunDB := db.BunDB()
	cardRepo := repositories.NewCardRepository(bunDB)
	return &Store{
		db:        bunDB,
		tx:        NewTxManager(bunDB),
		cards:     cardRepo,
		profiles:  repositories.NewProfileRepository(bunDB),
		userCards: repositories.NewUserCardRepository(bunDB),
		pool:      repositories.NewNPCPoolCache(cardRepo, poolCacheTTL),
	}
}

func (s *Store) ListNPCPool(ctx context.Context) ([]cards.Card, error) {
	rows, err := s.pool.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]cards.Card, len(rows))
	for i, r := range rows {
		out[i] = r.ToDomain()
	}
	return out, nil
}

func (s *Store) GetProgress(ctx context.Context, profileID string) (cards.Progress, error) {
	p, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return cards.Progress{}, err
	}
	return p.Progress(), nil
}

// CommitPack links the drawn cards and consumes one pack in a single
// transaction. A profile that ran out of packs meanwhile aborts it.
func (s *Store) CommitPack(ctx context.Context, profileID string, drawn []cards.Card) (int, error) {
	var remaining int
	err := s.tx.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var err error
		remaining, err = repositories.NewProfileRepository(tx).ConsumePack(ctx, profileID)
		if errors.Is(err, repositories.ErrNoPacksAvailable) {
			return packs.ErrNoPacksAvailable
		}
		if err != nil {
			return fmt.Errorf("consume pack: %w", err)
		}

		userCards := repositories.NewUserCardRepository(tx)
		for _, c := range drawn {
			if err := userCards.AddCard(ctx, profileID, c.ID, false); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return remaining, nil
}

func (s *Store) GetOwnedCard(ctx context.Context, profileID string, cardID int64) (cards.Card, error) {
	uc, err := s.userCards.GetOwned(ctx, profileID, cardID)
	if errors.Is(err, repositories.ErrNotFound) {
		return cards.Card{}, battle.ErrCardNotOwned
	}
	if err != nil {
		return cards.Card{}, err
	}
	card := uc.Card.ToDomain()
	card.IsAvatar = uc.IsAvatar
	return card, nil
}

func (s *Store) AddXP(ctx context.Context, profileID string, delta int64) (int64, error) {
	return s.profiles.AddXP(ctx, profileID, delta)
}

func (s *Store) HasAvatar(ctx context.Context, profileID string) (bool, error) {
	return s.userCards.HasAvatar(ctx, profileID)
}

// CreateFounder fails with onboarding.ErrAlreadyOnboarded if another
// request linked an avatar first.
func (s *Store) CreateFounder(ctx context.Context, profileID string, card cards.Card, initialPacks int) (cards.Card, error) {
	row := models.CardFromDomain(card)
	row.IsNPC = false

	err := s.tx.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := repositories.NewProfileRepository(tx).Upsert(ctx, &models.Profile{
			ID:             profileID,
			Username:       card.Name,
			XP:             0,
			PacksAvailable: initialPacks,
		}); err != nil {
			return err
		}
		if err := repositories.NewCardRepository(tx).Create(ctx, row); err != nil {
			return err
		}
		return repositories.NewUserCardRepository(tx).AddCard(ctx, profileID, row.ID, true)
	})
	if isUniqueViolation(err) {
		return cards.Card{}, onboarding.ErrAlreadyOnboarded
	}
	if err != nil {
		return cards.Card{}, err
	}

	created := row.ToDomain()
	created.IsAvatar = true
	return created, nil
}

// InsertNPCs stores pool cards and drops the cached pool.
func (s *Store) InsertNPCs(ctx context.Context, npcs []cards.Card) (int, error) {
	rows := make([]*models.Card, len(npcs))
	for i, c := range npcs {
		rows[i] = models.CardFromDomain(c)
		rows[i].IsNPC = true
	}
	n, err := s.cards.BulkCreate(ctx, rows)
	if err != nil {
		return 0, err
	}
	s.pool.Invalidate()
	return n, nil
}

func (s *Store) CountNPCs(ctx context.Context) (int, error) {
	return s.cards.CountNPCs(ctx)
}

// GrantPacks adds count packs and returns the new total.
func (s *Store) GrantPacks(ctx context.Context, profileID string, count int) (int, error) {
	total, err := s.profiles.AddPacks(ctx, profileID, count)
	if err != nil {
		return 0, err
	}
	logger.LogGame("Packs granted",
		slog.String("profile_id", profileID),
		slog.Int("count", count),
		slog.Int("packs_available", total))
	return total, nil
}

func (s *Store) GetProfileView(ctx context.Context, profileID string) (*ProfileView, error) {
	p, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	ucs, err := s.userCards.ListByUser(ctx, profileID)
	if err != nil {
		return nil, err
	}

	view := &ProfileView{
		ID:       p.ID,
		Username: p.Username,
		Progress: p.Progress(),
		Cards:    make([]cards.Card, 0, len(ucs)),
	}
	for _, uc := range ucs {
		if uc.Card == nil {
			continue
		}
		c := uc.Card.ToDomain()
		c.IsAvatar = uc.IsAvatar
		view.Cards = append(view.Cards, c)
	}
	return view, nil
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == pgUniqueViolation
}
