package battle

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/amigotrunfo/trunfo/trunfo/cards"
	"github.com/amigotrunfo/trunfo/trunfo/leveling"
	"github.com/amigotrunfo/trunfo/trunfo/logger"
	"github.com/amigotrunfo/trunfo/trunfo/random"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
)

// Store is the persistence the battle service depends on.
type Store interface {
	// GetOwnedCard returns ErrCardNotOwned when the profile has no such card.
	GetOwnedCard(ctx context.Context, profileID string, cardID int64) (cards.Card, error)
	ListNPCPool(ctx context.Context) ([]cards.Card, error)
	// AddXP adds delta to the profile's xp and returns the new total.
	AddXP(ctx context.Context, profileID string, delta int64) (int64, error)
}

// Result is a completed battle with the progression it produced.
type Result struct {
	Battle    Battle        `json:"battle"`
	Outcome   Outcome       `json:"outcome"`
	XPAwarded int64         `json:"xp_awarded"`
	TotalXP   int64         `json:"total_xp"`
	Level     leveling.Info `json:"level"`
	LeveledUp bool          `json:"leveled_up"`
}

type session struct {
	mu      sync.Mutex
	battle  *Battle
	expires time.Time
}

type Service struct {
	store    Store
	rng      random.Source
	levels   *leveling.Calculator
	sessions *lru.Cache
	ttl      time.Duration
	now      func() time.Time

	mu sync.Mutex
	// pending holds battles whose award failed. They skip TTL expiry and
	// LRU eviction until the award is applied.
	pending map[string]*session
}

// NewService keeps at most maxSessions in-flight battles, each for ttl.
func NewService(store Store, rng random.Source, levels *leveling.Calculator, maxSessions int, ttl time.Duration) (*Service, error) {
	cache, err := lru.New(maxSessions)
	if err != nil {
		return nil, fmt.Errorf("create battle session cache: %w", err)
	}
	return &Service{
		store:    store,
		rng:      rng,
		levels:   levels,
		sessions: cache,
		ttl:      ttl,
		now:      time.Now,
		pending:  make(map[string]*session),
	}, nil
}

// Start runs SelectOwnCard and AwaitOpponent. The returned battle waits
// for an attribute choice.
func (s *Service) Start(ctx context.Context, profileID string, cardID int64) (Battle, error) {
	own, err := s.store.GetOwnedCard(ctx, profileID, cardID)
	if err != nil {
		return Battle{}, fmt.Errorf("get owned card: %w", err)
	}

	b := NewBattle(uuid.NewString(), profileID)
	if err := b.SelectOwnCard(own); err != nil {
		return Battle{}, err
	}

	pool, err := s.store.ListNPCPool(ctx)
	if err != nil {
		return Battle{}, fmt.Errorf("list npc pool: %w", err)
	}
	if len(pool) == 0 {
		return Battle{}, ErrEmptyPool
	}
	if err := b.SetOpponent(pool[s.rng.IntN(len(pool))]); err != nil {
		return Battle{}, err
	}

	s.sessions.Add(b.ID, &session{battle: b, expires: s.now().Add(s.ttl)})

	logger.LogGame("Battle started",
		slog.String("battle_id", b.ID),
		slog.String("profile_id", profileID),
		slog.Int64("own_card", own.ID),
		slog.Int64("opponent_card", b.Opponent.ID))

	return *b, nil
}

// Get returns a snapshot of an in-flight or finished battle.
func (s *Service) Get(battleID string) (Battle, error) {
	sess, err := s.session(battleID)
	if err != nil {
		return Battle{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return *sess.battle, nil
}

// Choose selects the attribute, resolves the battle and awards XP once.
// If the XP write fails the battle keeps its result and calling Choose
// again retries only the award.
func (s *Service) Choose(ctx context.Context, battleID string, index int) (*Result, error) {
	sess, err := s.session(battleID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	b := sess.battle

	switch {
	case b.PendingXP():
		// retry of a failed award; the outcome is already fixed
	case b.State == StateResult:
		return nil, fmt.Errorf("%w: battle already finished", ErrInvalidTransition)
	default:
		if err := b.ChooseAttribute(cards.Attribute(index)); err != nil {
			return nil, err
		}
		if _, err := b.Compare(); err != nil {
			return nil, err
		}
	}

	total, err := s.store.AddXP(ctx, b.ProfileID, b.XPAwarded)
	if err != nil {
		logger.LogError("Failed to apply battle xp", err,
			slog.String("battle_id", b.ID),
			slog.Int64("xp", b.XPAwarded))
		s.setPending(b.ID, sess)
		return nil, fmt.Errorf("add xp: %w", err)
	}
	b.XPApplied = true
	s.setPending(b.ID, nil)

	before := s.levels.LevelOf(total - b.XPAwarded)
	level := s.levels.Info(total)

	logger.LogGame("Battle finished",
		slog.String("battle_id", b.ID),
		slog.String("profile_id", b.ProfileID),
		slog.String("attribute", b.Attribute.String()),
		slog.String("outcome", string(b.Outcome)),
		slog.Int64("xp", b.XPAwarded),
		slog.Int64("total_xp", total))

	return &Result{
		Battle:    *b,
		Outcome:   b.Outcome,
		XPAwarded: b.XPAwarded,
		TotalXP:   total,
		Level:     level,
		LeveledUp: level.Level > before.Level,
	}, nil
}

func (s *Service) setPending(battleID string, sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess == nil {
		delete(s.pending, battleID)
		return
	}
	s.pending[battleID] = sess
}

func (s *Service) session(battleID string) (*session, error) {
	s.mu.Lock()
	sess, ok := s.pending[battleID]
	s.mu.Unlock()
	if ok {
		return sess, nil
	}

	v, ok := s.sessions.Get(battleID)
	if !ok {
		return nil, ErrNotFound
	}
	sess = v.(*session)
	if s.now().After(sess.expires) {
		s.sessions.Remove(battleID)
		return nil, ErrNotFound
	}
	return sess, nil
}
