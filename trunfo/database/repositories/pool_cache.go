package repositories

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/amigotrunfo/trunfo/trunfo/config"
	"github.com/amigotrunfo/trunfo/trunfo/database/models"
	"github.com/amigotrunfo/trunfo/trunfo/logger"
	lru "github.com/hashicorp/golang-lru"
)

type npcLister interface {
	ListNPCs(ctx context.Context) ([]*models.Card, error)
}

type cachedPool struct {
	cards     []*models.Card
	timestamp time.Time
}

// NPCPoolCache serves the NPC pool from memory for up to expiry.
type NPCPoolCache struct {
	repo   npcLister
	cache  *lru.Cache
	expiry time.Duration
	mu     sync.Mutex
	now    func() time.Time
}

func NewNPCPoolCache(repo npcLister, expiry time.Duration) *NPCPoolCache {
	cache, _ := lru.New(config.PoolCacheSize)
	return &NPCPoolCache{
		repo:   repo,
		cache:  cache,
		expiry: expiry,
		now:    time.Now,
	}
}

// List returns the pool. Callers must not modify the returned slice.
func (c *NPCPoolCache) List(ctx context.Context) ([]*models.Card, error) {
	if cards, ok := c.fresh(); ok {
		return cards, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cards, ok := c.fresh(); ok {
		return cards, nil
	}

	start := time.Now()
	cards, err := c.repo.ListNPCs(ctx)
	logger.LogQuery("load npc pool", start, err, slog.Int("cards", len(cards)))
	if err != nil {
		return nil, err
	}
	c.cache.Add(config.PoolCacheKey, cachedPool{cards: cards, timestamp: c.now()})
	return cards, nil
}

// Invalidate drops the cached pool, e.g. after seeding.
func (c *NPCPoolCache) Invalidate() {
	c.cache.Remove(config.PoolCacheKey)
}

func (c *NPCPoolCache) fresh() ([]*models.Card, bool) {
	cached, ok := c.cache.Get(config.PoolCacheKey)
	if !ok {
		return nil, false
	}
	p, ok := cached.(cachedPool)
	if !ok || c.now().Sub(p.timestamp) >= c.expiry {
		return nil, false
	}
	return p.cards, true
}
