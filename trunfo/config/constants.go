package config

import "time"

// Game balance defaults
const (
	DefaultPackSize     = 3
	DefaultInitialPacks = 5

	DefaultBattleTTL         = 30 * time.Minute
	DefaultMaxBattles        = 10000
	DefaultDrawLockTimeout   = 30 * time.Second
	DefaultGenerationTimeout = 15 * time.Second
)

// Database and Performance Constants
const (
	DefaultQueryTimeout = 10 * time.Second
	DefaultTxTimeout    = 15 * time.Second
	NetworkDialTimeout  = 5 * time.Second

	// NPC pool cache
	PoolCacheKey        = "npc_pool"
	PoolCacheSize       = 16
	DefaultPoolCacheTTL = time.Minute

	// Background cleanup
	LockCleanupInterval = time.Minute

	SeedBatchSize = 4
)

// HTTP
const (
	DefaultHTTPAddr     = ":8080"
	DefaultHTTPTimeout  = 30 * time.Second
	ShutdownGracePeriod = 10 * time.Second
	HealthCheckTimeout  = 2 * time.Second

	// Per-IP request budgets
	GenerationRateLimit = 10
	GameRateLimit       = 120
	RateLimitWindow     = time.Minute
)
