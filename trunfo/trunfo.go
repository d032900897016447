package trunfo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/amigotrunfo/trunfo/trunfo/ai/openaicompat"
	"github.com/amigotrunfo/trunfo/trunfo/battle"
	"github.com/amigotrunfo/trunfo/trunfo/config"
	"github.com/amigotrunfo/trunfo/trunfo/database"
	"github.com/amigotrunfo/trunfo/trunfo/leveling"
	"github.com/amigotrunfo/trunfo/trunfo/onboarding"
	"github.com/amigotrunfo/trunfo/trunfo/packs"
	"github.com/amigotrunfo/trunfo/trunfo/random"
	"github.com/amigotrunfo/trunfo/trunfo/statgen"
)

func New(cfg Config, version string) *Engine {
	return &Engine{
		Cfg:     cfg,
		Levels:  leveling.Default(),
		Version: version,
	}
}

// Engine holds the wired card economy services.
type Engine struct {
	Cfg        Config
	Version    string
	DB         *database.DB
	Store      *database.Store
	RNG        *random.Locked
	Levels     *leveling.Calculator
	Generator  *statgen.Generator
	Locker     *packs.Locker
	Packs      *packs.Service
	Battles    *battle.Service
	Onboarding *onboarding.Service
}

// Setup connects to the database and builds every service. Background
// routines stop when ctx is done.
func (e *Engine) Setup(ctx context.Context) error {
	db, err := database.New(ctx, e.Cfg.DB)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	e.DB = db
	e.Store = database.NewStore(db, e.Cfg.Game.PoolCacheTTL.Duration)

	rng, err := e.newRandom()
	if err != nil {
		return err
	}
	e.RNG = random.NewLocked(rng)

	e.Generator = statgen.NewGenerator(e.statSource(), e.RNG, e.Cfg.Game.GenerationTimeout.Duration)

	e.Locker = packs.NewLocker(e.Cfg.Game.DrawLockTimeout.Duration)
	e.Locker.StartCleanupRoutine(ctx, config.LockCleanupInterval)
	e.Packs = packs.NewService(e.Store, e.RNG, e.Locker, e.Cfg.Game.PackSize)

	e.Battles, err = battle.NewService(e.Store, e.RNG, e.Levels, e.Cfg.Game.MaxBattles, e.Cfg.Game.BattleTTL.Duration)
	if err != nil {
		return fmt.Errorf("battle service: %w", err)
	}

	e.Onboarding = onboarding.NewService(e.Store, e.Generator, e.RNG, e.Cfg.Game.InitialPacks)
	return nil
}

func (e *Engine) newRandom() (random.Source, error) {
	if seed := e.Cfg.Game.Seed; seed != 0 {
		slog.Warn("Using fixed random seed",
			slog.String("type", "sys"),
			slog.Uint64("seed", seed))
		return random.NewSeeded(seed), nil
	}
	rng, err := random.New()
	if err != nil {
		return nil, fmt.Errorf("seed random source: %w", err)
	}
	return rng, nil
}

// statSource returns nil when generation is disabled so the generator
// always takes its fallback path.
func (e *Engine) statSource() statgen.Source {
	if e.Cfg.AI.Disabled || e.Cfg.AI.APIKey == "" {
		slog.Warn("Stat generation disabled, using fallback stats",
			slog.String("type", "ai"))
		return nil
	}
	return openaicompat.NewClient(&http.Client{Timeout: e.Cfg.Game.GenerationTimeout.Duration}, e.Cfg.AI.Client(), slog.Default())
}

func (e *Engine) Close() {
	if e.DB != nil {
		e.DB.Close()
	}
}
