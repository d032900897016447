// Package trunfo holds the application configuration.
package trunfo

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/amigotrunfo/trunfo/trunfo/ai/openaicompat"
	"github.com/amigotrunfo/trunfo/trunfo/config"
	"github.com/amigotrunfo/trunfo/trunfo/database"
)

const EnvPrefix = "TRUNFO_"

// LoadConfig reads the TOML file at path, if any, then overlays
// TRUNFO_* environment variables and fills defaults.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open config: %w", err)
		}
		defer file.Close()

		if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log  LogConfig         `toml:"log" envPrefix:"LOG_"`
	DB   database.DBConfig `toml:"db" envPrefix:"DB_"`
	HTTP HTTPConfig        `toml:"http" envPrefix:"HTTP_"`
	AI   AIConfig          `toml:"ai" envPrefix:"AI_"`
	Game GameConfig        `toml:"game" envPrefix:"GAME_"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level" env:"LEVEL"`
	Format    string     `toml:"format" env:"FORMAT"`
	AddSource bool       `toml:"add_source" env:"ADD_SOURCE"`
}

type HTTPConfig struct {
	Addr         string   `toml:"addr" env:"ADDR"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
	CORSOrigins  string   `toml:"cors_origins" env:"CORS_ORIGINS"`
}

type AIConfig struct {
	BaseURL        string   `toml:"base_url" env:"BASE_URL"`
	APIKey         string   `toml:"api_key" env:"API_KEY"`
	Model          string   `toml:"model" env:"MODEL"`
	FallbackModels []string `toml:"fallback_models" env:"FALLBACK_MODELS" envSeparator:","`
	Temperature    float64  `toml:"temperature"`
	MaxRetries     int      `toml:"max_retries"`
	Disabled       bool     `toml:"disabled" env:"DISABLED"`
}

// Client builds the generation client settings.
func (c AIConfig) Client() openaicompat.Config {
	return openaicompat.Config{
		BaseURL:        c.BaseURL,
		APIKey:         c.APIKey,
		Model:          c.Model,
		FallbackModels: c.FallbackModels,
		Temperature:    c.Temperature,
		MaxRetries:     c.MaxRetries,
	}
}

type GameConfig struct {
	PackSize          int      `toml:"pack_size" env:"PACK_SIZE"`
	InitialPacks      int      `toml:"initial_packs" env:"INITIAL_PACKS"`
	MaxBattles        int      `toml:"max_battles"`
	BattleTTL         Duration `toml:"battle_ttl"`
	PoolCacheTTL      Duration `toml:"pool_cache_ttl"`
	DrawLockTimeout   Duration `toml:"draw_lock_timeout"`
	GenerationTimeout Duration `toml:"generation_timeout"`
	// Seed fixes the random source; zero seeds from crypto/rand.
	Seed uint64 `toml:"seed" env:"SEED"`
}

// Duration accepts "30s"-style strings in TOML and the environment.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func orDuration(d *Duration, def time.Duration) {
	if d.Duration <= 0 {
		d.Duration = def
	}
}

func (c *Config) applyDefaults() {
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.DB.Host == "" {
		c.DB.Host = "localhost"
	}
	if c.DB.Port == 0 {
		c.DB.Port = 5432
	}

	if c.HTTP.Addr == "" {
		c.HTTP.Addr = config.DefaultHTTPAddr
	}
	orDuration(&c.HTTP.ReadTimeout, config.DefaultHTTPTimeout)
	orDuration(&c.HTTP.WriteTimeout, config.DefaultHTTPTimeout)

	if c.AI.BaseURL == "" {
		c.AI.BaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	}
	if c.AI.Model == "" {
		c.AI.Model = "gemini-2.5-flash"
	}
	if c.AI.Temperature == 0 {
		c.AI.Temperature = 0.9
	}

	if c.Game.PackSize == 0 {
		c.Game.PackSize = config.DefaultPackSize
	}
	if c.Game.InitialPacks == 0 {
		c.Game.InitialPacks = config.DefaultInitialPacks
	}
	if c.Game.MaxBattles == 0 {
		c.Game.MaxBattles = config.DefaultMaxBattles
	}
	orDuration(&c.Game.BattleTTL, config.DefaultBattleTTL)
	orDuration(&c.Game.PoolCacheTTL, config.DefaultPoolCacheTTL)
	orDuration(&c.Game.DrawLockTimeout, config.DefaultDrawLockTimeout)
	orDuration(&c.Game.GenerationTimeout, config.DefaultGenerationTimeout)
}

func (c *Config) Validate() error {
	var errs []error
	if c.Game.PackSize < 1 {
		errs = append(errs, fmt.Errorf("game.pack_size must be at least 1, got %d", c.Game.PackSize))
	}
	if c.Game.InitialPacks < 0 {
		errs = append(errs, fmt.Errorf("game.initial_packs must not be negative, got %d", c.Game.InitialPacks))
	}
	if c.Game.MaxBattles < 1 {
		errs = append(errs, fmt.Errorf("game.max_battles must be at least 1, got %d", c.Game.MaxBattles))
	}
	if c.DB.Port < 1 || c.DB.Port > 65535 {
		errs = append(errs, fmt.Errorf("db.port out of range: %d", c.DB.Port))
	}
	if c.AI.Temperature < 0 || c.AI.Temperature > 2 {
		errs = append(errs, fmt.Errorf("ai.temperature must be within [0,2], got %g", c.AI.Temperature))
	}
	if c.AI.MaxRetries < 0 {
		errs = append(errs, errors.New("ai.max_retries must not be negative"))
	}
	return errors.Join(errs...)
}
