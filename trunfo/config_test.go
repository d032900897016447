package trunfo

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleConfig = `
[log]
level = "debug"
format = "json"

[db]
host = "db.internal"
port = 6543
user = "trunfo"
password = "from-file"
database = "trunfo"

[http]
addr = ":9090"
read_timeout = "5s"

[ai]
model = "gemini-2.5-pro"
fallback_models = ["gemini-2.5-flash"]

[game]
pack_size = 4
battle_ttl = "10m"
seed = 42
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("TRUNFO_DB_PASSWORD", "from-env")
	t.Setenv("TRUNFO_AI_API_KEY", "key-123")

	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Log.Level != slog.LevelDebug || cfg.Log.Format != "json" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.DB.Host != "db.internal" || cfg.DB.Port != 6543 {
		t.Errorf("db = %+v", cfg.DB)
	}
	if cfg.DB.Password != "from-env" {
		t.Errorf("env should override the file password, got %q", cfg.DB.Password)
	}
	if cfg.AI.APIKey != "key-123" || cfg.AI.Model != "gemini-2.5-pro" {
		t.Errorf("ai = %+v", cfg.AI)
	}
	if len(cfg.AI.FallbackModels) != 1 {
		t.Errorf("fallback models = %v", cfg.AI.FallbackModels)
	}
	if cfg.HTTP.Addr != ":9090" || cfg.HTTP.ReadTimeout.Duration != 5*time.Second {
		t.Errorf("http = %+v", cfg.HTTP)
	}
	if cfg.Game.PackSize != 4 || cfg.Game.BattleTTL.Duration != 10*time.Minute || cfg.Game.Seed != 42 {
		t.Errorf("game = %+v", cfg.Game)
	}
	// defaults
	if cfg.Game.InitialPacks != 5 || cfg.HTTP.WriteTimeout.Duration != 30*time.Second {
		t.Errorf("defaults not applied: %+v %+v", cfg.Game, cfg.HTTP)
	}
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Game.PackSize != 3 || cfg.Game.InitialPacks != 5 {
		t.Errorf("game defaults = %+v", cfg.Game)
	}
	if cfg.DB.Port != 5432 || cfg.HTTP.Addr != ":8080" {
		t.Errorf("infra defaults = %+v %+v", cfg.DB, cfg.HTTP)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"NegativePackSize", "[game]\npack_size = -1\n", "pack_size"},
		{"BadDuration", "[game]\nbattle_ttl = \"soon\"\n", "decode"},
		{"BadTemperature", "[ai]\ntemperature = 3.5\n", "temperature"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadConfig() error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
