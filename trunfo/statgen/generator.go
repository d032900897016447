// Package statgen turns a profile into clamped, complete card stats.
//
// The external Source may fail, time out or return garbage; Generate always
// returns a valid Stats and never an error.
package statgen

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/amigotrunfo/trunfo/trunfo/cards"
	"github.com/amigotrunfo/trunfo/trunfo/random"
	"github.com/amigotrunfo/trunfo/trunfo/rarity"
)

const (
	// FallbackAbility is used when the Source could not produce stats.
	FallbackAbility = "Erro no Matrix: Tente novamente."
	// DefaultAbility replaces an empty ability in an otherwise valid draft.
	DefaultAbility = "Mistério absoluto"
	// FallbackJitter bounds the random spread around DefaultValue.
	FallbackJitter = 15
	// MaxAbilityRunes caps the flavor text length.
	MaxAbilityRunes = 60

	DefaultTimeout = 15 * time.Second
)

var errEmptyDraft = errors.New("draft has no usable values")

type Generator struct {
	source  Source
	rng     random.Source
	timeout time.Duration
}

// NewGenerator wires a Source. A zero timeout uses DefaultTimeout.
func NewGenerator(source Source, rng random.Source, timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Generator{source: source, rng: rng, timeout: timeout}
}

// Generate asks the Source for stats, repairs the result, then applies the
// rarity bonus exactly once.
func (g *Generator) Generate(ctx context.Context, p cards.Profile, r rarity.Rarity) cards.Stats {
	stats := g.base(ctx, p)
	if bonus := rarity.BonusFor(r); bonus != 0 {
		stats = stats.WithBonus(bonus)
	}
	return stats
}

func (g *Generator) base(ctx context.Context, p cards.Profile) cards.Stats {
	if g.source == nil {
		return g.fallback(ctx, errors.New("no generation source configured"))
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	draft, err := g.source.Generate(callCtx, BuildPrompt(p))
	if err == nil {
		err = callCtx.Err()
	}
	if err == nil && draft.empty() {
		err = errEmptyDraft
	}
	if err != nil {
		return g.fallback(ctx, err)
	}

	slog.Debug("Stats generated",
		slog.String("type", "ai"),
		slog.String("name", p.Name),
		slog.Duration("took", time.Since(start)))

	return Normalize(draft)
}

// Normalize clamps every value, defaults missing ones to the midpoint and
// repairs the ability text.
func Normalize(d Draft) cards.Stats {
	var values [cards.AttributeCount]int
	for i, v := range d.Values {
		if v == nil {
			values[i] = cards.DefaultValue
			continue
		}
		values[i] = *v
	}
	return cards.NewStats(values, normalizeAbility(d.SpecialAbility))
}

func normalizeAbility(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return DefaultAbility
	}
	if utf8.RuneCountInString(s) > MaxAbilityRunes {
		s = strings.TrimSpace(string([]rune(s)[:MaxAbilityRunes]))
	}
	return s
}

func (g *Generator) fallback(ctx context.Context, cause error) cards.Stats {
	slog.WarnContext(ctx, "Stat generation failed, using fallback stats",
		slog.String("type", "ai"),
		slog.Any("error", cause))

	var values [cards.AttributeCount]int
	for i := range values {
		values[i] = cards.DefaultValue + g.rng.IntN(2*FallbackJitter+1) - FallbackJitter
	}
	return cards.NewStats(values, FallbackAbility)
}

func (d Draft) empty() bool {
	for _, v := range d.Values {
		if v != nil {
			return false
		}
	}
	return strings.TrimSpace(d.SpecialAbility) == ""
}
