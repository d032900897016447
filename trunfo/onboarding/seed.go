package onboarding

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/sync/errgroup"

	"github.com/amigotrunfo/trunfo/trunfo/cards"
	"github.com/amigotrunfo/trunfo/trunfo/logger"
)

// NPCFile is the seed file layout:
//
//	[[npc]]
//	name = "Dona Maria"
//	age = 67
//	profession = "Aposentada"
//	marital_status = "Viúvo(a) do Orkut"
type NPCFile struct {
	NPCs []FounderInput `toml:"npc"`
}

// LoadNPCs decodes and validates a seed file. Every invalid entry is
// reported, not only the first.
func LoadNPCs(r io.Reader) ([]FounderInput, error) {
	var f NPCFile
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode npc file: %w", err)
	}

	var errs []error
	for i, in := range f.NPCs {
		if err := in.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("npc #%d (%s): %w", i+1, in.Name, err))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return f.NPCs, nil
}

// GenerateNPCs builds pool cards with at most concurrency generation
// calls in flight. The result keeps the input order.
func (s *Service) GenerateNPCs(ctx context.Context, inputs []FounderInput, concurrency int) ([]cards.Card, error) {
	out := make([]cards.Card, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, in := range inputs {
		g.Go(func() error {
			card, err := s.NPC(ctx, in)
			if err != nil {
				return fmt.Errorf("npc %q: %w", in.Name, err)
			}
			out[i] = card
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.LogGame("NPC cards generated", slog.Int("count", len(out)))
	return out, nil
}
