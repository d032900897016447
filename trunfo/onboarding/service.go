// Package onboarding creates a profile's founder card and unsaved
// playground cards.
package onboarding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/amigotrunfo/trunfo/trunfo/cards"
	"github.com/amigotrunfo/trunfo/trunfo/logger"
	"github.com/amigotrunfo/trunfo/trunfo/random"
	"github.com/amigotrunfo/trunfo/trunfo/rarity"
)

var (
	ErrAlreadyOnboarded = errors.New("profile already has a founder card")
	ErrInvalidProfile   = errors.New("invalid profile")
)

const MaxAge = 150

type Store interface {
	HasAvatar(ctx context.Context, profileID string) (bool, error)
	// CreateFounder upserts the profile with zero xp and initialPacks,
	// inserts the card and links it as the avatar, in one transaction.
	CreateFounder(ctx context.Context, profileID string, card cards.Card, initialPacks int) (cards.Card, error)
}

// StatGenerator is satisfied by *statgen.Generator.
type StatGenerator interface {
	Generate(ctx context.Context, p cards.Profile, r rarity.Rarity) cards.Stats
}

type FounderInput struct {
	Name          string `json:"name" toml:"name"`
	Age           int    `json:"age" toml:"age"`
	Profession    string `json:"profession" toml:"profession"`
	MaritalStatus string `json:"marital_status" toml:"marital_status"`
	ImageURL      string `json:"image_url" toml:"image_url"`
}

func (in FounderInput) profile() cards.Profile {
	return cards.Profile{
		Name:          strings.TrimSpace(in.Name),
		Age:           in.Age,
		Profession:    strings.TrimSpace(in.Profession),
		MaritalStatus: in.MaritalStatus,
	}
}

// Validate returns an error wrapping ErrInvalidProfile.
func (in FounderInput) Validate() error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidProfile)
	case strings.TrimSpace(in.Profession) == "":
		return fmt.Errorf("%w: profession is required", ErrInvalidProfile)
	case in.Age < 0 || in.Age > MaxAge:
		return fmt.Errorf("%w: age must be between 0 and %d", ErrInvalidProfile, MaxAge)
	case !cards.ValidMaritalStatus(in.MaritalStatus):
		return fmt.Errorf("%w: unknown marital status %q", ErrInvalidProfile, in.MaritalStatus)
	}
	return nil
}

type Service struct {
	store        Store
	generator    StatGenerator
	rng          random.Source
	initialPacks int
}

func NewService(store Store, generator StatGenerator, rng random.Source, initialPacks int) *Service {
	return &Service{
		store:        store,
		generator:    generator,
		rng:          rng,
		initialPacks: initialPacks,
	}
}

// CreateFounder builds and stores the profile's founder card.
func (s *Service) CreateFounder(ctx context.Context, profileID string, in FounderInput) (cards.Card, error) {
	if err := in.Validate(); err != nil {
		return cards.Card{}, err
	}

	has, err := s.store.HasAvatar(ctx, profileID)
	if err != nil {
		return cards.Card{}, fmt.Errorf("check avatar: %w", err)
	}
	if has {
		return cards.Card{}, ErrAlreadyOnboarded
	}

	card := s.build(ctx, in, rarity.Founder)
	card.IsAvatar = true

	created, err := s.store.CreateFounder(ctx, profileID, card, s.initialPacks)
	if err != nil {
		return cards.Card{}, fmt.Errorf("create founder: %w", err)
	}

	logger.LogGame("Founder card created",
		slog.String("profile_id", profileID),
		slog.Int64("card_id", created.ID),
		slog.String("category", string(created.Category)))

	return created, nil
}

// Preview rolls a rarity and generates an unsaved card.
func (s *Service) Preview(ctx context.Context, in FounderInput) (cards.Card, error) {
	if err := in.Validate(); err != nil {
		return cards.Card{}, err
	}
	return s.build(ctx, in, rarity.Roll(s.rng.Float64())), nil
}

// NPC generates a pool card with a rolled rarity.
func (s *Service) NPC(ctx context.Context, in FounderInput) (cards.Card, error) {
	card, err := s.Preview(ctx, in)
	if err != nil {
		return cards.Card{}, err
	}
	card.IsNPC = true
	return card, nil
}

func (s *Service) build(ctx context.Context, in FounderInput, r rarity.Rarity) cards.Card {
	p := in.profile()
	return cards.Card{
		Name:       p.Name,
		ImageURL:   in.ImageURL,
		Profession: p.Profession,
		Category:   cards.CategoryForAge(p.Age),
		Rarity:     r,
		Stats:      s.generator.Generate(ctx, p, r),
		CreatedAt:  time.Now(),
	}
}
