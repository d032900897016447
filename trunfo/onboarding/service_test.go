package onboarding

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amigotrunfo/trunfo/trunfo/cards"
	"github.com/amigotrunfo/trunfo/trunfo/onboarding/mock"
	"github.com/amigotrunfo/trunfo/trunfo/random"
	"github.com/amigotrunfo/trunfo/trunfo/rarity"
	"github.com/amigotrunfo/trunfo/trunfo/statgen"
	"go.uber.org/mock/gomock"
)

var ana = FounderInput{Name: " Ana ", Age: 25, Profession: "Developer", MaritalStatus: "Solteiro(a)", ImageURL: "https://img/ana.png"}

var fixedStats = cards.NewStats([cards.AttributeCount]int{80, 70, 60, 50, 40}, "Codar de olhos fechados")

func TestFounderInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *FounderInput)
		wantErr bool
	}{
		{"Valid", func(in *FounderInput) {}, false},
		{"Baby", func(in *FounderInput) { in.Age = 0; in.MaritalStatus = "Criança/Bebê" }, false},
		{"NoName", func(in *FounderInput) { in.Name = "   " }, true},
		{"NoProfession", func(in *FounderInput) { in.Profession = "" }, true},
		{"NegativeAge", func(in *FounderInput) { in.Age = -1 }, true},
		{"TooOld", func(in *FounderInput) { in.Age = 151 }, true},
		{"BadStatus", func(in *FounderInput) { in.MaritalStatus = "Divorciado" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ana
			tt.mutate(&in)
			err := in.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidProfile) {
				t.Errorf("Validate() error %v does not wrap ErrInvalidProfile", err)
			}
		})
	}
}

func TestService_CreateFounder(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)
	gen := mock.NewMockStatGenerator(ctrl)
	s := NewService(store, gen, random.NewSeeded(1), 5)

	wantProfile := cards.Profile{Name: "Ana", Age: 25, Profession: "Developer", MaritalStatus: "Solteiro(a)"}

	store.EXPECT().HasAvatar(gomock.Any(), "p1").Return(false, nil)
	gen.EXPECT().Generate(gomock.Any(), wantProfile, rarity.Founder).Return(fixedStats)
	store.EXPECT().CreateFounder(gomock.Any(), "p1", gomock.Any(), 5).
		DoAndReturn(func(_ context.Context, _ string, c cards.Card, _ int) (cards.Card, error) {
			c.ID = 42
			return c, nil
		})

	got, err := s.CreateFounder(context.Background(), "p1", ana)
	if err != nil {
		t.Fatalf("CreateFounder() error = %v", err)
	}
	if got.ID != 42 || got.Name != "Ana" || got.Rarity != rarity.Founder {
		t.Errorf("CreateFounder() = %+v", got)
	}
	if !got.IsAvatar || got.IsNPC {
		t.Errorf("founder flags: avatar=%v npc=%v", got.IsAvatar, got.IsNPC)
	}
	if got.Category != cards.CategoryAdult || got.ImageURL != ana.ImageURL {
		t.Errorf("category=%s image=%s", got.Category, got.ImageURL)
	}
	if got.Stats != fixedStats {
		t.Errorf("stats = %+v", got.Stats)
	}
}

func TestService_CreateFounderErrors(t *testing.T) {
	t.Run("AlreadyOnboarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock.NewMockStore(ctrl)
		s := NewService(store, mock.NewMockStatGenerator(ctrl), random.NewSeeded(1), 5)
		store.EXPECT().HasAvatar(gomock.Any(), "p1").Return(true, nil)

		if _, err := s.CreateFounder(context.Background(), "p1", ana); !errors.Is(err, ErrAlreadyOnboarded) {
			t.Errorf("error = %v, want ErrAlreadyOnboarded", err)
		}
	})
	t.Run("InvalidSkipsStore", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := NewService(mock.NewMockStore(ctrl), mock.NewMockStatGenerator(ctrl), random.NewSeeded(1), 5)
		in := ana
		in.Age = 200
		if _, err := s.CreateFounder(context.Background(), "p1", in); !errors.Is(err, ErrInvalidProfile) {
			t.Errorf("error = %v, want ErrInvalidProfile", err)
		}
	})
	t.Run("StoreFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock.NewMockStore(ctrl)
		gen := mock.NewMockStatGenerator(ctrl)
		s := NewService(store, gen, random.NewSeeded(1), 5)
		boom := errors.New("tx aborted")
		store.EXPECT().HasAvatar(gomock.Any(), "p1").Return(false, nil)
		gen.EXPECT().Generate(gomock.Any(), gomock.Any(), rarity.Founder).Return(fixedStats)
		store.EXPECT().CreateFounder(gomock.Any(), "p1", gomock.Any(), 5).Return(cards.Card{}, boom)

		if _, err := s.CreateFounder(context.Background(), "p1", ana); !errors.Is(err, boom) {
			t.Errorf("error = %v, want wrapped store error", err)
		}
	})
}

func TestService_FounderFallbackGetsBonus(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)
	gen := statgen.NewGenerator(nil, random.NewSeeded(5), time.Second)
	s := NewService(store, gen, random.NewSeeded(1), 5)

	store.EXPECT().HasAvatar(gomock.Any(), "p1").Return(false, nil)
	store.EXPECT().CreateFounder(gomock.Any(), "p1", gomock.Any(), 5).
		DoAndReturn(func(_ context.Context, _ string, c cards.Card, _ int) (cards.Card, error) { return c, nil })

	got, err := s.CreateFounder(context.Background(), "p1", ana)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range got.Stats.Values() {
		if v < 55 || v > 85 {
			t.Errorf("founder fallback value %d outside [55,85]", v)
		}
	}
	if got.Stats.SpecialAbility != statgen.FallbackAbility {
		t.Errorf("ability = %q", got.Stats.SpecialAbility)
	}
}

func TestService_Preview(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mock.NewMockStatGenerator(ctrl)
	s := NewService(mock.NewMockStore(ctrl), gen, random.NewSeeded(11), 5)

	gen.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return(fixedStats).AnyTimes()

	seen := make(map[rarity.Rarity]int)
	for i := 0; i < 500; i++ {
		got, err := s.Preview(context.Background(), ana)
		if err != nil {
			t.Fatal(err)
		}
		if got.Rarity == rarity.Founder || !got.Rarity.Valid() {
			t.Fatalf("preview rolled %q", got.Rarity)
		}
		if got.ID != 0 || got.IsAvatar {
			t.Fatalf("preview card must be unsaved: %+v", got)
		}
		seen[got.Rarity]++
	}
	if seen[rarity.Common] <= seen[rarity.Rare] {
		t.Errorf("common should dominate rare, got %v", seen)
	}
}

func TestService_NPC(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mock.NewMockStatGenerator(ctrl)
	s := NewService(mock.NewMockStore(ctrl), gen, random.NewSeeded(11), 5)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return(fixedStats)

	in := FounderInput{Name: "Tia do Zap", Age: 11, Profession: "Influencer", MaritalStatus: "Criança/Bebê"}
	got, err := s.NPC(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsNPC || got.Category != cards.CategoryKid {
		t.Errorf("NPC() = %+v", got)
	}
}
