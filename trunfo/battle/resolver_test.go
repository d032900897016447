package battle

import (
	"errors"
	"testing"

	"github.com/amigotrunfo/trunfo/trunfo/cards"
)

func statsWith(a cards.Attribute, v int) cards.Stats {
	var values [cards.AttributeCount]int
	for i := range values {
		values[i] = 50
	}
	values[a] = v
	return cards.NewStats(values, "")
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		left, right int
		want        Outcome
		wantXP      int64
	}{
		{"Win", 70, 40, Win, 25},
		{"Lose", 40, 70, Lose, 5},
		{"Draw", 55, 55, Draw, 10},
		{"EdgeWin", 100, 99, Win, 25},
		{"ZeroDraw", 0, 0, Draw, 10},
	}
	for _, tt := range tests {
		for _, a := range cards.Attributes() {
			t.Run(tt.name+"/"+a.String(), func(t *testing.T) {
				got := Resolve(statsWith(a, tt.left), statsWith(a, tt.right), a)
				if got != tt.want {
					t.Errorf("Resolve() = %s, want %s", got, tt.want)
				}
				if xp := XPFor(got); xp != tt.wantXP {
					t.Errorf("XPFor(%s) = %d, want %d", got, xp, tt.wantXP)
				}
			})
		}
	}
}

func TestResolve_OnlyChosenAttributeCounts(t *testing.T) {
	left := cards.NewStats([cards.AttributeCount]int{10, 100, 100, 100, 100}, "")
	right := cards.NewStats([cards.AttributeCount]int{90, 0, 0, 0, 0}, "")
	if got := Resolve(left, right, cards.Energy); got != Lose {
		t.Errorf("Resolve() = %s, want lose", got)
	}
}

func TestResolve_PanicsOnInvalidIndex(t *testing.T) {
	for _, idx := range []int{-1, 5, 42} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Resolve with index %d did not panic", idx)
				}
			}()
			Resolve(cards.Stats{}, cards.Stats{}, cards.Attribute(idx))
		}()
	}
}

func TestXPFor_Unknown(t *testing.T) {
	if got := XPFor(Outcome("forfeit")); got != 0 {
		t.Errorf("XPFor(unknown) = %d, want 0", got)
	}
}

func TestBattle_StateMachine(t *testing.T) {
	own := cards.Card{ID: 1, Stats: statsWith(cards.Skill, 80)}
	npc := cards.Card{ID: 2, IsNPC: true, Stats: statsWith(cards.Skill, 30)}

	b := NewBattle("b1", "p1")
	if b.State != StateSelectOwnCard {
		t.Fatalf("initial state = %s", b.State)
	}

	if err := b.SetOpponent(npc); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("SetOpponent before SelectOwnCard: err = %v", err)
	}
	if err := b.SelectOwnCard(own); err != nil {
		t.Fatal(err)
	}
	if b.State != StateAwaitOpponent {
		t.Fatalf("state = %s, want await_opponent", b.State)
	}
	if err := b.SetOpponent(npc); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Compare(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Compare before ChooseAttribute: err = %v", err)
	}
	if err := b.ChooseAttribute(cards.Attribute(7)); !errors.Is(err, ErrInvalidAttribute) {
		t.Errorf("ChooseAttribute(7): err = %v", err)
	}
	if b.State != StateChooseAttribute {
		t.Errorf("invalid choice must not change state, got %s", b.State)
	}
	if err := b.ChooseAttribute(cards.Skill); err != nil {
		t.Fatal(err)
	}

	got, err := b.Compare()
	if err != nil {
		t.Fatal(err)
	}
	if got != Win || b.XPAwarded != WinXP || b.State != StateResult {
		t.Errorf("after Compare: outcome=%s xp=%d state=%s", got, b.XPAwarded, b.State)
	}
	if !b.PendingXP() {
		t.Error("finished battle should owe its award until applied")
	}

	if err := b.ChooseAttribute(cards.Energy); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("ChooseAttribute after Result: err = %v", err)
	}
	if _, err := b.Compare(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Compare after Result: err = %v", err)
	}
}
