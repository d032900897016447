// Package battle resolves single-attribute card battles and awards XP.
package battle

import (
	"errors"
	"fmt"
	"time"

	"github.com/amigotrunfo/trunfo/trunfo/cards"
)

var (
	ErrInvalidAttribute  = errors.New("attribute index must be between 0 and 4")
	ErrInvalidTransition = errors.New("invalid battle state transition")
	ErrNotFound          = errors.New("battle not found or expired")
	ErrCardNotOwned      = errors.New("card is not owned by this profile")
	ErrEmptyPool         = errors.New("no npc opponents available")
)

type Outcome string

const (
	Win  Outcome = "win"
	Lose Outcome = "lose"
	Draw Outcome = "draw"
)

const (
	WinXP  int64 = 25
	DrawXP int64 = 10
	LoseXP int64 = 5
)

// XPFor is the award for a completed battle.
func XPFor(o Outcome) int64 {
	switch o {
	case Win:
		return WinXP
	case Draw:
		return DrawXP
	case Lose:
		return LoseXP
	default:
		return 0
	}
}

// Resolve compares attribute a of both cards. Equal values are a draw.
// It panics if a is not one of the five attribute indices.
func Resolve(left, right cards.Stats, a cards.Attribute) Outcome {
	if !a.Valid() {
		panic(fmt.Sprintf("battle: attribute index %d out of range", int(a)))
	}
	l, r := left.Value(a), right.Value(a)
	switch {
	case l > r:
		return Win
	case l < r:
		return Lose
	default:
		return Draw
	}
}

type State string

const (
	StateSelectOwnCard   State = "select_own_card"
	StateAwaitOpponent   State = "await_opponent"
	StateChooseAttribute State = "choose_attribute"
	StateCompare         State = "compare"
	StateResult          State = "result"
)

// Battle is one battle instance. Result is terminal.
type Battle struct {
	ID         string          `json:"id"`
	ProfileID  string          `json:"profile_id"`
	State      State           `json:"state"`
	Own        *cards.Card     `json:"own_card,omitempty"`
	Opponent   *cards.Card     `json:"opponent_card,omitempty"`
	Attribute  cards.Attribute `json:"attribute"`
	Outcome    Outcome         `json:"outcome,omitempty"`
	XPAwarded  int64           `json:"xp_awarded"`
	XPApplied  bool            `json:"xp_applied"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
}

func NewBattle(id, profileID string) *Battle {
	return &Battle{
		ID:        id,
		ProfileID: profileID,
		State:     StateSelectOwnCard,
		Attribute: -1,
		StartedAt: time.Now(),
	}
}

func (b *Battle) transition(from, to State) error {
	if b.State != from {
		return fmt.Errorf("%w: %s -> %s from %s", ErrInvalidTransition, from, to, b.State)
	}
	b.State = to
	return nil
}

// SelectOwnCard sets the left operand.
func (b *Battle) SelectOwnCard(c cards.Card) error {
	if err := b.transition(StateSelectOwnCard, StateAwaitOpponent); err != nil {
		return err
	}
	b.Own = &c
	return nil
}

// SetOpponent sets the right operand.
func (b *Battle) SetOpponent(c cards.Card) error {
	if err := b.transition(StateAwaitOpponent, StateChooseAttribute); err != nil {
		return err
	}
	b.Opponent = &c
	return nil
}

// ChooseAttribute records the compared attribute.
func (b *Battle) ChooseAttribute(a cards.Attribute) error {
	if !a.Valid() {
		return ErrInvalidAttribute
	}
	if err := b.transition(StateChooseAttribute, StateCompare); err != nil {
		return err
	}
	b.Attribute = a
	return nil
}

// Compare resolves the battle and moves it to Result.
func (b *Battle) Compare() (Outcome, error) {
	if err := b.transition(StateCompare, StateResult); err != nil {
		return "", err
	}
	b.Outcome = Resolve(b.Own.Stats, b.Opponent.Stats, b.Attribute)
	b.XPAwarded = XPFor(b.Outcome)
	b.FinishedAt = time.Now()
	return b.Outcome, nil
}

// PendingXP reports whether a finished battle still owes its award.
func (b *Battle) PendingXP() bool {
	return b.State == StateResult && !b.XPApplied
}
