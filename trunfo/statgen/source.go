package statgen

import (
	"context"

	"github.com/amigotrunfo/trunfo/trunfo/cards"
)

// Field describes one value the generation service must return.
type Field struct {
	Key         string
	Type        string // "integer" or "string"
	Description string
}

// Prompt is the structured request handed to a Source.
type Prompt struct {
	Profile      cards.Profile
	Instructions string
	Fields       []Field
}

// Draft is the raw, unvalidated payload from a Source. A nil value means
// the field was missing or not a number.
type Draft struct {
	Values         [cards.AttributeCount]*int
	SpecialAbility string
}

// Source generates attribute values and flavor text for a profile.
type Source interface {
	Generate(ctx context.Context, p Prompt) (Draft, error)
}
