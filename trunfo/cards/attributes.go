package cards

import "fmt"

// Attribute addresses one of the five fixed slots of a card. The index is
// shared by storage (attr_0..attr_4), generation and battle comparison.
type Attribute int

const (
	Energy Attribute = iota
	Style
	Boldness
	Social
	Skill
)

// AttributeCount is the number of slots on every card.
const AttributeCount = 5

const (
	MinValue     = 0
	MaxValue     = 100
	DefaultValue = 50
)

type IconType string

const (
	IconSkull   IconType = "skull"
	IconZap     IconType = "zap"
	IconShield  IconType = "shield"
	IconHeart   IconType = "heart"
	IconLaptop  IconType = "laptop"
	IconBrain   IconType = "brain"
	IconSmile   IconType = "smile"
	IconRocket  IconType = "rocket"
	IconGhost   IconType = "ghost"
	IconGamepad IconType = "gamepad"
)

type slotDef struct {
	key      string
	label    string
	icon     IconType
	guidance string
}

// slots is the single source of truth for attribute order and meaning.
var slots = [AttributeCount]slotDef{
	Energy: {
		key: "attr_0", label: "Energia", icon: IconZap,
		guidance: "Quão enérgico, ativo e disposto a pessoa é. Crianças e atletas têm alto. Idosos e sedentários têm baixo.",
	},
	Style: {
		key: "attr_1", label: "Estilo", icon: IconSmile,
		guidance: "Carisma, charme, aparência, swag. Modelos e artistas têm alto.",
	},
	Boldness: {
		key: "attr_2", label: "Audácia", icon: IconRocket,
		guidance: "Ousadia, coragem, loucura, disposição para riscos. Aventureiros têm alto.",
	},
	Social: {
		key: "attr_3", label: "Social", icon: IconHeart,
		guidance: "Habilidade social, networking, popularidade. Políticos e influencers têm alto.",
	},
	Skill: {
		key: "attr_4", label: "Skill", icon: IconLaptop,
		guidance: "Habilidade técnica/profissional, expertise. Especialistas têm alto.",
	},
}

// Attributes returns all slots in their fixed order.
func Attributes() []Attribute {
	return []Attribute{Energy, Style, Boldness, Social, Skill}
}

func (a Attribute) Valid() bool {
	return a >= 0 && int(a) < AttributeCount
}

// Key is the storage and generation field name, e.g. "attr_2".
func (a Attribute) Key() string { return a.def().key }

func (a Attribute) Label() string { return a.def().label }

func (a Attribute) Icon() IconType { return a.def().icon }

// Guidance describes the slot's meaning to the generation service.
func (a Attribute) Guidance() string { return a.def().guidance }

func (a Attribute) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Attribute(%d)", int(a))
	}
	return a.def().label
}

func (a Attribute) def() slotDef {
	if !a.Valid() {
		panic(fmt.Sprintf("cards: attribute index %d out of range [0,%d]", int(a), AttributeCount-1))
	}
	return slots[a]
}

// Clamp bounds v to [MinValue, MaxValue].
func Clamp(v int) int {
	return max(MinValue, min(MaxValue, v))
}

// AttributeSlot is one labelled value on a card.
type AttributeSlot struct {
	Label string   `json:"label"`
	Value int      `json:"value"`
	Icon  IconType `json:"icon"`
}

// Stats holds exactly five in-range attribute values and the flavor text.
type Stats struct {
	Attributes     [AttributeCount]AttributeSlot `json:"attributes"`
	SpecialAbility string                        `json:"special_ability"`
}

// NewStats builds Stats from raw values, clamping each to [0,100] and
// filling labels and icons from the shared slot table.
func NewStats(values [AttributeCount]int, ability string) Stats {
	var s Stats
	for _, a := range Attributes() {
		s.Attributes[a] = AttributeSlot{
			Label: a.Label(),
			Value: Clamp(values[a]),
			Icon:  a.Icon(),
		}
	}
	s.SpecialAbility = ability
	return s
}

// Value returns the value at slot a. It panics on an invalid slot.
func (s Stats) Value(a Attribute) int {
	a.def()
	return s.Attributes[a].Value
}

// Values returns the raw vector in slot order.
func (s Stats) Values() [AttributeCount]int {
	var out [AttributeCount]int
	for i, slot := range s.Attributes {
		out[i] = slot.Value
	}
	return out
}

// WithBonus adds bonus to every attribute and re-clamps.
func (s Stats) WithBonus(bonus int) Stats {
	values := s.Values()
	for i := range values {
		values[i] += bonus
	}
	return NewStats(values, s.SpecialAbility)
}
