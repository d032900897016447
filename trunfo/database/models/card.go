package models

import (
	"time"

	"github.com/amigotrunfo/trunfo/trunfo/cards"
	"github.com/amigotrunfo/trunfo/trunfo/rarity"
	"github.com/uptrace/bun"
)

// Card stores attributes positionally in attr_0..attr_4, in the order of
// cards.Attributes().
type Card struct {
	bun.BaseModel `bun:"table:cards,alias:c"`

	ID             int64  `bun:"id,pk,autoincrement"`
	Name           string `bun:"name,notnull"`
	ImageURL       string `bun:"image_url,type:text,notnull,default:''"`
	Profession     string `bun:"profession,notnull,default:''"`
	Category       string `bun:"category,notnull"`
	Rarity         string `bun:"rarity,notnull"`
	Attr0          int    `bun:"attr_0,notnull,default:50"`
	Attr1          int    `bun:"attr_1,notnull,default:50"`
	Attr2          int    `bun:"attr_2,notnull,default:50"`
	Attr3          int    `bun:"attr_3,notnull,default:50"`
	Attr4          int    `bun:"attr_4,notnull,default:50"`
	SpecialAbility string `bun:"special_ability,type:text,notnull,default:''"`
	IsNPC          bool   `bun:"is_npc,notnull,default:false"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

func (c *Card) values() [cards.AttributeCount]int {
	return [cards.AttributeCount]int{c.Attr0, c.Attr1, c.Attr2, c.Attr3, c.Attr4}
}

// ToDomain converts the row. Stored values are already in range, so the
// attribute vector reads back unchanged.
func (c *Card) ToDomain() cards.Card {
	return cards.Card{
		ID:         c.ID,
		Name:       c.Name,
		ImageURL:   c.ImageURL,
		Profession: c.Profession,
		Category:   cards.Category(c.Category),
		Rarity:     rarity.Rarity(c.Rarity),
		Stats:      cards.NewStats(c.values(), c.SpecialAbility),
		IsNPC:      c.IsNPC,
		CreatedAt:  c.CreatedAt,
	}
}

func CardFromDomain(card cards.Card) *Card {
	v := card.Stats.Values()
	created := card.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	return &Card{
		ID:             card.ID,
		Name:           card.Name,
		ImageURL:       card.ImageURL,
		Profession:     card.Profession,
		Category:       string(card.Category),
		Rarity:         string(card.Rarity),
		Attr0:          v[cards.Energy],
		Attr1:          v[cards.Style],
		Attr2:          v[cards.Boldness],
		Attr3:          v[cards.Social],
		Attr4:          v[cards.Skill],
		SpecialAbility: card.Stats.SpecialAbility,
		IsNPC:          card.IsNPC,
		CreatedAt:      created,
	}
}
