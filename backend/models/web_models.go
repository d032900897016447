package models

import (
	"github.com/amigotrunfo/trunfo/trunfo/battle"
	"github.com/amigotrunfo/trunfo/trunfo/cards"
	"github.com/amigotrunfo/trunfo/trunfo/leveling"
)

// CardDTO is a card with its display badge
type CardDTO struct {
	cards.Card
	Badge string `json:"badge"`
}

func NewCardDTO(c cards.Card) CardDTO {
	return CardDTO{Card: c, Badge: c.Rarity.Badge()}
}

func NewCardDTOs(cs []cards.Card) []CardDTO {
	out := make([]CardDTO, len(cs))
	for i, c := range cs {
		out[i] = NewCardDTO(c)
	}
	return out
}

type PackResponse struct {
	Cards          []CardDTO `json:"cards"`
	PacksRemaining int       `json:"packs_remaining"`
}

type StartBattleRequest struct {
	CardID int64 `json:"card_id"`
}

type ChooseAttributeRequest struct {
	Index *int `json:"index"`
}

type BattleResponse struct {
	Battle     battle.Battle   `json:"battle"`
	Attributes []AttributeInfo `json:"attributes"`
}

// AttributeInfo lists a choosable attribute slot
type AttributeInfo struct {
	Index int            `json:"index"`
	Label string         `json:"label"`
	Icon  cards.IconType `json:"icon"`
}

func AttributeInfos() []AttributeInfo {
	attrs := cards.Attributes()
	out := make([]AttributeInfo, len(attrs))
	for i, a := range attrs {
		out[i] = AttributeInfo{Index: int(a), Label: a.Label(), Icon: a.Icon()}
	}
	return out
}

type ProfileSummary struct {
	ID             string        `json:"id"`
	Username       string        `json:"username"`
	XP             int64         `json:"xp"`
	PacksAvailable int           `json:"packs_available"`
	Level          leveling.Info `json:"level"`
	Avatar         *CardDTO      `json:"avatar,omitempty"`
	Cards          []CardDTO     `json:"cards"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Version  string `json:"version"`
}
