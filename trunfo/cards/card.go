// Package cards holds the card data model shared across the engine.
package cards

import (
	"time"

	"github.com/amigotrunfo/trunfo/trunfo/rarity"
)

type Category string

const (
	CategoryKid   Category = "KID"
	CategoryTeen  Category = "TEEN"
	CategoryAdult Category = "ADULT"
)

// CategoryForAge buckets a profile age.
func CategoryForAge(age int) Category {
	switch {
	case age < 12:
		return CategoryKid
	case age < 20:
		return CategoryTeen
	default:
		return CategoryAdult
	}
}

// MaritalStatusOptions are the accepted values for Profile.MaritalStatus.
var MaritalStatusOptions = []string{
	"Solteiro(a)",
	"Namorando",
	"Casado(a)",
	"Enrolado(a)",
	"Complicado(a)",
	"Viúvo(a) do Orkut",
	"Criança/Bebê",
}

func ValidMaritalStatus(s string) bool {
	for _, opt := range MaritalStatusOptions {
		if opt == s {
			return true
		}
	}
	return false
}

// Profile is the input a card is derived from.
type Profile struct {
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Profession    string `json:"profession"`
	MaritalStatus string `json:"marital_status"`
}

// Card is immutable once created.
type Card struct {
	ID         int64         `json:"id"`
	Name       string        `json:"name"`
	ImageURL   string        `json:"image_url,omitempty"`
	Profession string        `json:"profession"`
	Category   Category      `json:"category"`
	Rarity     rarity.Rarity `json:"rarity"`
	Stats      Stats         `json:"stats"`
	IsNPC      bool          `json:"is_npc"`
	IsAvatar   bool          `json:"is_avatar"`
	CreatedAt  time.Time     `json:"created_at"`
}

// Progress is a profile's progression state.
type Progress struct {
	XP             int64 `json:"xp"`
	PacksAvailable int   `json:"packs_available"`
}
