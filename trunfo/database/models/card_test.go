package models

import (
	"testing"
	"time"

	"github.com/amigotrunfo/trunfo/trunfo/cards"
	"github.com/amigotrunfo/trunfo/trunfo/rarity"
)

func TestCard_RoundTrip(t *testing.T) {
	values := [cards.AttributeCount]int{0, 17, 50, 99, 100}
	in := cards.Card{
		ID:         7,
		Name:       "Ana",
		ImageURL:   "https://img/ana.png",
		Profession: "Developer",
		Category:   cards.CategoryAdult,
		Rarity:     rarity.UltraRare,
		Stats:      cards.NewStats(values, "Deploy na sexta"),
		IsNPC:      true,
		CreatedAt:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	row := CardFromDomain(in)
	if row.Attr0 != 0 || row.Attr1 != 17 || row.Attr2 != 50 || row.Attr3 != 99 || row.Attr4 != 100 {
		t.Fatalf("positional columns = %d %d %d %d %d", row.Attr0, row.Attr1, row.Attr2, row.Attr3, row.Attr4)
	}

	out := row.ToDomain()
	if out.Stats.Values() != values {
		t.Errorf("values read back as %v, want %v", out.Stats.Values(), values)
	}
	if out != in {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", out, in)
	}
}

func TestCardFromDomain_DefaultsCreatedAt(t *testing.T) {
	row := CardFromDomain(cards.Card{Name: "x"})
	if row.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}
