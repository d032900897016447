// Package rarity maps uniform draws to weighted rarity tiers.
//
// The tier boundaries are a drop-rate contract. Changing a rate means
// editing Tiers and bumping TableVersion.
package rarity

import (
	"fmt"
	"math"
)

type Rarity string

const (
	Common     Rarity = "common"
	Uncommon   Rarity = "uncommon"
	Rare       Rarity = "rare"
	UltraRare  Rarity = "ultra_rare"
	SecretRare Rarity = "secret_rare"
	// Founder is assigned at onboarding and is never produced by Roll.
	Founder Rarity = "founder"
)

// TableVersion identifies the drop rates below.
const TableVersion = 1

// StatBonus is added to every attribute of a rare-or-better card.
const StatBonus = 20

// Tier is one contiguous slice of [0,1).
type Tier struct {
	Name  Rarity
	Low   float64 // inclusive
	Bonus int
	Badge string
}

// Tiers partition [0,1) in ascending order of Low.
var Tiers = []Tier{
	{Name: Common, Low: 0.00, Bonus: 0, Badge: "COMUM"},
	{Name: Uncommon, Low: 0.60, Bonus: 0, Badge: "INCOMUM"},
	{Name: Rare, Low: 0.85, Bonus: StatBonus, Badge: "RARA"},
	{Name: UltraRare, Low: 0.95, Bonus: StatBonus, Badge: "ULTRA RARA"},
	{Name: SecretRare, Low: 0.99, Bonus: StatBonus, Badge: "SECRET"},
}

var founderTier = Tier{Name: Founder, Low: math.NaN(), Bonus: StatBonus, Badge: "⭐ FUNDADOR"}

// Roll returns the tier containing u. Values below 0 (and NaN) count as 0,
// values at or above 1 fall in the top tier.
func Roll(u float64) Rarity {
	if math.IsNaN(u) || u < 0 {
		u = 0
	}
	for i := len(Tiers) - 1; i > 0; i-- {
		if u >= Tiers[i].Low {
			return Tiers[i].Name
		}
	}
	return Tiers[0].Name
}

// BonusFor returns the flat stat bonus for r. Unknown rarities get 0.
func BonusFor(r Rarity) int {
	t, ok := Lookup(r)
	if !ok {
		return 0
	}
	return t.Bonus
}

// Lookup returns the tier definition for r, including Founder.
func Lookup(r Rarity) (Tier, bool) {
	if r == Founder {
		return founderTier, true
	}
	for _, t := range Tiers {
		if t.Name == r {
			return t, true
		}
	}
	return Tier{}, false
}

// Weight is the probability mass of the tier. Founder has none.
func (t Tier) Weight() float64 {
	if t.Name == Founder {
		return 0
	}
	for i, tt := range Tiers {
		if tt.Name != t.Name {
			continue
		}
		high := 1.0
		if i+1 < len(Tiers) {
			high = Tiers[i+1].Low
		}
		return high - tt.Low
	}
	return 0
}

func (r Rarity) Valid() bool {
	_, ok := Lookup(r)
	return ok
}

// Badge is the display label shown on the card frame.
func (r Rarity) Badge() string {
	t, _ := Lookup(r)
	return t.Badge
}

func Parse(s string) (Rarity, error) {
	r := Rarity(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown rarity %q", s)
	}
	return r, nil
}
