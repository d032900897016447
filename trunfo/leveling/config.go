package leveling

import (
	"errors"
	"fmt"
)

// TableVersion identifies the XP breakpoints below. Bump it whenever a
// band changes; the table is a game-balance contract.
const TableVersion = 1

type Tier struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	MinXP int64  `json:"min_xp"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Config is an ordered threshold table. The last tier has no upper bound.
type Config struct {
	Version int
	Tiers   []Tier
}

func DefaultConfig() *Config {
	return &Config{
		Version: TableVersion,
		Tiers: []Tier{
			{Level: 1, Title: "Novato", MinXP: 0, Color: "#808080", Icon: "🐣"},
			{Level: 2, Title: "Aprendiz", MinXP: 50, Color: "#4A90D9", Icon: "📘"},
			{Level: 3, Title: "Jogador", MinXP: 150, Color: "#43A047", Icon: "🎮"},
			{Level: 4, Title: "Veterano", MinXP: 300, Color: "#7B1FA2", Icon: "⭐"},
			{Level: 5, Title: "Expert", MinXP: 500, Color: "#F57C00", Icon: "🔥"},
			{Level: 6, Title: "Mestre", MinXP: 750, Color: "#C62828", Icon: "👑"},
			{Level: 7, Title: "Lenda", MinXP: 1000, Color: "#FFD700", Icon: "🏆"},
			{Level: 8, Title: "Mítico", MinXP: 1500, Color: "#E040FB", Icon: "💎"},
			{Level: 9, Title: "Imortal", MinXP: 2500, Color: "#00BCD4", Icon: "🌟"},
			{Level: 10, Title: "Divino", MinXP: 5000, Color: "#FF1744", Icon: "🔱"},
		},
	}
}

// Validate checks that the table starts at 0 and is strictly ascending.
func (c *Config) Validate() error {
	if len(c.Tiers) == 0 {
		return errors.New("level table is empty")
	}
	if c.Tiers[0].MinXP != 0 {
		return fmt.Errorf("first tier must start at 0 xp, got %d", c.Tiers[0].MinXP)
	}
	for i := 1; i < len(c.Tiers); i++ {
		if c.Tiers[i].MinXP <= c.Tiers[i-1].MinXP {
			return fmt.Errorf("tier %d (%s) does not start above tier %d",
				c.Tiers[i].Level, c.Tiers[i].Title, c.Tiers[i-1].Level)
		}
	}
	return nil
}
