package leveling

import "fmt"

type Calculator struct {
	config *Config
}

func NewCalculator(config *Config) *Calculator {
	return &Calculator{config: config}
}

var defaultCalculator = NewCalculator(DefaultConfig())

// Default returns a calculator over the versioned default table.
func Default() *Calculator { return defaultCalculator }

// index returns the highest tier whose MinXP <= xp. Negative xp maps to
// the first tier.
func (c *Calculator) index(xp int64) int {
	tiers := c.config.Tiers
	for i := len(tiers) - 1; i > 0; i-- {
		if xp >= tiers[i].MinXP {
			return i
		}
	}
	return 0
}

func (c *Calculator) isTop(i int) bool {
	return i == len(c.config.Tiers)-1
}

func (c *Calculator) LevelOf(xp int64) Tier {
	return c.config.Tiers[c.index(xp)]
}

func (c *Calculator) ProgressPercent(xp int64) int {
	i := c.index(xp)
	if c.isTop(i) {
		return 100
	}
	cur, next := c.config.Tiers[i], c.config.Tiers[i+1]
	pct := 100 * (xp - cur.MinXP) / (next.MinXP - cur.MinXP)
	return int(max(0, min(100, pct)))
}

func (c *Calculator) XPToNext(xp int64) int64 {
	i := c.index(xp)
	if c.isTop(i) {
		return 0
	}
	return c.config.Tiers[i+1].MinXP - xp
}

// MaxXP is the inclusive upper bound of the tier holding xp.
func (c *Calculator) MaxXP(xp int64) int64 {
	i := c.index(xp)
	if c.isTop(i) {
		return Unbounded
	}
	return c.config.Tiers[i+1].MinXP - 1
}

func (c *Calculator) FormattedTitle(xp int64) string {
	t := c.LevelOf(xp)
	return fmt.Sprintf("%s %s", t.Icon, t.Title)
}

func (c *Calculator) Info(xp int64) Info {
	return Info{
		Tier:            c.LevelOf(xp),
		XP:              xp,
		MaxXP:           c.MaxXP(xp),
		ProgressPercent: c.ProgressPercent(xp),
		XPToNext:        c.XPToNext(xp),
		FormattedTitle:  c.FormattedTitle(xp),
	}
}

func LevelOf(xp int64) Tier { return defaultCalculator.LevelOf(xp) }
func ProgressPercent(xp int64) int { return defaultCalculator.ProgressPercent(xp) }
func XPToNext(xp int64) int64 { return defaultCalculator.XPToNext(xp) }
func FormattedTitle(xp int64) string { return defaultCalculator.FormattedTitle(xp) }
func InfoFor(xp int64) Info { return defaultCalculator.Info(xp) }
