package leveling

// Info is the derived progression view of an XP total.
type Info struct {
	Tier
	XP              int64  `json:"xp"`
	MaxXP           int64  `json:"max_xp"` // -1 for the top tier
	ProgressPercent int    `json:"progress_percent"`
	XPToNext        int64  `json:"xp_to_next"`
	FormattedTitle  string `json:"formatted_title"`
}

// Unbounded marks the open upper edge of the top tier.
const Unbounded int64 = -1
