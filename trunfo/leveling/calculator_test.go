package leveling

import "testing"

func TestLevelOf(t *testing.T) {
	tests := []struct {
		xp        int64
		wantLevel int
		wantTitle string
	}{
		{-10, 1, "Novato"},
		{0, 1, "Novato"},
		{49, 1, "Novato"},
		{50, 2, "Aprendiz"},
		{149, 2, "Aprendiz"},
		{150, 3, "Jogador"},
		{300, 4, "Veterano"},
		{500, 5, "Expert"},
		{750, 6, "Mestre"},
		{1000, 7, "Lenda"},
		{1500, 8, "Mítico"},
		{2500, 9, "Imortal"},
		{4999, 9, "Imortal"},
		{5000, 10, "Divino"},
		{1_000_000, 10, "Divino"},
	}
	for _, tt := range tests {
		got := LevelOf(tt.xp)
		if got.Level != tt.wantLevel || got.Title != tt.wantTitle {
			t.Errorf("LevelOf(%d) = %d %s, want %d %s", tt.xp, got.Level, got.Title, tt.wantLevel, tt.wantTitle)
		}
	}
}

func TestProgressPercent(t *testing.T) {
	tiers := DefaultConfig().Tiers
	for i, tier := range tiers {
		if got := ProgressPercent(tier.MinXP); i < len(tiers)-1 && got != 0 {
			t.Errorf("ProgressPercent(%d) = %d, want 0 at tier start", tier.MinXP, got)
		}
		if i == len(tiers)-1 {
			continue
		}
		last := tiers[i+1].MinXP - 1
		if got := ProgressPercent(last); got >= 100 {
			t.Errorf("ProgressPercent(%d) = %d, want < 100 before next tier", last, got)
		}
	}

	tests := []struct {
		xp   int64
		want int
	}{
		{25, 50},
		{100, 50},
		{5000, 100},
		{99999, 100},
		{-5, 0},
	}
	for _, tt := range tests {
		if got := ProgressPercent(tt.xp); got != tt.want {
			t.Errorf("ProgressPercent(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestXPToNext(t *testing.T) {
	tests := []struct {
		xp   int64
		want int64
	}{
		{0, 50},
		{49, 1},
		{50, 100},
		{4999, 1},
		{5000, 0},
		{7000, 0},
	}
	for _, tt := range tests {
		if got := XPToNext(tt.xp); got != tt.want {
			t.Errorf("XPToNext(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestInfo(t *testing.T) {
	info := InfoFor(160)
	if info.Level != 3 || info.MaxXP != 299 || info.XPToNext != 140 || info.ProgressPercent != 6 {
		t.Errorf("InfoFor(160) = %+v", info)
	}
	if info.FormattedTitle != "🎮 Jogador" {
		t.Errorf("FormattedTitle = %q", info.FormattedTitle)
	}

	top := InfoFor(6000)
	if top.MaxXP != Unbounded || top.XPToNext != 0 || top.ProgressPercent != 100 {
		t.Errorf("InfoFor(6000) = %+v", top)
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default table invalid: %v", err)
	}
	if got := len(DefaultConfig().Tiers); got != 10 {
		t.Errorf("default table has %d tiers, want 10", got)
	}

	bad := []*Config{
		{},
		{Tiers: []Tier{{Level: 1, MinXP: 10}}},
		{Tiers: []Tier{{Level: 1, MinXP: 0}, {Level: 2, MinXP: 0}}},
	}
	for i, c := range bad {
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}
