package models

import (
	"time"

	"github.com/amigotrunfo/trunfo/trunfo/cards"
	"github.com/uptrace/bun"
)

type Profile struct {
	bun.BaseModel `bun:"table:profiles,alias:p"`

	ID             string `bun:"id,pk"`
	Username       string `bun:"username,notnull"`
	XP             int64  `bun:"xp,notnull,default:0"`
	PacksAvailable int    `bun:"packs_available,notnull,default:0"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

func (p *Profile) Progress() cards.Progress {
	return cards.Progress{XP: p.XP, PacksAvailable: p.PacksAvailable}
}
