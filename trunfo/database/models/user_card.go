package models

import (
	"time"

	"github.com/uptrace/bun"
)

// UserCard links a card to a profile. A repeated card bumps Amount.
type UserCard struct {
	bun.BaseModel `bun:"table:user_cards,alias:uc"`

	ID       int64     `bun:"id,pk,autoincrement"`
	UserID   string    `bun:"user_id,notnull"`
	CardID   int64     `bun:"card_id,notnull"`
	IsAvatar bool      `bun:"is_avatar,notnull,default:false"`
	Amount   int64     `bun:"amount,notnull,default:1"`
	Obtained time.Time `bun:"obtained,notnull,default:current_timestamp"`

	Card *Card `bun:"rel:belongs-to,join:card_id=id"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
