package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/amigotrunfo/trunfo/trunfo/config"
	"github.com/amigotrunfo/trunfo/trunfo/database/models"
	"github.com/uptrace/bun"
)

type UserCardRepository interface {
	// AddCard links cardID to userID, bumping amount if already linked.
	AddCard(ctx context.Context, userID string, cardID int64, isAvatar bool) error
	HasAvatar(ctx context.Context, userID string) (bool, error)
	GetOwned(ctx context.Context, userID string, cardID int64) (*models.UserCard, error)
	// ListByUser returns the collection with its cards, avatar first.
	ListByUser(ctx context.Context, userID string) ([]*models.UserCard, error)
}

type userCardRepository struct {
	db bun.IDB
}

func NewUserCardRepository(db bun.IDB) UserCardRepository {
	return &userCardRepository{db: db}
}

func (r *userCardRepository) AddCard(ctx context.Context, userID string, cardID int64, isAvatar bool) error {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	now := time.Now()
	result, err := r.db.NewUpdate().
		Model((*models.UserCard)(nil)).
		Set("amount = amount + 1").
		Set("updated_at = ?", now).
		Where("user_id = ? AND card_id = ?", userID, cardID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update card amount: %w", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		_, err = r.db.NewInsert().
			Model(&models.UserCard{
				UserID:    userID,
				CardID:    cardID,
				IsAvatar:  isAvatar,
				Amount:    1,
				Obtained:  now,
				CreatedAt: now,
				UpdatedAt: now,
			}).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("insert user card: %w", err)
		}
	}
	return nil
}

func (r *userCardRepository) HasAvatar(ctx context.Context, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	return r.db.NewSelect().
		Model((*models.UserCard)(nil)).
		Where("user_id = ?", userID).
		Where("is_avatar = ?", true).
		Exists(ctx)
}

func (r *userCardRepository) GetOwned(ctx context.Context, userID string, cardID int64) (*models.UserCard, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	uc := new(models.UserCard)
	err := r.db.NewSelect().
		Model(uc).
		Relation("Card").
		Where("uc.user_id = ?", userID).
		Where("uc.card_id = ?", cardID).
		Where("uc.amount > 0").
		Scan(ctx)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return uc, nil
}

func (r *userCardRepository) ListByUser(ctx context.Context, userID string) ([]*models.UserCard, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	var ucs []*models.UserCard
	err := r.db.NewSelect().
		Model(&ucs).
		Relation("Card").
		Where("uc.user_id = ?", userID).
		Where("uc.amount > 0").
		OrderExpr("uc.is_avatar DESC, uc.obtained ASC, uc.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list user cards: %w", err)
	}
	return ucs, nil
}
