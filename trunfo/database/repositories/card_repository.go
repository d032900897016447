package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amigotrunfo/trunfo/trunfo/config"
	"github.com/amigotrunfo/trunfo/trunfo/database/models"
	"github.com/amigotrunfo/trunfo/trunfo/logger"
	"github.com/uptrace/bun"
)

type CardRepository interface {
	Create(ctx context.Context, card *models.Card) error
	BulkCreate(ctx context.Context, cards []*models.Card) (int, error)
	GetByID(ctx context.Context, id int64) (*models.Card, error)
	ListNPCs(ctx context.Context) ([]*models.Card, error)
	CountNPCs(ctx context.Context) (int, error)
}

type cardRepository struct {
	db bun.IDB
}

// NewCardRepository accepts a *bun.DB or a bun.Tx.
func NewCardRepository(db bun.IDB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) Create(ctx context.Context, card *models.Card) error {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	if card.CreatedAt.IsZero() {
		card.CreatedAt = time.Now()
	}

	_, err := r.db.NewInsert().
		Model(card).
		Returning("id").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("insert card: %w", err)
	}
	return nil
}

func (r *cardRepository) BulkCreate(ctx context.Context, cards []*models.Card) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	start := time.Now()
	_, err := r.db.NewInsert().
		Model(&cards).
		Returning("id").
		Exec(ctx)
	logger.LogQuery("insert cards", start, err, slog.Int("count", len(cards)))
	if err != nil {
		return 0, fmt.Errorf("bulk insert cards: %w", err)
	}
	return len(cards), nil
}

func (r *cardRepository) GetByID(ctx context.Context, id int64) (*models.Card, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	card := new(models.Card)
	err := r.db.NewSelect().
		Model(card).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return card, nil
}

func (r *cardRepository) ListNPCs(ctx context.Context) ([]*models.Card, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	var cards []*models.Card
	err := r.db.NewSelect().
		Model(&cards).
		Where("is_npc = ?", true).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list npc cards: %w", err)
	}
	return cards, nil
}

func (r *cardRepository) CountNPCs(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	return r.db.NewSelect().
		Model((*models.Card)(nil)).
		Where("is_npc = ?", true).
		Count(ctx)
}
