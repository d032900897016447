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

type ProfileRepository interface {
	// Upsert creates the profile or resets its username, xp and packs.
	Upsert(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	AddXP(ctx context.Context, id string, delta int64) (int64, error)
	// ConsumePack decrements packs_available only while it is positive.
	ConsumePack(ctx context.Context, id string) (int, error)
	AddPacks(ctx context.Context, id string, count int) (int, error)
}

type profileRepository struct {
	db bun.IDB
}

func NewProfileRepository(db bun.IDB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	_, err := r.db.NewInsert().
		Model(profile).
		On("CONFLICT (id) DO UPDATE").
		Set("username = EXCLUDED.username").
		Set("xp = EXCLUDED.xp").
		Set("packs_available = EXCLUDED.packs_available").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	profile := new(models.Profile)
	err := r.db.NewSelect().
		Model(profile).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return profile, nil
}

func (r *profileRepository) AddXP(ctx context.Context, id string, delta int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	start := time.Now()
	var xp int64
	err := r.db.NewUpdate().
		Model((*models.Profile)(nil)).
		Set("xp = xp + ?", delta).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Returning("xp").
		Scan(ctx, &xp)
	logger.LogQuery("add xp", start, err,
		slog.String("profile_id", id),
		slog.Int64("delta", delta),
		slog.Int64("xp", xp))
	if err != nil {
		return 0, mapNotFound(err)
	}
	return xp, nil
}

func (r *profileRepository) ConsumePack(ctx context.Context, id string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	var remaining int
	err := r.db.NewUpdate().
		Model((*models.Profile)(nil)).
		Set("packs_available = packs_available - 1").
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Where("packs_available > 0").
		Returning("packs_available").
		Scan(ctx, &remaining)
	if err != nil {
		if isNoRows(err) {
			return 0, ErrNoPacksAvailable
		}
		return 0, err
	}
	return remaining, nil
}

func (r *profileRepository) AddPacks(ctx context.Context, id string, count int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	var total int
	err := r.db.NewUpdate().
		Model((*models.Profile)(nil)).
		Set("packs_available = packs_available + ?", count).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Returning("packs_available").
		Scan(ctx, &total)
	if err != nil {
		return 0, mapNotFound(err)
	}
	return total, nil
}
