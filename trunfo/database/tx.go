package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/amigotrunfo/trunfo/trunfo/config"
	"github.com/uptrace/bun"
)

type TxOptions struct {
	IsolationLevel sql.IsolationLevel
	Timeout        time.Duration
}

func StandardTxOptions() *TxOptions {
	return &TxOptions{
		IsolationLevel: sql.LevelReadCommitted,
		Timeout:        config.DefaultTxTimeout,
	}
}

type TxManager struct {
	db *bun.DB
}

func NewTxManager(db *bun.DB) *TxManager {
	return &TxManager{db: db}
}

// WithTransaction runs fn in a transaction, committing only if fn succeeds.
func (m *TxManager) WithTransaction(ctx context.Context, opts *TxOptions, fn func(context.Context, bun.Tx) error) error {
	if opts == nil {
		opts = StandardTxOptions()
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	tx, err := m.db.BeginTx(timeoutCtx, &sql.TxOptions{Isolation: opts.IsolationLevel})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(timeoutCtx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
