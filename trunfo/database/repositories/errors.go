package repositories

import (
	"database/sql"
	"errors"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrNoPacksAvailable = errors.New("profile has no packs available")
)

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
