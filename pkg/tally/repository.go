package tally

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
)

const settingsKey = "tally_total"

type Repository interface {
	Get(ctx context.Context) (float64, error)
	Set(ctx context.Context, total float64) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Get(ctx context.Context) (float64, error) {
	row := r.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", settingsKey)
	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		err := fmt.Errorf("could not read tally total: %w", err)
		log.Error(err)
		return 0, err
	}

	total, err := strconv.ParseFloat(value, 64)
	if err != nil {
		err := fmt.Errorf("could not parse tally total %q: %w", value, err)
		log.Error(err)
		return 0, err
	}
	return total, nil
}

func (r *RepositoryImpl) Set(ctx context.Context, total float64) error {
	query := `INSERT INTO settings (key, value) VALUES (?, ?)
			  ON CONFLICT (key) DO UPDATE SET value = excluded.value`
	_, err := r.db.ExecContext(ctx, query, settingsKey, strconv.FormatFloat(total, 'f', -1, 64))
	if err != nil {
		err := fmt.Errorf("could not save tally total: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
