package goal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
)

const settingsKey = "saved_goal"

type Repository interface {
	// Get returns the saved goal percentage, nil when none has been saved.
	Get(ctx context.Context) (*float64, error)
	Set(ctx context.Context, percent float64) error
	// Clear removes the saved goal.
	Clear(ctx context.Context) (bool, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Get(ctx context.Context) (*float64, error) {
	row := r.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", settingsKey)
	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		err := fmt.Errorf("could not read saved goal: %w", err)
		log.Error(err)
		return nil, err
	}

	percent, err := strconv.ParseFloat(value, 64)
	if err != nil {
		err := fmt.Errorf("could not parse saved goal %q: %w", value, err)
		log.Error(err)
		return nil, err
	}
	return &percent, nil
}

func (r *RepositoryImpl) Set(ctx context.Context, percent float64) error {
	query := `INSERT INTO settings (key, value) VALUES (?, ?)
			  ON CONFLICT (key) DO UPDATE SET value = excluded.value`
	_, err := r.db.ExecContext(ctx, query, settingsKey, strconv.FormatFloat(percent, 'f', -1, 64))
	if err != nil {
		err := fmt.Errorf("could not save goal: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) Clear(ctx context.Context) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", settingsKey)
	if err != nil {
		err := fmt.Errorf("could not clear goal: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}
