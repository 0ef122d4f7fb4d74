package entry

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/suorite/suorite/pkg/calc"
)

type Repository interface {
	// Store creates or wholesale-overwrites the entry for (date, category).
	Store(ctx context.Context, date time.Time, category Category, entry Entry) error
	// GetDay returns the record for one day; ErrNotFound when nothing is logged.
	GetDay(ctx context.Context, date time.Time) (DayRecord, error)
	// GetRange returns records for all logged days in [from, to], ordered by date.
	GetRange(ctx context.Context, from time.Time, to time.Time) ([]DayRecord, error)
	// DeleteDay removes both categories of a day.
	DeleteDay(ctx context.Context, date time.Time) (bool, error)
	// DeleteEntry removes a single category of a day.
	DeleteEntry(ctx context.Context, date time.Time, category Category) (bool, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Store(ctx context.Context, date time.Time, category Category, entry Entry) error {
	query := `INSERT INTO work_entry (date, category, performance, hours, shift_kind, start_time, end_time)
			  VALUES (?, ?, ?, ?, ?, ?, ?)
			  ON CONFLICT (date, category) DO UPDATE SET
			      performance = excluded.performance,
			      hours = excluded.hours,
			      shift_kind = excluded.shift_kind,
			      start_time = excluded.start_time,
			      end_time = excluded.end_time`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	var startTimeParam, endTimeParam interface{}
	if entry.StartTime != "" {
		startTimeParam = entry.StartTime
	}
	if entry.EndTime != "" {
		endTimeParam = entry.EndTime
	}

	_, err = stmt.ExecContext(ctx,
		date.Format(DateFormat),
		string(category),
		entry.Performance,
		entry.Hours,
		string(entry.Kind),
		startTimeParam,
		endTimeParam,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}

	return nil
}

func (r *RepositoryImpl) GetDay(ctx context.Context, date time.Time) (DayRecord, error) {
	query := `SELECT date, category, performance, hours, shift_kind, start_time, end_time
			  FROM work_entry WHERE date = ?`
	rows, err := r.db.QueryContext(ctx, query, date.Format(DateFormat))
	if err != nil {
		err := fmt.Errorf("could not query entries: %w", err)
		log.Error(err)
		return DayRecord{}, err
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return DayRecord{}, err
	}
	if len(records) == 0 {
		return DayRecord{}, ErrNotFound
	}
	return records[0], nil
}

func (r *RepositoryImpl) GetRange(ctx context.Context, from time.Time, to time.Time) ([]DayRecord, error) {
	query := `SELECT date, category, performance, hours, shift_kind, start_time, end_time
			  FROM work_entry WHERE date >= ? AND date <= ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, from.Format(DateFormat), to.Format(DateFormat))
	if err != nil {
		err := fmt.Errorf("could not query entries: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (r *RepositoryImpl) DeleteDay(ctx context.Context, date time.Time) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM work_entry WHERE date = ?", date.Format(DateFormat))
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *RepositoryImpl) DeleteEntry(ctx context.Context, date time.Time, category Category) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM work_entry WHERE date = ? AND category = ?",
		date.Format(DateFormat), string(category))
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
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

// scanRecords folds per-category rows into one DayRecord per date. Rows are
// expected ordered by date.
func scanRecords(rows *sql.Rows) ([]DayRecord, error) {
	var records []DayRecord

	for rows.Next() {
		var (
			dateString, categoryString, kindString string
			performance, hours                     float64
			startTime, endTime                     sql.NullString
		)
		if err := rows.Scan(&dateString, &categoryString, &performance, &hours, &kindString, &startTime, &endTime); err != nil {
			err := fmt.Errorf("could not scan entry: %w", err)
			log.Error(err)
			return nil, err
		}

		date, err := time.Parse(DateFormat, dateString)
		if err != nil {
			err := fmt.Errorf("could not parse entry date: %w", err)
			log.Error(err)
			return nil, err
		}

		e := &Entry{
			Performance: performance,
			Hours:       hours,
			Kind:        calc.ShiftKind(kindString),
			StartTime:   startTime.String,
			EndTime:     endTime.String,
		}

		if len(records) == 0 || !records[len(records)-1].Date.Equal(date) {
			records = append(records, DayRecord{Date: date})
		}
		record := &records[len(records)-1]
		if Category(categoryString) == CategoryForklift {
			record.Forklift = e
		} else {
			record.Normal = e
		}
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return records, nil
}
