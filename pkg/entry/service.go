package entry

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type Service interface {
	// Upsert validates and stores an entry, replacing any previous entry for
	// the same date and category.
	Upsert(ctx context.Context, date time.Time, category Category, e Entry) (Entry, error)
	GetDay(ctx context.Context, date time.Time) (DayRecord, error)
	// GetMonth returns all logged days of the month containing date.
	GetMonth(ctx context.Context, date time.Time) ([]DayRecord, error)
	DeleteDay(ctx context.Context, date time.Time) (bool, error)
	DeleteEntry(ctx context.Context, date time.Time, category Category) (bool, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Upsert(ctx context.Context, date time.Time, category Category, e Entry) (Entry, error) {
	// Hours can be typed directly or derived from the shift picker times.
	if e.Hours == 0 && e.StartTime != "" && e.EndTime != "" {
		hours, err := ElapsedHours(e.StartTime, e.EndTime)
		if err != nil {
			return Entry{}, err
		}
		e.Hours = hours
	}

	if e.Performance < 0 {
		return Entry{}, fmt.Errorf("performance must not be negative")
	}
	if e.Hours < 0 || e.Hours > 24 {
		return Entry{}, fmt.Errorf("hours must be within 0-24, got %v", e.Hours)
	}

	if err := s.repo.Store(ctx, date, category, e); err != nil {
		return Entry{}, err
	}
	log.Debugf("stored %s entry for %s: %.2f units in %.2f h", category, date.Format(DateFormat), e.Performance, e.Hours)
	return e, nil
}

func (s *ServiceImpl) GetDay(ctx context.Context, date time.Time) (DayRecord, error) {
	return s.repo.GetDay(ctx, date)
}

func (s *ServiceImpl) GetMonth(ctx context.Context, date time.Time) ([]DayRecord, error) {
	year, month, _ := date.Date()
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return s.repo.GetRange(ctx, from, to)
}

func (s *ServiceImpl) DeleteDay(ctx context.Context, date time.Time) (bool, error) {
	deleted, err := s.repo.DeleteDay(ctx, date)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("no entries to delete for %s", date.Format(DateFormat))
	}
	return deleted, nil
}

func (s *ServiceImpl) DeleteEntry(ctx context.Context, date time.Time, category Category) (bool, error) {
	deleted, err := s.repo.DeleteEntry(ctx, date, category)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("no %s entry to delete for %s", category, date.Format(DateFormat))
	}
	return deleted, nil
}
