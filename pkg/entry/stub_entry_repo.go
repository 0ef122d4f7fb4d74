package entry

import (
	"context"
	"sort"
	"time"
)

// StubRepository is an in-memory Repository for tests in this and dependent
// packages.
type StubRepository struct {
	records map[string]*DayRecord
}

func NewStubRepository() *StubRepository {
	return &StubRepository{records: make(map[string]*DayRecord)}
}

func (s *StubRepository) Store(ctx context.Context, date time.Time, category Category, e Entry) error {
	key := date.Format(DateFormat)
	record, ok := s.records[key]
	if !ok {
		record = &DayRecord{Date: day(date)}
		s.records[key] = record
	}
	stored := e
	if category == CategoryForklift {
		record.Forklift = &stored
	} else {
		record.Normal = &stored
	}
	return nil
}

func (s *StubRepository) GetDay(ctx context.Context, date time.Time) (DayRecord, error) {
	record, ok := s.records[date.Format(DateFormat)]
	if !ok {
		return DayRecord{}, ErrNotFound
	}
	return *record, nil
}

func (s *StubRepository) GetRange(ctx context.Context, from time.Time, to time.Time) ([]DayRecord, error) {
	var records []DayRecord
	for _, record := range s.records {
		if !record.Date.Before(day(from)) && !record.Date.After(day(to)) {
			records = append(records, *record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records, nil
}

func (s *StubRepository) DeleteDay(ctx context.Context, date time.Time) (bool, error) {
	key := date.Format(DateFormat)
	_, ok := s.records[key]
	delete(s.records, key)
	return ok, nil
}

func (s *StubRepository) DeleteEntry(ctx context.Context, date time.Time, category Category) (bool, error) {
	record, ok := s.records[date.Format(DateFormat)]
	if !ok {
		return false, nil
	}
	existing := record.Get(category)
	if existing == nil {
		return false, nil
	}
	if category == CategoryForklift {
		record.Forklift = nil
	} else {
		record.Normal = nil
	}
	if !record.IsLogged() {
		delete(s.records, date.Format(DateFormat))
	}
	return true, nil
}

func (s *StubRepository) Reset() {
	s.records = make(map[string]*DayRecord)
}

func day(t time.Time) time.Time {
	year, month, d := t.Date()
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
