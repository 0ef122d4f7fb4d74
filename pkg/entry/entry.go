package entry

import (
	"errors"
	"fmt"
	"time"

	"github.com/suorite/suorite/pkg/calc"
)

// DateFormat is the canonical day key used in storage and over the API.
const DateFormat = "2006-01-02"

var ErrNotFound = errors.New("entry not found")

// Category is a work code tracked independently per day.
type Category string

const (
	CategoryNormal   Category = "normal"
	CategoryForklift Category = "forklift"
)

// CategoryFromString validates an API-supplied category value.
func CategoryFromString(s string) (Category, error) {
	switch Category(s) {
	case CategoryNormal:
		return CategoryNormal, nil
	case CategoryForklift:
		return CategoryForklift, nil
	default:
		return "", fmt.Errorf("unknown category: %q", s)
	}
}

// Entry is one logged shift for a single category on a single day.
type Entry struct {
	// Performance is the reported piece-rate output for the shift.
	Performance float64
	// Hours is the raw clock time of the shift.
	Hours float64
	Kind  calc.ShiftKind
	// StartTime and EndTime are optional HH:MM wall-clock values used only
	// to derive Hours; the calculation engine never reads them.
	StartTime string
	EndTime   string
}

// DayRecord holds the at-most-one entry per category for a calendar day.
type DayRecord struct {
	Date     time.Time
	Normal   *Entry
	Forklift *Entry
}

// Get returns the entry for the requested category, nil when unlogged.
func (r DayRecord) Get(category Category) *Entry {
	if category == CategoryForklift {
		return r.Forklift
	}
	return r.Normal
}

// IsLogged reports whether either category has an entry for the day.
func (r DayRecord) IsLogged() bool {
	return r.Normal != nil || r.Forklift != nil
}

// ElapsedHours computes the decimal hour span between two HH:MM wall-clock
// values. A span that crosses midnight wraps to the next day, so a night
// shift of 21:30-06:00 resolves to 8.5 hours.
func ElapsedHours(startTime string, endTime string) (float64, error) {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return 0, fmt.Errorf("invalid start time %q: %w", startTime, err)
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return 0, fmt.Errorf("invalid end time %q: %w", endTime, err)
	}

	span := end.Sub(start)
	if span < 0 {
		span += 24 * time.Hour
	}
	return span.Hours(), nil
}

// Shift is the worker's rotating shift slot.
type Shift string

const (
	ShiftMorning Shift = "morning"
	ShiftEvening Shift = "evening"
	ShiftNight   Shift = "night"
)

// DetectShift picks the shift slot that is ongoing at the given wall-clock
// time. The morning and evening windows overlap by half an hour around the
// handover; the earlier shift wins inside the overlap.
func DetectShift(now time.Time) Shift {
	mins := now.Hour()*60 + now.Minute()

	morningStart := 5*60 + 45
	morningEnd := 14*60 + 15
	eveningStart := 13*60 + 45
	eveningEnd := 22*60 + 15

	switch {
	case mins >= morningStart && mins < morningEnd:
		return ShiftMorning
	case mins >= eveningStart && mins < eveningEnd:
		return ShiftEvening
	default:
		return ShiftNight
	}
}
