package projection

import (
	"fmt"
	"time"

	"github.com/suorite/suorite/pkg/calc"
	"github.com/suorite/suorite/pkg/entry"
	"github.com/suorite/suorite/pkg/period"
)

// MissingDayWindow selects which unlogged working days count as missing. The
// source revisions disagreed; both variants stay available behind config.
type MissingDayWindow string

const (
	// WindowFutureOnly counts unlogged working days from the reference date
	// forward. A skipped day in the past can no longer be worked, so it does
	// not inflate the per-day requirement.
	WindowFutureOnly MissingDayWindow = "future"
	// WindowWholePeriod counts every unlogged working day of the period.
	WindowWholePeriod MissingDayWindow = "period"
)

// WindowFromName resolves a configured window name.
func WindowFromName(name string) (MissingDayWindow, error) {
	switch MissingDayWindow(name) {
	case WindowFutureOnly:
		return WindowFutureOnly, nil
	case WindowWholePeriod:
		return WindowWholePeriod, nil
	default:
		return "", fmt.Errorf("unknown missing-day window: %q", name)
	}
}

// Aggregate is the per-category total over one period. MissingDays and
// WorkingDays are shared between categories: a day logged under either
// category is not missing for the other, because the projection is
// shift-based, not category-based.
type Aggregate struct {
	EffectiveHours float64
	Performance    float64
	PaidHours      float64
	LoggedDays     int
	MissingDays    int
	WorkingDays    int
}

// Aggregator folds day records into period totals. It is a pure computation:
// identical inputs always produce identical output.
type Aggregator struct {
	Policy calc.BreakPolicy
	Window MissingDayWindow
	// MajorityRule moves the break deduction of a split day onto the
	// category with more raw hours; the minority keeps its raw hours.
	MajorityRule bool
}

// Aggregate computes the totals of one category over the period. asOf is the
// reference date for the future-only missing-day window.
func (a Aggregator) Aggregate(records []entry.DayRecord, p period.Period, category entry.Category, asOf time.Time) Aggregate {
	byDay := make(map[int]entry.DayRecord, len(records))
	for _, record := range records {
		if p.Contains(record.Date) {
			byDay[record.Date.Day()] = record
		}
	}

	agg := Aggregate{}
	asOfDay := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)

	for _, date := range p.WorkingDays() {
		record, logged := byDay[date.Day()]
		if !logged || !record.IsLogged() {
			if a.Window == WindowWholePeriod || !date.Before(asOfDay) {
				agg.MissingDays++
			}
			continue
		}
		agg.LoggedDays++

		e := record.Get(category)
		if e == nil {
			continue
		}
		agg.EffectiveHours += a.effectiveHours(record, category, *e)
		agg.Performance += e.Performance
		agg.PaidHours += calc.PaidHours(e.Hours, e.Kind)
	}
	agg.WorkingDays = len(p.WorkingDays())

	return agg
}

// effectiveHours applies the break policy, with the optional majority-rule
// adjustment for split days: only the category holding the larger share of
// the day carries the break deduction, ties going to normal duty.
func (a Aggregator) effectiveHours(record entry.DayRecord, category entry.Category, e entry.Entry) float64 {
	if a.MajorityRule {
		other := record.Get(otherCategory(category))
		if other != nil && isMinority(category, e.Hours, other.Hours) {
			return e.Hours
		}
	}
	return a.Policy.EffectiveHours(e.Hours, e.Kind)
}

func otherCategory(category entry.Category) entry.Category {
	if category == entry.CategoryNormal {
		return entry.CategoryForklift
	}
	return entry.CategoryNormal
}

func isMinority(category entry.Category, hours, otherHours float64) bool {
	if hours == otherHours {
		return category == entry.CategoryForklift
	}
	return hours < otherHours
}

// Projection is the remaining-work figures toward a saved goal. Values are
// full precision; rounding happens at the presentation layer.
type Projection struct {
	// DailyRequiredAbsolute is the output needed on each missing day to end
	// the period at the goal, assuming default shifts on those days.
	DailyRequiredAbsolute   float64
	DailyRequiredPercentage float64
	// CurrentAveragePercentage is the running average over logged hours.
	CurrentAveragePercentage float64
	// InstantlyToGoal figures assume only one more default shift is worked.
	InstantlyToGoalAbsolute   float64
	InstantlyToGoalPercentage float64
}

// Project computes the remaining-work figures from period totals. Division
// guards return 0 instead of failing; an already-exceeded goal surfaces as a
// negative requirement, never clamped.
func Project(agg Aggregate, goalPercent float64, defaultEffective float64) Projection {
	totalEffectivePeriod := agg.EffectiveHours + float64(agg.MissingDays)*defaultEffective
	targetTotalPerformance := totalEffectivePeriod * (goalPercent / 100)
	remainingRequired := targetTotalPerformance - agg.Performance

	proj := Projection{}
	if agg.MissingDays > 0 {
		proj.DailyRequiredAbsolute = remainingRequired / float64(agg.MissingDays)
	}
	if defaultEffective > 0 {
		proj.DailyRequiredPercentage = proj.DailyRequiredAbsolute / defaultEffective * 100
	}
	if agg.EffectiveHours > 0 {
		proj.CurrentAveragePercentage = agg.Performance / agg.EffectiveHours * 100
	}
	if agg.EffectiveHours+defaultEffective > 0 {
		proj.InstantlyToGoalAbsolute = goalPercent/100*(agg.EffectiveHours+defaultEffective) - agg.Performance
	}
	if defaultEffective > 0 {
		proj.InstantlyToGoalPercentage = proj.InstantlyToGoalAbsolute / defaultEffective * 100
	}
	return proj
}

// OverallAverage is the legacy period average: the mean reported output per
// logged entry, both categories pooled. Feeds the linear percentage scale.
func OverallAverage(records []entry.DayRecord, p period.Period) float64 {
	total := 0.0
	count := 0
	for _, record := range records {
		if !p.Contains(record.Date) {
			continue
		}
		for _, e := range []*entry.Entry{record.Normal, record.Forklift} {
			if e != nil {
				total += e.Performance
				count++
			}
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
