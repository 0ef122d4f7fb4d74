package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/suorite/suorite/pkg/calc"
	"github.com/suorite/suorite/pkg/entry"
	"github.com/suorite/suorite/pkg/period"
)

func date(day int) time.Time {
	return time.Date(2025, time.January, day, 0, 0, 0, 0, time.UTC)
}

func normalDay(day int, performance, hours float64) entry.DayRecord {
	return entry.DayRecord{
		Date:   date(day),
		Normal: &entry.Entry{Performance: performance, Hours: hours, Kind: calc.ShiftNormal},
	}
}

func defaultAggregator() Aggregator {
	return Aggregator{Policy: calc.PolicyStandard, Window: WindowFutureOnly}
}

// January 2025 period 1 has 11 working days: 1-3, 6-10, 13-15.
func januaryPeriod1() period.Period {
	return period.ForDate(date(1))
}

func TestAggregate_SingleLoggedDay(t *testing.T) {
	// given: the one logged day is a default 8-hour shift on day 1
	records := []entry.DayRecord{normalDay(1, 7.25, 8)}

	// when
	agg := defaultAggregator().Aggregate(records, januaryPeriod1(), entry.CategoryNormal, date(1))

	// then
	assert.InDelta(t, 7.25, agg.EffectiveHours, 1e-9)
	assert.InDelta(t, 7.25, agg.Performance, 1e-9)
	assert.InDelta(t, 7.5, agg.PaidHours, 1e-9)
	assert.Equal(t, 1, agg.LoggedDays)
	assert.Equal(t, 10, agg.MissingDays)
	assert.Equal(t, 11, agg.WorkingDays)
}

func TestAggregate_IsIdempotent(t *testing.T) {
	records := []entry.DayRecord{normalDay(1, 7.25, 8), normalDay(7, 9, 10)}
	agg := defaultAggregator()

	first := agg.Aggregate(records, januaryPeriod1(), entry.CategoryNormal, date(1))
	second := agg.Aggregate(records, januaryPeriod1(), entry.CategoryNormal, date(1))

	assert.Equal(t, first, second)
}

func TestAggregate_CategoriesSumIndependently(t *testing.T) {
	// given: a split day plus a forklift-only day
	records := []entry.DayRecord{
		{
			Date:     date(2),
			Normal:   &entry.Entry{Performance: 4, Hours: 5, Kind: calc.ShiftNormal},
			Forklift: &entry.Entry{Performance: 2, Hours: 3, Kind: calc.ShiftNormal},
		},
		{
			Date:     date(3),
			Forklift: &entry.Entry{Performance: 6, Hours: 8, Kind: calc.ShiftNormal},
		},
	}
	agg := defaultAggregator()
	p := januaryPeriod1()

	normal := agg.Aggregate(records, p, entry.CategoryNormal, date(1))
	forklift := agg.Aggregate(records, p, entry.CategoryForklift, date(1))

	// normal: only the day-2 entry, 5h -> 4.25 effective
	assert.InDelta(t, 4.25, normal.EffectiveHours, 1e-9)
	assert.InDelta(t, 4.0, normal.Performance, 1e-9)
	// forklift: 3h short shift (no deduction) + 8h shift
	assert.InDelta(t, 3+7.25, forklift.EffectiveHours, 1e-9)
	assert.InDelta(t, 8.0, forklift.Performance, 1e-9)
}

func TestAggregate_MissingDaysAreSharedAcrossCategories(t *testing.T) {
	// given: day 3 logged only under forklift
	records := []entry.DayRecord{
		{Date: date(3), Forklift: &entry.Entry{Performance: 6, Hours: 8, Kind: calc.ShiftNormal}},
	}
	agg := defaultAggregator()
	p := januaryPeriod1()

	normal := agg.Aggregate(records, p, entry.CategoryNormal, date(1))
	forklift := agg.Aggregate(records, p, entry.CategoryForklift, date(1))

	// the forklift-logged day is not missing for either category
	assert.Equal(t, 10, normal.MissingDays)
	assert.Equal(t, 10, forklift.MissingDays)
	assert.Equal(t, 1, normal.LoggedDays)
	assert.Equal(t, 0.0, normal.EffectiveHours)
}

func TestAggregate_FutureOnlyWindowIgnoresPastGaps(t *testing.T) {
	// given: only day 2 logged, reference date in mid-period
	records := []entry.DayRecord{normalDay(2, 7.25, 8)}
	p := januaryPeriod1()

	futureOnly := Aggregator{Policy: calc.PolicyStandard, Window: WindowFutureOnly}
	wholePeriod := Aggregator{Policy: calc.PolicyStandard, Window: WindowWholePeriod}

	// when: as of January 8
	future := futureOnly.Aggregate(records, p, entry.CategoryNormal, date(8))
	whole := wholePeriod.Aggregate(records, p, entry.CategoryNormal, date(8))

	// then: unlogged working days are 1, 3, 6, 7, 8, 9, 10, 13, 14, 15;
	// only 8-15 can still be worked
	assert.Equal(t, 6, future.MissingDays)
	assert.Equal(t, 10, whole.MissingDays)
}

func TestAggregate_IgnoresRecordsOutsidePeriod(t *testing.T) {
	records := []entry.DayRecord{
		normalDay(10, 7, 8),
		normalDay(20, 9, 8), // second half of the month
	}

	agg := defaultAggregator().Aggregate(records, januaryPeriod1(), entry.CategoryNormal, date(1))

	assert.InDelta(t, 7.0, agg.Performance, 1e-9)
	assert.Equal(t, 1, agg.LoggedDays)
}

func TestAggregate_MajorityRuleMovesBreakToLargerShare(t *testing.T) {
	records := []entry.DayRecord{
		{
			Date:     date(2),
			Normal:   &entry.Entry{Performance: 4, Hours: 5, Kind: calc.ShiftNormal},
			Forklift: &entry.Entry{Performance: 3, Hours: 4, Kind: calc.ShiftNormal},
		},
	}
	p := januaryPeriod1()
	withRule := Aggregator{Policy: calc.PolicyStandard, Window: WindowFutureOnly, MajorityRule: true}
	withoutRule := defaultAggregator()

	// majority (normal) keeps the deduction, minority (forklift) does not
	normal := withRule.Aggregate(records, p, entry.CategoryNormal, date(1))
	forklift := withRule.Aggregate(records, p, entry.CategoryForklift, date(1))
	assert.InDelta(t, 4.25, normal.EffectiveHours, 1e-9)
	assert.InDelta(t, 4.0, forklift.EffectiveHours, 1e-9)

	// without the rule both carry their own deduction
	forklift = withoutRule.Aggregate(records, p, entry.CategoryForklift, date(1))
	assert.InDelta(t, 3.25, forklift.EffectiveHours, 1e-9)
}

func TestAggregate_MajorityRuleTieGoesToNormal(t *testing.T) {
	records := []entry.DayRecord{
		{
			Date:     date(2),
			Normal:   &entry.Entry{Performance: 4, Hours: 4, Kind: calc.ShiftNormal},
			Forklift: &entry.Entry{Performance: 3, Hours: 4, Kind: calc.ShiftNormal},
		},
	}
	withRule := Aggregator{Policy: calc.PolicyStandard, Window: WindowFutureOnly, MajorityRule: true}

	normal := withRule.Aggregate(records, januaryPeriod1(), entry.CategoryNormal, date(1))
	forklift := withRule.Aggregate(records, januaryPeriod1(), entry.CategoryForklift, date(1))

	assert.InDelta(t, 3.25, normal.EffectiveHours, 1e-9)
	assert.InDelta(t, 4.0, forklift.EffectiveHours, 1e-9)
}

func TestProject_GoalAlreadyMetOnAverage(t *testing.T) {
	// the end-to-end scenario: one default day at exactly 100%, ten days left
	agg := Aggregate{EffectiveHours: 7.25, Performance: 7.25, LoggedDays: 1, MissingDays: 10, WorkingDays: 11}

	proj := Project(agg, 100, calc.DefaultEffective)

	assert.InDelta(t, 7.25, proj.DailyRequiredAbsolute, 1e-9)
	assert.InDelta(t, 100, proj.DailyRequiredPercentage, 1e-9)
	assert.InDelta(t, 100, proj.CurrentAveragePercentage, 1e-9)
	assert.InDelta(t, 7.25, proj.InstantlyToGoalAbsolute, 1e-9)
	assert.InDelta(t, 100, proj.InstantlyToGoalPercentage, 1e-9)
}

func TestProject_ExactTargetNeedsZeroMore(t *testing.T) {
	// logged performance equals the whole-period target: nothing more needed
	agg := Aggregate{EffectiveHours: 7.25, Performance: 7.25 * 1.2, MissingDays: 4}

	proj := Project(agg, 120, 0)

	// default effective 0 removes the projected hours for missing days
	assert.InDelta(t, 0, proj.DailyRequiredAbsolute, 1e-9)
}

func TestProject_ZeroMissingDays(t *testing.T) {
	agg := Aggregate{EffectiveHours: 72.5, Performance: 70, MissingDays: 0}

	proj := Project(agg, 100, calc.DefaultEffective)

	assert.Equal(t, 0.0, proj.DailyRequiredAbsolute)
	assert.Equal(t, 0.0, proj.DailyRequiredPercentage)
	// the one-more-day figure stays meaningful without missing days
	assert.InDelta(t, (72.5+7.25)-70, proj.InstantlyToGoalAbsolute, 1e-9)
}

func TestProject_NoLoggedHours(t *testing.T) {
	agg := Aggregate{MissingDays: 11}

	proj := Project(agg, 100, calc.DefaultEffective)

	assert.Equal(t, 0.0, proj.CurrentAveragePercentage)
	assert.InDelta(t, 7.25, proj.DailyRequiredAbsolute, 1e-9)
}

func TestProject_ExceededGoalGoesNegative(t *testing.T) {
	// already produced far beyond the target; requirement must not be clamped
	agg := Aggregate{EffectiveHours: 7.25, Performance: 50, MissingDays: 2}

	proj := Project(agg, 100, calc.DefaultEffective)

	assert.Less(t, proj.DailyRequiredAbsolute, 0.0)
	assert.Less(t, proj.InstantlyToGoalAbsolute, 0.0)
}

func TestOverallAverage(t *testing.T) {
	records := []entry.DayRecord{
		normalDay(2, 8, 8),
		{
			Date:     date(3),
			Normal:   &entry.Entry{Performance: 6, Hours: 8, Kind: calc.ShiftNormal},
			Forklift: &entry.Entry{Performance: 10, Hours: 8, Kind: calc.ShiftNormal},
		},
		normalDay(20, 100, 8), // outside period 1
	}

	avg := OverallAverage(records, januaryPeriod1())

	assert.InDelta(t, (8.0+6+10)/3, avg, 1e-9)
}

func TestOverallAverage_Empty(t *testing.T) {
	assert.Equal(t, 0.0, OverallAverage(nil, januaryPeriod1()))
}
