package calc

import (
	"fmt"
	"math"
)

// ShiftKind classifies a shift for break-deduction purposes. A single tagged
// value replaces the overtime/free-day flag pair so the invalid "both set"
// combination cannot be represented.
type ShiftKind string

const (
	// ShiftNormal is a regular scheduled shift.
	ShiftNormal ShiftKind = "normal"
	// ShiftOvertime is an overtime extension of a regular shift.
	ShiftOvertime ShiftKind = "overtime"
	// ShiftOvertimeFreeDay is a shift worked entirely on an unscheduled day.
	ShiftOvertimeFreeDay ShiftKind = "overtime_free_day"
)

// ShiftKindFromFlags maps the legacy flag pair to a ShiftKind. The free-day
// flag wins when both are set, matching the rule precedence.
func ShiftKindFromFlags(overtime bool, freeDay bool) ShiftKind {
	if freeDay {
		return ShiftOvertimeFreeDay
	}
	if overtime {
		return ShiftOvertime
	}
	return ShiftNormal
}

// Flags returns the legacy (overtime, freeDay) encoding of the kind.
func (k ShiftKind) Flags() (overtime bool, freeDay bool) {
	switch k {
	case ShiftOvertime:
		return true, false
	case ShiftOvertimeFreeDay:
		return false, true
	default:
		return false, false
	}
}

const (
	// mealBreak is the unpaid meal break deducted from the performance basis.
	mealBreak = 0.75
	// microBreakFactor approximates a 2-minute-per-hour microbreak deduction.
	microBreakFactor = 0.967
	// shortShiftLimit is the duration below which no break is deducted.
	shortShiftLimit = 4.0
	// baseShift is the nominal shift length in hours.
	baseShift = 8.0

	// DefaultShiftHours is the assumed raw length of an unlogged working day.
	DefaultShiftHours = 8.0
	// DefaultEffective is the effective value of a default shift (8h - meal break).
	DefaultEffective = 7.25
)

// BreakPolicy is a versioned effective-hours rule set. The formulas drifted
// across contract revisions, so each revision is pinned as its own policy.
type BreakPolicy string

const (
	// PolicyStandard is the current rule set.
	PolicyStandard BreakPolicy = "standard"
	// PolicyLegacy is the earlier rule set with flat extra-hour deductions.
	PolicyLegacy BreakPolicy = "legacy"
)

// PolicyFromName resolves a configured policy name.
func PolicyFromName(name string) (BreakPolicy, error) {
	switch BreakPolicy(name) {
	case PolicyStandard:
		return PolicyStandard, nil
	case PolicyLegacy:
		return PolicyLegacy, nil
	default:
		return "", fmt.Errorf("unknown break policy: %q", name)
	}
}

// EffectiveHours converts raw clock hours into performance-basis hours after
// contractual break deductions. Pure and total: every input maps to a number,
// the caller is responsible for hours >= 0.
func (p BreakPolicy) EffectiveHours(hours float64, kind ShiftKind) float64 {
	if p == PolicyLegacy {
		return legacyEffectiveHours(hours, kind)
	}
	return standardEffectiveHours(hours, kind)
}

func standardEffectiveHours(hours float64, kind ShiftKind) float64 {
	switch {
	case kind == ShiftOvertimeFreeDay:
		// No fixed meal break on an unscheduled day, only microbreaks.
		return hours * microBreakFactor
	case hours < shortShiftLimit:
		return hours
	case kind == ShiftOvertime:
		if hours <= baseShift {
			return hours - mealBreak
		}
		return (baseShift - mealBreak) + (hours-baseShift)*microBreakFactor
	default:
		if hours <= baseShift {
			return hours - mealBreak
		}
		// Extra hours past the base shift carry no further break.
		return (baseShift - mealBreak) + (hours - baseShift)
	}
}

func legacyEffectiveHours(hours float64, kind ShiftKind) float64 {
	if hours <= baseShift {
		if kind == ShiftOvertimeFreeDay {
			return hours - 0.25
		}
		return hours - mealBreak
	}
	extra := hours - baseShift
	switch kind {
	case ShiftOvertimeFreeDay:
		return (baseShift - 0.25) + (extra - 0.25)
	case ShiftOvertime:
		return (baseShift - mealBreak) + (extra - 0.25)
	default:
		return (baseShift - mealBreak) + (extra - mealBreak)
	}
}

// PerformancePercentage derives the integer performance percentage of a
// single entry. Zero or negative effective hours yield 0 instead of a
// division error.
func (p BreakPolicy) PerformancePercentage(performance float64, hours float64, kind ShiftKind) int {
	effective := p.EffectiveHours(hours, kind)
	if effective <= 0 {
		return 0
	}
	return RoundHalfUp(performance / effective * 100)
}

// PaidHours returns the wage-basis hours of a shift. A half-hour unpaid break
// applies to normal shifts of at least four hours; the performance basis uses
// a different deduction and is handled by EffectiveHours.
func PaidHours(hours float64, kind ShiftKind) float64 {
	if hours >= shortShiftLimit && kind == ShiftNormal {
		return hours - 0.5
	}
	return hours
}

const (
	linearScaleLow  = 7.25
	linearScaleHigh = 10.88
)

// LinearPercentage maps an absolute per-day performance average onto the
// legacy linear percentage scale where 7.25 is 100% and 10.88 is 150%.
func LinearPercentage(average float64) int {
	return RoundHalfUp((average-linearScaleLow)/(linearScaleHigh-linearScaleLow)*50 + 100)
}

// RoundHalfUp rounds to the nearest integer with halves going up.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
