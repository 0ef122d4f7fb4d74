package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardEffectiveHours(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		kind  ShiftKind
		want  float64
	}{
		{"default shift nets 7.25", 8, ShiftNormal, 7.25},
		{"normal shift at lower break limit", 4, ShiftNormal, 3.25},
		{"short shift has no deduction", 3, ShiftNormal, 3},
		{"short shift boundary stays below limit", 3.99, ShiftNormal, 3.99},
		{"normal shift between 4 and 8", 6, ShiftNormal, 5.25},
		{"extra hours past 8 deduct nothing more", 10, ShiftNormal, 9.25},
		{"overtime up to 8 hours deducts one break", 8, ShiftOvertime, 7.25},
		{"overtime past 8 hours applies microbreak factor", 10, ShiftOvertime, 7.25 + 2*0.967},
		{"free day multiplies whole shift", 8, ShiftOvertimeFreeDay, 8 * 0.967},
		{"free day applies to short shifts too", 2, ShiftOvertimeFreeDay, 2 * 0.967},
		{"zero hours", 0, ShiftNormal, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PolicyStandard.EffectiveHours(tt.hours, tt.kind)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestStandardEffectiveHours_FreeDayIsProportional(t *testing.T) {
	for h := 0.0; h <= 16; h += 0.5 {
		assert.InDelta(t, h*0.967, PolicyStandard.EffectiveHours(h, ShiftOvertimeFreeDay), 1e-9)
	}
}

func TestStandardEffectiveHours_NeverExceedsRawHours(t *testing.T) {
	kinds := []ShiftKind{ShiftNormal, ShiftOvertime, ShiftOvertimeFreeDay}
	for _, kind := range kinds {
		for h := 0.0; h <= 16; h += 0.25 {
			assert.LessOrEqual(t, PolicyStandard.EffectiveHours(h, kind), h,
				"effective hours must not exceed raw hours (kind=%s, h=%v)", kind, h)
		}
	}
}

func TestLegacyEffectiveHours(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		kind  ShiftKind
		want  float64
	}{
		{"normal 8h shift", 8, ShiftNormal, 7.25},
		{"normal shift past 8 deducts another break", 10, ShiftNormal, 7.25 + 2 - 0.75},
		{"overtime past 8 deducts quarter hour", 10, ShiftOvertime, 7.25 + 2 - 0.25},
		{"free day up to 8 deducts quarter hour", 8, ShiftOvertimeFreeDay, 7.75},
		{"free day past 8", 10, ShiftOvertimeFreeDay, 7.75 + 2 - 0.25},
		{"no short shift carve-out in legacy rules", 3, ShiftNormal, 2.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PolicyLegacy.EffectiveHours(tt.hours, tt.kind)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPerformancePercentage(t *testing.T) {
	tests := []struct {
		name        string
		performance float64
		hours       float64
		kind        ShiftKind
		want        int
	}{
		{"exactly 100 percent", 7.25, 8, ShiftNormal, 100},
		{"rounds down below half", 7.28, 8, ShiftNormal, 100},
		{"rounds up above half", 7.29, 8, ShiftNormal, 101},
		{"above goal", 8.7, 8, ShiftNormal, 120},
		{"zero performance", 0, 8, ShiftNormal, 0},
		{"zero effective hours guard", 5, 0, ShiftNormal, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PolicyStandard.PerformancePercentage(tt.performance, tt.hours, tt.kind)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPerformancePercentage_ZeroEffectiveReturnsZero(t *testing.T) {
	// 0 raw hours on a free day resolves to 0 effective hours.
	assert.Equal(t, 0, PolicyStandard.PerformancePercentage(10, 0, ShiftOvertimeFreeDay))
}

func TestPaidHours(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		kind  ShiftKind
		want  float64
	}{
		{"normal shift deducts half hour", 8, ShiftNormal, 7.5},
		{"short normal shift keeps raw hours", 3.5, ShiftNormal, 3.5},
		{"overtime keeps raw hours", 8, ShiftOvertime, 8},
		{"free day keeps raw hours", 8, ShiftOvertimeFreeDay, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PaidHours(tt.hours, tt.kind), 1e-9)
		})
	}
}

func TestLinearPercentage(t *testing.T) {
	assert.Equal(t, 100, LinearPercentage(7.25))
	assert.Equal(t, 150, LinearPercentage(10.88))
	assert.Equal(t, 125, LinearPercentage((7.25+10.88)/2))
	assert.Less(t, LinearPercentage(5), 100)
}

func TestShiftKindFromFlags(t *testing.T) {
	assert.Equal(t, ShiftNormal, ShiftKindFromFlags(false, false))
	assert.Equal(t, ShiftOvertime, ShiftKindFromFlags(true, false))
	assert.Equal(t, ShiftOvertimeFreeDay, ShiftKindFromFlags(false, true))
	// Free day takes precedence when both legacy flags are set.
	assert.Equal(t, ShiftOvertimeFreeDay, ShiftKindFromFlags(true, true))
}

func TestShiftKindFlagsRoundTrip(t *testing.T) {
	for _, kind := range []ShiftKind{ShiftNormal, ShiftOvertime, ShiftOvertimeFreeDay} {
		overtime, freeDay := kind.Flags()
		assert.Equal(t, kind, ShiftKindFromFlags(overtime, freeDay))
	}
}

func TestPolicyFromName(t *testing.T) {
	p, err := PolicyFromName("standard")
	assert.NoError(t, err)
	assert.Equal(t, PolicyStandard, p)

	p, err = PolicyFromName("legacy")
	assert.NoError(t, err)
	assert.Equal(t, PolicyLegacy, p)

	_, err = PolicyFromName("2019-draft")
	assert.Error(t, err)
}
