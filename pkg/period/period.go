package period

import "time"

// Period is a fixed half-month pay window: days 1-15 of a month, or day 16
// through the month's last day. Periods never span month boundaries.
type Period struct {
	Label    string
	Year     int
	Month    time.Month
	StartDay int
	EndDay   int
}

const (
	Label1 = "Period 1"
	Label2 = "Period 2"
)

// ForDate returns the period containing the given date.
func ForDate(date time.Time) Period {
	year, month, day := date.Date()
	if day <= 15 {
		return Period{Label: Label1, Year: year, Month: month, StartDay: 1, EndDay: 15}
	}
	return Period{Label: Label2, Year: year, Month: month, StartDay: 16, EndDay: lastDayOfMonth(year, month)}
}

func lastDayOfMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Start returns midnight UTC of the period's first day.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, p.StartDay, 0, 0, 0, 0, time.UTC)
}

// End returns midnight UTC of the period's last day.
func (p Period) End() time.Time {
	return time.Date(p.Year, p.Month, p.EndDay, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether the given date falls inside the period.
func (p Period) Contains(date time.Time) bool {
	year, month, day := date.Date()
	return year == p.Year && month == p.Month && day >= p.StartDay && day <= p.EndDay
}

// IsWorkingDay reports whether the date is a weekday. The calendar assumes a
// fixed five-day work week with no holiday schedule.
func IsWorkingDay(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// WorkingDays enumerates every weekday of the period in calendar order.
func (p Period) WorkingDays() []time.Time {
	days := make([]time.Time, 0, p.EndDay-p.StartDay+1)
	for d := p.StartDay; d <= p.EndDay; d++ {
		date := time.Date(p.Year, p.Month, d, 0, 0, 0, 0, time.UTC)
		if IsWorkingDay(date) {
			days = append(days, date)
		}
	}
	return days
}

// TotalDays returns the number of calendar days in the period.
func (p Period) TotalDays() int {
	return p.EndDay - p.StartDay + 1
}
