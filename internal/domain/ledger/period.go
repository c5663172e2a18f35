package ledger

import "time"

// Period selects how far back a report reaches. The upper bound is always
// "now"; only the lower bound varies.
type Period string

const (
	PeriodAll   Period = "all"
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod parses a period query value. The empty string means all time.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "":
		return PeriodAll, nil
	case PeriodAll, PeriodToday, PeriodWeek, PeriodMonth:
		return Period(s), nil
	}
	return "", ErrInvalidPeriod
}

// LowerBound returns the inclusive lower bound of the window ending at now,
// and whether a bound applies at all.
//
// "today" and "month" align to the calendar (local midnight, first of the
// month); "week" is a rolling 168-hour window with no calendar alignment.
// The asymmetry is intentional and must not be normalized.
func (p Period) LowerBound(now time.Time) (time.Time, bool) {
	switch p {
	case PeriodToday:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), true
	case PeriodWeek:
		return now.Add(-7 * 24 * time.Hour), true
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	}
	return time.Time{}, false
}
