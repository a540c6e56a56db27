package domain

import "fmt"

// Period is a reporting window selected by the user. Metrics are scaled by a
// fixed per-period coefficient rather than queried over a real time range.
type Period string

const (
	PeriodLast7Days  Period = "last7days"
	PeriodLast30Days Period = "last30days"
	PeriodThisWeek   Period = "thisweek"
	PeriodThisMonth  Period = "thismonth"
	PeriodLastMonth  Period = "lastmonth"
	PeriodThisYear   Period = "thisyear"
	PeriodLastYear   Period = "lastyear"
	PeriodAllTime    Period = "alltime"
)

const DefaultPeriod = PeriodLast30Days

// Periods lists every reporting window. The multiplier table must cover each
// entry.
var Periods = []Period{
	PeriodLast7Days, PeriodLast30Days, PeriodThisWeek, PeriodThisMonth,
	PeriodLastMonth, PeriodThisYear, PeriodLastYear, PeriodAllTime,
}

var periodMultipliers = map[Period]float64{
	PeriodLast7Days:  0.23,
	PeriodLast30Days: 1.0,
	PeriodThisWeek:   0.19,
	PeriodThisMonth:  0.85,
	PeriodLastMonth:  0.92,
	PeriodThisYear:   8.4,
	PeriodLastYear:   11.2,
	PeriodAllTime:    24.6,
}

// Multiplier returns the scaling coefficient for p.
func (p Period) Multiplier() (float64, error) {
	m, ok := periodMultipliers[p]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPeriod, p)
	}
	return m, nil
}

// Valid reports whether p has a defined multiplier.
func (p Period) Valid() bool {
	_, ok := periodMultipliers[p]
	return ok
}
