package types

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Range is a time interval. Both Begin and End are inclusive when
// querying the expense store.
type Range struct {
	Begin time.Time `json:"begin" example:"2024-05-01T00:00:00+02:00"` // First instant of the interval
	End   time.Time `json:"end" example:"2024-05-31T23:59:00+02:00"`   // Last instant of the interval
}

// String returns a human readable representation of the interval.
func (r Range) String() string {
	return fmt.Sprintf("time interval [%s] => [%s]", r.Begin.Format("2006-01-02 15:04:05"), r.End.Format("2006-01-02 15:04:05"))
}

// Contains reports whether t is within the range.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Begin) && !t.After(r.End)
}

// Location returns the location the range boundaries are expressed in.
func (r Range) Location() *time.Location {
	return r.Begin.Location()
}

// Month returns the month the range begins in.
func (r Range) Month() Month {
	return MonthOf(r.Begin)
}

// CurrentWeek spans from Monday 00:00 of the week now is in to the last
// minute of the following Sunday.
func CurrentWeek(now time.Time) Range {
	// time.Weekday starts with Sunday = 0
	offset := (int(now.Weekday()) + 6) % 7

	y, m, d := now.Date()
	begin := time.Date(y, m, d-offset, 0, 0, 0, 0, now.Location())

	return Range{
		Begin: begin,
		End:   begin.AddDate(0, 0, 7).Add(-time.Minute),
	}
}

// CurrentMonth spans from the first of the month now is in to now.
func CurrentMonth(now time.Time) Range {
	return Range{
		Begin: MonthOf(now).Start(now.Location()),
		End:   now,
	}
}

// LastMonth spans the whole month before the month now is in.
func LastMonth(now time.Time) Range {
	return ForMonth(MonthOf(now).Previous(), now.Location())
}

// ForMonth spans the whole month m in loc, ending with its last minute.
func ForMonth(m Month, loc *time.Location) Range {
	begin := m.Start(loc)

	return Range{
		Begin: begin,
		End:   begin.AddDate(0, 1, 0).Add(-time.Minute),
	}
}

// ParseMonthRange returns the range for a month and year given as numeric
// strings, e.g. from URL paths. Invalid input falls back to the month now
// is in.
func ParseMonthRange(month, year string, now time.Time) Range {
	m, errMonth := strconv.Atoi(month)
	y, errYear := strconv.Atoi(year)

	if errMonth != nil || errYear != nil || m < 1 || m > 12 {
		log.Warn().Str("month", month).Str("year", year).Msg("illegal month or year in request, using current month")
		return ForMonth(MonthOf(now), now.Location())
	}

	return ForMonth(NewMonth(y, time.Month(m)), now.Location())
}
