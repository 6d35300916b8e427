package tzcron

import "time"

// maxYearScan bounds the forward search when the year field is "*". Eight
// years covers the longest legitimate wait, the gap between leap years for
// expressions like "0 0 29 2 * *".
const maxYearScan = 8

// next returns the smallest naive instant strictly after the given one that
// matches every field of the expression. Naive instants are wall-clock
// readings carried in UTC with zero seconds; no timezone is involved here.
//
// The search jumps from one set member to the next with carry into the
// coarser field, so a multi-year gap costs a handful of iterations rather
// than a minute-by-minute scan. Days are the exception: the day-of-month /
// day-of-week rule makes the next matching day a scan, bounded by the month
// length.
func (e *Expression) next(after time.Time) (time.Time, error) {
	t := after.Add(time.Minute)
	yearLimit := after.Year() + maxYearScan

	for {
		if !e.years.star {
			if !e.years.contains(t.Year()) {
				y, ok := e.years.ceil(t.Year())
				if !ok {
					// Every allowed year is in the past.
					return time.Time{}, ErrExhausted
				}
				t = time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
			}
		} else if t.Year() > yearLimit {
			return time.Time{}, &UnmatchableError{Expression: e.source}
		}

		if !e.months.contains(int(t.Month())) {
			if m, ok := e.months.above(int(t.Month())); ok {
				t = time.Date(t.Year(), time.Month(m), 1, 0, 0, 0, 0, time.UTC)
			} else {
				t = time.Date(t.Year()+1, time.Month(e.months.min()), 1, 0, 0, 0, 0, time.UTC)
			}
			continue
		}

		if !e.dayMatches(t) {
			t = time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, time.UTC)
			continue
		}

		if !e.hours.contains(t.Hour()) {
			if h, ok := e.hours.above(t.Hour()); ok {
				t = time.Date(t.Year(), t.Month(), t.Day(), h, 0, 0, 0, time.UTC)
			} else {
				t = time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, time.UTC)
			}
			continue
		}

		if !e.minutes.contains(t.Minute()) {
			if m, ok := e.minutes.above(t.Minute()); ok {
				t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), m, 0, 0, time.UTC)
			} else {
				t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour()+1, 0, 0, 0, time.UTC)
			}
			continue
		}

		return t, nil
	}
}

// dayMatches implements the cron day rule: when both day-of-month and
// day-of-week are restricted, a date matches if either is satisfied; when one
// of them is a bare "*", only the other constrains.
func (e *Expression) dayMatches(t time.Time) bool {
	dom := e.days.contains(t.Day())
	dow := e.weekdays.contains(isoWeekday(t))
	if e.days.star || e.weekdays.star {
		return dom && dow
	}
	return dom || dow
}

// isoWeekday maps time.Weekday to the expression numbering, Monday=1 through
// Sunday=7.
func isoWeekday(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}
