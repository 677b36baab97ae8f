// Package period represents the closed date interval used for statistics.
package period

import (
	"fmt"
	"time"
)

// DateLayout is the human-facing date format used at the chat boundary.
const DateLayout = "02.01.2006"

// Period is a closed calendar-date interval [Start, End]. The time-of-day
// component of both bounds is zero; comparisons against record timestamps are
// done on the date component only.
type Period struct {
	Start time.Time
	End   time.Time
}

// Parse builds a Period from two dd.mm.yyyy literals.
func Parse(startDate, endDate string) (Period, error) {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return Period{}, fmt.Errorf("invalid start date %q: expected format %s", startDate, DateLayout)
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return Period{}, fmt.Errorf("invalid end date %q: expected format %s", endDate, DateLayout)
	}
	if start.After(end) {
		return Period{}, fmt.Errorf("start date %s is after end date %s", startDate, endDate)
	}
	return Period{Start: start, End: end}, nil
}

// Day returns a single-day period for the given time's calendar date.
func Day(t time.Time) Period {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return Period{Start: d, End: d}
}

// Week returns the period from seven days ago through t's date.
func Week(t time.Time) Period {
	p := Day(t)
	p.Start = p.End.AddDate(0, 0, -7)
	return p
}

// Month returns the full calendar month containing t.
func Month(t time.Time) Period {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Period{Start: first, End: first.AddDate(0, 1, -1)}
}

// StartSQL and EndSQL return the bounds in the YYYY-MM-DD form used by
// date() comparisons in SQL.
func (p Period) StartSQL() string { return p.Start.Format("2006-01-02") }
func (p Period) EndSQL() string   { return p.End.Format("2006-01-02") }

// String renders the interval for reports, e.g. "с 01.01.2024 по 31.01.2024".
func (p Period) String() string {
	return fmt.Sprintf("с %s по %s", p.Start.Format(DateLayout), p.End.Format(DateLayout))
}
