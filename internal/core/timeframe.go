package core

import "time"

// TimeFrame is a named display window applied to the transaction set. Frames
// are independent filters, not a partition: a transaction dated today matches
// daily, weekly, and monthly at once.
type TimeFrame string

const (
	Daily   TimeFrame = "daily"
	Weekly  TimeFrame = "weekly"
	Monthly TimeFrame = "monthly"
	Future  TimeFrame = "future"
)

// Valid reports whether the frame is one of the recognized values. Stores
// treat an unrecognized frame as "no filter" rather than an error.
func (tf TimeFrame) Valid() bool {
	switch tf {
	case Daily, Weekly, Monthly, Future:
		return true
	default:
		return false
	}
}

// Contains reports whether a transaction dated date belongs to the frame
// relative to now. Comparison uses calendar fields only; time of day is
// stripped so boundary noise cannot shift membership.
//
//   - daily: same calendar date as now
//   - weekly: within the Sunday-Saturday week containing now, inclusive
//   - monthly: same year and month as now
//   - future: calendar date strictly after now's
//   - anything else: always true (unfiltered)
//
// The weekly rule is calendar-week containment, not a rolling seven days.
func (tf TimeFrame) Contains(now, date time.Time) bool {
	today := truncateToDay(now)
	day := truncateToDay(date)

	switch tf {
	case Daily:
		return day.Equal(today)
	case Weekly:
		start := today.AddDate(0, 0, -int(today.Weekday())) // Sunday
		end := start.AddDate(0, 0, 6)                       // Saturday
		return !day.Before(start) && !day.After(end)
	case Monthly:
		return date.Year() == now.Year() && date.Month() == now.Month()
	case Future:
		return day.After(today)
	default:
		return true
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
