// Package busday derives the business date an order belongs to.
//
// The business date is the calendar day in the store's operational timezone,
// represented canonically as UTC midnight so it can serve as a grouping key
// and a unique-constraint column. Every write and read path that deals in
// "today" must go through Resolve; deriving the day anywhere else is how
// off-by-one-day bugs around midnight and DST happen.
package busday

import "time"

// Resolve returns the calendar date of instant in loc, normalized to UTC midnight.
func Resolve(instant time.Time, loc *time.Location) time.Time {
	y, m, d := instant.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameBusinessDay reports whether two instants fall on the same calendar day in loc.
func SameBusinessDay(a, b time.Time, loc *time.Location) bool {
	return Resolve(a, loc).Equal(Resolve(b, loc))
}
