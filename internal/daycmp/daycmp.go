// Package daycmp contains calendar-day helpers shared by the reward engine
// and the session guard, so both sides agree on what "the same day" means.
package daycmp

import (
	"time"
)

// SameDay reports whether a and b fall on the same calendar day in loc.
// A nil loc means time.Local.
func SameDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}

	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()

	return ay == by && am == bm && ad == bd
}

// Key returns the day key used for per-day counters, e.g. "2021-03-04".
func Key(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}

	return t.In(loc).Format("2006-01-02")
}
