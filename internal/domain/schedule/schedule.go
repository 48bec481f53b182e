package schedule

import "time"

// Active reports whether now falls inside the [start, end) window.
// A nil bound is unbounded on that side. Inclusive start, exclusive end,
// so a membership expiring at midnight is locked from midnight on.
//
// A window with end before start never matches.
func Active(now time.Time, start, end *time.Time) bool {
	if start != nil && now.Before(*start) {
		return false
	}
	if end != nil && !now.Before(*end) {
		return false
	}
	return true
}
