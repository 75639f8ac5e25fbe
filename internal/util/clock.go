package util

import "time"

// Clock abstracts "today" so streak and goal logic can be tested against
// fixed dates.
type Clock interface {
	Today() time.Time
}

type SystemClock struct{}

// Today returns the current local date truncated to midnight.
func (SystemClock) Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
