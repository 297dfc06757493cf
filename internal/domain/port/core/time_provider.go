package core

import "time"

// TimeProvider abstracts the clock so token expiry and timestamps are
// testable with a fixed time.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
