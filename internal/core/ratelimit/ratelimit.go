// Package ratelimit defines the sliding-window admission policy.
package ratelimit

import "time"

// Policy admits at most MaxRequests attempts per key in any trailing Window.
type Policy struct {
	MaxRequests int
	Window      time.Duration
}

func DefaultPolicy() Policy {
	return Policy{MaxRequests: 3, Window: time.Minute}
}

// Decision is the outcome of one admission check. Denied attempts are not
// counted against the window.
type Decision struct {
	Allowed bool
	// Remaining is the number of attempts still available in the window
	// after this one.
	Remaining int
	// RetryAfter is how long until the oldest counted attempt leaves the
	// window. Zero when Allowed.
	RetryAfter time.Duration
}
