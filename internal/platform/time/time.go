// Package time holds the process clock used for entry and row timestamps
package time

import "time"

// Now returns the current UTC time at millisecond precision. Tests swap it.
var Now = func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
