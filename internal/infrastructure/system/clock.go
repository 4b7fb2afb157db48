package system

import "time"

// Clock is the wall clock.
type Clock struct{}

func (Clock) Now() time.Time { return time.Now().UTC() }
