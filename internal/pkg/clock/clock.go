package clock

import "time"

// Clock abstracts the wall clock so services can be tested against a fixed
// point in time.
type Clock interface {
	Now() time.Time
}

// System reads the real wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}
