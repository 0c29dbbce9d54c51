package dateutil

import "time"

// DayOf truncates an instant to its calendar day in the given location. The
// result is a bare date (midnight UTC) so that two instants on the same local
// day always map to the same value regardless of their own locations.
func DayOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// InclusiveDays counts the days in a closed date range. A single-day range
// yields 1.
func InclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// MinutesOfDay returns the local wall-clock time of t expressed as minutes
// after midnight.
func MinutesOfDay(t time.Time, loc *time.Location) int {
	local := t.In(loc)
	return local.Hour()*60 + local.Minute()
}
