// Package clock computes civil-day boundaries in the reference timezone.
//
// All "daily" semantics in the system — the total in the nightly SMS, the
// scope of the reset job — are defined against Indian Standard Time,
// regardless of where the process runs. IST has no daylight saving, so a
// fixed offset zone is exact and keeps the computation independent of the
// host's tzdata.
package clock

import "time"

// IST is the fixed reference timezone, UTC+5:30.
var IST = time.FixedZone("IST", 5*3600+30*60)

// DayWindow returns the half-open window [start, end) of the civil day in
// IST that contains now. start is midnight IST, end is 24h later.
func DayWindow(now time.Time) (start, end time.Time) {
	local := now.In(IST)
	start = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, IST)
	return start, start.Add(24 * time.Hour)
}

// SinceMidnight returns how far into the current IST civil day now is.
func SinceMidnight(now time.Time) time.Duration {
	start, _ := DayWindow(now)
	return now.Sub(start)
}
