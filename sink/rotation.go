package sink

import "time"

// nextRotationBoundary returns the instant at which a file sink rotating
// under r must next roll over, given the current time from. The zero
// Time means no time-based rotation boundary applies.
func nextRotationBoundary(r Rotation, from time.Time) time.Time {
	switch r {
	case Daily:
		tomorrow := from.AddDate(0, 0, 1)
		return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, from.Location())
	case Hourly:
		nextHour := from.Hour() + 1
		if nextHour < 24 {
			return time.Date(from.Year(), from.Month(), from.Day(), nextHour, 0, 0, 0, from.Location())
		}
		tomorrow := from.AddDate(0, 0, 1)
		return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, from.Location())
	default:
		return time.Time{}
	}
}
