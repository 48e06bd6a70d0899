package toolbag

import (
	"math"
	"time"
)

// labviewEpoch is the zero of LabVIEW timestamps.
var labviewEpoch = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)

// LabVIEWTime converts seconds since the LabVIEW epoch, 1904-01-01 UTC, to a
// time. The result is in UTC.
func LabVIEWTime(seconds float64) time.Time {
	whole, frac := math.Modf(seconds)
	return labviewEpoch.
		Add(time.Duration(whole) * time.Second).
		Add(time.Duration(math.Round(frac * 1e9)))
}

// LabVIEWTimes converts each element of seconds with LabVIEWTime.
func LabVIEWTimes(seconds []float64) []time.Time {
	out := make([]time.Time, len(seconds))
	for i, s := range seconds {
		out[i] = LabVIEWTime(s)
	}
	return out
}
