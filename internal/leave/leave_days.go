package leave

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// TotalDays is 0.5 for a half day, otherwise the inclusive day count.
func TotalDays(start, end time.Time, halfDay bool) float64 {
	if halfDay {
		return 0.5
	}
	return math.Ceil(end.Sub(start).Hours()/24) + 1
}

func DatesInRange(start, end time.Time) []time.Time {
	if end.Before(start) {
		return nil
	}
	dates := make([]time.Time, 0, int(end.Sub(start)/day)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
