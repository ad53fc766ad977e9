package attendance

import (
	"math"
	"time"
)

const (
	fullDayHours = 8
	halfDayHours = 4
)

func WorkedHours(checkIn, checkOut time.Time) float64 {
	h := checkOut.Sub(checkIn).Hours()
	if h < 0 {
		return 0
	}
	return math.Round(h*100) / 100
}

func Classify(hours float64) string {
	switch {
	case hours >= fullDayHours:
		return StatusPresent
	case hours >= halfDayHours:
		return StatusHalfDay
	default:
		return StatusAbsent
	}
}

// LocalDay returns the calendar day of t as seen in loc, stored as UTC midnight.
func LocalDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD date into UTC midnight.
func ParseDay(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusPresent, StatusHalfDay, StatusAbsent, StatusHoliday, StatusLeave:
		return true
	default:
		return false
	}
}
