package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkedHoursAndClassify(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		out    time.Time
		hours  float64
		status string
	}{
		{"full day", base.Add(9*time.Hour + 15*time.Minute), 9.25, StatusPresent},
		{"exactly eight", base.Add(8 * time.Hour), 8, StatusPresent},
		{"just under eight", base.Add(7*time.Hour + 59*time.Minute), 7.98, StatusHalfDay},
		{"exactly four", base.Add(4 * time.Hour), 4, StatusHalfDay},
		{"four twenty", base.Add(4*time.Hour + 20*time.Minute), 4.33, StatusHalfDay},
		{"short", base.Add(3*time.Hour + 59*time.Minute), 3.98, StatusAbsent},
		{"reversed stamps", base.Add(-time.Hour), 0, StatusAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := WorkedHours(base, tt.out)
			assert.Equal(t, tt.hours, h)
			assert.Equal(t, tt.status, Classify(h))
		})
	}
}

func TestLocalDay(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	assert.NoError(t, err)

	// 20:00 UTC on the 1st is 01:30 on the 2nd in Kolkata.
	now := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), LocalDay(now, kolkata))
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), LocalDay(now, time.UTC))
}

func TestAttendance_Recompute(t *testing.T) {
	in := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	out := in.Add(5 * time.Hour)

	a := &Attendance{CheckIn: &in, CheckOut: &out, Status: StatusHoliday}
	a.Recompute(false)
	assert.Equal(t, 5.0, a.WorkedHours)
	assert.Equal(t, StatusHoliday, a.Status)

	a.Recompute(true)
	assert.Equal(t, StatusHalfDay, a.Status)

	open := &Attendance{CheckIn: &in, Status: StatusPresent}
	open.Recompute(true)
	assert.Zero(t, open.WorkedHours)
	assert.Equal(t, StatusPresent, open.Status)
}
