package performance_test

import (
	"testing"

	"go-hrms/internal/performance"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func progress(v int) *int {
	return &v
}

func assertRating(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.StringFixed(2))
}

func TestFinalRating(t *testing.T) {
	tests := []struct {
		name    string
		goals   performance.GoalSnapshots
		manager int
		hr      int
		want    string
	}{
		{
			name: "all stages complete",
			goals: performance.GoalSnapshots{
				{Progress: 10, FinalProgress: progress(80)},
				{Progress: 20, FinalProgress: progress(60)},
			},
			manager: 4,
			hr:      5,
			want:    "3.98",
		},
		{
			name:  "provisional before manager and hr",
			goals: performance.GoalSnapshots{{Progress: 50}},
			want:  "1.80",
		},
		{
			name: "no goals maps to the bottom of the scale",
			want: "0.60",
		},
		{
			name:    "full marks",
			goals:   performance.GoalSnapshots{{Progress: 100}, {Progress: 0, FinalProgress: progress(100)}},
			manager: 5,
			hr:      5,
			want:    "5.00",
		},
		{
			name:    "repeating average rounds to two places",
			goals:   performance.GoalSnapshots{{Progress: 0}, {Progress: 0}, {Progress: 100}},
			manager: 3,
			hr:      4,
			want:    "2.70",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRating(t, tt.want, performance.FinalRating(tt.goals, tt.manager, tt.hr))
		})
	}
}

func TestGoalRating(t *testing.T) {
	assertRating(t, "3.8", performance.GoalRating(performance.GoalSnapshots{{Progress: 70}}))
	assertRating(t, "1", performance.GoalRating(nil))
}

func TestCanAdvance(t *testing.T) {
	statuses := []string{
		performance.ReviewNotStarted,
		performance.ReviewSelfSubmitted,
		performance.ReviewManagerReviewed,
		performance.ReviewHRReviewed,
		performance.ReviewFinalized,
	}

	for i, from := range statuses {
		for j, to := range statuses {
			assert.Equal(t, j == i+1, performance.CanAdvance(from, to), "%s -> %s", from, to)
		}
		assert.Equal(t, i, performance.ReviewStage(from))
	}
	assert.Equal(t, -1, performance.ReviewStage("archived"))
	assert.False(t, performance.CanAdvance(performance.ReviewFinalized, performance.ReviewNotStarted))
}
