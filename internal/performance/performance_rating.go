package performance

import "github.com/shopspring/decimal"

var (
	goalWeight    = decimal.RequireFromString("0.6")
	managerWeight = decimal.RequireFromString("0.3")
	hrWeight      = decimal.RequireFromString("0.1")
	four          = decimal.NewFromInt(4)
	hundred       = decimal.NewFromInt(100)
)

// AverageProgress is the plain mean of the snapshot progress values, 0 without goals.
func AverageProgress(goals GoalSnapshots) decimal.Decimal {
	if len(goals) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, g := range goals {
		sum = sum.Add(decimal.NewFromInt(int64(g.EffectiveProgress())))
	}
	return sum.Div(decimal.NewFromInt(int64(len(goals))))
}

// GoalRating maps 0..100% average completion onto the 1..5 scale.
func GoalRating(goals GoalSnapshots) decimal.Decimal {
	return AverageProgress(goals).Div(hundred).Mul(four).Add(decimal.NewFromInt(1))
}

// FinalRating weights goals 60%, manager 30% and HR 10%. Ratings not yet given count
// as zero, so the value is provisional until the HR stage.
func FinalRating(goals GoalSnapshots, managerRating, hrRating int) decimal.Decimal {
	return GoalRating(goals).Mul(goalWeight).
		Add(decimal.NewFromInt(int64(managerRating)).Mul(managerWeight)).
		Add(decimal.NewFromInt(int64(hrRating)).Mul(hrWeight)).
		Round(2)
}

var reviewOrder = map[string]int{
	ReviewNotStarted:      0,
	ReviewSelfSubmitted:   1,
	ReviewManagerReviewed: 2,
	ReviewHRReviewed:      3,
	ReviewFinalized:       4,
}

var nextReviewStatus = map[string]string{
	ReviewNotStarted:      ReviewSelfSubmitted,
	ReviewSelfSubmitted:   ReviewManagerReviewed,
	ReviewManagerReviewed: ReviewHRReviewed,
	ReviewHRReviewed:      ReviewFinalized,
}

// CanAdvance reports whether a review may move from -> to in a single forward step.
func CanAdvance(from, to string) bool {
	next, ok := nextReviewStatus[from]
	return ok && next == to
}

// ReviewStage is the position of status in the pipeline, -1 when unknown.
func ReviewStage(status string) int {
	stage, ok := reviewOrder[status]
	if !ok {
		return -1
	}
	return stage
}

var nextCycleStatus = map[string]string{
	CycleUpcoming: CycleActive,
	CycleActive:   CycleClosed,
}

func canAdvanceCycle(from, to string) bool {
	next, ok := nextCycleStatus[from]
	return ok && next == to
}
