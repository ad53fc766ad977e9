package performance_test

import (
	"context"
	"testing"

	"go-hrms/internal/domain"
	"go-hrms/internal/performance"
	performanceerrors "go-hrms/internal/performance/errors"
	performanceMock "go-hrms/internal/performance/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupServiceTest(t *testing.T) (performance.Service, *performanceMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := performanceMock.NewMockRepository(ctrl)
	return performance.NewService(repo), repo
}

var hrActor = domain.Actor{UserID: uuid.New().String(), EmployeeID: uuid.New().String(), Role: domain.RoleHR}

func activeCycle() *performance.ReviewCycle {
	return &performance.ReviewCycle{ID: uuid.New(), Name: "H1 2026", Status: performance.CycleActive}
}

func TestService_ReviewCycles(t *testing.T) {
	ctx := context.Background()

	t.Run("create starts upcoming", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().CreateCycle(ctx, gomock.Any()).Return(nil)

		resp, err := svc.CreateCycle(ctx, hrActor, performance.CreateCycleRequest{
			Name: " H1 2026 ", StartDate: "2026-01-01", EndDate: "2026-06-30",
		})

		assert.NoError(t, err)
		assert.Equal(t, performance.CycleUpcoming, resp.Status)
		assert.Equal(t, "H1 2026", resp.Name)
	})

	t.Run("end before start", func(t *testing.T) {
		svc, _ := setupServiceTest(t)

		_, err := svc.CreateCycle(ctx, hrActor, performance.CreateCycleRequest{
			Name: "x", StartDate: "2026-06-30", EndDate: "2026-01-01",
		})
		assert.ErrorIs(t, err, performanceerrors.ErrInvalidDateRange)
	})

	t.Run("status moves one step forward", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		cycle := &performance.ReviewCycle{ID: uuid.New(), Status: performance.CycleUpcoming}
		repo.EXPECT().FindCycleByID(ctx, cycle.ID.String()).Return(cycle, nil).Times(3)
		repo.EXPECT().UpdateCycle(ctx, cycle).Return(nil).Times(2)

		_, err := svc.UpdateCycleStatus(ctx, cycle.ID.String(), performance.CycleClosed)
		assert.ErrorIs(t, err, performanceerrors.ErrInvalidCycleTransition)

		resp, err := svc.UpdateCycleStatus(ctx, cycle.ID.String(), performance.CycleActive)
		assert.NoError(t, err)
		assert.Equal(t, performance.CycleActive, resp.Status)

		resp, err = svc.UpdateCycleStatus(ctx, cycle.ID.String(), performance.CycleClosed)
		assert.NoError(t, err)
		assert.Equal(t, performance.CycleClosed, resp.Status)
	})

	t.Run("unknown cycle", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		id := uuid.New().String()
		repo.EXPECT().FindCycleByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.UpdateCycleStatus(ctx, id, performance.CycleActive)
		assert.ErrorIs(t, err, performanceerrors.ErrCycleNotFound)
	})
}

func TestService_Goals(t *testing.T) {
	ctx := context.Background()
	assignee := uuid.New()

	t.Run("create dedupes assignees", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().CreateGoal(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, g *performance.Goal) error {
			assert.Len(t, g.Assignees, 1)
			assert.Equal(t, g.ID, g.Assignees[0].GoalID)
			return nil
		})

		resp, err := svc.CreateGoal(ctx, hrActor, performance.CreateGoalRequest{
			Title:       "Ship payroll v2",
			AssigneeIDs: []string{assignee.String(), assignee.String()},
			Weightage:   40,
			DueDate:     "2026-06-30",
		})

		assert.NoError(t, err)
		assert.Equal(t, performance.GoalIndividual, resp.Type)
		assert.Equal(t, performance.GoalActive, resp.Status)
		assert.Equal(t, []string{assignee.String()}, resp.AssigneeIDs)
		assert.Equal(t, "2026-06-30", *resp.DueDate)
	})

	t.Run("progress update by assignee", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		goal := &performance.Goal{
			ID:        uuid.New(),
			Status:    performance.GoalActive,
			Assignees: []performance.GoalAssignee{{EmployeeID: assignee}},
		}
		repo.EXPECT().FindGoalByID(ctx, goal.ID.String()).Return(goal, nil)
		repo.EXPECT().UpdateGoal(ctx, goal).Return(nil)

		actor := domain.Actor{EmployeeID: assignee.String(), Role: domain.RoleEmployee}
		resp, err := svc.UpdateGoalProgress(ctx, actor, goal.ID.String(), performance.UpdateGoalProgressRequest{
			Progress: progress(100),
			Status:   performance.GoalCompleted,
		})

		assert.NoError(t, err)
		assert.Equal(t, 100, resp.Progress)
		assert.Equal(t, performance.GoalCompleted, resp.Status)
	})

	t.Run("progress update rules", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		goal := &performance.Goal{ID: uuid.New(), Status: performance.GoalActive, Assignees: []performance.GoalAssignee{{EmployeeID: assignee}}}
		archived := &performance.Goal{ID: uuid.New(), Status: performance.GoalArchived}
		repo.EXPECT().FindGoalByID(ctx, goal.ID.String()).Return(goal, nil)
		repo.EXPECT().FindGoalByID(ctx, archived.ID.String()).Return(archived, nil)

		stranger := domain.Actor{EmployeeID: uuid.New().String(), Role: domain.RoleEmployee}
		_, err := svc.UpdateGoalProgress(ctx, stranger, goal.ID.String(), performance.UpdateGoalProgressRequest{Progress: progress(10)})
		assert.ErrorIs(t, err, performanceerrors.ErrNotGoalAssignee)

		_, err = svc.UpdateGoalProgress(ctx, hrActor, archived.ID.String(), performance.UpdateGoalProgressRequest{Progress: progress(10)})
		assert.ErrorIs(t, err, performanceerrors.ErrGoalArchived)
	})

	t.Run("employees only list their own goals", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		actor := domain.Actor{EmployeeID: assignee.String(), Role: domain.RoleEmployee}
		repo.EXPECT().FindGoals(ctx, performance.GoalFilter{EmployeeID: assignee.String(), Status: performance.GoalActive}).Return(nil, nil)

		resp, err := svc.ListGoals(ctx, actor, performance.ListGoalsFilter{EmployeeID: uuid.New().String(), Status: performance.GoalActive})
		assert.NoError(t, err)
		assert.Empty(t, resp)
	})
}

func TestService_CreateOrGetReview(t *testing.T) {
	ctx := context.Background()
	manager := uuid.New()
	emp := &performance.EmployeeRef{ID: uuid.New(), EmployeeCode: "EMP-000010", FirstName: "Ravi", ManagerID: &manager}
	self := domain.Actor{UserID: uuid.New().String(), EmployeeID: emp.ID.String(), Role: domain.RoleEmployee}

	t.Run("returns the existing review", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		cycleID := uuid.New()
		existing := &performance.PerformanceReview{ID: uuid.New(), EmployeeID: emp.ID, ReviewCycleID: cycleID, Status: performance.ReviewSelfSubmitted}
		repo.EXPECT().FindEmployee(ctx, emp.ID.String()).Return(emp, nil)
		repo.EXPECT().FindReview(ctx, emp.ID.String(), cycleID.String()).Return(existing, nil)

		resp, created, err := svc.CreateOrGetReview(ctx, self, performance.CreateReviewRequest{ReviewCycleID: cycleID.String()})

		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, existing.ID.String(), resp.ID)
	})

	t.Run("snapshots goals", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		cycle := activeCycle()
		goals := []performance.Goal{
			{ID: uuid.New(), Title: "A", Weightage: 60, Progress: 50},
			{ID: uuid.New(), Title: "B", Weightage: 40, Progress: 30},
		}
		repo.EXPECT().FindEmployee(ctx, emp.ID.String()).Return(emp, nil)
		repo.EXPECT().FindReview(ctx, emp.ID.String(), cycle.ID.String()).Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().FindCycleByID(ctx, cycle.ID.String()).Return(cycle, nil)
		repo.EXPECT().FindSnapshotGoals(ctx, emp.ID.String()).Return(goals, nil)
		repo.EXPECT().CreateReview(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, r *performance.PerformanceReview) error {
			assert.Equal(t, performance.ReviewNotStarted, r.Status)
			assert.Len(t, r.Goals, 2)
			return nil
		})

		resp, created, err := svc.CreateOrGetReview(ctx, self, performance.CreateReviewRequest{ReviewCycleID: cycle.ID.String()})

		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "Ravi", resp.EmployeeName)

		goals[0].Progress = 90
		assert.Equal(t, 50, resp.Goals[0].Progress)
		assert.Equal(t, "1.56", resp.FinalRating)
	})

	t.Run("cycle must be active", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		cycle := &performance.ReviewCycle{ID: uuid.New(), Status: performance.CycleUpcoming}
		repo.EXPECT().FindEmployee(ctx, emp.ID.String()).Return(emp, nil)
		repo.EXPECT().FindReview(ctx, emp.ID.String(), cycle.ID.String()).Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().FindCycleByID(ctx, cycle.ID.String()).Return(cycle, nil)

		_, _, err := svc.CreateOrGetReview(ctx, self, performance.CreateReviewRequest{ReviewCycleID: cycle.ID.String()})
		assert.ErrorIs(t, err, performanceerrors.ErrCycleNotActive)
	})

	t.Run("concurrent create returns the winner", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		cycle := activeCycle()
		winner := &performance.PerformanceReview{ID: uuid.New(), EmployeeID: emp.ID, ReviewCycleID: cycle.ID, Status: performance.ReviewNotStarted}
		repo.EXPECT().FindEmployee(ctx, emp.ID.String()).Return(emp, nil)
		gomock.InOrder(
			repo.EXPECT().FindReview(ctx, emp.ID.String(), cycle.ID.String()).Return(nil, gorm.ErrRecordNotFound),
			repo.EXPECT().FindReview(ctx, emp.ID.String(), cycle.ID.String()).Return(winner, nil),
		)
		repo.EXPECT().FindCycleByID(ctx, cycle.ID.String()).Return(cycle, nil)
		repo.EXPECT().FindSnapshotGoals(ctx, emp.ID.String()).Return(nil, nil)
		repo.EXPECT().CreateReview(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_review_employee_cycle"})

		resp, created, err := svc.CreateOrGetReview(ctx, self, performance.CreateReviewRequest{ReviewCycleID: cycle.ID.String()})

		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, winner.ID.String(), resp.ID)
	})

	t.Run("only owner or manager may open", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().FindEmployee(ctx, emp.ID.String()).Return(emp, nil).Times(2)

		other := domain.Actor{EmployeeID: uuid.New().String(), Role: domain.RoleEmployee}
		_, _, err := svc.CreateOrGetReview(ctx, other, performance.CreateReviewRequest{EmployeeID: emp.ID.String(), ReviewCycleID: uuid.New().String()})
		assert.ErrorIs(t, err, performanceerrors.ErrNotReviewOwner)

		otherManager := domain.Actor{EmployeeID: uuid.New().String(), Role: domain.RoleManager}
		_, _, err = svc.CreateOrGetReview(ctx, otherManager, performance.CreateReviewRequest{EmployeeID: emp.ID.String(), ReviewCycleID: uuid.New().String()})
		assert.ErrorIs(t, err, performanceerrors.ErrNotReportingManager)
	})
}

func TestService_ReviewPipeline(t *testing.T) {
	ctx := context.Background()
	manager := uuid.New()
	emp := &performance.EmployeeRef{ID: uuid.New(), FirstName: "Ravi", ManagerID: &manager}
	goalA, goalB := uuid.New().String(), uuid.New().String()

	self := domain.Actor{UserID: uuid.New().String(), EmployeeID: emp.ID.String(), Role: domain.RoleEmployee}
	mgr := domain.Actor{UserID: uuid.New().String(), EmployeeID: manager.String(), Role: domain.RoleManager}

	newReview := func(cycle *performance.ReviewCycle, status string) *performance.PerformanceReview {
		return &performance.PerformanceReview{
			ID:            uuid.New(),
			EmployeeID:    emp.ID,
			ReviewCycleID: cycle.ID,
			Employee:      emp,
			Status:        status,
			Goals: performance.GoalSnapshots{
				{GoalID: goalA, Progress: 50},
				{GoalID: goalB, Progress: 40},
			},
		}
	}

	t.Run("five stages in order", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		cycle := activeCycle()
		review := newReview(cycle, performance.ReviewNotStarted)
		id := review.ID.String()

		repo.EXPECT().FindReviewByID(ctx, id).Return(review, nil).Times(4)
		repo.EXPECT().FindCycleByID(ctx, cycle.ID.String()).Return(cycle, nil).Times(3)
		gomock.InOrder(
			repo.EXPECT().AdvanceReview(ctx, review, performance.ReviewNotStarted).Return(true, nil),
			repo.EXPECT().AdvanceReview(ctx, review, performance.ReviewSelfSubmitted).Return(true, nil),
			repo.EXPECT().AdvanceReview(ctx, review, performance.ReviewManagerReviewed).Return(true, nil),
			repo.EXPECT().AdvanceReview(ctx, review, performance.ReviewHRReviewed).Return(true, nil),
		)

		resp, err := svc.SubmitSelfReview(ctx, self, id, performance.SelfReviewRequest{
			Goals: []performance.SelfGoalEntry{
				{GoalID: goalA, FinalProgress: progress(80), SelfComment: "done"},
				{GoalID: goalB, FinalProgress: progress(60)},
			},
			SelfRating: 4,
		})
		assert.NoError(t, err)
		assert.Equal(t, performance.ReviewSelfSubmitted, resp.Status)
		assert.Equal(t, "2.28", resp.FinalRating)
		assert.NotNil(t, resp.SubmittedAt)

		resp, err = svc.SubmitManagerReview(ctx, mgr, id, performance.ManagerReviewRequest{
			Goals:         []performance.ManagerGoalEntry{{GoalID: goalA, ManagerComment: "solid"}},
			ManagerRating: 4,
		})
		assert.NoError(t, err)
		assert.Equal(t, performance.ReviewManagerReviewed, resp.Status)
		assert.Equal(t, "3.48", resp.FinalRating)
		assert.Equal(t, mgr.UserID, *resp.ManagerReviewedBy)
		assert.Equal(t, "solid", resp.Goals[0].ManagerComment)

		resp, err = svc.SubmitHRReview(ctx, hrActor, id, performance.HRReviewRequest{HRRating: 5})
		assert.NoError(t, err)
		assert.Equal(t, performance.ReviewHRReviewed, resp.Status)
		assert.Equal(t, "3.98", resp.FinalRating)

		cycle.Status = performance.CycleClosed

		resp, err = svc.FinalizeReview(ctx, hrActor, id)
		assert.NoError(t, err)
		assert.Equal(t, performance.ReviewFinalized, resp.Status)
		assert.Equal(t, "3.98", resp.FinalRating)
		assert.NotNil(t, resp.FinalizedAt)
	})

	t.Run("stages cannot be skipped or repeated", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		cycle := activeCycle()
		notStarted := newReview(cycle, performance.ReviewNotStarted)
		selfSubmitted := newReview(cycle, performance.ReviewSelfSubmitted)
		finalized := newReview(cycle, performance.ReviewFinalized)

		repo.EXPECT().FindReviewByID(ctx, notStarted.ID.String()).Return(notStarted, nil).Times(2)
		repo.EXPECT().FindReviewByID(ctx, selfSubmitted.ID.String()).Return(selfSubmitted, nil).Times(2)
		repo.EXPECT().FindReviewByID(ctx, finalized.ID.String()).Return(finalized, nil)

		_, err := svc.SubmitManagerReview(ctx, mgr, notStarted.ID.String(), performance.ManagerReviewRequest{ManagerRating: 3})
		assert.ErrorIs(t, err, performanceerrors.ErrInvalidReviewTransition)

		_, err = svc.SubmitHRReview(ctx, hrActor, notStarted.ID.String(), performance.HRReviewRequest{HRRating: 3})
		assert.ErrorIs(t, err, performanceerrors.ErrInvalidReviewTransition)

		_, err = svc.SubmitSelfReview(ctx, self, selfSubmitted.ID.String(), performance.SelfReviewRequest{SelfRating: 3})
		assert.ErrorIs(t, err, performanceerrors.ErrInvalidReviewTransition)

		_, err = svc.FinalizeReview(ctx, hrActor, selfSubmitted.ID.String())
		assert.ErrorIs(t, err, performanceerrors.ErrInvalidReviewTransition)

		_, err = svc.FinalizeReview(ctx, hrActor, finalized.ID.String())
		assert.ErrorIs(t, err, performanceerrors.ErrInvalidReviewTransition)
	})

	t.Run("closed cycle blocks edits", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		cycle := &performance.ReviewCycle{ID: uuid.New(), Status: performance.CycleClosed}
		review := newReview(cycle, performance.ReviewNotStarted)
		repo.EXPECT().FindReviewByID(ctx, review.ID.String()).Return(review, nil)
		repo.EXPECT().FindCycleByID(ctx, cycle.ID.String()).Return(cycle, nil)

		_, err := svc.SubmitSelfReview(ctx, self, review.ID.String(), performance.SelfReviewRequest{SelfRating: 3})
		assert.ErrorIs(t, err, performanceerrors.ErrReviewNotEditable)
	})

	t.Run("stage already advanced by another request", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		cycle := activeCycle()
		review := newReview(cycle, performance.ReviewNotStarted)
		repo.EXPECT().FindReviewByID(ctx, review.ID.String()).Return(review, nil)
		repo.EXPECT().FindCycleByID(ctx, cycle.ID.String()).Return(cycle, nil)
		repo.EXPECT().AdvanceReview(ctx, review, performance.ReviewNotStarted).Return(false, nil)

		_, err := svc.SubmitSelfReview(ctx, self, review.ID.String(), performance.SelfReviewRequest{SelfRating: 3})
		assert.ErrorIs(t, err, performanceerrors.ErrInvalidReviewTransition)
		assert.Equal(t, performance.ReviewNotStarted, review.Status)
	})

	t.Run("authorization per stage", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		cycle := activeCycle()
		review := newReview(cycle, performance.ReviewSelfSubmitted)
		repo.EXPECT().FindReviewByID(ctx, review.ID.String()).Return(review, nil).Times(2)

		_, err := svc.SubmitSelfReview(ctx, mgr, review.ID.String(), performance.SelfReviewRequest{SelfRating: 3})
		assert.ErrorIs(t, err, performanceerrors.ErrNotReviewOwner)

		otherManager := domain.Actor{EmployeeID: uuid.New().String(), Role: domain.RoleManager}
		_, err = svc.SubmitManagerReview(ctx, otherManager, review.ID.String(), performance.ManagerReviewRequest{ManagerRating: 3})
		assert.ErrorIs(t, err, performanceerrors.ErrNotReportingManager)

		_, err = svc.SubmitHRReview(ctx, mgr, review.ID.String(), performance.HRReviewRequest{HRRating: 3})
		assert.ErrorIs(t, err, performanceerrors.ErrHRRoleRequired)

		_, err = svc.FinalizeReview(ctx, self, review.ID.String())
		assert.ErrorIs(t, err, performanceerrors.ErrHRRoleRequired)
	})

	t.Run("unknown goal in self review", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		cycle := activeCycle()
		review := newReview(cycle, performance.ReviewNotStarted)
		repo.EXPECT().FindReviewByID(ctx, review.ID.String()).Return(review, nil)
		repo.EXPECT().FindCycleByID(ctx, cycle.ID.String()).Return(cycle, nil)

		_, err := svc.SubmitSelfReview(ctx, self, review.ID.String(), performance.SelfReviewRequest{
			Goals:      []performance.SelfGoalEntry{{GoalID: uuid.New().String(), FinalProgress: progress(10)}},
			SelfRating: 3,
		})
		assert.ErrorIs(t, err, performanceerrors.ErrUnknownGoal)
	})
}

func TestService_ReviewVisibility(t *testing.T) {
	ctx := context.Background()
	manager := uuid.New()
	emp := &performance.EmployeeRef{ID: uuid.New(), ManagerID: &manager}
	review := &performance.PerformanceReview{ID: uuid.New(), EmployeeID: emp.ID, Employee: emp, Status: performance.ReviewNotStarted}

	t.Run("get", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().FindReviewByID(ctx, review.ID.String()).Return(review, nil).Times(2)

		_, err := svc.GetReview(ctx, domain.Actor{EmployeeID: manager.String(), Role: domain.RoleManager}, review.ID.String())
		assert.NoError(t, err)

		_, err = svc.GetReview(ctx, domain.Actor{EmployeeID: uuid.New().String(), Role: domain.RoleManager}, review.ID.String())
		assert.ErrorIs(t, err, performanceerrors.ErrReviewNotFound)
	})

	t.Run("list scopes", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		me := uuid.New().String()
		repo.EXPECT().FindReviews(ctx, performance.ReviewFilter{ManagerID: manager.String()}).Return([]performance.PerformanceReview{*review}, nil)
		repo.EXPECT().FindReviews(ctx, performance.ReviewFilter{EmployeeID: me}).Return(nil, nil)

		resp, err := svc.ListReviews(ctx, domain.Actor{EmployeeID: manager.String(), Role: domain.RoleManager}, performance.ListReviewsFilter{})
		assert.NoError(t, err)
		assert.Len(t, resp, 1)

		_, err = svc.ListReviews(ctx, domain.Actor{EmployeeID: me, Role: domain.RoleEmployee}, performance.ListReviewsFilter{EmployeeID: emp.ID.String()})
		assert.NoError(t, err)
	})
}
