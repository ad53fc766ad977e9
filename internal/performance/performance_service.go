package performance

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-hrms/internal/domain"
	performanceerrors "go-hrms/internal/performance/errors"
	"go-hrms/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=performance_service.go -destination=mock/performance_service_mock.go -package=mock
type Service interface {
	CreateCycle(ctx context.Context, actor domain.Actor, req CreateCycleRequest) (CycleResponse, error)
	UpdateCycleStatus(ctx context.Context, id, status string) (CycleResponse, error)
	ListCycles(ctx context.Context, status string) ([]CycleResponse, error)

	CreateGoal(ctx context.Context, actor domain.Actor, req CreateGoalRequest) (GoalResponse, error)
	UpdateGoalProgress(ctx context.Context, actor domain.Actor, id string, req UpdateGoalProgressRequest) (GoalResponse, error)
	ListGoals(ctx context.Context, actor domain.Actor, filter ListGoalsFilter) ([]GoalResponse, error)

	CreateOrGetReview(ctx context.Context, actor domain.Actor, req CreateReviewRequest) (ReviewResponse, bool, error)
	SubmitSelfReview(ctx context.Context, actor domain.Actor, id string, req SelfReviewRequest) (ReviewResponse, error)
	SubmitManagerReview(ctx context.Context, actor domain.Actor, id string, req ManagerReviewRequest) (ReviewResponse, error)
	SubmitHRReview(ctx context.Context, actor domain.Actor, id string, req HRReviewRequest) (ReviewResponse, error)
	FinalizeReview(ctx context.Context, actor domain.Actor, id string) (ReviewResponse, error)
	GetReview(ctx context.Context, actor domain.Actor, id string) (ReviewResponse, error)
	ListReviews(ctx context.Context, actor domain.Actor, filter ListReviewsFilter) ([]ReviewResponse, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("performance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("performance.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func (s *service) CreateCycle(ctx context.Context, actor domain.Actor, req CreateCycleRequest) (CycleResponse, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return CycleResponse{}, performanceerrors.ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return CycleResponse{}, performanceerrors.ErrInvalidDate
	}
	if end.Before(start) {
		return CycleResponse{}, performanceerrors.ErrInvalidDateRange
	}

	cycle := &ReviewCycle{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		StartDate: start,
		EndDate:   end,
		Status:    CycleUpcoming,
		CreatedBy: parseOptional(actor.UserID),
	}
	if err := s.repo.CreateCycle(ctx, cycle); err != nil {
		return CycleResponse{}, err
	}
	return mapCycle(*cycle), nil
}

// UpdateCycleStatus moves a cycle one step forward. Several cycles may be active at once.
func (s *service) UpdateCycleStatus(ctx context.Context, id, status string) (CycleResponse, error) {
	cycle, err := s.findCycle(ctx, id)
	if err != nil {
		return CycleResponse{}, err
	}
	if !canAdvanceCycle(cycle.Status, status) {
		return CycleResponse{}, performanceerrors.ErrInvalidCycleTransition
	}

	cycle.Status = status
	if err := s.repo.UpdateCycle(ctx, cycle); err != nil {
		return CycleResponse{}, err
	}

	s.logger.Info("review cycle status changed",
		zap.String("cycle_id", id),
		zap.String("status", status),
	)
	return mapCycle(*cycle), nil
}

func (s *service) ListCycles(ctx context.Context, status string) ([]CycleResponse, error) {
	cycles, err := s.repo.FindCycles(ctx, status)
	if err != nil {
		return nil, err
	}
	resp := make([]CycleResponse, len(cycles))
	for i, c := range cycles {
		resp[i] = mapCycle(c)
	}
	return resp, nil
}

func (s *service) CreateGoal(ctx context.Context, actor domain.Actor, req CreateGoalRequest) (GoalResponse, error) {
	goal := &Goal{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Type:        req.Type,
		Weightage:   req.Weightage,
		Status:      req.Status,
		CreatedBy:   parseOptional(actor.UserID),
	}
	if goal.Type == "" {
		goal.Type = GoalIndividual
	}
	if goal.Status == "" {
		goal.Status = GoalActive
	}

	if req.ReviewCycleID != "" {
		if _, err := s.findCycle(ctx, req.ReviewCycleID); err != nil {
			return GoalResponse{}, err
		}
		goal.ReviewCycleID = parseOptional(req.ReviewCycleID)
	}
	if req.DueDate != "" {
		due, err := time.Parse(dateLayout, req.DueDate)
		if err != nil {
			return GoalResponse{}, performanceerrors.ErrInvalidDate
		}
		goal.DueDate = &due
	}

	seen := make(map[uuid.UUID]bool, len(req.AssigneeIDs))
	for _, raw := range req.AssigneeIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return GoalResponse{}, apperror.InvalidField("Assignee Ids")
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		goal.Assignees = append(goal.Assignees, GoalAssignee{GoalID: goal.ID, EmployeeID: id})
	}

	if err := s.repo.CreateGoal(ctx, goal); err != nil {
		return GoalResponse{}, err
	}
	return mapGoal(*goal), nil
}

func (s *service) UpdateGoalProgress(ctx context.Context, actor domain.Actor, id string, req UpdateGoalProgressRequest) (GoalResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return GoalResponse{}, performanceerrors.ErrGoalNotFound
	}
	goal, err := s.repo.FindGoalByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GoalResponse{}, performanceerrors.ErrGoalNotFound
		}
		return GoalResponse{}, err
	}
	if !actor.IsPrivileged() && !goal.AssignedTo(actor.EmployeeID) {
		return GoalResponse{}, performanceerrors.ErrNotGoalAssignee
	}
	if goal.Status == GoalArchived {
		return GoalResponse{}, performanceerrors.ErrGoalArchived
	}

	goal.Progress = *req.Progress
	if req.Status != "" {
		goal.Status = req.Status
	}
	if err := s.repo.UpdateGoal(ctx, goal); err != nil {
		return GoalResponse{}, err
	}
	return mapGoal(*goal), nil
}

func (s *service) ListGoals(ctx context.Context, actor domain.Actor, filter ListGoalsFilter) ([]GoalResponse, error) {
	employeeID := filter.EmployeeID
	if !actor.IsPrivileged() {
		employeeID = actor.EmployeeID
	}

	goals, err := s.repo.FindGoals(ctx, GoalFilter{
		EmployeeID:    employeeID,
		Status:        filter.Status,
		ReviewCycleID: filter.ReviewCycleID,
	})
	if err != nil {
		return nil, err
	}
	resp := make([]GoalResponse, len(goals))
	for i, g := range goals {
		resp[i] = mapGoal(g)
	}
	return resp, nil
}

// CreateOrGetReview returns the existing review for the pair, or opens a new one with a
// copy of the employee's active and completed goals. The bool is true when created.
func (s *service) CreateOrGetReview(ctx context.Context, actor domain.Actor, req CreateReviewRequest) (ReviewResponse, bool, error) {
	employeeID := req.EmployeeID
	if employeeID == "" {
		employeeID = actor.EmployeeID
	}
	if employeeID == "" {
		return ReviewResponse{}, false, performanceerrors.ErrNoEmployeeProfile
	}

	emp, err := s.repo.FindEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReviewResponse{}, false, performanceerrors.ErrEmployeeNotFound
		}
		return ReviewResponse{}, false, err
	}
	if err := canOpenReview(actor, *emp); err != nil {
		return ReviewResponse{}, false, err
	}

	existing, err := s.repo.FindReview(ctx, employeeID, req.ReviewCycleID)
	if err == nil {
		return mapReview(*existing), false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ReviewResponse{}, false, err
	}

	cycle, err := s.findCycle(ctx, req.ReviewCycleID)
	if err != nil {
		return ReviewResponse{}, false, err
	}
	if cycle.Status != CycleActive {
		return ReviewResponse{}, false, performanceerrors.ErrCycleNotActive
	}

	goals, err := s.repo.FindSnapshotGoals(ctx, employeeID)
	if err != nil {
		return ReviewResponse{}, false, err
	}
	snapshots := make(GoalSnapshots, len(goals))
	for i, g := range goals {
		snapshots[i] = GoalSnapshot{
			GoalID:    g.ID.String(),
			Title:     g.Title,
			Weightage: g.Weightage,
			Progress:  g.Progress,
		}
	}

	review := &PerformanceReview{
		ID:            uuid.New(),
		EmployeeID:    emp.ID,
		ReviewCycleID: cycle.ID,
		Goals:         snapshots,
		Status:        ReviewNotStarted,
	}
	review.FinalRating = FinalRating(review.Goals, 0, 0)

	if err := s.repo.CreateReview(ctx, review); err != nil {
		if apperror.IsUniqueViolation(err, "uq_review_employee_cycle") {
			// lost a race with a concurrent create for the same pair
			winner, ferr := s.repo.FindReview(ctx, employeeID, req.ReviewCycleID)
			if ferr != nil {
				return ReviewResponse{}, false, ferr
			}
			return mapReview(*winner), false, nil
		}
		return ReviewResponse{}, false, err
	}

	s.logger.Info("performance review opened",
		zap.String("review_id", review.ID.String()),
		zap.String("employee_id", employeeID),
		zap.Int("goals", len(snapshots)),
	)
	review.Employee = emp
	return mapReview(*review), true, nil
}

func (s *service) SubmitSelfReview(ctx context.Context, actor domain.Actor, id string, req SelfReviewRequest) (ReviewResponse, error) {
	review, err := s.findReview(ctx, id)
	if err != nil {
		return ReviewResponse{}, err
	}
	if actor.EmployeeID == "" || review.EmployeeID.String() != actor.EmployeeID {
		return ReviewResponse{}, performanceerrors.ErrNotReviewOwner
	}
	if err := s.checkStep(ctx, review, ReviewSelfSubmitted, true); err != nil {
		return ReviewResponse{}, err
	}

	for _, entry := range req.Goals {
		g := review.goal(entry.GoalID)
		if g == nil {
			return ReviewResponse{}, performanceerrors.ErrUnknownGoal
		}
		progress := *entry.FinalProgress
		g.FinalProgress = &progress
		g.SelfComment = entry.SelfComment
	}

	now := s.now().UTC()
	review.SelfRating = req.SelfRating
	review.SelfComment = req.Comment
	review.SubmittedAt = &now
	return s.advance(ctx, review, ReviewSelfSubmitted)
}

func (s *service) SubmitManagerReview(ctx context.Context, actor domain.Actor, id string, req ManagerReviewRequest) (ReviewResponse, error) {
	review, err := s.findReview(ctx, id)
	if err != nil {
		return ReviewResponse{}, err
	}

	emp := review.Employee
	if emp == nil {
		emp, err = s.repo.FindEmployee(ctx, review.EmployeeID.String())
		if err != nil {
			return ReviewResponse{}, err
		}
	}
	if !emp.ReportsTo(actor.EmployeeID) {
		return ReviewResponse{}, performanceerrors.ErrNotReportingManager
	}
	if err := s.checkStep(ctx, review, ReviewManagerReviewed, true); err != nil {
		return ReviewResponse{}, err
	}

	for _, entry := range req.Goals {
		g := review.goal(entry.GoalID)
		if g == nil {
			return ReviewResponse{}, performanceerrors.ErrUnknownGoal
		}
		g.ManagerComment = entry.ManagerComment
	}

	now := s.now().UTC()
	review.ManagerRating = req.ManagerRating
	review.ManagerComment = req.Comment
	review.ManagerReviewedBy = parseOptional(actor.UserID)
	review.ManagerReviewedAt = &now
	return s.advance(ctx, review, ReviewManagerReviewed)
}

func (s *service) SubmitHRReview(ctx context.Context, actor domain.Actor, id string, req HRReviewRequest) (ReviewResponse, error) {
	if !actor.IsHRAdmin() {
		return ReviewResponse{}, performanceerrors.ErrHRRoleRequired
	}
	review, err := s.findReview(ctx, id)
	if err != nil {
		return ReviewResponse{}, err
	}
	if err := s.checkStep(ctx, review, ReviewHRReviewed, true); err != nil {
		return ReviewResponse{}, err
	}

	now := s.now().UTC()
	review.HRRating = req.HRRating
	review.HRComment = req.Comment
	review.HRReviewedBy = parseOptional(actor.UserID)
	review.HRReviewedAt = &now
	return s.advance(ctx, review, ReviewHRReviewed)
}

// FinalizeReview is the only step still allowed after the cycle closes.
func (s *service) FinalizeReview(ctx context.Context, actor domain.Actor, id string) (ReviewResponse, error) {
	if !actor.IsHRAdmin() {
		return ReviewResponse{}, performanceerrors.ErrHRRoleRequired
	}
	review, err := s.findReview(ctx, id)
	if err != nil {
		return ReviewResponse{}, err
	}
	if err := s.checkStep(ctx, review, ReviewFinalized, false); err != nil {
		return ReviewResponse{}, err
	}

	now := s.now().UTC()
	review.FinalizedBy = parseOptional(actor.UserID)
	review.FinalizedAt = &now
	return s.advance(ctx, review, ReviewFinalized)
}

func (s *service) GetReview(ctx context.Context, actor domain.Actor, id string) (ReviewResponse, error) {
	review, err := s.findReview(ctx, id)
	if err != nil {
		return ReviewResponse{}, err
	}
	if actor.IsHRAdmin() || review.EmployeeID.String() == actor.EmployeeID {
		return mapReview(*review), nil
	}
	if review.Employee != nil && review.Employee.ReportsTo(actor.EmployeeID) {
		return mapReview(*review), nil
	}
	return ReviewResponse{}, performanceerrors.ErrReviewNotFound
}

func (s *service) ListReviews(ctx context.Context, actor domain.Actor, filter ListReviewsFilter) ([]ReviewResponse, error) {
	rf := ReviewFilter{
		ReviewCycleID: filter.ReviewCycleID,
		EmployeeID:    filter.EmployeeID,
		Status:        filter.Status,
	}
	switch {
	case actor.IsHRAdmin():
	case actor.HasRole(domain.RoleManager):
		rf.ManagerID = actor.EmployeeID
	default:
		rf.EmployeeID = actor.EmployeeID
	}
	if !actor.IsHRAdmin() && actor.EmployeeID == "" {
		return nil, performanceerrors.ErrNoEmployeeProfile
	}

	reviews, err := s.repo.FindReviews(ctx, rf)
	if err != nil {
		return nil, err
	}
	resp := make([]ReviewResponse, len(reviews))
	for i, r := range reviews {
		resp[i] = mapReview(r)
	}
	return resp, nil
}

// checkStep verifies the review sits right before target. When editable is set the
// linked cycle is re-read and must still be active.
func (s *service) checkStep(ctx context.Context, review *PerformanceReview, target string, editable bool) error {
	if !CanAdvance(review.Status, target) {
		s.logger.Warn("review transition rejected",
			zap.String("review_id", review.ID.String()),
			zap.String("from_status", review.Status),
			zap.String("to_status", target),
		)
		return performanceerrors.ErrInvalidReviewTransition
	}
	if !editable {
		return nil
	}
	ok, err := s.isEditable(ctx, review)
	if err != nil {
		return err
	}
	if !ok {
		return performanceerrors.ErrReviewNotEditable
	}
	return nil
}

func (s *service) isEditable(ctx context.Context, review *PerformanceReview) (bool, error) {
	cycle, err := s.findCycle(ctx, review.ReviewCycleID.String())
	if err != nil {
		return false, err
	}
	return cycle.Status == CycleActive, nil
}

// advance writes the review only if nobody moved it since it was read.
func (s *service) advance(ctx context.Context, review *PerformanceReview, status string) (ReviewResponse, error) {
	from := review.Status
	review.Status = status
	review.FinalRating = FinalRating(review.Goals, review.ManagerRating, review.HRRating)
	ok, err := s.repo.AdvanceReview(ctx, review, from)
	if err != nil {
		return ReviewResponse{}, err
	}
	if !ok {
		s.logger.Warn("review changed concurrently",
			zap.String("review_id", review.ID.String()),
			zap.String("from_status", from),
			zap.String("to_status", status),
		)
		review.Status = from
		return ReviewResponse{}, performanceerrors.ErrInvalidReviewTransition
	}

	s.logger.Info("performance review advanced",
		zap.String("review_id", review.ID.String()),
		zap.String("status", status),
		zap.String("final_rating", review.FinalRating.StringFixed(2)),
	)
	return mapReview(*review), nil
}

func (s *service) findCycle(ctx context.Context, id string) (*ReviewCycle, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, performanceerrors.ErrCycleNotFound
	}
	cycle, err := s.repo.FindCycleByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, performanceerrors.ErrCycleNotFound
		}
		return nil, err
	}
	return cycle, nil
}

func (s *service) findReview(ctx context.Context, id string) (*PerformanceReview, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, performanceerrors.ErrReviewNotFound
	}
	review, err := s.repo.FindReviewByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, performanceerrors.ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

func (r *PerformanceReview) goal(goalID string) *GoalSnapshot {
	for i := range r.Goals {
		if r.Goals[i].GoalID == goalID {
			return &r.Goals[i]
		}
	}
	return nil
}

func canOpenReview(actor domain.Actor, emp EmployeeRef) error {
	switch {
	case actor.IsHRAdmin():
		return nil
	case emp.ID.String() == actor.EmployeeID:
		return nil
	case actor.HasRole(domain.RoleManager) && emp.ReportsTo(actor.EmployeeID):
		return nil
	case actor.HasRole(domain.RoleManager):
		return performanceerrors.ErrNotReportingManager
	default:
		return performanceerrors.ErrNotReviewOwner
	}
}

func parseOptional(id string) *uuid.UUID {
	u, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	return &u
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}

func formatID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	v := id.String()
	return &v
}

func mapCycle(c ReviewCycle) CycleResponse {
	return CycleResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		StartDate: c.StartDate.Format(dateLayout),
		EndDate:   c.EndDate.Format(dateLayout),
		Status:    c.Status,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func mapGoal(g Goal) GoalResponse {
	resp := GoalResponse{
		ID:            g.ID.String(),
		Title:         g.Title,
		Description:   g.Description,
		Type:          g.Type,
		AssigneeIDs:   make([]string, len(g.Assignees)),
		Weightage:     g.Weightage,
		Progress:      g.Progress,
		Status:        g.Status,
		ReviewCycleID: formatID(g.ReviewCycleID),
	}
	for i, a := range g.Assignees {
		resp.AssigneeIDs[i] = a.EmployeeID.String()
	}
	if g.DueDate != nil {
		v := g.DueDate.Format(dateLayout)
		resp.DueDate = &v
	}
	return resp
}

func mapReview(r PerformanceReview) ReviewResponse {
	resp := ReviewResponse{
		ID:                r.ID.String(),
		EmployeeID:        r.EmployeeID.String(),
		ReviewCycleID:     r.ReviewCycleID.String(),
		Goals:             r.Goals,
		SelfRating:        r.SelfRating,
		ManagerRating:     r.ManagerRating,
		HRRating:          r.HRRating,
		FinalRating:       r.FinalRating.StringFixed(2),
		SelfComment:       r.SelfComment,
		ManagerComment:    r.ManagerComment,
		HRComment:         r.HRComment,
		Status:            r.Status,
		SubmittedAt:       formatTime(r.SubmittedAt),
		ManagerReviewedBy: formatID(r.ManagerReviewedBy),
		ManagerReviewedAt: formatTime(r.ManagerReviewedAt),
		HRReviewedBy:      formatID(r.HRReviewedBy),
		HRReviewedAt:      formatTime(r.HRReviewedAt),
		FinalizedBy:       formatID(r.FinalizedBy),
		FinalizedAt:       formatTime(r.FinalizedAt),
	}
	if resp.Goals == nil {
		resp.Goals = []GoalSnapshot{}
	}
	if r.Employee != nil {
		resp.EmployeeCode = r.Employee.EmployeeCode
		resp.EmployeeName = r.Employee.FullName()
	}
	return resp
}
