package performance

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/dbtx"

	"gorm.io/gorm"
)

type GoalFilter struct {
	EmployeeID    string
	Status        string
	ReviewCycleID string
}

// ReviewFilter narrows FindReviews. ManagerID keeps the manager's own review and the
// reviews of their direct reports.
type ReviewFilter struct {
	ReviewCycleID string
	EmployeeID    string
	Status        string
	ManagerID     string
}

//go:generate mockgen -source=performance_repo.go -destination=mock/performance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateCycle(ctx context.Context, c *ReviewCycle) error
	UpdateCycle(ctx context.Context, c *ReviewCycle) error
	FindCycleByID(ctx context.Context, id string) (*ReviewCycle, error)
	FindCycles(ctx context.Context, status string) ([]ReviewCycle, error)

	CreateGoal(ctx context.Context, g *Goal) error
	UpdateGoal(ctx context.Context, g *Goal) error
	FindGoalByID(ctx context.Context, id string) (*Goal, error)
	FindGoals(ctx context.Context, filter GoalFilter) ([]Goal, error)
	FindSnapshotGoals(ctx context.Context, employeeID string) ([]Goal, error)

	FindEmployee(ctx context.Context, id string) (*EmployeeRef, error)

	CreateReview(ctx context.Context, r *PerformanceReview) error
	// AdvanceReview saves r only while the stored status is still from and reports
	// whether the row was written.
	AdvanceReview(ctx context.Context, r *PerformanceReview, from string) (bool, error)
	FindReviewByID(ctx context.Context, id string) (*PerformanceReview, error)
	FindReview(ctx context.Context, employeeID, reviewCycleID string) (*PerformanceReview, error)
	FindReviews(ctx context.Context, filter ReviewFilter) ([]PerformanceReview, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: dbtx.Bind(r.db, tx)}
}

func (r *repository) CreateCycle(ctx context.Context, c *ReviewCycle) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) UpdateCycle(ctx context.Context, c *ReviewCycle) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) FindCycleByID(ctx context.Context, id string) (*ReviewCycle, error) {
	var c ReviewCycle
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindCycles(ctx context.Context, status string) ([]ReviewCycle, error) {
	var cycles []ReviewCycle
	q := r.db.WithContext(ctx).Order("start_date DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&cycles).Error
	return cycles, err
}

func (r *repository) CreateGoal(ctx context.Context, g *Goal) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *repository) UpdateGoal(ctx context.Context, g *Goal) error {
	return r.db.WithContext(ctx).Omit("Assignees").Save(g).Error
}

func (r *repository) FindGoalByID(ctx context.Context, id string) (*Goal, error) {
	var g Goal
	if err := r.db.WithContext(ctx).Preload("Assignees").First(&g, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *repository) FindGoals(ctx context.Context, filter GoalFilter) ([]Goal, error) {
	var goals []Goal
	q := r.db.WithContext(ctx).Preload("Assignees").Order("created_at DESC")
	if filter.EmployeeID != "" {
		q = q.Where("id IN (?)", r.db.Model(&GoalAssignee{}).Select("goal_id").Where("employee_id = ?", filter.EmployeeID))
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.ReviewCycleID != "" {
		q = q.Where("review_cycle_id = ?", filter.ReviewCycleID)
	}
	err := q.Find(&goals).Error
	return goals, err
}

// FindSnapshotGoals returns the active and completed goals assigned to the employee.
func (r *repository) FindSnapshotGoals(ctx context.Context, employeeID string) ([]Goal, error) {
	var goals []Goal
	err := r.db.WithContext(ctx).
		Where("id IN (?)", r.db.Model(&GoalAssignee{}).Select("goal_id").Where("employee_id = ?", employeeID)).
		Where("status IN ?", []string{GoalActive, GoalCompleted}).
		Order("created_at ASC").
		Find(&goals).Error
	return goals, err
}

func (r *repository) FindEmployee(ctx context.Context, id string) (*EmployeeRef, error) {
	var e EmployeeRef
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) CreateReview(ctx context.Context, rv *PerformanceReview) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(rv).Error
}

func (r *repository) AdvanceReview(ctx context.Context, rv *PerformanceReview, from string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(rv).
		Where("status = ?", from).
		Select("*").
		Omit("Employee", "ID", "CreatedAt").
		Updates(rv)
	return res.RowsAffected > 0, res.Error
}

func (r *repository) FindReviewByID(ctx context.Context, id string) (*PerformanceReview, error) {
	var rv PerformanceReview
	if err := r.db.WithContext(ctx).Preload("Employee").First(&rv, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *repository) FindReview(ctx context.Context, employeeID, reviewCycleID string) (*PerformanceReview, error) {
	var rv PerformanceReview
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("employee_id = ? AND review_cycle_id = ?", employeeID, reviewCycleID).
		First(&rv).Error
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *repository) FindReviews(ctx context.Context, filter ReviewFilter) ([]PerformanceReview, error) {
	var reviews []PerformanceReview
	q := r.db.WithContext(ctx).Preload("Employee").Order("created_at DESC")
	if filter.ReviewCycleID != "" {
		q = q.Where("review_cycle_id = ?", filter.ReviewCycleID)
	}
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.ManagerID != "" {
		q = q.Where(
			"employee_id = ? OR employee_id IN (?)",
			filter.ManagerID,
			r.db.Model(&EmployeeRef{}).Select("id").Where("manager_id = ?", filter.ManagerID),
		)
	}
	err := q.Find(&reviews).Error
	return reviews, err
}
