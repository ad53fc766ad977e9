package leave

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/shared/dbtx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ApplicationFilter narrows FindAll. Statuses and Year are optional.
type ApplicationFilter struct {
	EmployeeID  string
	LeaveTypeID string
	Statuses    []string
	Year        int
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateType(ctx context.Context, t *LeaveType) error
	FindTypes(ctx context.Context, includeInactive bool) ([]LeaveType, error)
	FindTypeByID(ctx context.Context, id string) (*LeaveType, error)

	UpsertPolicy(ctx context.Context, p *LeavePolicy) error
	FindPolicies(ctx context.Context) ([]LeavePolicy, error)
	FindPolicyByType(ctx context.Context, leaveTypeID string) (*LeavePolicy, error)

	Create(ctx context.Context, l *LeaveApplication) error
	// TransitionStatus writes the status fields only while the stored status is still
	// from. It reports false when another writer got there first.
	TransitionStatus(ctx context.Context, l *LeaveApplication, from string) (bool, error)
	FindByID(ctx context.Context, id string) (*LeaveApplication, error)
	FindAll(ctx context.Context, filter ApplicationFilter) ([]LeaveApplication, error)
	HasOverlappingPeriod(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error)
	SumApprovedDays(ctx context.Context, employeeID, leaveTypeID string, year int) (float64, error)
	// LockBalance serializes balance checks of one employee and leave type until the
	// surrounding transaction ends.
	LockBalance(ctx context.Context, employeeID, leaveTypeID string) error
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

func (r *repository) CreateType(ctx context.Context, t *LeaveType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindTypes(ctx context.Context, includeInactive bool) ([]LeaveType, error) {
	var types []LeaveType
	q := r.db.WithContext(ctx).Order("name ASC")
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&types).Error
	return types, err
}

func (r *repository) FindTypeByID(ctx context.Context, id string) (*LeaveType, error) {
	var t LeaveType
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) UpsertPolicy(ctx context.Context, p *LeavePolicy) error {
	return r.db.WithContext(ctx).
		Omit("LeaveType").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "leave_type_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"annual_quota", "updated_at"}),
		}).
		Create(p).Error
}

func (r *repository) FindPolicies(ctx context.Context) ([]LeavePolicy, error) {
	var policies []LeavePolicy
	err := r.db.WithContext(ctx).Preload("LeaveType").Find(&policies).Error
	return policies, err
}

func (r *repository) FindPolicyByType(ctx context.Context, leaveTypeID string) (*LeavePolicy, error) {
	var p LeavePolicy
	if err := r.db.WithContext(ctx).First(&p, "leave_type_id = ?", leaveTypeID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, l *LeaveApplication) error {
	return r.db.WithContext(ctx).Omit("LeaveType", "Employee").Create(l).Error
}

func (r *repository) TransitionStatus(ctx context.Context, l *LeaveApplication, from string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&LeaveApplication{}).
		Where("id = ? AND status = ?", l.ID, from).
		Updates(map[string]interface{}{
			"status":           l.Status,
			"approved_by":      l.ApprovedBy,
			"approved_at":      l.ApprovedAt,
			"rejection_reason": l.RejectionReason,
			"cancelled_by":     l.CancelledBy,
			"cancelled_at":     l.CancelledAt,
			"updated_at":       time.Now().UTC(),
		})
	return res.RowsAffected > 0, res.Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveApplication, error) {
	var l LeaveApplication
	err := r.db.WithContext(ctx).
		Preload("LeaveType").
		Preload("Employee").
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindAll(ctx context.Context, filter ApplicationFilter) ([]LeaveApplication, error) {
	var leaves []LeaveApplication
	q := r.db.WithContext(ctx).Preload("LeaveType").Preload("Employee")
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.LeaveTypeID != "" {
		q = q.Where("leave_type_id = ?", filter.LeaveTypeID)
	}
	if len(filter.Statuses) > 0 {
		q = q.Where("status IN ?", filter.Statuses)
	}
	if filter.Year > 0 {
		q = q.Where("EXTRACT(YEAR FROM start_date) = ?", filter.Year)
	}
	err := q.Order("start_date DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&LeaveApplication{}).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("NOT (end_date < ? OR start_date > ?)", startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) SumApprovedDays(ctx context.Context, employeeID, leaveTypeID string, year int) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&LeaveApplication{}).
		Select("COALESCE(SUM(total_days), 0)").
		Where("employee_id = ?", employeeID).
		Where("leave_type_id = ?", leaveTypeID).
		Where("status = ?", StatusApproved).
		Where("EXTRACT(YEAR FROM start_date) = ?", year).
		Scan(&total).Error
	return total, err
}

func (r *repository) LockBalance(ctx context.Context, employeeID, leaveTypeID string) error {
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "leave_balance:"+employeeID+":"+leaveTypeID).
		Error
}
