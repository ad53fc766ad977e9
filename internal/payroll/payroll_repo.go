package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/shared/dbtx"

	"gorm.io/gorm"
)

// Scope narrows which active employees a generation run covers.
type Scope struct {
	DepartmentID string
	EmployeeID   string
}

type Filter struct {
	Month      int
	Year       int
	Status     string
	EmployeeID string
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	FindEmployees(ctx context.Context, scope Scope) ([]EmployeeRef, error)
	FindAttendance(ctx context.Context, employeeID string, from, to time.Time) ([]AttendanceDay, error)
	FindApprovedLeaves(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveSpan, error)

	Create(ctx context.Context, p *Payroll) error
	// TransitionStatus writes the workflow fields only while the stored status is still
	// from. It reports false when the row moved on.
	TransitionStatus(ctx context.Context, p *Payroll, from string) (bool, error)
	// DeleteGenerated removes a record that is still in the generated state.
	DeleteGenerated(ctx context.Context, id string) (bool, error)
	FindByID(ctx context.Context, id string) (*Payroll, error)
	FindByPeriod(ctx context.Context, employeeID string, month, year int) (*Payroll, error)
	FindAll(ctx context.Context, filter Filter) ([]Payroll, error)
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

func (r *repository) FindEmployees(ctx context.Context, scope Scope) ([]EmployeeRef, error) {
	var employees []EmployeeRef
	q := r.db.WithContext(ctx).Where("status = ?", "active")
	if scope.DepartmentID != "" {
		q = q.Where("department_id = ?", scope.DepartmentID)
	}
	if scope.EmployeeID != "" {
		q = q.Where("id = ?", scope.EmployeeID)
	}
	err := q.Order("employee_code ASC").Find(&employees).Error
	return employees, err
}

func (r *repository) FindAttendance(ctx context.Context, employeeID string, from, to time.Time) ([]AttendanceDay, error) {
	var days []AttendanceDay
	err := r.db.WithContext(ctx).
		Table("attendances").
		Select("attendance_date, status").
		Where("employee_id = ?", employeeID).
		Where("attendance_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Scan(&days).Error
	return days, err
}

func (r *repository) FindApprovedLeaves(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveSpan, error) {
	var spans []LeaveSpan
	err := r.db.WithContext(ctx).
		Table("leave_applications AS la").
		Select("la.start_date, la.end_date, la.is_half_day, lt.is_paid").
		Joins("JOIN leave_types AS lt ON lt.id = la.leave_type_id").
		Where("la.employee_id = ?", employeeID).
		Where("la.status = ?", "approved").
		Where("la.start_date <= ? AND la.end_date >= ?", to.Format("2006-01-02"), from.Format("2006-01-02")).
		Order("la.start_date ASC").
		Scan(&spans).Error
	return spans, err
}

func (r *repository) Create(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(p).Error
}

func (r *repository) TransitionStatus(ctx context.Context, p *Payroll, from string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Where("id = ? AND status = ?", p.ID, from).
		Updates(map[string]interface{}{
			"status":      p.Status,
			"approved_by": p.ApprovedBy,
			"approved_at": p.ApprovedAt,
			"locked_by":   p.LockedBy,
			"locked_at":   p.LockedAt,
			"updated_at":  time.Now().UTC(),
		})
	return res.RowsAffected > 0, res.Error
}

func (r *repository) DeleteGenerated(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, StatusGenerated).
		Delete(&Payroll{})
	return res.RowsAffected > 0, res.Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var payroll Payroll
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&payroll, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payroll, nil
}

func (r *repository) FindByPeriod(ctx context.Context, employeeID string, month, year int) (*Payroll, error) {
	var payroll Payroll
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND period_month = ? AND period_year = ?", employeeID, month, year).
		First(&payroll).Error
	if err != nil {
		return nil, err
	}
	return &payroll, nil
}

func (r *repository) FindAll(ctx context.Context, filter Filter) ([]Payroll, error) {
	var payrolls []Payroll
	q := r.db.WithContext(ctx).Preload("Employee")
	if filter.Month > 0 {
		q = q.Where("period_month = ?", filter.Month)
	}
	if filter.Year > 0 {
		q = q.Where("period_year = ?", filter.Year)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	err := q.Order("period_year DESC, period_month DESC, created_at ASC").Find(&payrolls).Error
	return payrolls, err
}
