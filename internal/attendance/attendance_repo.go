package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/shared/dbtx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	Update(ctx context.Context, a *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	FindAll(ctx context.Context, filter RecordFilter) ([]Attendance, error)
	SetLockByDate(ctx context.Context, date time.Time, locked bool) (int64, error)
	UpsertLeaveDays(ctx context.Context, rows []Attendance) error
	DeleteLeaveDays(ctx context.Context, employeeID string, dates []time.Time) (int64, error)
	FindEmployeeTimezone(ctx context.Context, employeeID string) (string, error)
}

// RecordFilter is the parsed form of QueryFilter.
type RecordFilter struct {
	EmployeeID string
	From       *time.Time
	To         *time.Time
	Status     string
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

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(a).Error
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Omit("Employee").Save(a).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", date.Format("2006-01-02")).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAll(ctx context.Context, filter RecordFilter) ([]Attendance, error) {
	var rows []Attendance
	q := r.db.WithContext(ctx).Preload("Employee")
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.From != nil {
		q = q.Where("attendance_date >= ?", filter.From.Format("2006-01-02"))
	}
	if filter.To != nil {
		q = q.Where("attendance_date <= ?", filter.To.Format("2006-01-02"))
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	err := q.Order("attendance_date DESC, check_in DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) SetLockByDate(ctx context.Context, date time.Time, locked bool) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("attendance_date = ?", date.Format("2006-01-02")).
		Updates(map[string]any{"is_locked": locked, "updated_at": time.Now()})
	return res.RowsAffected, res.Error
}

// UpsertLeaveDays writes one leave row per date, overwriting whatever the day held.
func (r *repository) UpsertLeaveDays(ctx context.Context, rows []Attendance) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Omit("Employee").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "attendance_date"}},
			DoUpdates: clause.Assignments(map[string]any{
				"status":       StatusLeave,
				"check_in":     nil,
				"check_out":    nil,
				"worked_hours": 0,
				"marked_by":    gorm.Expr("EXCLUDED.marked_by"),
				"updated_by":   gorm.Expr("EXCLUDED.updated_by"),
				"updated_at":   gorm.Expr("EXCLUDED.updated_at"),
			}),
		}).
		Create(&rows).Error
}

// DeleteLeaveDays removes only rows still carrying the leave status.
func (r *repository) DeleteLeaveDays(ctx context.Context, employeeID string, dates []time.Time) (int64, error) {
	if len(dates) == 0 {
		return 0, nil
	}
	days := make([]string, len(dates))
	for i, d := range dates {
		days[i] = d.Format("2006-01-02")
	}
	res := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("attendance_date IN ?", days).
		Where("status = ?", StatusLeave).
		Delete(&Attendance{})
	return res.RowsAffected, res.Error
}

// FindEmployeeTimezone returns the IANA zone of the employee's location, or "" when unset.
func (r *repository) FindEmployeeTimezone(ctx context.Context, employeeID string) (string, error) {
	var row struct {
		Timezone *string
	}
	err := r.db.WithContext(ctx).
		Table("employees AS e").
		Select("l.timezone AS timezone").
		Joins("LEFT JOIN locations l ON l.id = e.location_id").
		Where("e.id = ?", employeeID).
		Limit(1).
		Scan(&row).Error
	if err != nil || row.Timezone == nil {
		return "", err
	}
	return *row.Timezone, nil
}
