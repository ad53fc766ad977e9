package salarystructure

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_structure_repo.go -destination=mock/salary_structure_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *SalaryStructure) error
	FindActive(ctx context.Context, employeeID string) (*SalaryStructure, error)
	FindHistory(ctx context.Context, employeeID string) ([]SalaryStructure, error)
	DeactivateActive(ctx context.Context, employeeID string) (int64, error)
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

func (r *repository) Create(ctx context.Context, s *SalaryStructure) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindActive(ctx context.Context, employeeID string) (*SalaryStructure, error) {
	var s SalaryStructure
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND is_active = ?", employeeID, true).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindHistory(ctx context.Context, employeeID string) ([]SalaryStructure, error) {
	var items []SalaryStructure
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("effective_from DESC, created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) DeactivateActive(ctx context.Context, employeeID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&SalaryStructure{}).
		Where("employee_id = ? AND is_active = ?", employeeID, true).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}

// Rotate retires the employee's active structure and inserts next as the new active one.
// repo must be bound to the caller's transaction.
func Rotate(ctx context.Context, repo Repository, next *SalaryStructure) error {
	if _, err := repo.DeactivateActive(ctx, next.EmployeeID.String()); err != nil {
		return err
	}
	next.IsActive = true
	return repo.Create(ctx, next)
}
