package employee

import (
	"context"
	"database/sql"
	"strings"

	"go-hrms/internal/shared/dbtx"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context, filter ListEmployeesFilter) ([]Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, empl *Employee) error
	UpdateCompensation(ctx context.Context, id string, salary decimal.Decimal, designationID *string) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Omit("Department", "Designation").Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListEmployeesFilter) ([]Employee, error) {
	var empls []Employee
	q := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Designation").
		Order("employee_code ASC")

	if filter.DepartmentID != "" {
		q = q.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if term := strings.TrimSpace(filter.Query); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(first_name || ' ' || last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(employee_code) LIKE ?", like, like, like)
	}

	err := q.Find(&empls).Error
	return empls, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Select("id", "employee_code", "first_name", "last_name").
		Where("status IN ?", []string{StatusActive, StatusOnLeave}).
		Order("first_name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Designation").
		First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Omit("Department", "Designation").Save(empl).Error
}

// UpdateCompensation writes the cached CTC projection and, when given, the new designation.
func (r *repository) UpdateCompensation(ctx context.Context, id string, salary decimal.Decimal, designationID *string) error {
	updates := map[string]any{"salary": salary}
	if designationID != nil {
		updates["designation_id"] = *designationID
	}

	res := r.db.WithContext(ctx).Model(&Employee{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
