package appraisal

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/dbtx"

	"gorm.io/gorm"
)

type RecordFilter struct {
	AppraisalCycleID string
	EmployeeID       string
	Status           string
}

//go:generate mockgen -source=appraisal_repo.go -destination=mock/appraisal_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateCycle(ctx context.Context, c *AppraisalCycle) error
	UpdateCycle(ctx context.Context, c *AppraisalCycle) error
	FindCycleByID(ctx context.Context, id string) (*AppraisalCycle, error)
	FindCycles(ctx context.Context, status string) ([]AppraisalCycle, error)

	FindEmployee(ctx context.Context, id string) (*EmployeeRef, error)

	CreateRecord(ctx context.Context, rec *AppraisalRecord) error
	UpdateRecord(ctx context.Context, rec *AppraisalRecord) error
	FindRecordByID(ctx context.Context, id string) (*AppraisalRecord, error)
	FindRecords(ctx context.Context, filter RecordFilter) ([]AppraisalRecord, error)
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

func (r *repository) CreateCycle(ctx context.Context, c *AppraisalCycle) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) UpdateCycle(ctx context.Context, c *AppraisalCycle) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) FindCycleByID(ctx context.Context, id string) (*AppraisalCycle, error) {
	var c AppraisalCycle
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindCycles(ctx context.Context, status string) ([]AppraisalCycle, error) {
	var cycles []AppraisalCycle
	q := r.db.WithContext(ctx).Order("effective_from DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&cycles).Error
	return cycles, err
}

func (r *repository) FindEmployee(ctx context.Context, id string) (*EmployeeRef, error) {
	var e EmployeeRef
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) CreateRecord(ctx context.Context, rec *AppraisalRecord) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(rec).Error
}

func (r *repository) UpdateRecord(ctx context.Context, rec *AppraisalRecord) error {
	return r.db.WithContext(ctx).Omit("Employee").Save(rec).Error
}

func (r *repository) FindRecordByID(ctx context.Context, id string) (*AppraisalRecord, error) {
	var rec AppraisalRecord
	if err := r.db.WithContext(ctx).Preload("Employee").First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) FindRecords(ctx context.Context, filter RecordFilter) ([]AppraisalRecord, error) {
	var records []AppraisalRecord
	q := r.db.WithContext(ctx).Preload("Employee").Order("created_at DESC")
	if filter.AppraisalCycleID != "" {
		q = q.Where("appraisal_cycle_id = ?", filter.AppraisalCycleID)
	}
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	err := q.Find(&records).Error
	return records, err
}
