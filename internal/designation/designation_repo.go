package designation

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=designation_repo.go -destination=mock/designation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, d *Designation) error
	FindAll(ctx context.Context, includeInactive bool) ([]Designation, error)
	FindByID(ctx context.Context, id string) (*Designation, error)
	Update(ctx context.Context, d *Designation) error
	CountActiveEmployees(ctx context.Context, id string) (int64, error)
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

func (r *repository) Create(ctx context.Context, d *Designation) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindAll(ctx context.Context, includeInactive bool) ([]Designation, error) {
	var designations []Designation
	q := r.db.WithContext(ctx).Preload("Department").Order("level ASC, name ASC")
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&designations).Error
	return designations, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Designation, error) {
	var d Designation
	err := r.db.WithContext(ctx).Preload("Department").First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) Update(ctx context.Context, d *Designation) error {
	return r.db.WithContext(ctx).Omit("Department").Save(d).Error
}

func (r *repository) CountActiveEmployees(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("designation_id = ?", id).
		Where("status IN ?", []string{"active", "on_leave"}).
		Count(&count).Error
	return count, err
}
