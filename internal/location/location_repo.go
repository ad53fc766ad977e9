package location

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=location_repo.go -destination=mock/location_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, loc *Location) error
	FindAll(ctx context.Context, includeInactive bool) ([]Location, error)
	FindByID(ctx context.Context, id string) (*Location, error)
	Update(ctx context.Context, loc *Location) error
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

func (r *repository) Create(ctx context.Context, loc *Location) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

func (r *repository) FindAll(ctx context.Context, includeInactive bool) ([]Location, error) {
	var locs []Location
	q := r.db.WithContext(ctx).Order("name ASC")
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&locs).Error
	return locs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Location, error) {
	var loc Location
	err := r.db.WithContext(ctx).First(&loc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *repository) Update(ctx context.Context, loc *Location) error {
	return r.db.WithContext(ctx).Save(loc).Error
}

func (r *repository) CountActiveEmployees(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("location_id = ?", id).
		Where("status IN ?", []string{"active", "on_leave"}).
		Count(&count).Error
	return count, err
}
