package user

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, u *User) error
	FindByEmployeeID(ctx context.Context, employeeID string) (*User, error)
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
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

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "employee_id = ?", employeeID).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	return r.db.WithContext(ctx).Delete(&User{}, "employee_id = ?", employeeID).Error
}
