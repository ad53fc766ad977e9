package counter

import (
	"context"
	"database/sql"
	"fmt"

	"go-hrms/internal/shared/dbtx"

	"gorm.io/gorm"
)

const (
	TypeEmployeeCode = "employee_code"
)

type Counter struct {
	CounterType string `gorm:"primaryKey;size:64"`
	LastValue   int64  `gorm:"not null;default:0"`
	UpdatedAt   int64  `gorm:"autoUpdateTime"`
}

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetNextValue(ctx context.Context, counterType string) (int64, error)
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

func (r *repository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	var nextValue int64

	// single upsert keeps concurrent callers from reading the same value
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO counters (counter_type, last_value, updated_at)
		VALUES (?, 1, extract(epoch from now())::bigint)
		ON CONFLICT (counter_type) DO UPDATE
		SET last_value = counters.last_value + 1, updated_at = extract(epoch from now())::bigint
		RETURNING last_value
	`, counterType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}

// FormatEmployeeCode renders a sequence value as EMP-000042.
func FormatEmployeeCode(n int64) string {
	return fmt.Sprintf("EMP-%06d", n)
}
