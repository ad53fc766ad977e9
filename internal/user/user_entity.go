package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the login identity created alongside an employee at onboarding.
type User struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID   uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex"`
	Email        string    `gorm:"column:email;type:text;not null;uniqueIndex:uq_users_email"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null"`
	Role         string    `gorm:"column:role;type:varchar(50);not null;default:EMPLOYEE"`
	IsActive     bool      `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
