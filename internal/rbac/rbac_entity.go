package rbac

import (
	"time"

	"github.com/google/uuid"
)

type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"size:50;not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

type Permission struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Resource string    `gorm:"size:64;not null;uniqueIndex:uq_permission_resource_action"`
	Action   string    `gorm:"size:64;not null;uniqueIndex:uq_permission_resource_action"`
	Label    string    `gorm:"size:255"`
	Category string    `gorm:"size:64"`
}

type RolePermission struct {
	RoleID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	PermissionID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// RolePermissionRow is the flattened shape loaded into the enforcer.
type RolePermissionRow struct {
	RoleName string
	Resource string
	Action   string
}
