package rbac

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error)

	ListRoles(ctx context.Context) ([]Role, error)
	GetRoleByID(ctx context.Context, id string) (*Role, error)
	CreateRole(ctx context.Context, role *Role) error

	ListPermissions(ctx context.Context) ([]Permission, error)
	GetPermissionsByRoleID(ctx context.Context, roleID string) ([]Permission, error)
	ReplaceRolePermissions(ctx context.Context, roleID uuid.UUID, permIDs []uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error) {
	var result []RolePermissionRow

	err := r.db.WithContext(ctx).
		Table("role_permissions").
		Select("roles.name AS role_name, permissions.resource, permissions.action").
		Joins("JOIN roles ON roles.id = role_permissions.role_id").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Scan(&result).Error

	return result, err
}

func (r *repository) ListRoles(ctx context.Context) ([]Role, error) {
	var result []Role
	err := r.db.WithContext(ctx).Order("name").Find(&result).Error
	return result, err
}

func (r *repository) GetRoleByID(ctx context.Context, id string) (*Role, error) {
	var result Role
	err := r.db.WithContext(ctx).First(&result, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *repository) CreateRole(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *repository) ListPermissions(ctx context.Context) ([]Permission, error) {
	var result []Permission
	err := r.db.WithContext(ctx).Order("category, resource, action").Find(&result).Error
	return result, err
}

func (r *repository) GetPermissionsByRoleID(ctx context.Context, roleID string) ([]Permission, error) {
	var result []Permission
	err := r.db.WithContext(ctx).
		Table("permissions").
		Select("permissions.*").
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Where("role_permissions.role_id = ?", roleID).
		Scan(&result).Error
	return result, err
}

func (r *repository) ReplaceRolePermissions(ctx context.Context, roleID uuid.UUID, permIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", roleID).Delete(&RolePermission{}).Error; err != nil {
			return err
		}

		if len(permIDs) == 0 {
			return nil
		}

		rows := make([]RolePermission, 0, len(permIDs))
		for _, pID := range permIDs {
			rows = append(rows, RolePermission{RoleID: roleID, PermissionID: pID})
		}
		return tx.Create(&rows).Error
	})
}
