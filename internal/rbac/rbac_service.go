package rbac

import (
	"context"
	"errors"
	"sync"

	"go-hrms/internal/domain"
	rbacerrors "go-hrms/internal/rbac/errors"
	"go-hrms/internal/shared/apperror"

	"github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(ctx context.Context) error
	Enforce(req domain.EnforceRequest) (bool, error)

	ListRoles(ctx context.Context) ([]domain.RoleResponse, error)
	GetRole(ctx context.Context, id string) (domain.RoleResponse, error)
	CreateRole(ctx context.Context, req domain.CreateRoleRequest) (domain.RoleResponse, error)
	UpdateRolePermissions(ctx context.Context, id string, req domain.UpdateRolePermissionsRequest) (domain.RoleResponse, error)
	ListPermissions(ctx context.Context) ([]domain.PermissionResponse, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	defaults map[string][]Grant
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, defaults map[string][]Grant, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	return &service{
		repo:     repo,
		enforcer: enforcer,
		defaults: defaults,
		logger:   l,
	}
}

// LoadPolicy rebuilds the enforcer from role_permissions. A role with no rows
// falls back to its entry in the default permission map.
func (s *service) LoadPolicy(ctx context.Context) error {
	rows, err := s.repo.GetRolePermissions(ctx)
	if err != nil {
		return err
	}

	granted := make(map[string][]Grant)
	for _, row := range rows {
		role := domain.NormalizeRole(row.RoleName)
		granted[role] = append(granted[role], Grant{Resource: row.Resource, Action: row.Action})
	}
	for role, grants := range s.defaults {
		if len(granted[role]) == 0 {
			granted[role] = grants
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()
	total := 0
	for role, grants := range granted {
		for _, g := range grants {
			if _, err := s.enforcer.AddPolicy(role, g.Resource, g.Action); err != nil {
				return err
			}
			total++
		}
	}

	s.logger.Info("rbac policy loaded", zap.Int("roles", len(granted)), zap.Int("policies", total))
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(domain.NormalizeRole(req.Role), req.Resource, req.Action)
	if err != nil {
		return false, err
	}

	if !allowed {
		s.logger.Debug("rbac denied",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
		)
	}
	return allowed, nil
}

func (s *service) ListRoles(ctx context.Context) ([]domain.RoleResponse, error) {
	roles, err := s.repo.ListRoles(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.RoleResponse, 0, len(roles))
	for _, role := range roles {
		perms, err := s.repo.GetPermissionsByRoleID(ctx, role.ID.String())
		if err != nil {
			return nil, err
		}
		out = append(out, s.mapRole(role, perms))
	}
	return out, nil
}

func (s *service) GetRole(ctx context.Context, id string) (domain.RoleResponse, error) {
	role, err := s.findRole(ctx, id)
	if err != nil {
		return domain.RoleResponse{}, err
	}

	perms, err := s.repo.GetPermissionsByRoleID(ctx, id)
	if err != nil {
		return domain.RoleResponse{}, err
	}
	return s.mapRole(*role, perms), nil
}

func (s *service) CreateRole(ctx context.Context, req domain.CreateRoleRequest) (domain.RoleResponse, error) {
	permIDs, perms, err := s.resolvePermissions(ctx, req.Permissions)
	if err != nil {
		return domain.RoleResponse{}, err
	}

	role := &Role{
		ID:          uuid.New(),
		Name:        domain.NormalizeRole(req.Name),
		Description: req.Description,
	}
	if err := s.repo.CreateRole(ctx, role); err != nil {
		if apperror.IsUniqueViolation(err, "") {
			return domain.RoleResponse{}, rbacerrors.ErrRoleAlreadyExists
		}
		return domain.RoleResponse{}, err
	}

	if err := s.repo.ReplaceRolePermissions(ctx, role.ID, permIDs); err != nil {
		return domain.RoleResponse{}, err
	}
	if err := s.LoadPolicy(ctx); err != nil {
		return domain.RoleResponse{}, err
	}

	return s.mapRole(*role, perms), nil
}

func (s *service) UpdateRolePermissions(ctx context.Context, id string, req domain.UpdateRolePermissionsRequest) (domain.RoleResponse, error) {
	role, err := s.findRole(ctx, id)
	if err != nil {
		return domain.RoleResponse{}, err
	}

	permIDs, perms, err := s.resolvePermissions(ctx, req.Permissions)
	if err != nil {
		return domain.RoleResponse{}, err
	}

	if err := s.repo.ReplaceRolePermissions(ctx, role.ID, permIDs); err != nil {
		return domain.RoleResponse{}, err
	}
	if err := s.LoadPolicy(ctx); err != nil {
		return domain.RoleResponse{}, err
	}

	return s.mapRole(*role, perms), nil
}

func (s *service) ListPermissions(ctx context.Context) ([]domain.PermissionResponse, error) {
	perms, err := s.repo.ListPermissions(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.PermissionResponse, 0, len(perms))
	for _, p := range perms {
		out = append(out, domain.PermissionResponse{
			ID:       p.ID.String(),
			Resource: p.Resource,
			Action:   p.Action,
			Label:    p.Label,
			Category: p.Category,
		})
	}
	return out, nil
}

func (s *service) findRole(ctx context.Context, id string) (*Role, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, rbacerrors.ErrRoleNotFound
	}

	role, err := s.repo.GetRoleByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rbacerrors.ErrRoleNotFound
		}
		return nil, err
	}
	return role, nil
}

// resolvePermissions maps "resource:action" keys onto permission rows.
func (s *service) resolvePermissions(ctx context.Context, keys []string) ([]uuid.UUID, []Permission, error) {
	if len(keys) == 0 {
		return nil, nil, nil
	}

	all, err := s.repo.ListPermissions(ctx)
	if err != nil {
		return nil, nil, err
	}

	byKey := make(map[string]Permission, len(all))
	for _, p := range all {
		byKey[Grant{Resource: p.Resource, Action: p.Action}.String()] = p
	}

	ids := make([]uuid.UUID, 0, len(keys))
	perms := make([]Permission, 0, len(keys))
	for _, key := range keys {
		g, err := ParseGrant(key)
		if err != nil {
			return nil, nil, rbacerrors.ErrUnknownPermission
		}
		p, ok := byKey[g.String()]
		if !ok {
			return nil, nil, rbacerrors.ErrUnknownPermission
		}
		ids = append(ids, p.ID)
		perms = append(perms, p)
	}
	return ids, perms, nil
}

func (s *service) mapRole(role Role, perms []Permission) domain.RoleResponse {
	keys := make([]string, 0, len(perms))
	for _, p := range perms {
		keys = append(keys, Grant{Resource: p.Resource, Action: p.Action}.String())
	}

	return domain.RoleResponse{
		ID:          role.ID.String(),
		Name:        role.Name,
		Description: role.Description,
		Permissions: keys,
	}
}
