package department

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	departmenterrors "go-hrms/internal/department/errors"
	"go-hrms/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context, includeInactive bool) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Deactivate(ctx context.Context, id string) (DepartmentResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	dept := &Department{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
		Description: req.Description,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, dept); err != nil {
		if apperror.IsUniqueViolation(err, "uq_departments_name") {
			return DepartmentResponse{}, departmenterrors.ErrDepartmentNameExists
		}
		s.logger.Error("create department failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	return mapToResponse(*dept), nil
}

func (s *service) GetAll(ctx context.Context, includeInactive bool) ([]DepartmentResponse, error) {
	depts, err := s.repo.FindAll(ctx, includeInactive)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(depts), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	dept, err := s.find(ctx, s.repo, id)
	if err != nil {
		return DepartmentResponse{}, err
	}

	return mapToResponse(*dept), nil
}

// Deactivate refuses while any active or on-leave employee still references the department.
func (s *service) Deactivate(ctx context.Context, id string) (DepartmentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := s.find(ctx, qtx, id)
	if err != nil {
		return DepartmentResponse{}, err
	}
	if !dept.IsActive {
		return DepartmentResponse{}, departmenterrors.ErrDepartmentAlreadyInactive
	}

	count, err := qtx.CountActiveEmployees(ctx, id)
	if err != nil {
		return DepartmentResponse{}, err
	}
	if count > 0 {
		s.logger.Warn("deactivate department blocked",
			zap.String("department_id", id),
			zap.Int64("active_employees", count),
		)
		return DepartmentResponse{}, departmenterrors.ErrDepartmentHasActiveEmployees
	}

	dept.IsActive = false
	if err := qtx.Update(ctx, dept); err != nil {
		return DepartmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	return mapToResponse(*dept), nil
}

func (s *service) find(ctx context.Context, repo Repository, id string) (*Department, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, departmenterrors.ErrDepartmentNotFound
	}

	dept, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, departmenterrors.ErrDepartmentNotFound
		}
		return nil, err
	}
	return dept, nil
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          dept.ID.String(),
		Name:        dept.Name,
		Code:        dept.Code,
		Description: dept.Description,
		IsActive:    dept.IsActive,
		CreatedAt:   dept.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   dept.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
