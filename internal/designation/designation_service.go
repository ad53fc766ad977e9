package designation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	designationerrors "go-hrms/internal/designation/errors"
	"go-hrms/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	DesignationAllKey = "designations:all"
	cacheTTL          = 30 * time.Minute
)

//go:generate mockgen -source=designation_service.go -destination=mock/designation_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDesignationRequest) (DesignationResponse, error)
	GetAll(ctx context.Context, includeInactive bool) ([]DesignationResponse, error)
	GetByID(ctx context.Context, id string) (DesignationResponse, error)
	Deactivate(ctx context.Context, id string) (DesignationResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("designation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("designation.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateDesignationRequest) (DesignationResponse, error) {
	d := &Designation{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(req.Name),
		Level:    req.Level,
		IsActive: true,
	}
	if req.DepartmentID != "" {
		deptID, err := uuid.Parse(req.DepartmentID)
		if err != nil {
			return DesignationResponse{}, apperror.InvalidField("Department Id")
		}
		d.DepartmentID = &deptID
	}

	if err := s.repo.Create(ctx, d); err != nil {
		if apperror.IsUniqueViolation(err, "uq_designations_name") {
			return DesignationResponse{}, designationerrors.ErrDesignationNameExists
		}
		return DesignationResponse{}, err
	}

	s.invalidate(ctx)
	return mapToResponse(*d), nil
}

// GetAll serves the active list from Redis; inactive listings always hit the database.
func (s *service) GetAll(ctx context.Context, includeInactive bool) ([]DesignationResponse, error) {
	if includeInactive {
		designations, err := s.repo.FindAll(ctx, true)
		if err != nil {
			return nil, err
		}
		return mapToListResponse(designations), nil
	}

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, DesignationAllKey).Result()
		if err == nil {
			var resp []DesignationResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(DesignationAllKey, func() (interface{}, error) {
		designations, err := s.repo.FindAll(ctx, false)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(designations)
		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, DesignationAllKey, data, cacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]DesignationResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DesignationResponse, error) {
	d, err := s.find(ctx, s.repo, id)
	if err != nil {
		return DesignationResponse{}, err
	}
	return mapToResponse(*d), nil
}

func (s *service) Deactivate(ctx context.Context, id string) (DesignationResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DesignationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	d, err := s.find(ctx, qtx, id)
	if err != nil {
		return DesignationResponse{}, err
	}
	if !d.IsActive {
		return DesignationResponse{}, designationerrors.ErrDesignationAlreadyInactive
	}

	count, err := qtx.CountActiveEmployees(ctx, id)
	if err != nil {
		return DesignationResponse{}, err
	}
	if count > 0 {
		return DesignationResponse{}, designationerrors.ErrDesignationHasActiveEmployees
	}

	d.IsActive = false
	if err := qtx.Update(ctx, d); err != nil {
		return DesignationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return DesignationResponse{}, err
	}

	s.invalidate(ctx)
	return mapToResponse(*d), nil
}

func (s *service) find(ctx context.Context, repo Repository, id string) (*Designation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, designationerrors.ErrDesignationNotFound
	}

	d, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, designationerrors.ErrDesignationNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, DesignationAllKey).Err(); err != nil {
		s.logger.Warn("failed to invalidate cache", zap.String("key", DesignationAllKey), zap.Error(err))
	}
}

func mapToResponse(d Designation) DesignationResponse {
	resp := DesignationResponse{
		ID:        d.ID.String(),
		Name:      d.Name,
		Level:     d.Level,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
		UpdatedAt: d.UpdatedAt.Format(time.RFC3339),
	}
	if d.DepartmentID != nil {
		resp.DepartmentID = d.DepartmentID.String()
	}
	if d.Department != nil {
		resp.DepartmentName = d.Department.Name
	}
	return resp
}

func mapToListResponse(designations []Designation) []DesignationResponse {
	res := make([]DesignationResponse, len(designations))
	for i, d := range designations {
		res[i] = mapToResponse(d)
	}
	return res
}
