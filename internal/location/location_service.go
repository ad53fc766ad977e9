package location

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	locationerrors "go-hrms/internal/location/errors"
	"go-hrms/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const DefaultTimezone = "UTC"

//go:generate mockgen -source=location_service.go -destination=mock/location_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLocationRequest) (LocationResponse, error)
	GetAll(ctx context.Context, includeInactive bool) ([]LocationResponse, error)
	GetByID(ctx context.Context, id string) (LocationResponse, error)
	Deactivate(ctx context.Context, id string) (LocationResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("location.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("location.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// ResolveTimezone loads an IANA zone, falling back to UTC for empty or unknown names.
func ResolveTimezone(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (s *service) Create(ctx context.Context, req CreateLocationRequest) (LocationResponse, error) {
	tz := strings.TrimSpace(req.Timezone)
	if tz == "" {
		tz = DefaultTimezone
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return LocationResponse{}, locationerrors.ErrInvalidTimezone
	}

	loc := &Location{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(req.Name),
		Address:  req.Address,
		Timezone: tz,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, loc); err != nil {
		if apperror.IsUniqueViolation(err, "uq_locations_name") {
			return LocationResponse{}, locationerrors.ErrLocationNameExists
		}
		s.logger.Error("create location failed", zap.Error(err))
		return LocationResponse{}, err
	}

	return mapToResponse(*loc), nil
}

func (s *service) GetAll(ctx context.Context, includeInactive bool) ([]LocationResponse, error) {
	locs, err := s.repo.FindAll(ctx, includeInactive)
	if err != nil {
		return nil, err
	}

	res := make([]LocationResponse, len(locs))
	for i, l := range locs {
		res[i] = mapToResponse(l)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (LocationResponse, error) {
	loc, err := s.find(ctx, s.repo, id)
	if err != nil {
		return LocationResponse{}, err
	}
	return mapToResponse(*loc), nil
}

func (s *service) Deactivate(ctx context.Context, id string) (LocationResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LocationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	loc, err := s.find(ctx, qtx, id)
	if err != nil {
		return LocationResponse{}, err
	}
	if !loc.IsActive {
		return LocationResponse{}, locationerrors.ErrLocationAlreadyInactive
	}

	count, err := qtx.CountActiveEmployees(ctx, id)
	if err != nil {
		return LocationResponse{}, err
	}
	if count > 0 {
		return LocationResponse{}, locationerrors.ErrLocationHasActiveEmployees
	}

	loc.IsActive = false
	if err := qtx.Update(ctx, loc); err != nil {
		return LocationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return LocationResponse{}, err
	}

	return mapToResponse(*loc), nil
}

func (s *service) find(ctx context.Context, repo Repository, id string) (*Location, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, locationerrors.ErrLocationNotFound
	}

	loc, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, locationerrors.ErrLocationNotFound
		}
		return nil, err
	}
	return loc, nil
}

func mapToResponse(l Location) LocationResponse {
	return LocationResponse{
		ID:        l.ID.String(),
		Name:      l.Name,
		Address:   l.Address,
		Timezone:  l.Timezone,
		IsActive:  l.IsActive,
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
		UpdatedAt: l.UpdatedAt.Format(time.RFC3339),
	}
}
