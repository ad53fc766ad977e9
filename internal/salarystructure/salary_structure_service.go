package salarystructure

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-hrms/internal/domain"
	salarystructureerrors "go-hrms/internal/salarystructure/errors"
	"go-hrms/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=salary_structure_service.go -destination=mock/salary_structure_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor domain.Actor, req CreateSalaryStructureRequest) (SalaryStructureResponse, error)
	GetActive(ctx context.Context, employeeID string) (SalaryStructureResponse, error)
	History(ctx context.Context, employeeID string) ([]SalaryStructureResponse, error)
	EnsureDefault(ctx context.Context, employeeID string, ctc decimal.Decimal, effectiveFrom time.Time) (bool, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salarystructure.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salarystructure.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Create replaces the employee's active structure inside one transaction.
func (s *service) Create(ctx context.Context, actor domain.Actor, req CreateSalaryStructureRequest) (SalaryStructureResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return SalaryStructureResponse{}, apperror.InvalidField("Employee Id")
	}
	effectiveFrom, err := time.Parse(dateLayout, req.EffectiveFrom)
	if err != nil {
		return SalaryStructureResponse{}, salarystructureerrors.ErrInvalidEffectiveFrom
	}

	basic, err := parseAmount(req.BasicSalary)
	if err != nil {
		return SalaryStructureResponse{}, err
	}
	hra, err := parseAmount(req.HRA)
	if err != nil {
		return SalaryStructureResponse{}, err
	}
	allowances, err := parseComponents(req.Allowances)
	if err != nil {
		return SalaryStructureResponse{}, err
	}
	deductions, err := parseComponents(req.Deductions)
	if err != nil {
		return SalaryStructureResponse{}, err
	}

	next := &SalaryStructure{
		ID:            uuid.New(),
		EmployeeID:    employeeID,
		BasicSalary:   basic,
		HRA:           hra,
		Allowances:    allowances,
		Deductions:    deductions,
		EffectiveFrom: effectiveFrom,
		CreatedBy:     uuidPtr(actor.UserID),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryStructureResponse{}, err
	}
	defer tx.Rollback()

	if err := Rotate(ctx, s.repo.WithTx(tx), next); err != nil {
		if apperror.IsUniqueViolation(err, "uq_salary_structure_active") {
			return SalaryStructureResponse{}, salarystructureerrors.ErrActiveStructureExists
		}
		s.logger.Error("rotate salary structure failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return SalaryStructureResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SalaryStructureResponse{}, err
	}

	s.logger.Info("salary structure replaced",
		zap.String("employee_id", req.EmployeeID),
		zap.String("structure_id", next.ID.String()),
	)
	return mapToResponse(*next), nil
}

func (s *service) GetActive(ctx context.Context, employeeID string) (SalaryStructureResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return SalaryStructureResponse{}, salarystructureerrors.ErrSalaryStructureNotFound
	}

	active, err := s.repo.FindActive(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryStructureResponse{}, salarystructureerrors.ErrSalaryStructureNotFound
		}
		return SalaryStructureResponse{}, err
	}
	return mapToResponse(*active), nil
}

func (s *service) History(ctx context.Context, employeeID string) ([]SalaryStructureResponse, error) {
	items, err := s.repo.FindHistory(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	res := make([]SalaryStructureResponse, len(items))
	for i, item := range items {
		res[i] = mapToResponse(item)
	}
	return res, nil
}

// EnsureDefault creates the onboarding structure from the CTC split unless one is already active.
// It reports whether a row was inserted.
func (s *service) EnsureDefault(ctx context.Context, employeeID string, ctc decimal.Decimal, effectiveFrom time.Time) (bool, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return false, apperror.InvalidField("Employee Id")
	}

	_, err = s.repo.FindActive(ctx, employeeID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if err := s.repo.Create(ctx, NewFromCTC(id, ctc, effectiveFrom)); err != nil {
		if apperror.IsUniqueViolation(err, "uq_salary_structure_active") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func parseAmount(v string) (decimal.Decimal, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil || d.IsNegative() {
		return decimal.Zero, salarystructureerrors.ErrInvalidAmount
	}
	return d, nil
}

func parseComponents(items []ComponentRequest) (Components, error) {
	out := make(Components, 0, len(items))
	for _, item := range items {
		amount, err := parseAmount(item.Amount)
		if err != nil {
			return nil, err
		}
		out = append(out, Component{Name: strings.TrimSpace(item.Name), Amount: amount})
	}
	return out, nil
}

func mapComponents(items Components) []ComponentResponse {
	out := make([]ComponentResponse, len(items))
	for i, item := range items {
		out[i] = ComponentResponse{Name: item.Name, Amount: item.Amount.StringFixed(2)}
	}
	return out
}

func mapToResponse(s SalaryStructure) SalaryStructureResponse {
	return SalaryStructureResponse{
		ID:            s.ID.String(),
		EmployeeID:    s.EmployeeID.String(),
		BasicSalary:   s.BasicSalary.StringFixed(2),
		HRA:           s.HRA.StringFixed(2),
		Allowances:    mapComponents(s.Allowances),
		Deductions:    mapComponents(s.Deductions),
		FullGross:     s.FullGross().StringFixed(2),
		EffectiveFrom: s.EffectiveFrom.Format(dateLayout),
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
	}
}

func uuidPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}
