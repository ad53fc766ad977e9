package payroll

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	payrollerrors "go-hrms/internal/payroll/errors"
	"go-hrms/internal/reporting"
	"go-hrms/internal/salarystructure"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StructureSource resolves the active salary structure of an employee.
type StructureSource interface {
	FindActive(ctx context.Context, employeeID string) (*salarystructure.SalaryStructure, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, actor domain.Actor, req GenerateRequest) (GenerateResponse, error)
	Approve(ctx context.Context, actor domain.Actor, id string) (PayrollResponse, error)
	Lock(ctx context.Context, actor domain.Actor, id string) (PayrollResponse, error)
	GetAll(ctx context.Context, filter ListPayrollsFilter) ([]PayrollResponse, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (PayrollResponse, error)
	ExportRegister(ctx context.Context, month, year int) (ExportResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	structures StructureSource
	holidays   HolidayProvider
	exporter   reporting.Exporter
	outbox     kafka.OutboxRepository
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	structures StructureSource,
	holidays HolidayProvider,
	exporter reporting.Exporter,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	if holidays == nil {
		holidays = NoHolidays{}
	}
	return &service{
		db:         db,
		repo:       repo,
		structures: structures,
		holidays:   holidays,
		exporter:   exporter,
		outbox:     outboxRepo,
		now:        time.Now,
		logger:     l,
	}
}

// Generate computes payroll for every active employee in scope. A failure for one
// employee is recorded in Errors and the run continues.
func (s *service) Generate(ctx context.Context, actor domain.Actor, req GenerateRequest) (GenerateResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	scope, err := resolveScope(req)
	if err != nil {
		return GenerateResponse{}, err
	}
	if req.Month < 1 || req.Month > 12 || req.Year < 1 {
		return GenerateResponse{}, payrollerrors.ErrInvalidPeriod
	}
	month := time.Month(req.Month)

	holidays, err := s.holidays.Holidays(req.Year, month)
	if err != nil {
		return GenerateResponse{}, err
	}

	employees, err := s.repo.FindEmployees(ctx, scope)
	if err != nil {
		log.Error("payroll generate load employees failed", zap.Error(err))
		return GenerateResponse{}, err
	}
	if scope.EmployeeID != "" && len(employees) == 0 {
		return GenerateResponse{}, payrollerrors.ErrEmployeeNotFound
	}

	log.Info("payroll generate started",
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
		zap.Int("employees", len(employees)),
	)

	res := GenerateResponse{
		Generated: make([]PayrollResponse, 0, len(employees)),
		Errors:    make([]GenerateError, 0),
	}
	for _, emp := range employees {
		if err := ctx.Err(); err != nil {
			return GenerateResponse{}, err
		}

		p, err := s.generateOne(ctx, actor, emp, req.Year, month, holidays)
		if err != nil {
			log.Warn("payroll generate employee failed",
				zap.String("employee_code", emp.EmployeeCode),
				zap.Error(err),
			)
			res.Errors = append(res.Errors, GenerateError{
				EmployeeID:   emp.ID.String(),
				EmployeeCode: emp.EmployeeCode,
				Message:      apperror.ToHTTP(err).Message,
			})
			continue
		}
		res.Generated = append(res.Generated, mapToResponse(*p))
	}

	log.Info("payroll generate finished",
		zap.Int("generated", len(res.Generated)),
		zap.Int("failed", len(res.Errors)),
	)
	return res, nil
}

func (s *service) generateOne(
	ctx context.Context,
	actor domain.Actor,
	emp EmployeeRef,
	year int,
	month time.Month,
	holidays []time.Time,
) (*Payroll, error) {
	employeeID := emp.ID.String()

	existing, err := s.repo.FindByPeriod(ctx, employeeID, int(month), year)
	switch {
	case err == nil:
		if existing.Status != StatusGenerated {
			return nil, payrollerrors.ErrPayrollFinalized
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		existing = nil
	default:
		return nil, err
	}

	earnings, err := s.earningsFor(ctx, emp)
	if err != nil {
		return nil, err
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	attendance, err := s.repo.FindAttendance(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	leaves, err := s.repo.FindApprovedLeaves(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	p := Calculate(CalculationInput{
		Year:        year,
		Month:       month,
		Earnings:    earnings,
		Attendance:  attendance,
		Leaves:      leaves,
		Holidays:    holidays,
		PFEligible:  emp.IsPFEligible,
		ESIEligible: emp.IsESIEligible,
		MonthlyTDS:  emp.MonthlyTDS,
	})
	p.ID = uuid.New()
	p.EmployeeID = emp.ID
	p.Status = StatusGenerated
	p.GeneratedBy = parseOptional(actor.UserID)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if existing != nil {
		deleted, err := qtx.DeleteGenerated(ctx, existing.ID.String())
		if err != nil {
			return nil, err
		}
		if !deleted {
			return nil, payrollerrors.ErrPayrollFinalized
		}
	}
	if err := qtx.Create(ctx, &p); err != nil {
		if apperror.IsUniqueViolation(err, "uq_payroll_employee_period") {
			return nil, payrollerrors.ErrPayrollExists
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	p.Employee = &emp
	return &p, nil
}

func (s *service) earningsFor(ctx context.Context, emp EmployeeRef) (Earnings, error) {
	st, err := s.structures.FindActive(ctx, emp.ID.String())
	if err == nil {
		return EarningsFromStructure(*st), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Earnings{}, err
	}
	if !emp.Salary.IsPositive() {
		return Earnings{}, payrollerrors.ErrNoSalary
	}

	s.logger.Warn("payroll using legacy flat salary",
		zap.String("employee_code", emp.EmployeeCode),
	)
	return LegacyEarnings(emp.Salary), nil
}

func (s *service) Approve(ctx context.Context, actor domain.Actor, id string) (PayrollResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := s.find(ctx, qtx, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	if p.Status != StatusGenerated {
		log.Warn("payroll approve invalid state",
			zap.String("payroll_id", id),
			zap.String("from_status", p.Status),
		)
		return PayrollResponse{}, payrollerrors.ErrInvalidStatusTransition
	}

	now := s.now().UTC()
	p.Status = StatusApproved
	p.ApprovedBy = parseOptional(actor.UserID)
	p.ApprovedAt = &now

	ok, err := qtx.TransitionStatus(ctx, p, StatusGenerated)
	if err != nil {
		return PayrollResponse{}, err
	}
	if !ok {
		log.Warn("payroll approve lost race", zap.String("payroll_id", id))
		return PayrollResponse{}, payrollerrors.ErrInvalidStatusTransition
	}

	ev, err := kafka.NewOutboxEvent(ctx, "payroll", p.ID.String(), events.PayrollApproved, events.PayrollTopic, events.PayrollApprovedEvent{
		EventType:   events.PayrollApproved,
		PayrollID:   p.ID.String(),
		EmployeeID:  p.EmployeeID.String(),
		PeriodMonth: p.PeriodMonth,
		PeriodYear:  p.PeriodYear,
		NetSalary:   p.NetSalary.StringFixed(2),
		ApprovedBy:  actor.UserID,
		OccurredAt:  now,
	})
	if err != nil {
		return PayrollResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, ev); err != nil {
		log.Error("payroll approve outbox failed", zap.String("payroll_id", id), zap.Error(err))
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	log.Info("payroll approved", zap.String("payroll_id", id))
	return mapToResponse(*p), nil
}

func (s *service) Lock(ctx context.Context, actor domain.Actor, id string) (PayrollResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
	}

	p, err := s.find(ctx, s.repo, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	if p.Status != StatusApproved {
		return PayrollResponse{}, payrollerrors.ErrInvalidStatusTransition
	}

	now := s.now().UTC()
	p.Status = StatusLocked
	p.LockedBy = parseOptional(actor.UserID)
	p.LockedAt = &now

	ok, err := s.repo.TransitionStatus(ctx, p, StatusApproved)
	if err != nil {
		return PayrollResponse{}, err
	}
	if !ok {
		return PayrollResponse{}, payrollerrors.ErrInvalidStatusTransition
	}

	s.logger.Info("payroll locked", zap.String("payroll_id", id))
	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, filter ListPayrollsFilter) ([]PayrollResponse, error) {
	payrolls, err := s.repo.FindAll(ctx, Filter{
		Month:      filter.Month,
		Year:       filter.Year,
		Status:     filter.Status,
		EmployeeID: filter.EmployeeID,
	})
	if err != nil {
		return nil, err
	}
	return mapToListResponse(payrolls), nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Actor, id string) (PayrollResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
	}
	p, err := s.find(ctx, s.repo, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	if !actor.IsHRAdmin() && p.EmployeeID.String() != actor.EmployeeID {
		return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
	}
	return mapToResponse(*p), nil
}

var registerHeaders = []string{
	"Employee Code", "Employee Name", "Payable Days", "Full Gross", "Loss of Pay",
	"Earned Gross", "PF", "ESI", "Professional Tax", "Income Tax", "Other Deductions",
	"Total Deductions", "Net Salary", "Status",
}

func (s *service) ExportRegister(ctx context.Context, month, year int) (ExportResponse, error) {
	if month < 1 || month > 12 || year < 1 {
		return ExportResponse{}, payrollerrors.ErrInvalidPeriod
	}

	payrolls, err := s.repo.FindAll(ctx, Filter{Month: month, Year: year})
	if err != nil {
		return ExportResponse{}, err
	}
	if len(payrolls) == 0 {
		return ExportResponse{}, payrollerrors.ErrNothingToExport
	}

	rows := make([][]any, len(payrolls))
	for i, p := range payrolls {
		code, name := "", ""
		if p.Employee != nil {
			code, name = p.Employee.EmployeeCode, p.Employee.FullName()
		}
		rows[i] = []any{
			code, name, p.PayableDays.InexactFloat64(),
			p.FullGross.InexactFloat64(), p.LossOfPay.InexactFloat64(), p.EarnedGross.InexactFloat64(),
			p.PF.InexactFloat64(), p.ESI.InexactFloat64(), p.ProfessionalTax.InexactFloat64(),
			p.IncomeTax.InexactFloat64(), p.OtherDeductions.InexactFloat64(),
			p.TotalDeductions.InexactFloat64(), p.NetSalary.InexactFloat64(), p.Status,
		}
	}

	path, err := s.exporter.Export(ctx, fmt.Sprintf("payroll_register_%02d_%d", month, year), registerHeaders, rows)
	if err != nil {
		s.logger.Error("payroll register export failed", zap.Error(err))
		return ExportResponse{}, err
	}
	return ExportResponse{Path: path, Rows: len(rows)}, nil
}

func (s *service) find(ctx context.Context, repo Repository, id string) (*Payroll, error) {
	p, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrPayrollNotFound
		}
		return nil, err
	}
	return p, nil
}

func resolveScope(req GenerateRequest) (Scope, error) {
	switch req.Scope {
	case "", ScopeAll:
		return Scope{}, nil
	case ScopeDepartment:
		if _, err := uuid.Parse(req.DepartmentID); err != nil {
			return Scope{}, payrollerrors.ErrInvalidDepartmentID
		}
		return Scope{DepartmentID: req.DepartmentID}, nil
	case ScopeEmployee:
		if _, err := uuid.Parse(req.EmployeeID); err != nil {
			return Scope{}, payrollerrors.ErrInvalidEmployeeID
		}
		return Scope{EmployeeID: req.EmployeeID}, nil
	default:
		return Scope{}, payrollerrors.ErrInvalidScope
	}
}

func parseOptional(id string) *uuid.UUID {
	u, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	return &u
}

func mapToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:              p.ID.String(),
		EmployeeID:      p.EmployeeID.String(),
		PeriodMonth:     p.PeriodMonth,
		PeriodYear:      p.PeriodYear,
		TotalDays:       p.TotalDays,
		WorkingDays:     p.WorkingDays,
		PresentDays:     p.PresentDays,
		HalfDays:        p.HalfDays,
		AbsentDays:      p.AbsentDays,
		PaidLeaveDays:   p.PaidLeaveDays.StringFixed(1),
		UnpaidLeaveDays: p.UnpaidLeaveDays.StringFixed(1),
		PayableDays:     p.PayableDays.StringFixed(1),
		BasicSalary:     p.BasicSalary.StringFixed(2),
		HRA:             p.HRA.StringFixed(2),
		Allowances:      p.Allowances.StringFixed(2),
		FullGross:       p.FullGross.StringFixed(2),
		EarnedBasic:     p.EarnedBasic.StringFixed(2),
		EarnedHRA:       p.EarnedHRA.StringFixed(2),
		LossOfPay:       p.LossOfPay.StringFixed(2),
		EarnedGross:     p.EarnedGross.StringFixed(2),
		PF:              p.PF.StringFixed(2),
		ESI:             p.ESI.StringFixed(2),
		ProfessionalTax: p.ProfessionalTax.StringFixed(2),
		IncomeTax:       p.IncomeTax.StringFixed(2),
		OtherDeductions: p.OtherDeductions.StringFixed(2),
		TotalDeductions: p.TotalDeductions.StringFixed(2),
		NetSalary:       p.NetSalary.StringFixed(2),
		LegacySalary:    p.LegacySalary,
		Status:          p.Status,
	}
	if p.Employee != nil {
		resp.EmployeeCode = p.Employee.EmployeeCode
		resp.EmployeeName = p.Employee.FullName()
	}
	if p.ApprovedBy != nil {
		v := p.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if p.ApprovedAt != nil {
		v := p.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	if p.LockedAt != nil {
		v := p.LockedAt.Format(time.RFC3339)
		resp.LockedAt = &v
	}
	return resp
}

func mapToListResponse(payrolls []Payroll) []PayrollResponse {
	resp := make([]PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		resp[i] = mapToResponse(p)
	}
	return resp
}
