package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"go-hrms/internal/domain"
	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/counter"
	"go-hrms/internal/user"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	EmployeeOptionsKey = "employees:options"
	optionsTTL         = time.Hour
	dateLayout         = "2006-01-02"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, filter ListEmployeesFilter) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	users   user.Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	users user.Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		users:   users,
		counter: counterRepo,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

// Create onboards an employee together with its login identity and queues employee_created.
func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	joinDate, err := time.Parse(dateLayout, req.JoinDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoinDate
	}
	salary, err := parseAmount(req.Salary)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidSalary
	}
	tds, err := parseAmount(req.MonthlyTDS)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidMonthlyTDS
	}

	passwordHash, err := user.HashPassword(req.Password)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	seq, err := s.counter.WithTx(tx).GetNextValue(ctx, counter.TypeEmployeeCode)
	if err != nil {
		s.logger.Error("create employee generate code failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:             uuid.New(),
		EmployeeCode:   counter.FormatEmployeeCode(seq),
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:          req.Phone,
		DepartmentID:   uuidPtr(req.DepartmentID),
		DesignationID:  uuidPtr(req.DesignationID),
		LocationID:     uuidPtr(req.LocationID),
		ManagerID:      uuidPtr(req.ManagerID),
		EmploymentType: defaultString(req.EmploymentType, EmploymentFullTime),
		JoinDate:       joinDate,
		Salary:         salary,
		IsPFEligible:   boolOr(req.IsPFEligible, true),
		IsESIEligible:  boolOr(req.IsESIEligible, true),
		MonthlyTDS:     tds,
		Status:         StatusActive,
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	role := domain.NormalizeRole(req.Role)
	if role == "" {
		role = domain.RoleEmployee
	}
	if err := s.users.WithTx(tx).Create(ctx, &user.User{
		ID:           uuid.New(),
		EmployeeID:   empl.ID,
		Email:        empl.Email,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
	}); err != nil {
		s.logger.Error("create employee user persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	ev, err := kafka.NewOutboxEvent(ctx, "employee", empl.ID.String(), events.EmployeeCreated, events.EmployeeLifecycleTopic,
		events.EmployeeCreatedEvent{
			EventType:    events.EmployeeCreated,
			RequestID:    rid,
			EmployeeID:   empl.ID.String(),
			EmployeeCode: empl.EmployeeCode,
			Salary:       empl.Salary.StringFixed(2),
			JoinDate:     req.JoinDate,
			OccurredAt:   time.Now().UTC(),
		})
	if err != nil {
		return EmployeeResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, ev); err != nil {
		s.logger.Error("create employee outbox persist failed",
			zap.String("employee_id", empl.ID.String()),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_code", empl.EmployeeCode),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, filter ListEmployeesFilter) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res, nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		empls, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOptionResponse, len(empls))
		for i, e := range empls {
			resp[i] = EmployeeOptionResponse{
				ID:           e.ID.String(),
				EmployeeCode: e.EmployeeCode,
				FullName:     e.FullName(),
			}
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, data, optionsTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOptionResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	if req.ManagerID != "" && req.ManagerID == id {
		return EmployeeResponse{}, employeeerrors.ErrSelfManager
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.FirstName = strings.TrimSpace(req.FirstName)
	empl.LastName = strings.TrimSpace(req.LastName)
	empl.Email = strings.ToLower(strings.TrimSpace(req.Email))
	empl.Phone = req.Phone
	empl.DepartmentID = uuidPtr(req.DepartmentID)
	empl.DesignationID = uuidPtr(req.DesignationID)
	empl.LocationID = uuidPtr(req.LocationID)
	empl.ManagerID = uuidPtr(req.ManagerID)
	if req.EmploymentType != "" {
		empl.EmploymentType = req.EmploymentType
	}
	if req.Status != "" {
		empl.Status = req.Status
	}
	empl.IsPFEligible = boolOr(req.IsPFEligible, empl.IsPFEligible)
	empl.IsESIEligible = boolOr(req.IsESIEligible, empl.IsESIEligible)
	if req.MonthlyTDS != "" {
		tds, err := parseAmount(req.MonthlyTDS)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidMonthlyTDS
		}
		empl.MonthlyTDS = tds
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)
	return mapToResponse(*empl), nil
}

// Delete hard-deletes the employee and its user identity, leaving an employee_deleted event as the only trace.
func (s *service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrEmployeeNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	var userID string
	utx := s.users.WithTx(tx)
	if u, err := utx.FindByEmployeeID(ctx, id); err == nil {
		userID = u.ID.String()
	}
	if err := utx.DeleteByEmployeeID(ctx, id); err != nil {
		s.logger.Error("delete employee user failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	ev, err := kafka.NewOutboxEvent(ctx, "employee", id, events.EmployeeDeleted, events.EmployeeLifecycleTopic,
		events.EmployeeDeletedEvent{
			EventType:    events.EmployeeDeleted,
			RequestID:    contextutil.GetRequestID(ctx),
			EmployeeID:   id,
			EmployeeCode: empl.EmployeeCode,
			UserID:       userID,
			DeletedBy:    actor.UserID,
			OccurredAt:   time.Now().UTC(),
		})
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, ev); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("delete employee success",
		zap.String("employee_id", id),
		zap.String("deleted_by", actor.UserID),
	)
	return nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

func parseAmount(v string) (decimal.Decimal, error) {
	if strings.TrimSpace(v) == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, employeeerrors.ErrInvalidSalary
	}
	return d, nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             empl.ID.String(),
		EmployeeCode:   empl.EmployeeCode,
		FirstName:      empl.FirstName,
		LastName:       empl.LastName,
		FullName:       empl.FullName(),
		Email:          empl.Email,
		Phone:          empl.Phone,
		DepartmentID:   uuidToString(empl.DepartmentID),
		DesignationID:  uuidToString(empl.DesignationID),
		LocationID:     uuidToString(empl.LocationID),
		ManagerID:      uuidToString(empl.ManagerID),
		EmploymentType: empl.EmploymentType,
		Salary:         empl.Salary.StringFixed(2),
		IsPFEligible:   empl.IsPFEligible,
		IsESIEligible:  empl.IsESIEligible,
		MonthlyTDS:     empl.MonthlyTDS.StringFixed(2),
		Status:         empl.Status,
	}
	if !empl.JoinDate.IsZero() {
		resp.JoinDate = empl.JoinDate.Format(dateLayout)
	}
	if empl.Department != nil {
		resp.DepartmentName = empl.Department.Name
	}
	if empl.Designation != nil {
		resp.DesignationName = empl.Designation.Name
	}
	return resp
}

func uuidPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
