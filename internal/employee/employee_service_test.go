package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/employee"
	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/counter"
	"go-hrms/internal/user"

	employeeMock "go-hrms/internal/employee/mock"
	kafkaMock "go-hrms/internal/messaging/kafka/mock"
	counterMock "go-hrms/internal/shared/counter/mock"
	userMock "go-hrms/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	users     *userMock.MockRepository
	counter   *counterMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	rdb, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	users := userMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := employee.NewService(db, repo, users, counterRepo, outboxRepo, rdb)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		users:     users,
		counter:   counterRepo,
		outbox:    outboxRepo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "Asha.Rao@example.com",
		Password:  "s3cret-pass",
		JoinDate:  "2026-01-05",
		Salary:    "50000",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	t.Run("success - onboards user and queues event", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		rid := "REQ-123-ABC"
		ctx := contextutil.WithRequestID(context.Background(), rid)
		req := validCreateRequest()

		expectTx(t, deps.sqlMock, true)

		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, counter.TypeEmployeeCode).Return(int64(123), nil)

		var created *employee.Employee
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "EMP-000123", e.EmployeeCode)
				assert.Equal(t, "asha.rao@example.com", e.Email)
				assert.True(t, decimal.NewFromInt(50000).Equal(e.Salary))
				assert.Equal(t, employee.StatusActive, e.Status)
				assert.True(t, e.IsPFEligible)
				created = e
				return nil
			})

		deps.users.EXPECT().WithTx(gomock.Any()).Return(deps.users)
		deps.users.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *user.User) error {
				assert.Equal(t, created.ID, u.EmployeeID)
				assert.Equal(t, domain.RoleEmployee, u.Role)
				assert.NotEqual(t, req.Password, u.PasswordHash)
				assert.True(t, user.CheckPassword(u.PasswordHash, req.Password))
				return nil
			})

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, MatchOutboxWithRID(rid)).
			Return(nil).
			Times(1)

		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "EMP-000123", resp.EmployeeCode)
		assert.Equal(t, "50000.00", resp.Salary)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("invalid join date never opens a transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()
		req.JoinDate = "05/01/2026"

		_, err := deps.service.Create(context.Background(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidJoinDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative salary is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()
		req.Salary = "-1"

		_, err := deps.service.Create(context.Background(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidSalary)
	})

	t.Run("duplicate email -> duplicate error and rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		ctx := context.Background()
		expectTx(t, deps.sqlMock, false)

		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, counter.TypeEmployeeCode).Return(int64(7), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_email"})

		_, err := deps.service.Create(ctx, validCreateRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("user insert failure rolls back employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		ctx := context.Background()
		expectTx(t, deps.sqlMock, false)

		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, counter.TypeEmployeeCode).Return(int64(8), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.users.EXPECT().WithTx(gomock.Any()).Return(deps.users)
		deps.users.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"})

		_, err := deps.service.Create(ctx, validCreateRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrUserEmailAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached, _ := json.Marshal([]employee.EmployeeOptionResponse{
			{ID: uuid.New().String(), EmployeeCode: "EMP-000001", FullName: "Caca"},
		})
		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).SetVal(string(cached))

		resp, err := deps.service.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Caca", resp[0].FullName)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache miss loads from repository and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		expected := []employee.EmployeeOptionResponse{{ID: id.String(), EmployeeCode: "EMP-000002", FullName: "Deni Putra"}}
		payload, _ := json.Marshal(expected)

		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()
		deps.repo.EXPECT().
			FindOptions(gomock.Any()).
			Return([]employee.Employee{{ID: id, EmployeeCode: "EMP-000002", FirstName: "Deni", LastName: "Putra"}}, nil)
		deps.redismock.ExpectSet(employee.EmployeeOptionsKey, payload, time.Hour).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("database error is returned", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()
		deps.repo.EXPECT().FindOptions(gomock.Any()).Return(nil, errors.New("database connection lost"))

		resp, err := deps.service.GetOptions(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Contains(t, err.Error(), "database connection lost")
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&employee.Employee{
			ID:          id,
			FirstName:   "Rina",
			Department:  &employee.EmployeeDepartment{Name: "Finance"},
			Designation: &employee.EmployeeDesignation{Name: "Analyst"},
		}, nil)

		resp, err := deps.service.GetByID(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, id.String(), resp.ID)
		assert.Equal(t, "Finance", resp.DepartmentName)
		assert.Equal(t, "Analyst", resp.DesignationName)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New().String()
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("self manager rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New().String()
		_, err := deps.service.Update(ctx, id, employee.UpdateEmployeeRequest{FirstName: "A", Email: "a@example.com", ManagerID: id})

		assert.ErrorIs(t, err, employeeerrors.ErrSelfManager)
	})

	t.Run("keeps salary untouched", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		managerID := uuid.New()
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&employee.Employee{
			ID:     id,
			Salary: decimal.NewFromInt(42000),
			Status: employee.StatusActive,
		}, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
			assert.True(t, decimal.NewFromInt(42000).Equal(e.Salary))
			assert.Equal(t, managerID, *e.ManagerID)
			assert.Equal(t, employee.StatusOnLeave, e.Status)
			return nil
		})
		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		resp, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{
			FirstName: "Bima",
			Email:     "bima@example.com",
			ManagerID: managerID.String(),
			Status:    employee.StatusOnLeave,
		})

		assert.NoError(t, err)
		assert.Equal(t, "42000.00", resp.Salary)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	actor := domain.Actor{UserID: uuid.New().String(), Role: domain.RoleAdmin}

	t.Run("success removes employee and user", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		userID := uuid.New()
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&employee.Employee{ID: id, EmployeeCode: "EMP-000010"}, nil)
		deps.users.EXPECT().WithTx(gomock.Any()).Return(deps.users)
		deps.users.EXPECT().FindByEmployeeID(ctx, id.String()).Return(&user.User{ID: userID}, nil)
		deps.users.EXPECT().DeleteByEmployeeID(ctx, id.String()).Return(nil)
		deps.repo.EXPECT().Delete(ctx, id.String()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, ev kafka.OutboxEvent) error {
			assert.Equal(t, events.EmployeeDeleted, ev.EventType)
			var payload events.EmployeeDeletedEvent
			assert.NoError(t, json.Unmarshal(ev.Payload, &payload))
			assert.Equal(t, userID.String(), payload.UserID)
			assert.Equal(t, actor.UserID, payload.DeletedBy)
			return nil
		})
		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		err := deps.service.Delete(ctx, actor, id.String())

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("referenced by history rolls back with invalid state", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "fk_attendance_employee"}
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&employee.Employee{ID: id, EmployeeCode: "EMP-000011"}, nil)
		deps.users.EXPECT().WithTx(gomock.Any()).Return(deps.users)
		deps.users.EXPECT().FindByEmployeeID(ctx, id.String()).Return(nil, gorm.ErrRecordNotFound)
		deps.users.EXPECT().DeleteByEmployeeID(ctx, id.String()).Return(nil)
		deps.repo.EXPECT().Delete(ctx, id.String()).Return(fkErr)

		err := deps.service.Delete(ctx, actor, id.String())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeHasHistory)
		out := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusBadRequest, out.Status)
		assert.Equal(t, apperror.CodeInvalidState, out.Code)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New().String()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, actor, id)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

type outboxRequestIDMatcher struct {
	expectedRID string
}

func (m outboxRequestIDMatcher) Matches(x any) bool {
	event, ok := x.(kafka.OutboxEvent)
	if !ok {
		return false
	}

	if event.RequestID != m.expectedRID || event.EventType != events.EmployeeCreated {
		return false
	}

	var payload events.EmployeeCreatedEvent
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return false
	}

	return payload.RequestID == m.expectedRID && payload.Salary == "50000.00"
}

func (m outboxRequestIDMatcher) String() string {
	return "matches outbox event with request_id " + m.expectedRID
}

func MatchOutboxWithRID(rid string) gomock.Matcher {
	return outboxRequestIDMatcher{expectedRID: rid}
}
