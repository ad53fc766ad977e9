package department_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-hrms/internal/department"
	departmenterrors "go-hrms/internal/department/errors"
	departmentMock "go-hrms/internal/department/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service department.Service
	repo    *departmentMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	repo := departmentMock.NewMockRepository(ctrl)

	svc := department.NewService(db, repo)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
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

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, d *department.Department) error {
			assert.Equal(t, "Engineering", d.Name)
			assert.Equal(t, "ENG", d.Code)
			assert.True(t, d.IsActive)
			return nil
		})

		resp, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: " Engineering ", Code: "eng"})

		assert.NoError(t, err)
		assert.Equal(t, "Engineering", resp.Name)
		assert.True(t, resp.IsActive)
	})

	t.Run("duplicate name", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_departments_name"})

		_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNameExists)
	})
}

func TestDepartmentService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New().String()
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id)

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})

	t.Run("invalid id never reaches repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}

func TestDepartmentService_Deactivate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&department.Department{ID: id, Name: "Ops", IsActive: true}, nil)
		deps.repo.EXPECT().CountActiveEmployees(ctx, id.String()).Return(int64(0), nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, d *department.Department) error {
			assert.False(t, d.IsActive)
			return nil
		})

		resp, err := deps.service.Deactivate(ctx, id.String())

		assert.NoError(t, err)
		assert.False(t, resp.IsActive)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("blocked by active employees", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&department.Department{ID: id, IsActive: true}, nil)
		deps.repo.EXPECT().CountActiveEmployees(ctx, id.String()).Return(int64(3), nil)

		_, err := deps.service.Deactivate(ctx, id.String())

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentHasActiveEmployees)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("already inactive", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&department.Department{ID: id, IsActive: false}, nil)

		_, err := deps.service.Deactivate(ctx, id.String())

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentAlreadyInactive)
	})

	t.Run("count failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&department.Department{ID: id, IsActive: true}, nil)
		deps.repo.EXPECT().CountActiveEmployees(ctx, id.String()).Return(int64(0), errors.New("db down"))

		_, err := deps.service.Deactivate(ctx, id.String())

		assert.EqualError(t, err, "db down")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
