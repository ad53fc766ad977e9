package designation_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-hrms/internal/designation"
	designationerrors "go-hrms/internal/designation/errors"
	designationMock "go-hrms/internal/designation/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	service   designation.Service
	repo      *designationMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	rdb, redisMock := redismock.NewClientMock()
	repo := designationMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		redisMock: redisMock,
		service:   designation.NewService(db, repo, rdb),
		repo:      repo,
	}
}

const zeroTime = "0001-01-01T00:00:00Z"

func TestDesignationService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redisMock.ExpectGet(designation.DesignationAllKey).SetVal(`[{"id":"1","name":"Engineer","level":2,"is_active":true}]`)

		resp, err := deps.service.GetAll(ctx, false)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Engineer", resp[0].Name)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		expected := []designation.DesignationResponse{{
			ID:        id.String(),
			Name:      "Engineer",
			Level:     2,
			IsActive:  true,
			CreatedAt: zeroTime,
			UpdatedAt: zeroTime,
		}}
		payload, _ := json.Marshal(expected)

		deps.redisMock.ExpectGet(designation.DesignationAllKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx, false).Return([]designation.Designation{{ID: id, Name: "Engineer", Level: 2, IsActive: true}}, nil)
		deps.redisMock.ExpectSet(designation.DesignationAllKey, payload, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx, false)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("include inactive bypasses cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindAll(ctx, true).Return([]designation.Designation{
			{ID: uuid.New(), Name: "A", IsActive: true},
			{ID: uuid.New(), Name: "B", IsActive: false},
		}, nil)

		resp, err := deps.service.GetAll(ctx, true)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}

func TestDesignationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deptID := uuid.New()
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, d *designation.Designation) error {
			assert.Equal(t, deptID, *d.DepartmentID)
			return nil
		})
		deps.redisMock.ExpectDel(designation.DesignationAllKey).SetVal(1)

		resp, err := deps.service.Create(ctx, designation.CreateDesignationRequest{Name: "Lead", Level: 3, DepartmentID: deptID.String()})

		assert.NoError(t, err)
		assert.Equal(t, deptID.String(), resp.DepartmentID)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}

func TestDesignationService_Deactivate(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked by active employees", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&designation.Designation{ID: id, IsActive: true}, nil)
		deps.repo.EXPECT().CountActiveEmployees(ctx, id.String()).Return(int64(1), nil)

		_, err := deps.service.Deactivate(ctx, id.String())

		assert.ErrorIs(t, err, designationerrors.ErrDesignationHasActiveEmployees)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&designation.Designation{ID: id, IsActive: true}, nil)
		deps.repo.EXPECT().CountActiveEmployees(ctx, id.String()).Return(int64(0), nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.redisMock.ExpectDel(designation.DesignationAllKey).SetVal(1)

		resp, err := deps.service.Deactivate(ctx, id.String())

		assert.NoError(t, err)
		assert.False(t, resp.IsActive)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}
