package salarystructure_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/salarystructure"
	salarystructureerrors "go-hrms/internal/salarystructure/errors"
	salarystructureMock "go-hrms/internal/salarystructure/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestDeriveFromCTC(t *testing.T) {
	basic, hra := salarystructure.DeriveFromCTC(decimal.NewFromInt(55000))

	assert.Equal(t, "22000.00", basic.StringFixed(2))
	assert.Equal(t, "8800.00", hra.StringFixed(2))
}

func TestSalaryStructure_FullGross(t *testing.T) {
	s := salarystructure.SalaryStructure{
		BasicSalary: decimal.NewFromInt(12000),
		HRA:         decimal.NewFromInt(4800),
		Allowances: salarystructure.Components{
			{Name: "Conveyance", Amount: decimal.NewFromInt(1600)},
			{Name: "Special", Amount: decimal.RequireFromString("11600.50")},
		},
	}

	assert.Equal(t, "30000.50", s.FullGross().StringFixed(2))
}

func TestComponents_ScanNull(t *testing.T) {
	var c salarystructure.Components
	assert.NoError(t, c.Scan(nil))
	assert.Empty(t, c)

	assert.NoError(t, c.Scan([]byte(`[{"name":"PF Voluntary","amount":"500"}]`)))
	assert.Equal(t, "500", c.Total().String())
}

func TestSalaryStructureService_Create(t *testing.T) {
	ctx := context.Background()
	actor := domain.Actor{UserID: uuid.New().String(), Role: domain.RoleHR}

	t.Run("deactivates old structure before inserting new", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()
		repo := salarystructureMock.NewMockRepository(ctrl)
		svc := salarystructure.NewService(db, repo)

		employeeID := uuid.New()
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		gomock.InOrder(
			repo.EXPECT().DeactivateActive(ctx, employeeID.String()).Return(int64(1), nil),
			repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, s *salarystructure.SalaryStructure) error {
				assert.True(t, s.IsActive)
				assert.Equal(t, "20000", s.BasicSalary.String())
				assert.Len(t, s.Allowances, 1)
				return nil
			}),
		)

		resp, err := svc.Create(ctx, actor, salarystructure.CreateSalaryStructureRequest{
			EmployeeID:    employeeID.String(),
			BasicSalary:   "20000",
			HRA:           "8000",
			Allowances:    []salarystructure.ComponentRequest{{Name: "Special", Amount: "2000"}},
			EffectiveFrom: "2026-04-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, "30000.00", resp.FullGross)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("negative amount is rejected before the transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()
		svc := salarystructure.NewService(db, salarystructureMock.NewMockRepository(ctrl))

		_, err := svc.Create(ctx, actor, salarystructure.CreateSalaryStructureRequest{
			EmployeeID:    uuid.New().String(),
			BasicSalary:   "-5",
			EffectiveFrom: "2026-04-01",
		})

		assert.ErrorIs(t, err, salarystructureerrors.ErrInvalidAmount)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back the deactivation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()
		repo := salarystructureMock.NewMockRepository(ctrl)
		svc := salarystructure.NewService(db, repo)

		employeeID := uuid.New().String()
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().DeactivateActive(ctx, employeeID).Return(int64(1), nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("insert failed"))

		_, err := svc.Create(ctx, actor, salarystructure.CreateSalaryStructureRequest{
			EmployeeID:    employeeID,
			BasicSalary:   "1000",
			EffectiveFrom: "2026-04-01",
		})

		assert.EqualError(t, err, "insert failed")
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestSalaryStructureService_EnsureDefault(t *testing.T) {
	ctx := context.Background()
	effective := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	t.Run("skips when an active structure exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := salarystructureMock.NewMockRepository(ctrl)
		svc := salarystructure.NewService(nil, repo)

		id := uuid.New().String()
		repo.EXPECT().FindActive(ctx, id).Return(&salarystructure.SalaryStructure{}, nil)

		created, err := svc.EnsureDefault(ctx, id, decimal.NewFromInt(50000), effective)

		assert.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("creates split structure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := salarystructureMock.NewMockRepository(ctrl)
		svc := salarystructure.NewService(nil, repo)

		id := uuid.New()
		repo.EXPECT().FindActive(ctx, id.String()).Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, s *salarystructure.SalaryStructure) error {
			assert.Equal(t, id, s.EmployeeID)
			assert.Equal(t, "20000.00", s.BasicSalary.StringFixed(2))
			assert.Equal(t, "8000.00", s.HRA.StringFixed(2))
			assert.Equal(t, effective, s.EffectiveFrom)
			return nil
		})

		created, err := svc.EnsureDefault(ctx, id.String(), decimal.NewFromInt(50000), effective)

		assert.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("concurrent insert is treated as already present", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := salarystructureMock.NewMockRepository(ctrl)
		svc := salarystructure.NewService(nil, repo)

		id := uuid.New().String()
		repo.EXPECT().FindActive(ctx, id).Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_salary_structure_active"})

		created, err := svc.EnsureDefault(ctx, id, decimal.NewFromInt(50000), effective)

		assert.NoError(t, err)
		assert.False(t, created)
	})
}
