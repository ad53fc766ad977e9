package location_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/location"
	locationerrors "go-hrms/internal/location/errors"
	locationMock "go-hrms/internal/location/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestResolveTimezone(t *testing.T) {
	assert.Equal(t, time.UTC, location.ResolveTimezone(""))
	assert.Equal(t, time.UTC, location.ResolveTimezone("Mars/Olympus"))
	assert.Equal(t, "Asia/Kolkata", location.ResolveTimezone("Asia/Kolkata").String())
}

func TestLocationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults timezone to UTC", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db, _, _ := sqlmock.New()
		defer db.Close()
		repo := locationMock.NewMockRepository(ctrl)
		svc := location.NewService(db, repo)

		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, l *location.Location) error {
			assert.Equal(t, "UTC", l.Timezone)
			return nil
		})

		resp, err := svc.Create(ctx, location.CreateLocationRequest{Name: "HQ"})

		assert.NoError(t, err)
		assert.Equal(t, "UTC", resp.Timezone)
	})

	t.Run("rejects unknown timezone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db, _, _ := sqlmock.New()
		defer db.Close()
		svc := location.NewService(db, locationMock.NewMockRepository(ctrl))

		_, err := svc.Create(ctx, location.CreateLocationRequest{Name: "HQ", Timezone: "Not/AZone"})

		assert.ErrorIs(t, err, locationerrors.ErrInvalidTimezone)
	})
}

func TestLocationService_Deactivate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	db, sqlMock, _ := sqlmock.New()
	defer db.Close()
	repo := locationMock.NewMockRepository(ctrl)
	svc := location.NewService(db, repo)

	id := uuid.New()
	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().FindByID(ctx, id.String()).Return(&location.Location{ID: id, IsActive: true}, nil)
	repo.EXPECT().CountActiveEmployees(ctx, id.String()).Return(int64(2), nil)

	_, err := svc.Deactivate(ctx, id.String())

	assert.ErrorIs(t, err, locationerrors.ErrLocationHasActiveEmployees)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
