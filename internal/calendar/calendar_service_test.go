package calendar_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/calendar"
	calendarerrors "go-hrms/internal/calendar/errors"
	"go-hrms/internal/calendar/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestCalendarService_CreateEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := calendar.NewService(repo, zap.NewNop())

	participant := uuid.New().String()
	source := uuid.New().String()
	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, ev *calendar.CalendarEvent) error {
		assert.Equal(t, calendar.EventTypeLeave, ev.EventType)
		assert.Equal(t, source, ev.SourceID.String())
		assert.Nil(t, ev.CreatedBy)
		return nil
	})

	resp, err := svc.CreateEvent(context.Background(), calendar.CreateEventInput{
		EventType:     "leave",
		SourceID:      source,
		Title:         "Annual Leave",
		ParticipantID: participant,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 2),
	})
	assert.NoError(t, err)
	assert.Equal(t, "2026-04-08", resp.EndDate)

	_, err = svc.CreateEvent(context.Background(), calendar.CreateEventInput{ParticipantID: "nope"})
	assert.ErrorIs(t, err, calendarerrors.ErrInvalidParticipant)
}

func TestCalendarService_DeleteAndList(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := calendar.NewService(repo, zap.NewNop())
	ctx := context.Background()

	source := uuid.New().String()
	repo.EXPECT().DeleteBySource(ctx, calendar.EventTypeLeave, source).Return(int64(0), nil)
	assert.NoError(t, svc.DeleteEvent(ctx, "leave", source))

	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().FindInRange(ctx, from, to, "", "").Return([]calendar.CalendarEvent{
		{ID: uuid.New(), EventType: calendar.EventTypeLeave, ParticipantID: uuid.New(), StartDate: from, EndDate: from},
	}, nil)

	events, err := svc.List(ctx, calendar.ListEventsFilter{From: "2026-04-01", To: "2026-04-30"})
	assert.NoError(t, err)
	assert.Len(t, events, 1)

	_, err = svc.List(ctx, calendar.ListEventsFilter{From: "2026-04-30", To: "2026-04-01"})
	assert.ErrorIs(t, err, calendarerrors.ErrInvalidRange)
}
