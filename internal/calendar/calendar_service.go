package calendar

import (
	"context"
	"strings"
	"time"

	calendarerrors "go-hrms/internal/calendar/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=calendar_service.go -destination=mock/calendar_service_mock.go -package=mock
type Service interface {
	CreateEvent(ctx context.Context, in CreateEventInput) (EventResponse, error)
	DeleteEvent(ctx context.Context, eventType, sourceID string) error
	List(ctx context.Context, filter ListEventsFilter) ([]EventResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("calendar.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) CreateEvent(ctx context.Context, in CreateEventInput) (EventResponse, error) {
	participant, err := uuid.Parse(in.ParticipantID)
	if err != nil {
		return EventResponse{}, calendarerrors.ErrInvalidParticipant
	}
	if in.EndDate.Before(in.StartDate) {
		return EventResponse{}, calendarerrors.ErrInvalidRange
	}

	ev := &CalendarEvent{
		ID:            uuid.New(),
		EventType:     strings.ToUpper(in.EventType),
		SourceID:      optionalUUID(in.SourceID),
		Title:         in.Title,
		ParticipantID: participant,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		CreatedBy:     optionalUUID(in.CreatedBy),
	}
	if err := s.repo.Create(ctx, ev); err != nil {
		return EventResponse{}, err
	}

	return mapToResponse(*ev), nil
}

// DeleteEvent removes every event created for sourceID. Deleting nothing is not an error.
func (s *service) DeleteEvent(ctx context.Context, eventType, sourceID string) error {
	n, err := s.repo.DeleteBySource(ctx, strings.ToUpper(eventType), sourceID)
	if err != nil {
		return err
	}
	s.logger.Debug("calendar events deleted",
		zap.String("event_type", eventType),
		zap.String("source_id", sourceID),
		zap.Int64("deleted", n),
	)
	return nil
}

func (s *service) List(ctx context.Context, filter ListEventsFilter) ([]EventResponse, error) {
	from, err := time.Parse("2006-01-02", filter.From)
	if err != nil {
		return nil, calendarerrors.ErrInvalidRange
	}
	to, err := time.Parse("2006-01-02", filter.To)
	if err != nil || to.Before(from) {
		return nil, calendarerrors.ErrInvalidRange
	}

	events, err := s.repo.FindInRange(ctx, from, to, strings.ToUpper(filter.EventType), filter.ParticipantID)
	if err != nil {
		return nil, err
	}

	res := make([]EventResponse, len(events))
	for i, ev := range events {
		res[i] = mapToResponse(ev)
	}
	return res, nil
}

func optionalUUID(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func mapToResponse(ev CalendarEvent) EventResponse {
	resp := EventResponse{
		ID:            ev.ID.String(),
		EventType:     ev.EventType,
		Title:         ev.Title,
		ParticipantID: ev.ParticipantID.String(),
		StartDate:     ev.StartDate.Format("2006-01-02"),
		EndDate:       ev.EndDate.Format("2006-01-02"),
	}
	if ev.SourceID != nil {
		v := ev.SourceID.String()
		resp.SourceID = &v
	}
	return resp
}
