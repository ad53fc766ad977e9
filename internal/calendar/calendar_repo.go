package calendar

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=calendar_repo.go -destination=mock/calendar_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, ev *CalendarEvent) error
	DeleteBySource(ctx context.Context, eventType, sourceID string) (int64, error)
	FindInRange(ctx context.Context, from, to time.Time, eventType, participantID string) ([]CalendarEvent, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, ev *CalendarEvent) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

func (r *repository) DeleteBySource(ctx context.Context, eventType, sourceID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("event_type = ?", eventType).
		Where("source_id = ?", sourceID).
		Delete(&CalendarEvent{})
	return res.RowsAffected, res.Error
}

func (r *repository) FindInRange(ctx context.Context, from, to time.Time, eventType, participantID string) ([]CalendarEvent, error) {
	var events []CalendarEvent
	q := r.db.WithContext(ctx).
		Where("start_date <= ?", to.Format("2006-01-02")).
		Where("end_date >= ?", from.Format("2006-01-02"))
	if eventType != "" {
		q = q.Where("event_type = ?", eventType)
	}
	if participantID != "" {
		q = q.Where("participant_id = ?", participantID)
	}
	err := q.Order("start_date ASC").Find(&events).Error
	return events, err
}
