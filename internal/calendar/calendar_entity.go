package calendar

import (
	"time"

	"github.com/google/uuid"
)

const EventTypeLeave = "LEAVE"

type CalendarEvent struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EventType     string     `gorm:"column:event_type;type:varchar(20);not null;index:idx_calendar_events_source,priority:1"`
	SourceID      *uuid.UUID `gorm:"column:source_id;type:uuid;index:idx_calendar_events_source,priority:2"`
	Title         string     `gorm:"column:title;type:varchar(200);not null"`
	ParticipantID uuid.UUID  `gorm:"column:participant_id;type:uuid;not null;index"`
	StartDate     time.Time  `gorm:"column:start_date;type:date;not null;index"`
	EndDate       time.Time  `gorm:"column:end_date;type:date;not null"`
	CreatedBy     *uuid.UUID `gorm:"column:created_by;type:uuid"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
}

func (CalendarEvent) TableName() string {
	return "calendar_events"
}
