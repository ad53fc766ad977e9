package calendar

import "time"

// CreateEventInput is filled by other modules, not bound from HTTP.
type CreateEventInput struct {
	EventType     string
	SourceID      string
	Title         string
	ParticipantID string
	StartDate     time.Time
	EndDate       time.Time
	CreatedBy     string
}

type ListEventsFilter struct {
	From          string `form:"from" binding:"required"`
	To            string `form:"to" binding:"required"`
	EventType     string `form:"event_type"`
	ParticipantID string `form:"participant_id" binding:"omitempty,uuid"`
}

type EventResponse struct {
	ID            string  `json:"id"`
	EventType     string  `json:"event_type"`
	SourceID      *string `json:"source_id,omitempty"`
	Title         string  `json:"title"`
	ParticipantID string  `json:"participant_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
}
