package events

import "time"

const LeaveTopic = "hr.leave.v1"

const (
	LeaveApproved  = "leave_approved"
	LeaveCancelled = "leave_cancelled"
)

type LeaveEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	ApplicationID string    `json:"application_id"`
	EmployeeID    string    `json:"employee_id"`
	LeaveTypeID   string    `json:"leave_type_id"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	TotalDays     float64   `json:"total_days"`
	ActorID       string    `json:"actor_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}
