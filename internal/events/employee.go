package events

import "time"

const EmployeeLifecycleTopic = "hr.employee.lifecycle.v1"

const (
	EmployeeCreated = "employee_created"
	EmployeeDeleted = "employee_deleted"
)

type EmployeeCreatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeCode string    `json:"employee_code"`
	Salary       string    `json:"salary"`
	JoinDate     string    `json:"join_date"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type EmployeeDeletedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeCode string    `json:"employee_code"`
	UserID       string    `json:"user_id,omitempty"`
	DeletedBy    string    `json:"deleted_by"`
	OccurredAt   time.Time `json:"occurred_at"`
}
