package events

import "time"

const PayrollTopic = "hr.payroll.v1"

const PayrollApproved = "payroll_approved"

type PayrollApprovedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	PayrollID   string    `json:"payroll_id"`
	EmployeeID  string    `json:"employee_id"`
	PeriodMonth int       `json:"period_month"`
	PeriodYear  int       `json:"period_year"`
	NetSalary   string    `json:"net_salary"`
	ApprovedBy  string    `json:"approved_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
