package events

import "time"

const AppraisalTopic = "hr.appraisal.v1"

const AppraisalApproved = "appraisal_approved"

type AppraisalApprovedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	RecordID      string    `json:"record_id"`
	EmployeeID    string    `json:"employee_id"`
	OldCTC        string    `json:"old_ctc"`
	NewCTC        string    `json:"new_ctc"`
	DesignationID string    `json:"designation_id,omitempty"`
	ApprovedBy    string    `json:"approved_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}
