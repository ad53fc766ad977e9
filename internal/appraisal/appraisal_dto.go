package appraisal

type CreateCycleRequest struct {
	Name                string `json:"name" binding:"required,max=150"`
	LinkedReviewCycleID string `json:"linked_review_cycle_id" binding:"required,uuid"`
	EffectiveFrom       string `json:"effective_from" binding:"required"`
}

type UpdateCycleStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active closed"`
}

type CycleResponse struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	LinkedReviewCycleID string `json:"linked_review_cycle_id"`
	EffectiveFrom       string `json:"effective_from"`
	Status              string `json:"status"`
}

type ProposeIncrementRequest struct {
	EmployeeID            string `json:"employee_id" binding:"required,uuid"`
	AppraisalCycleID      string `json:"appraisal_cycle_id" binding:"required,uuid"`
	IncrementType         string `json:"increment_type" binding:"required,oneof=percentage fixed"`
	IncrementValue        string `json:"increment_value" binding:"required"`
	ProposedDesignationID string `json:"proposed_designation_id" binding:"omitempty,uuid"`
	Remarks               string `json:"remarks" binding:"max=2000"`
}

type RejectAppraisalRequest struct {
	Reason string `json:"reason" binding:"required,max=2000"`
}

type ListRecordsFilter struct {
	AppraisalCycleID string `form:"appraisal_cycle_id" binding:"omitempty,uuid"`
	EmployeeID       string `form:"employee_id" binding:"omitempty,uuid"`
	Status           string `form:"status" binding:"omitempty,oneof=proposed approved rejected"`
}

type RecordResponse struct {
	ID                    string  `json:"id"`
	EmployeeID            string  `json:"employee_id"`
	EmployeeCode          string  `json:"employee_code,omitempty"`
	EmployeeName          string  `json:"employee_name,omitempty"`
	AppraisalCycleID      string  `json:"appraisal_cycle_id"`
	PerformanceReviewID   string  `json:"performance_review_id"`
	FinalRating           string  `json:"final_rating"`
	IncrementType         string  `json:"increment_type"`
	IncrementValue        string  `json:"increment_value"`
	OldCTC                string  `json:"old_ctc"`
	NewCTC                string  `json:"new_ctc"`
	ProposedDesignationID *string `json:"proposed_designation_id,omitempty"`
	Remarks               string  `json:"remarks,omitempty"`
	Status                string  `json:"status"`
	ApprovedBy            *string `json:"approved_by,omitempty"`
	ApprovedAt            *string `json:"approved_at,omitempty"`
	RejectionReason       *string `json:"rejection_reason,omitempty"`
}
