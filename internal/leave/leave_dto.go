package leave

type CreateLeaveTypeRequest struct {
	Name              string `json:"name" binding:"required,max=100"`
	Code              string `json:"code" binding:"required,max=20"`
	IsPaid            *bool  `json:"is_paid"`
	HasQuota          *bool  `json:"has_quota"`
	AffectsAttendance *bool  `json:"affects_attendance"`
}

type UpsertPolicyRequest struct {
	LeaveTypeID string  `json:"leave_type_id" binding:"required,uuid"`
	AnnualQuota float64 `json:"annual_quota" binding:"gte=0"`
}

type ApplyLeaveRequest struct {
	EmployeeID  string `json:"employee_id" binding:"omitempty,uuid"`
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	IsHalfDay   bool   `json:"is_half_day"`
	Reason      string `json:"reason" binding:"max=1000"`
}

type RejectLeaveRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type ListLeavesFilter struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=pending approved rejected cancelled"`
	Year       int    `form:"year" binding:"omitempty,gte=2000,lte=2100"`
}

type LeaveTypeResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Code              string `json:"code"`
	IsPaid            bool   `json:"is_paid"`
	HasQuota          bool   `json:"has_quota"`
	AffectsAttendance bool   `json:"affects_attendance"`
	IsActive          bool   `json:"is_active"`
}

type LeavePolicyResponse struct {
	ID            string  `json:"id"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName string  `json:"leave_type_name,omitempty"`
	AnnualQuota   float64 `json:"annual_quota"`
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name,omitempty"`
	LeaveTypeID     string  `json:"leave_type_id"`
	LeaveTypeName   string  `json:"leave_type_name,omitempty"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	IsHalfDay       bool    `json:"is_half_day"`
	TotalDays       float64 `json:"total_days"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	AppliedBy       string  `json:"applied_by"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CancelledAt     *string `json:"cancelled_at,omitempty"`
}

type BalanceResponse struct {
	LeaveTypeID   string   `json:"leave_type_id"`
	LeaveTypeName string   `json:"leave_type_name"`
	Limited       bool     `json:"limited"`
	Quota         *float64 `json:"quota,omitempty"`
	Used          float64  `json:"used"`
	Pending       float64  `json:"pending"`
	Available     *float64 `json:"available,omitempty"`
}
