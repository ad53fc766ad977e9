package attendance

type ManualEntryRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Date       string  `json:"date" binding:"required"`
	CheckIn    *string `json:"check_in" binding:"omitempty"`
	CheckOut   *string `json:"check_out" binding:"omitempty"`
	Status     string  `json:"status" binding:"omitempty,oneof=present half_day absent holiday leave"`
	Notes      *string `json:"notes"`
}

type BulkMarkRequest struct {
	EmployeeIDs []string `json:"employee_ids" binding:"required,min=1,dive,uuid"`
	Date        string   `json:"date" binding:"required"`
	Status      string   `json:"status" binding:"required,oneof=present half_day absent holiday leave"`
}

type BulkMarkError struct {
	EmployeeID string `json:"employee_id"`
	Message    string `json:"message"`
}

type BulkMarkResponse struct {
	Updated []string        `json:"updated"`
	Errors  []BulkMarkError `json:"errors"`
}

type ToggleLockRequest struct {
	Date   string `json:"date" binding:"required"`
	Locked *bool  `json:"locked" binding:"required"`
}

type ToggleLockResponse struct {
	Date     string `json:"date"`
	Locked   bool   `json:"locked"`
	Affected int64  `json:"affected"`
}

type QueryFilter struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	From       string `form:"from"`
	To         string `form:"to"`
	Status     string `form:"status" binding:"omitempty,oneof=present half_day absent holiday leave"`
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeCode   string  `json:"employee_code,omitempty"`
	EmployeeName   string  `json:"employee_name,omitempty"`
	AttendanceDate string  `json:"attendance_date"`
	CheckIn        *string `json:"check_in,omitempty"`
	CheckOut       *string `json:"check_out,omitempty"`
	WorkedHours    float64 `json:"worked_hours"`
	Status         string  `json:"status"`
	IsLocked       bool    `json:"is_locked"`
	Notes          *string `json:"notes,omitempty"`
}

type SummaryResponse struct {
	Present          int     `json:"present"`
	HalfDay          int     `json:"half_day"`
	Absent           int     `json:"absent"`
	Holiday          int     `json:"holiday"`
	Leave            int     `json:"leave"`
	TotalWorkedHours float64 `json:"total_worked_hours"`
}

type QueryResponse struct {
	Records []AttendanceResponse `json:"records"`
	Summary SummaryResponse      `json:"summary"`
}

type ExportResponse struct {
	Path string `json:"path"`
	Rows int    `json:"rows"`
}
