package payroll

const (
	ScopeAll        = "all"
	ScopeDepartment = "department"
	ScopeEmployee   = "employee"
)

type GenerateRequest struct {
	Month        int    `json:"month" binding:"required,min=1,max=12"`
	Year         int    `json:"year" binding:"required,gte=2000,lte=2100"`
	Scope        string `json:"scope" binding:"omitempty,oneof=all department employee"`
	DepartmentID string `json:"department_id" binding:"omitempty,uuid"`
	EmployeeID   string `json:"employee_id" binding:"omitempty,uuid"`
}

type GenerateError struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	Message      string `json:"message"`
}

type GenerateResponse struct {
	Generated []PayrollResponse `json:"generated"`
	Errors    []GenerateError   `json:"errors"`
}

type ListPayrollsFilter struct {
	Month      int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year       int    `form:"year" binding:"omitempty,gte=2000,lte=2100"`
	Status     string `form:"status" binding:"omitempty,oneof=generated approved locked"`
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
}

type ExportRegisterRequest struct {
	Month int `form:"month" binding:"required,min=1,max=12"`
	Year  int `form:"year" binding:"required,gte=2000,lte=2100"`
}

type ExportResponse struct {
	Path string `json:"path"`
	Rows int    `json:"rows"`
}

type PayrollResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`
	PeriodMonth  int    `json:"period_month"`
	PeriodYear   int    `json:"period_year"`

	TotalDays       int    `json:"total_days"`
	WorkingDays     int    `json:"working_days"`
	PresentDays     int    `json:"present_days"`
	HalfDays        int    `json:"half_days"`
	AbsentDays      int    `json:"absent_days"`
	PaidLeaveDays   string `json:"paid_leave_days"`
	UnpaidLeaveDays string `json:"unpaid_leave_days"`
	PayableDays     string `json:"payable_days"`

	BasicSalary string `json:"basic_salary"`
	HRA         string `json:"hra"`
	Allowances  string `json:"allowances"`
	FullGross   string `json:"full_gross"`
	EarnedBasic string `json:"earned_basic"`
	EarnedHRA   string `json:"earned_hra"`
	LossOfPay   string `json:"loss_of_pay"`
	EarnedGross string `json:"earned_gross"`

	PF              string `json:"pf"`
	ESI             string `json:"esi"`
	ProfessionalTax string `json:"professional_tax"`
	IncomeTax       string `json:"income_tax"`
	OtherDeductions string `json:"other_deductions"`
	TotalDeductions string `json:"total_deductions"`
	NetSalary       string `json:"net_salary"`

	LegacySalary bool    `json:"legacy_salary"`
	Status       string  `json:"status"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
	ApprovedAt   *string `json:"approved_at,omitempty"`
	LockedAt     *string `json:"locked_at,omitempty"`
}
