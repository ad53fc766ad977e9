package employee

type CreateEmployeeRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	Password       string `json:"password" binding:"required,min=8"`
	Role           string `json:"role" binding:"omitempty,oneof=ADMIN HR MANAGER EMPLOYEE admin hr manager employee"`
	DepartmentID   string `json:"department_id" binding:"omitempty,uuid"`
	DesignationID  string `json:"designation_id" binding:"omitempty,uuid"`
	LocationID     string `json:"location_id" binding:"omitempty,uuid"`
	ManagerID      string `json:"manager_id" binding:"omitempty,uuid"`
	EmploymentType string `json:"employment_type" binding:"omitempty,oneof=full_time part_time contract intern"`
	JoinDate       string `json:"join_date" binding:"required"`
	Salary         string `json:"salary" binding:"required"`
	IsPFEligible   *bool  `json:"is_pf_eligible"`
	IsESIEligible  *bool  `json:"is_esi_eligible"`
	MonthlyTDS     string `json:"monthly_tds"`
}

// UpdateEmployeeRequest carries job and profile fields. Salary is not editable here;
// it changes only through onboarding and appraisal approval.
type UpdateEmployeeRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	DepartmentID   string `json:"department_id" binding:"omitempty,uuid"`
	DesignationID  string `json:"designation_id" binding:"omitempty,uuid"`
	LocationID     string `json:"location_id" binding:"omitempty,uuid"`
	ManagerID      string `json:"manager_id" binding:"omitempty,uuid"`
	EmploymentType string `json:"employment_type" binding:"omitempty,oneof=full_time part_time contract intern"`
	Status         string `json:"status" binding:"omitempty,oneof=active inactive on_leave terminated"`
	IsPFEligible   *bool  `json:"is_pf_eligible"`
	IsESIEligible  *bool  `json:"is_esi_eligible"`
	MonthlyTDS     string `json:"monthly_tds"`
}

type ListEmployeesFilter struct {
	DepartmentID string
	Status       string
	Query        string
}

type EmployeeResponse struct {
	ID              string `json:"id"`
	EmployeeCode    string `json:"employee_code"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name,omitempty"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	DepartmentID    string `json:"department_id,omitempty"`
	DepartmentName  string `json:"department_name,omitempty"`
	DesignationID   string `json:"designation_id,omitempty"`
	DesignationName string `json:"designation_name,omitempty"`
	LocationID      string `json:"location_id,omitempty"`
	ManagerID       string `json:"manager_id,omitempty"`
	EmploymentType  string `json:"employment_type,omitempty"`
	JoinDate        string `json:"join_date,omitempty"`
	Salary          string `json:"salary,omitempty"`
	IsPFEligible    bool   `json:"is_pf_eligible"`
	IsESIEligible   bool   `json:"is_esi_eligible"`
	MonthlyTDS      string `json:"monthly_tds,omitempty"`
	Status          string `json:"status,omitempty"`
}

type EmployeeOptionResponse struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
}
