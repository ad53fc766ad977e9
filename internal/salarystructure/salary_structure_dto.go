package salarystructure

type ComponentRequest struct {
	Name   string `json:"name" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

type CreateSalaryStructureRequest struct {
	EmployeeID    string             `json:"employee_id" binding:"required,uuid"`
	BasicSalary   string             `json:"basic_salary" binding:"required"`
	HRA           string             `json:"hra"`
	Allowances    []ComponentRequest `json:"allowances" binding:"dive"`
	Deductions    []ComponentRequest `json:"deductions" binding:"dive"`
	EffectiveFrom string             `json:"effective_from" binding:"required"`
}

type ComponentResponse struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type SalaryStructureResponse struct {
	ID            string              `json:"id"`
	EmployeeID    string              `json:"employee_id"`
	BasicSalary   string              `json:"basic_salary"`
	HRA           string              `json:"hra"`
	Allowances    []ComponentResponse `json:"allowances"`
	Deductions    []ComponentResponse `json:"deductions"`
	FullGross     string              `json:"full_gross"`
	EffectiveFrom string              `json:"effective_from"`
	IsActive      bool                `json:"is_active"`
	CreatedAt     string              `json:"created_at"`
}
