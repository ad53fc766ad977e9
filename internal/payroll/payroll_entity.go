package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusGenerated = "generated"
	StatusApproved  = "approved"
	StatusLocked    = "locked"
)

// Payroll keeps the full calculation trail for one employee and month.
type Payroll struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_employee_period,priority:1"`
	Employee    *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
	PeriodMonth int          `gorm:"not null;uniqueIndex:uq_payroll_employee_period,priority:2;index:idx_payroll_period,priority:2"`
	PeriodYear  int          `gorm:"not null;uniqueIndex:uq_payroll_employee_period,priority:3;index:idx_payroll_period,priority:1"`

	// Day counts
	TotalDays       int             `gorm:"not null"`
	WorkingDays     int             `gorm:"not null"`
	PresentDays     int             `gorm:"not null;default:0"`
	HalfDays        int             `gorm:"not null;default:0"`
	AbsentDays      int             `gorm:"not null;default:0"`
	PaidLeaveDays   decimal.Decimal `gorm:"type:numeric(5,1);not null;default:0"`
	UnpaidLeaveDays decimal.Decimal `gorm:"type:numeric(5,1);not null;default:0"`
	PayableDays     decimal.Decimal `gorm:"type:numeric(5,1);not null;default:0"`

	// Earnings
	BasicSalary decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	HRA         decimal.Decimal `gorm:"column:hra;type:numeric(14,2);not null;default:0"`
	Allowances  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	FullGross   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	EarnedBasic decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	EarnedHRA   decimal.Decimal `gorm:"column:earned_hra;type:numeric(14,2);not null;default:0"`
	LossOfPay   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	EarnedGross decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	// Deductions
	PF              decimal.Decimal `gorm:"column:pf;type:numeric(14,2);not null;default:0"`
	ESI             decimal.Decimal `gorm:"column:esi;type:numeric(14,2);not null;default:0"`
	ProfessionalTax decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	IncomeTax       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	OtherDeductions decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	NetSalary       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	// LegacySalary marks a run that fell back to the flat salary field.
	LegacySalary bool `gorm:"not null;default:false"`

	Status      string     `gorm:"type:varchar(20);not null;default:generated;index"`
	GeneratedBy *uuid.UUID `gorm:"type:uuid"`
	ApprovedBy  *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt  *time.Time
	LockedBy    *uuid.UUID `gorm:"type:uuid"`
	LockedAt    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EmployeeRef is the read-only employee projection payroll works from.
type EmployeeRef struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeCode  string          `gorm:"column:employee_code"`
	FirstName     string          `gorm:"column:first_name"`
	LastName      string          `gorm:"column:last_name"`
	DepartmentID  *uuid.UUID      `gorm:"column:department_id"`
	Salary        decimal.Decimal `gorm:"column:salary"`
	IsPFEligible  bool            `gorm:"column:is_pf_eligible"`
	IsESIEligible bool            `gorm:"column:is_esi_eligible"`
	MonthlyTDS    decimal.Decimal `gorm:"column:monthly_tds"`
	Status        string          `gorm:"column:status"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

func (e EmployeeRef) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// AttendanceDay is the slice of an attendance row payroll needs.
type AttendanceDay struct {
	AttendanceDate time.Time
	Status         string
}

// LeaveSpan is an approved leave application with the paid flag of its type.
type LeaveSpan struct {
	StartDate time.Time
	EndDate   time.Time
	IsHalfDay bool
	IsPaid    bool
}

func (l LeaveSpan) covers(day time.Time) bool {
	return !day.Before(l.StartDate) && !day.After(l.EndDate)
}
