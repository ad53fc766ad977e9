package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusActive     = "active"
	StatusInactive   = "inactive"
	StatusOnLeave    = "on_leave"
	StatusTerminated = "terminated"
)

const (
	EmploymentFullTime   = "full_time"
	EmploymentPartTime   = "part_time"
	EmploymentContract   = "contract"
	EmploymentInternship = "intern"
)

type Employee struct {
	ID             uuid.UUID            `gorm:"type:uuid;primaryKey"`
	EmployeeCode   string               `gorm:"size:32;not null;uniqueIndex:uq_employees_code"`
	FirstName      string               `gorm:"size:100;not null"`
	LastName       string               `gorm:"size:100"`
	Email          string               `gorm:"size:255;not null;uniqueIndex:uq_employees_email"`
	Phone          string               `gorm:"size:32"`
	DepartmentID   *uuid.UUID           `gorm:"type:uuid;index"`
	Department     *EmployeeDepartment  `gorm:"foreignKey:DepartmentID;references:ID"`
	DesignationID  *uuid.UUID           `gorm:"type:uuid;index"`
	Designation    *EmployeeDesignation `gorm:"foreignKey:DesignationID;references:ID"`
	LocationID     *uuid.UUID           `gorm:"type:uuid;index"`
	ManagerID      *uuid.UUID           `gorm:"type:uuid;index"`
	EmploymentType string               `gorm:"size:32;not null;default:full_time"`
	JoinDate       time.Time            `gorm:"type:date;not null"`
	Salary         decimal.Decimal      `gorm:"type:numeric(14,2);not null;default:0"`
	IsPFEligible   bool                 `gorm:"column:is_pf_eligible;not null;default:true"`
	IsESIEligible  bool                 `gorm:"column:is_esi_eligible;not null;default:true"`
	MonthlyTDS     decimal.Decimal      `gorm:"column:monthly_tds;type:numeric(14,2);not null;default:0"`
	Status         string               `gorm:"size:20;not null;default:active;index"`
	CreatedAt      time.Time            `gorm:"autoCreateTime"`
	UpdatedAt      time.Time            `gorm:"autoUpdateTime"`
}

func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

type EmployeeDepartment struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeeDepartment) TableName() string {
	return "departments"
}

type EmployeeDesignation struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeeDesignation) TableName() string {
	return "designations"
}
