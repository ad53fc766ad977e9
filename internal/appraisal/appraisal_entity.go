package appraisal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CycleDraft  = "draft"
	CycleActive = "active"
	CycleClosed = "closed"
)

const (
	StatusProposed = "proposed"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	IncrementPercentage = "percentage"
	IncrementFixed      = "fixed"
)

// AppraisalCycle revises compensation for exactly one review cycle.
type AppraisalCycle struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name                string     `gorm:"type:varchar(150);not null"`
	LinkedReviewCycleID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_appraisal_cycle_review_cycle"`
	EffectiveFrom       time.Time  `gorm:"type:date;not null"`
	Status              string     `gorm:"type:varchar(20);not null;default:draft;index"`
	CreatedBy           *uuid.UUID `gorm:"type:uuid"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type AppraisalRecord struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_appraisal_employee_cycle,priority:1"`
	AppraisalCycleID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_appraisal_employee_cycle,priority:2"`
	PerformanceReviewID uuid.UUID       `gorm:"type:uuid;not null"`
	FinalRating         decimal.Decimal `gorm:"type:numeric(4,2);not null;default:0"`

	IncrementType  string          `gorm:"type:varchar(20);not null"`
	IncrementValue decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	OldCTC         decimal.Decimal `gorm:"column:old_ctc;type:numeric(14,2);not null"`
	NewCTC         decimal.Decimal `gorm:"column:new_ctc;type:numeric(14,2);not null"`

	ProposedDesignationID *uuid.UUID `gorm:"type:uuid"`
	Remarks               string     `gorm:"type:text"`

	Status          string     `gorm:"type:varchar(20);not null;default:proposed;index"`
	ProposedBy      *uuid.UUID `gorm:"type:uuid"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt      *time.Time
	RejectedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectedAt      *time.Time
	RejectionReason *string `gorm:"type:text"`

	Employee  *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type EmployeeRef struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeCode string          `gorm:"column:employee_code"`
	FirstName    string          `gorm:"column:first_name"`
	LastName     string          `gorm:"column:last_name"`
	Salary       decimal.Decimal `gorm:"column:salary"`
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

var hundred = decimal.NewFromInt(100)

// NewCTC applies a percentage or fixed increment to oldCTC, rounded to 2 places.
func NewCTC(oldCTC decimal.Decimal, incrementType string, value decimal.Decimal) decimal.Decimal {
	if incrementType == IncrementPercentage {
		return oldCTC.Mul(decimal.NewFromInt(1).Add(value.Div(hundred))).Round(2)
	}
	return oldCTC.Add(value).Round(2)
}
