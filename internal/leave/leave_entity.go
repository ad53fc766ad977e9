package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

type LeaveType struct {
	ID                uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name              string    `gorm:"column:name;type:varchar(100);not null;uniqueIndex:uq_leave_types_name"`
	Code              string    `gorm:"column:code;type:varchar(20);not null"`
	IsPaid            bool      `gorm:"column:is_paid;not null;default:true"`
	HasQuota          bool      `gorm:"column:has_quota;not null;default:true"`
	AffectsAttendance bool      `gorm:"column:affects_attendance;not null;default:true"`
	IsActive          bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}

// QuotaLimited is false for unpaid types and types without a quota.
func (t LeaveType) QuotaLimited() bool {
	return t.IsPaid && t.HasQuota
}

type LeavePolicy struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	LeaveTypeID uuid.UUID  `gorm:"column:leave_type_id;type:uuid;not null;uniqueIndex:uq_leave_policies_type"`
	LeaveType   *LeaveType `gorm:"foreignKey:LeaveTypeID;references:ID"`
	AnnualQuota float64    `gorm:"column:annual_quota;type:numeric(5,1);not null"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (LeavePolicy) TableName() string {
	return "leave_policies"
}

type LeaveApplication struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;index:idx_leave_applications_employee_dates,priority:1"`
	LeaveTypeID uuid.UUID  `gorm:"column:leave_type_id;type:uuid;not null;index"`
	LeaveType   *LeaveType `gorm:"foreignKey:LeaveTypeID;references:ID"`

	StartDate time.Time `gorm:"column:start_date;type:date;not null;index:idx_leave_applications_employee_dates,priority:2"`
	EndDate   time.Time `gorm:"column:end_date;type:date;not null;index:idx_leave_applications_employee_dates,priority:3"`
	IsHalfDay bool      `gorm:"column:is_half_day;not null;default:false"`
	TotalDays float64   `gorm:"column:total_days;type:numeric(5,1);not null"`
	Reason    string    `gorm:"column:reason;type:text"`

	Status          string     `gorm:"column:status;type:varchar(20);not null;default:pending;index"`
	AppliedBy       uuid.UUID  `gorm:"column:applied_by;type:uuid;not null"`
	ApprovedBy      *uuid.UUID `gorm:"column:approved_by;type:uuid"`
	ApprovedAt      *time.Time `gorm:"column:approved_at"`
	RejectionReason *string    `gorm:"column:rejection_reason;type:text"`
	CancelledBy     *uuid.UUID `gorm:"column:cancelled_by;type:uuid"`
	CancelledAt     *time.Time `gorm:"column:cancelled_at"`

	CreatedAt time.Time    `gorm:"column:created_at"`
	UpdatedAt time.Time    `gorm:"column:updated_at"`
	Employee  *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (LeaveApplication) TableName() string {
	return "leave_applications"
}

// Dates lists every calendar day in the inclusive range.
func (l LeaveApplication) Dates() []time.Time {
	return DatesInRange(l.StartDate, l.EndDate)
}

type EmployeeRef struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"column:employee_code"`
	FirstName    string    `gorm:"column:first_name"`
	LastName     string    `gorm:"column:last_name"`
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
