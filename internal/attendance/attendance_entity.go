package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "present"
	StatusHalfDay = "half_day"
	StatusAbsent  = "absent"
	StatusHoliday = "holiday"
	StatusLeave   = "leave"
)

type Attendance struct {
	ID             uuid.UUID    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID    `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date,priority:1"`
	AttendanceDate time.Time    `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_employee_date,priority:2;index"`
	CheckIn        *time.Time   `gorm:"column:check_in;type:timestamptz"`
	CheckOut       *time.Time   `gorm:"column:check_out;type:timestamptz"`
	WorkedHours    float64      `gorm:"column:worked_hours;type:numeric(5,2);not null;default:0"`
	Status         string       `gorm:"column:status;type:varchar(20);not null;default:absent"`
	IsLocked       bool         `gorm:"column:is_locked;not null;default:false"`
	MarkedBy       *uuid.UUID   `gorm:"column:marked_by;type:uuid"`
	UpdatedBy      *uuid.UUID   `gorm:"column:updated_by;type:uuid"`
	Notes          *string      `gorm:"column:notes;type:text"`
	CreatedAt      time.Time    `gorm:"column:created_at"`
	UpdatedAt      time.Time    `gorm:"column:updated_at"`
	Employee       *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
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

// Recompute derives worked hours from both stamps. Status is left alone unless classify is set.
func (a *Attendance) Recompute(classify bool) {
	if a.CheckIn == nil || a.CheckOut == nil {
		return
	}
	a.WorkedHours = WorkedHours(*a.CheckIn, *a.CheckOut)
	if classify {
		a.Status = Classify(a.WorkedHours)
	}
}
