package performance

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CycleUpcoming = "upcoming"
	CycleActive   = "active"
	CycleClosed   = "closed"
)

const (
	GoalDraft     = "draft"
	GoalActive    = "active"
	GoalCompleted = "completed"
	GoalArchived  = "archived"
)

const (
	GoalIndividual = "individual"
	GoalTeam       = "team"
	GoalDepartment = "department"
)

// Review statuses in their only legal order.
const (
	ReviewNotStarted      = "not_started"
	ReviewSelfSubmitted   = "self_submitted"
	ReviewManagerReviewed = "manager_reviewed"
	ReviewHRReviewed      = "hr_reviewed"
	ReviewFinalized       = "finalized"
)

type ReviewCycle struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(150);not null"`
	StartDate time.Time  `gorm:"type:date;not null"`
	EndDate   time.Time  `gorm:"type:date;not null"`
	Status    string     `gorm:"type:varchar(20);not null;default:upcoming;index"`
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Goal struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title         string         `gorm:"type:varchar(200);not null"`
	Description   string         `gorm:"type:text"`
	Type          string         `gorm:"type:varchar(20);not null;default:individual"`
	Weightage     int            `gorm:"not null;default:0"`
	Progress      int            `gorm:"not null;default:0"`
	Status        string         `gorm:"type:varchar(20);not null;default:active;index"`
	ReviewCycleID *uuid.UUID     `gorm:"type:uuid;index"`
	DueDate       *time.Time     `gorm:"type:date"`
	Assignees     []GoalAssignee `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE"`
	CreatedBy     *uuid.UUID     `gorm:"type:uuid"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (g Goal) AssignedTo(employeeID string) bool {
	for _, a := range g.Assignees {
		if a.EmployeeID.String() == employeeID {
			return true
		}
	}
	return false
}

type GoalAssignee struct {
	GoalID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// GoalSnapshot is the copy of a goal taken when the review was opened.
type GoalSnapshot struct {
	GoalID         string `json:"goal_id"`
	Title          string `json:"title"`
	Weightage      int    `json:"weightage"`
	Progress       int    `json:"progress"`
	FinalProgress  *int   `json:"final_progress,omitempty"`
	SelfComment    string `json:"self_comment,omitempty"`
	ManagerComment string `json:"manager_comment,omitempty"`
}

// EffectiveProgress prefers the progress reported at self review.
func (g GoalSnapshot) EffectiveProgress() int {
	if g.FinalProgress != nil {
		return *g.FinalProgress
	}
	return g.Progress
}

// GoalSnapshots is stored as a jsonb array.
type GoalSnapshots []GoalSnapshot

func (s GoalSnapshots) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

func (s *GoalSnapshots) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*s = GoalSnapshots{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("performance: unsupported goal snapshot column type")
	}
	return json.Unmarshal(data, s)
}

type PerformanceReview struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:uq_review_employee_cycle,priority:1"`
	ReviewCycleID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:uq_review_employee_cycle,priority:2"`
	Goals         GoalSnapshots `gorm:"type:jsonb;not null;default:'[]'"`

	// Ratings are 1..5; zero means the stage has not been reached.
	SelfRating    int             `gorm:"not null;default:0"`
	ManagerRating int             `gorm:"not null;default:0"`
	HRRating      int             `gorm:"column:hr_rating;not null;default:0"`
	FinalRating   decimal.Decimal `gorm:"type:numeric(4,2);not null;default:0"`

	SelfComment    string `gorm:"type:text"`
	ManagerComment string `gorm:"type:text"`
	HRComment      string `gorm:"column:hr_comment;type:text"`

	Status            string     `gorm:"type:varchar(20);not null;default:not_started;index"`
	SubmittedAt       *time.Time
	ManagerReviewedBy *uuid.UUID `gorm:"type:uuid"`
	ManagerReviewedAt *time.Time
	HRReviewedBy      *uuid.UUID `gorm:"column:hr_reviewed_by;type:uuid"`
	HRReviewedAt      *time.Time `gorm:"column:hr_reviewed_at"`
	FinalizedBy       *uuid.UUID `gorm:"type:uuid"`
	FinalizedAt       *time.Time

	Employee  *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type EmployeeRef struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeCode string     `gorm:"column:employee_code"`
	FirstName    string     `gorm:"column:first_name"`
	LastName     string     `gorm:"column:last_name"`
	ManagerID    *uuid.UUID `gorm:"column:manager_id;type:uuid"`
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

// ReportsTo is true when managerEmployeeID is the assigned reporting manager.
func (e EmployeeRef) ReportsTo(managerEmployeeID string) bool {
	return e.ManagerID != nil && managerEmployeeID != "" && e.ManagerID.String() == managerEmployeeID
}
