package performance

type CreateCycleRequest struct {
	Name      string `json:"name" binding:"required,max=150"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type UpdateCycleStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active closed"`
}

type CycleResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type CreateGoalRequest struct {
	Title         string   `json:"title" binding:"required,max=200"`
	Description   string   `json:"description" binding:"max=2000"`
	Type          string   `json:"type" binding:"omitempty,oneof=individual team department"`
	AssigneeIDs   []string `json:"assignee_ids" binding:"required,min=1,dive,uuid"`
	Weightage     int      `json:"weightage" binding:"gte=0,lte=100"`
	Status        string   `json:"status" binding:"omitempty,oneof=draft active"`
	ReviewCycleID string   `json:"review_cycle_id" binding:"omitempty,uuid"`
	DueDate       string   `json:"due_date"`
}

type UpdateGoalProgressRequest struct {
	Progress *int   `json:"progress" binding:"required,gte=0,lte=100"`
	Status   string `json:"status" binding:"omitempty,oneof=active completed archived"`
}

type ListGoalsFilter struct {
	EmployeeID    string `form:"employee_id" binding:"omitempty,uuid"`
	Status        string `form:"status" binding:"omitempty,oneof=draft active completed archived"`
	ReviewCycleID string `form:"review_cycle_id" binding:"omitempty,uuid"`
}

type GoalResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Type          string   `json:"type"`
	AssigneeIDs   []string `json:"assignee_ids"`
	Weightage     int      `json:"weightage"`
	Progress      int      `json:"progress"`
	Status        string   `json:"status"`
	ReviewCycleID *string  `json:"review_cycle_id,omitempty"`
	DueDate       *string  `json:"due_date,omitempty"`
}

type CreateReviewRequest struct {
	EmployeeID    string `json:"employee_id" binding:"omitempty,uuid"`
	ReviewCycleID string `json:"review_cycle_id" binding:"required,uuid"`
}

type SelfGoalEntry struct {
	GoalID        string `json:"goal_id" binding:"required,uuid"`
	FinalProgress *int   `json:"final_progress" binding:"required,gte=0,lte=100"`
	SelfComment   string `json:"self_comment" binding:"max=2000"`
}

type SelfReviewRequest struct {
	Goals      []SelfGoalEntry `json:"goals" binding:"dive"`
	SelfRating int             `json:"self_rating" binding:"required,min=1,max=5"`
	Comment    string          `json:"comment" binding:"max=4000"`
}

type ManagerGoalEntry struct {
	GoalID         string `json:"goal_id" binding:"required,uuid"`
	ManagerComment string `json:"manager_comment" binding:"max=2000"`
}

type ManagerReviewRequest struct {
	Goals         []ManagerGoalEntry `json:"goals" binding:"dive"`
	ManagerRating int                `json:"manager_rating" binding:"required,min=1,max=5"`
	Comment       string             `json:"comment" binding:"max=4000"`
}

type HRReviewRequest struct {
	HRRating int    `json:"hr_rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"max=4000"`
}

type ListReviewsFilter struct {
	ReviewCycleID string `form:"review_cycle_id" binding:"omitempty,uuid"`
	EmployeeID    string `form:"employee_id" binding:"omitempty,uuid"`
	Status        string `form:"status" binding:"omitempty,oneof=not_started self_submitted manager_reviewed hr_reviewed finalized"`
}

type ReviewResponse struct {
	ID                string         `json:"id"`
	EmployeeID        string         `json:"employee_id"`
	EmployeeCode      string         `json:"employee_code,omitempty"`
	EmployeeName      string         `json:"employee_name,omitempty"`
	ReviewCycleID     string         `json:"review_cycle_id"`
	Goals             []GoalSnapshot `json:"goals"`
	SelfRating        int            `json:"self_rating"`
	ManagerRating     int            `json:"manager_rating"`
	HRRating          int            `json:"hr_rating"`
	FinalRating       string         `json:"final_rating"`
	SelfComment       string         `json:"self_comment,omitempty"`
	ManagerComment    string         `json:"manager_comment,omitempty"`
	HRComment         string         `json:"hr_comment,omitempty"`
	Status            string         `json:"status"`
	SubmittedAt       *string        `json:"submitted_at,omitempty"`
	ManagerReviewedBy *string        `json:"manager_reviewed_by,omitempty"`
	ManagerReviewedAt *string        `json:"manager_reviewed_at,omitempty"`
	HRReviewedBy      *string        `json:"hr_reviewed_by,omitempty"`
	HRReviewedAt      *string        `json:"hr_reviewed_at,omitempty"`
	FinalizedBy       *string        `json:"finalized_by,omitempty"`
	FinalizedAt       *string        `json:"finalized_at,omitempty"`
}
