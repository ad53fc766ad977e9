package designation

type CreateDesignationRequest struct {
	Name         string `json:"name" binding:"required"`
	Level        int    `json:"level" binding:"gte=0"`
	DepartmentID string `json:"department_id" binding:"omitempty,uuid"`
}

type DesignationResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Level          int    `json:"level"`
	DepartmentID   string `json:"department_id,omitempty"`
	DepartmentName string `json:"department_name,omitempty"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}
