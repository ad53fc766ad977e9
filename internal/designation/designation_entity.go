package designation

import (
	"time"

	"github.com/google/uuid"
)

type Designation struct {
	ID           uuid.UUID              `gorm:"type:uuid;primaryKey"`
	Name         string                 `gorm:"size:255;not null;uniqueIndex:uq_designations_name"`
	Level        int                    `gorm:"not null;default:0"`
	DepartmentID *uuid.UUID             `gorm:"type:uuid"`
	Department   *DesignationDepartment `gorm:"foreignKey:DepartmentID;references:ID"`
	IsActive     bool                   `gorm:"not null;default:true"`
	CreatedAt    time.Time              `gorm:"autoCreateTime"`
	UpdatedAt    time.Time              `gorm:"autoUpdateTime"`
}

type DesignationDepartment struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (DesignationDepartment) TableName() string {
	return "departments"
}
