package salarystructure

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Component is one named allowance or deduction line.
type Component struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Components is stored as a jsonb array.
type Components []Component

func (c Components) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c)
}

func (c *Components) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*c = Components{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("salarystructure: unsupported components column type")
	}
	return json.Unmarshal(data, c)
}

func (c Components) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c {
		total = total.Add(item.Amount)
	}
	return total
}

// SalaryStructure rows are never edited in place; a new row replaces the active one.
type SalaryStructure struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID       `gorm:"type:uuid;not null;index;index:uq_salary_structure_active,unique,where:is_active = true"`
	BasicSalary   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	HRA           decimal.Decimal `gorm:"column:hra;type:numeric(14,2);not null;default:0"`
	Allowances    Components      `gorm:"type:jsonb;not null;default:'[]'"`
	Deductions    Components      `gorm:"type:jsonb;not null;default:'[]'"`
	EffectiveFrom time.Time       `gorm:"type:date;not null"`
	IsActive      bool            `gorm:"not null;default:true"`
	CreatedBy     *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
}

// FullGross is basic + HRA + every allowance.
func (s SalaryStructure) FullGross() decimal.Decimal {
	return s.BasicSalary.Add(s.HRA).Add(s.Allowances.Total())
}
