package salarystructure

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	basicShare = decimal.RequireFromString("0.40")
	hraShare   = decimal.RequireFromString("0.40")
)

// DeriveFromCTC splits a flat CTC into 40% basic and an HRA of 40% of basic.
func DeriveFromCTC(ctc decimal.Decimal) (basic, hra decimal.Decimal) {
	basic = ctc.Mul(basicShare).Round(2)
	hra = basic.Mul(hraShare).Round(2)
	return basic, hra
}

// NewFromCTC builds an active structure for employeeID using the CTC split.
func NewFromCTC(employeeID uuid.UUID, ctc decimal.Decimal, effectiveFrom time.Time) *SalaryStructure {
	basic, hra := DeriveFromCTC(ctc)
	return &SalaryStructure{
		ID:            uuid.New(),
		EmployeeID:    employeeID,
		BasicSalary:   basic,
		HRA:           hra,
		Allowances:    Components{},
		Deductions:    Components{},
		EffectiveFrom: effectiveFrom,
		IsActive:      true,
	}
}
