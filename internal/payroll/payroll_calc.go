package payroll

import (
	"time"

	"go-hrms/internal/salarystructure"

	"github.com/shopspring/decimal"
)

var (
	pfRate          = decimal.RequireFromString("0.12")
	esiRate         = decimal.RequireFromString("0.0075")
	esiGrossCeiling = decimal.NewFromInt(21000)
	professionalTax = decimal.NewFromInt(200)
)

const (
	attendancePresent = "present"
	attendanceHalfDay = "half_day"
	attendanceAbsent  = "absent"
)

// Earnings is the compensation a month is computed from.
type Earnings struct {
	Basic      decimal.Decimal
	HRA        decimal.Decimal
	Allowances salarystructure.Components
	Deductions salarystructure.Components
	Legacy     bool
}

// EarningsFromStructure reads the authoritative active salary structure.
func EarningsFromStructure(s salarystructure.SalaryStructure) Earnings {
	return Earnings{
		Basic:      s.BasicSalary,
		HRA:        s.HRA,
		Allowances: s.Allowances,
		Deductions: s.Deductions,
	}
}

// LegacyEarnings is a compatibility shim for employees migrated from the flat salary
// model without a salary structure. It applies the same CTC split onboarding uses.
func LegacyEarnings(ctc decimal.Decimal) Earnings {
	basic, hra := salarystructure.DeriveFromCTC(ctc)
	return Earnings{Basic: basic, HRA: hra, Legacy: true}
}

type CalculationInput struct {
	Year        int
	Month       time.Month
	Earnings    Earnings
	Attendance  []AttendanceDay
	Leaves      []LeaveSpan
	Holidays    []time.Time
	PFEligible  bool
	ESIEligible bool
	MonthlyTDS  decimal.Decimal
}

// Calculate runs the monthly payroll computation. It does no I/O.
func Calculate(in CalculationInput) Payroll {
	start := time.Date(in.Year, in.Month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	totalDays := end.Day()

	holidays := make(map[string]struct{}, len(in.Holidays))
	for _, h := range in.Holidays {
		holidays[h.Format("2006-01-02")] = struct{}{}
	}
	attendance := make(map[string]string, len(in.Attendance))
	for _, a := range in.Attendance {
		attendance[a.AttendanceDate.Format("2006-01-02")] = a.Status
	}

	p := Payroll{
		PeriodMonth: int(in.Month),
		PeriodYear:  in.Year,
		TotalDays:   totalDays,
	}

	paidLeave, unpaidLeave := decimal.Zero, decimal.Zero
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		if _, holiday := holidays[key]; d.Weekday() != time.Sunday && !holiday {
			p.WorkingDays++
		}

		onLeave := false
		for _, l := range in.Leaves {
			if !l.covers(d) {
				continue
			}
			onLeave = true
			portion := decimal.NewFromInt(1)
			if l.IsHalfDay {
				portion = decimal.NewFromFloat(0.5)
			}
			if l.IsPaid {
				paidLeave = paidLeave.Add(portion)
			} else {
				unpaidLeave = unpaidLeave.Add(portion)
			}
			break
		}

		switch attendance[key] {
		case attendancePresent:
			p.PresentDays++
		case attendanceHalfDay:
			p.HalfDays++
		case attendanceAbsent:
			// absence on a day already covered by approved leave is not counted twice
			if !onLeave {
				p.AbsentDays++
			}
		}
	}

	p.PaidLeaveDays = paidLeave
	p.UnpaidLeaveDays = unpaidLeave

	days := decimal.NewFromInt(int64(totalDays))
	unpaid := unpaidLeave.Add(decimal.NewFromInt(int64(p.AbsentDays)))
	if unpaid.GreaterThan(days) {
		unpaid = days
	}
	p.PayableDays = days.Sub(unpaid)

	e := in.Earnings
	p.BasicSalary = e.Basic
	p.HRA = e.HRA
	p.Allowances = e.Allowances.Total()
	p.FullGross = e.Basic.Add(e.HRA).Add(p.Allowances)
	p.LegacySalary = e.Legacy

	perDay := p.FullGross.Div(days)
	p.LossOfPay = perDay.Mul(unpaid).Round(0)
	p.EarnedGross = p.FullGross.Sub(p.LossOfPay)

	ratio := p.PayableDays.Div(days)
	p.EarnedBasic = e.Basic.Mul(ratio).Round(2)
	p.EarnedHRA = e.HRA.Mul(ratio).Round(2)

	if in.PFEligible {
		p.PF = p.EarnedBasic.Mul(pfRate).Round(2)
	}
	if in.ESIEligible && p.EarnedGross.LessThanOrEqual(esiGrossCeiling) {
		p.ESI = p.EarnedGross.Mul(esiRate).Round(2)
	}
	p.ProfessionalTax = professionalTax
	p.IncomeTax = in.MonthlyTDS
	p.OtherDeductions = e.Deductions.Total()

	p.TotalDeductions = p.PF.
		Add(p.ESI).
		Add(p.ProfessionalTax).
		Add(p.IncomeTax).
		Add(p.OtherDeductions)

	p.NetSalary = decimal.Max(decimal.Zero, p.EarnedGross.Sub(p.TotalDeductions))
	return p
}

// ProratedGross rebuilds gross from the prorated components. It agrees with
// EarnedGross to within rounding.
func (p Payroll) ProratedGross() decimal.Decimal {
	if p.TotalDays == 0 {
		return decimal.Zero
	}
	ratio := p.PayableDays.Div(decimal.NewFromInt(int64(p.TotalDays)))
	return p.EarnedBasic.Add(p.EarnedHRA).Add(p.Allowances.Mul(ratio).Round(2))
}

// HolidayProvider lists public holidays that reduce working days.
type HolidayProvider interface {
	Holidays(year int, month time.Month) ([]time.Time, error)
}

// NoHolidays is the default provider until a holiday calendar exists.
type NoHolidays struct{}

func (NoHolidays) Holidays(int, time.Month) ([]time.Time, error) {
	return nil, nil
}
