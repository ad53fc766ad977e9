package app

import (
	"go-hrms/internal/appraisal"
	"go-hrms/internal/attendance"
	"go-hrms/internal/calendar"
	"go-hrms/internal/department"
	"go-hrms/internal/designation"
	"go-hrms/internal/employee"
	"go-hrms/internal/leave"
	"go-hrms/internal/location"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/payroll"
	"go-hrms/internal/performance"
	"go-hrms/internal/rbac"
	"go-hrms/internal/salarystructure"
	"go-hrms/internal/shared/counter"
	"go-hrms/internal/user"

	"gorm.io/gorm"
)

// migrate creates the schema. Reference tables come before the tables pointing at them.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&rbac.Role{},
		&rbac.Permission{},
		&rbac.RolePermission{},
		&user.User{},
		&counter.Counter{},
		&location.Location{},
		&department.Department{},
		&designation.Designation{},
		&employee.Employee{},
		&salarystructure.SalaryStructure{},
		&attendance.Attendance{},
		&leave.LeaveType{},
		&leave.LeavePolicy{},
		&leave.LeaveApplication{},
		&calendar.CalendarEvent{},
		&payroll.Payroll{},
		&performance.ReviewCycle{},
		&performance.Goal{},
		&performance.GoalAssignee{},
		&performance.PerformanceReview{},
		&appraisal.AppraisalCycle{},
		&appraisal.AppraisalRecord{},
		&kafka.OutboxRecord{},
	)
}
