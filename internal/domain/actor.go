package domain

import "strings"

const (
	RoleAdmin    = "ADMIN"
	RoleHR       = "HR"
	RoleManager  = "MANAGER"
	RoleEmployee = "EMPLOYEE"
)

// Actor is the authenticated caller, resolved once by the auth middleware.
type Actor struct {
	UserID     string
	EmployeeID string
	Role       string
}

// NormalizeRole maps "admin", " Admin " and "ADMIN" to the same role name.
func NormalizeRole(role string) string {
	return strings.ToUpper(strings.TrimSpace(role))
}

func (a Actor) HasRole(roles ...string) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

// IsHRAdmin is true for the roles allowed to run HR-only review steps.
func (a Actor) IsHRAdmin() bool {
	return a.HasRole(RoleHR, RoleAdmin)
}

// IsPrivileged is true for roles that act on other employees' records.
func (a Actor) IsPrivileged() bool {
	return a.HasRole(RoleHR, RoleAdmin, RoleManager)
}
