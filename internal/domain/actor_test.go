package domain_test

import (
	"testing"

	"go-hrms/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, domain.RoleAdmin, domain.NormalizeRole(" admin "))
	assert.Equal(t, domain.RoleHR, domain.NormalizeRole("Hr"))
	assert.Equal(t, "", domain.NormalizeRole("  "))
}

func TestActor_Roles(t *testing.T) {
	hr := domain.Actor{Role: domain.RoleHR}
	manager := domain.Actor{Role: domain.RoleManager}
	employee := domain.Actor{Role: domain.RoleEmployee}

	assert.True(t, hr.IsHRAdmin())
	assert.True(t, hr.IsPrivileged())
	assert.False(t, manager.IsHRAdmin())
	assert.True(t, manager.IsPrivileged())
	assert.False(t, employee.IsPrivileged())
}
