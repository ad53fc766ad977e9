package employee

import (
	"errors"

	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/shared/apperror"

	"gorm.io/gorm"
)

// mapRepositoryError keeps the driver error as the cause so development responses can show it.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	switch {
	case apperror.IsUniqueViolation(err, "uq_employees_code"):
		return employeeerrors.ErrEmployeeCodeAlreadyExists.WithCause(err)
	case apperror.IsUniqueViolation(err, "uq_employees_email"):
		return employeeerrors.ErrEmployeeAlreadyExists.WithCause(err)
	case apperror.IsUniqueViolation(err, "uq_users_email"):
		return employeeerrors.ErrUserEmailAlreadyExists.WithCause(err)
	case apperror.IsForeignKeyViolation(err):
		return employeeerrors.ErrEmployeeHasHistory.WithCause(err)
	}

	return err
}
