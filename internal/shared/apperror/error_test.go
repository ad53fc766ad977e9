package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestAppError_WithCause(t *testing.T) {
	sentinel := Duplicate("Payroll already exists for this period")
	cause := &pgconn.PgError{Code: "23505", ConstraintName: "uq_payroll_employee_period"}

	err := sentinel.WithCause(cause)

	assert.ErrorIs(t, err, sentinel)
	assert.Nil(t, sentinel.Err)
	assert.True(t, IsUniqueViolation(err, "uq_payroll_employee_period"))
	assert.False(t, errors.Is(err, RequiredField("Reason")))
}

func TestToHTTP(t *testing.T) {
	t.Cleanup(func() { ExposeDetails(false) })

	t.Run("app error", func(t *testing.T) {
		out := ToHTTP(fmt.Errorf("approve: %w", New(CodeInvalidState, "Payroll is locked", http.StatusBadRequest)))
		assert.Equal(t, http.StatusBadRequest, out.Status)
		assert.Equal(t, CodeInvalidState, out.Code)
		assert.Nil(t, out.Details)
	})

	t.Run("unknown error hides detail outside development", func(t *testing.T) {
		out := ToHTTP(errors.New("pq: connection reset"))
		assert.Equal(t, http.StatusInternalServerError, out.Status)
		assert.Equal(t, CodeInternalError, out.Code)
		assert.Nil(t, out.Details)
	})

	t.Run("development exposes detail", func(t *testing.T) {
		ExposeDetails(true)
		out := ToHTTP(errors.New("pq: connection reset"))
		assert.Equal(t, "pq: connection reset", out.Details)
	})
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505", ConstraintName: "uq_review_employee_cycle"}, ""))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503", ConstraintName: "uq_review_employee_cycle"}, "uq_review_employee_cycle"))
	assert.True(t, IsUniqueViolation(errors.New(`duplicate key value violates unique constraint "uq_attendance_employee_date"`), "uq_attendance_employee_date"))
	assert.False(t, IsUniqueViolation(nil, ""))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503", ConstraintName: "fk_leave_applications_employee"}))
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("delete: %w", &pgconn.PgError{Code: "23503"})))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsForeignKeyViolation(errors.New(`update or delete on table "employees" violates foreign key constraint "fk_attendance_employee"`)))
	assert.False(t, IsForeignKeyViolation(nil))
}
