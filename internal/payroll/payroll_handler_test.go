package payroll_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"
	"go-hrms/internal/payroll"
	payrollerrors "go-hrms/internal/payroll/errors"
	payrollMock "go-hrms/internal/payroll/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(body, &env))
	return env
}

func newContext(method, target, body string, actor domain.Actor) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.ContextUserID, actor.UserID)
	c.Set(middleware.ContextEmployeeID, actor.EmployeeID)
	c.Set(middleware.ContextRole, actor.Role)
	return c, w
}

func TestHandler_Generate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := payrollMock.NewMockService(ctrl)
	h := payroll.NewHandler(svc)

	hr := domain.Actor{UserID: uuid.New().String(), EmployeeID: uuid.New().String(), Role: domain.RoleHR}

	t.Run("created", func(t *testing.T) {
		svc.EXPECT().Generate(gomock.Any(), hr, payroll.GenerateRequest{Month: 6, Year: 2026, Scope: payroll.ScopeAll}).
			Return(payroll.GenerateResponse{
				Generated: []payroll.PayrollResponse{{ID: uuid.New().String(), NetSalary: "24004.00"}},
				Errors:    []payroll.GenerateError{{EmployeeCode: "EMP-000002", Message: "no salary"}},
			}, nil)

		c, w := newContext(http.MethodPost, "/payrolls/generate", `{"month":6,"year":2026,"scope":"all"}`, hr)
		h.Generate(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp payroll.GenerateResponse
		assert.NoError(t, json.Unmarshal(mustDecodeEnvelope(t, w.Body.Bytes()).Data, &resp))
		assert.Len(t, resp.Generated, 1)
		assert.Equal(t, "EMP-000002", resp.Errors[0].EmployeeCode)
	})

	t.Run("month out of range", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/payrolls/generate", `{"month":13,"year":2026}`, hr)
		h.Generate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_INPUT", mustDecodeEnvelope(t, w.Body.Bytes()).Code)
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc.EXPECT().Generate(gomock.Any(), hr, gomock.Any()).Return(payroll.GenerateResponse{}, payrollerrors.ErrEmployeeNotFound)

		body := `{"month":6,"year":2026,"scope":"employee","employee_id":"` + uuid.New().String() + `"}`
		c, w := newContext(http.MethodPost, "/payrolls/generate", body, hr)
		h.Generate(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", mustDecodeEnvelope(t, w.Body.Bytes()).Code)
	})
}

func TestHandler_Mine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := payrollMock.NewMockService(ctrl)
	h := payroll.NewHandler(svc)

	actor := domain.Actor{UserID: uuid.New().String(), EmployeeID: uuid.New().String(), Role: domain.RoleEmployee}
	svc.EXPECT().GetAll(gomock.Any(), payroll.ListPayrollsFilter{Year: 2026, EmployeeID: actor.EmployeeID}).
		Return([]payroll.PayrollResponse{{PeriodMonth: 1}, {PeriodMonth: 2}}, nil)

	c, w := newContext(http.MethodGet, "/payrolls/me?year=2026&employee_id="+uuid.New().String(), "", actor)
	h.Mine(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":2,"totalPages":1,"page":1,"pageSize":10}`, string(mustDecodeEnvelope(t, w.Body.Bytes()).Meta))
}

func TestHandler_ApproveAndLock(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := payrollMock.NewMockService(ctrl)
	h := payroll.NewHandler(svc)

	hr := domain.Actor{UserID: uuid.New().String(), EmployeeID: uuid.New().String(), Role: domain.RoleHR}
	id := uuid.New().String()

	svc.EXPECT().Approve(gomock.Any(), hr, id).Return(payroll.PayrollResponse{ID: id, Status: payroll.StatusApproved}, nil)
	c, w := newContext(http.MethodPost, "/payrolls/"+id+"/approve", "", hr)
	c.Params = []gin.Param{{Key: "id", Value: id}}
	h.Approve(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Payroll approved", mustDecodeEnvelope(t, w.Body.Bytes()).Message)

	svc.EXPECT().Lock(gomock.Any(), hr, id).Return(payroll.PayrollResponse{}, payrollerrors.ErrInvalidStatusTransition)
	c, w = newContext(http.MethodPost, "/payrolls/"+id+"/lock", "", hr)
	c.Params = []gin.Param{{Key: "id", Value: id}}
	h.Lock(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_STATE", mustDecodeEnvelope(t, w.Body.Bytes()).Code)
}

func TestHandler_ExportRegister(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := payrollMock.NewMockService(ctrl)
	h := payroll.NewHandler(svc)

	hr := domain.Actor{UserID: uuid.New().String(), Role: domain.RoleHR}

	t.Run("missing period", func(t *testing.T) {
		c, w := newContext(http.MethodGet, "/payrolls/export?month=3", "", hr)
		h.ExportRegister(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("exported", func(t *testing.T) {
		svc.EXPECT().ExportRegister(gomock.Any(), 3, 2026).
			Return(payroll.ExportResponse{Path: "exports/payroll_register_03_2026.xlsx", Rows: 4}, nil)

		c, w := newContext(http.MethodGet, "/payrolls/export?month=3&year=2026", "", hr)
		h.ExportRegister(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp payroll.ExportResponse
		assert.NoError(t, json.Unmarshal(mustDecodeEnvelope(t, w.Body.Bytes()).Data, &resp))
		assert.Equal(t, 4, resp.Rows)
	})

	t.Run("internal error", func(t *testing.T) {
		svc.EXPECT().ExportRegister(gomock.Any(), 3, 2026).Return(payroll.ExportResponse{}, errors.New("disk full"))

		c, w := newContext(http.MethodGet, "/payrolls/export?month=3&year=2026", "", hr)
		h.ExportRegister(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL_ERROR", mustDecodeEnvelope(t, w.Body.Bytes()).Code)
	})
}
