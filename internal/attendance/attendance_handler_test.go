package attendance_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/attendance"
	attendanceerrors "go-hrms/internal/attendance/errors"
	"go-hrms/internal/attendance/mock"
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

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

func TestHandler_CheckIn(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	h := attendance.NewHandler(svc)

	actor := domain.Actor{UserID: uuid.New().String(), EmployeeID: uuid.New().String(), Role: domain.RoleEmployee}

	t.Run("created", func(t *testing.T) {
		svc.EXPECT().CheckIn(gomock.Any(), actor).
			Return(attendance.AttendanceResponse{ID: uuid.New().String(), EmployeeID: actor.EmployeeID, Status: attendance.StatusPresent}, nil)

		c, w := newContext(http.MethodPost, "/attendances/check-in", "", actor)
		h.CheckIn(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, mustDecodeEnvelope(t, w.Body.Bytes()).Success)
	})

	t.Run("already checked in", func(t *testing.T) {
		svc.EXPECT().CheckIn(gomock.Any(), actor).Return(attendance.AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn)

		c, w := newContext(http.MethodPost, "/attendances/check-in", "", actor)
		h.CheckIn(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
		assert.Equal(t, "INVALID_STATE", env.Code)
	})
}

func TestHandler_BulkMark(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	h := attendance.NewHandler(svc)
	actor := domain.Actor{UserID: uuid.New().String(), Role: domain.RoleHR}

	t.Run("validation error", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/attendances/bulk", `{"employee_ids":[],"date":"2026-03-02","status":"present"}`, actor)
		h.BulkMark(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_INPUT", mustDecodeEnvelope(t, w.Body.Bytes()).Code)
	})

	t.Run("partial failure is still 200", func(t *testing.T) {
		id1, id2 := uuid.New().String(), uuid.New().String()
		svc.EXPECT().
			BulkMark(gomock.Any(), actor, attendance.BulkMarkRequest{EmployeeIDs: []string{id1, id2}, Date: "2026-03-02", Status: "absent"}).
			Return(attendance.BulkMarkResponse{
				Updated: []string{id1},
				Errors:  []attendance.BulkMarkError{{EmployeeID: id2, Message: "Attendance for this day is locked"}},
			}, nil)

		c, w := newContext(http.MethodPost, "/attendances/bulk", `{"employee_ids":["`+id1+`","`+id2+`"],"date":"2026-03-02","status":"absent"}`, actor)
		h.BulkMark(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var data attendance.BulkMarkResponse
		assert.NoError(t, json.Unmarshal(mustDecodeEnvelope(t, w.Body.Bytes()).Data, &data))
		assert.Len(t, data.Errors, 1)
	})
}

func TestHandler_Mine_PinsEmployee(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	h := attendance.NewHandler(svc)
	actor := domain.Actor{UserID: uuid.New().String(), EmployeeID: uuid.New().String(), Role: domain.RoleEmployee}

	svc.EXPECT().
		Query(gomock.Any(), attendance.QueryFilter{EmployeeID: actor.EmployeeID, From: "2026-03-01"}).
		Return(attendance.QueryResponse{Records: []attendance.AttendanceResponse{}}, nil)

	c, w := newContext(http.MethodGet, "/attendances/me?from=2026-03-01&employee_id="+uuid.New().String(), "", actor)
	h.Mine(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ToggleLock_RequiresLocked(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	h := attendance.NewHandler(mock.NewMockService(ctrl))

	c, w := newContext(http.MethodPost, "/attendances/lock", `{"date":"2026-03-02"}`, domain.Actor{Role: domain.RoleHR})
	h.ToggleLock(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
