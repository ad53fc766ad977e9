package department_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/department"
	departmenterrors "go-hrms/internal/department/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
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

type fakeDepartmentService struct {
	CreateFn     func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetAllFn     func(ctx context.Context, includeInactive bool) ([]department.DepartmentResponse, error)
	GetByIDFn    func(ctx context.Context, id string) (department.DepartmentResponse, error)
	DeactivateFn func(ctx context.Context, id string) (department.DepartmentResponse, error)
}

func (f *fakeDepartmentService) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeDepartmentService) GetAll(ctx context.Context, includeInactive bool) ([]department.DepartmentResponse, error) {
	return f.GetAllFn(ctx, includeInactive)
}
func (f *fakeDepartmentService) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeDepartmentService) Deactivate(ctx context.Context, id string) (department.DepartmentResponse, error) {
	return f.DeactivateFn(ctx, id)
}

func TestDepartmentHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{ID: uuid.New().String(), Name: req.Name, IsActive: true}, nil
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"HR"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, mustDecodeEnvelope(t, w.Body.Bytes()).Success)
	})

	t.Run("validation error", func(t *testing.T) {
		h := department.NewHandler(&fakeDepartmentService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
		assert.Equal(t, "INVALID_INPUT", env.Code)
	})

	t.Run("unexpected service error", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{}, errors.New("failed")
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"HR"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL_ERROR", mustDecodeEnvelope(t, w.Body.Bytes()).Code)
	})
}

func TestDepartmentHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeDepartmentService{
		GetAllFn: func(ctx context.Context, includeInactive bool) ([]department.DepartmentResponse, error) {
			assert.True(t, includeInactive)
			return []department.DepartmentResponse{{Name: "A"}, {Name: "B"}, {Name: "C"}}, nil
		},
	}

	h := department.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/departments?include_inactive=true&page=2&page_size=2", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	var items []department.DepartmentResponse
	assert.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 1)
	assert.Equal(t, "C", items[0].Name)
	assert.JSONEq(t, `{"total":3,"totalPages":2,"page":2,"pageSize":2}`, string(env.Meta))
}

func TestDepartmentHandler_Deactivate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("blocked", func(t *testing.T) {
		deptID := uuid.New().String()
		svc := &fakeDepartmentService{
			DeactivateFn: func(ctx context.Context, id string) (department.DepartmentResponse, error) {
				assert.Equal(t, deptID, id)
				return department.DepartmentResponse{}, departmenterrors.ErrDepartmentHasActiveEmployees
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/departments/"+deptID+"/deactivate", nil)
		c.Params = []gin.Param{{Key: "id", Value: deptID}}

		h.Deactivate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_STATE", mustDecodeEnvelope(t, w.Body.Bytes()).Code)
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			DeactivateFn: func(ctx context.Context, id string) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{ID: id, IsActive: false}, nil
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/departments/x/deactivate", nil)
		c.Params = []gin.Param{{Key: "id", Value: "x"}}

		h.Deactivate(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Department deactivated", mustDecodeEnvelope(t, w.Body.Bytes()).Message)
	})
}
