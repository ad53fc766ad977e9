package rbac

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrms/internal/domain"
	rbacerrors "go-hrms/internal/rbac/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// =========================================
// Fake Service
// =========================================

type fakeService struct {
	Service
	getRoleFn func(ctx context.Context, id string) (domain.RoleResponse, error)
}

func (f *fakeService) Enforce(req domain.EnforceRequest) (bool, error) {
	return req.Resource == "employee" && req.Action == "read", nil
}

func (f *fakeService) GetRole(ctx context.Context, id string) (domain.RoleResponse, error) {
	return f.getRoleFn(ctx, id)
}

type envelope struct {
	Success bool            `json:"success"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

func TestHandler_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(&fakeService{})
	router := gin.New()
	router.POST("/rbac/enforce", handler.Enforce)

	body, _ := json.Marshal(domain.EnforceRequest{Role: "EMPLOYEE", Resource: "employee", Action: "read"})
	req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)

	var resp domain.EnforceResponse
	assert.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.True(t, resp.Allowed)
}

func TestHandler_EnforceValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(&fakeService{})
	router := gin.New()
	router.POST("/rbac/enforce", handler.Enforce)

	req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"role":"HR"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetRoleNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(&fakeService{getRoleFn: func(ctx context.Context, id string) (domain.RoleResponse, error) {
		return domain.RoleResponse{}, rbacerrors.ErrRoleNotFound
	}})
	router := gin.New()
	router.GET("/rbac/roles/:id", handler.GetRole)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/roles/abc", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, "NOT_FOUND", env.Code)
}
