package performance_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"
	"go-hrms/internal/performance"
	performanceerrors "go-hrms/internal/performance/errors"
	performanceMock "go-hrms/internal/performance/mock"

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

func TestHandler_CreateOrGetReview(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := performanceMock.NewMockService(ctrl)
	h := performance.NewHandler(svc)

	actor := domain.Actor{UserID: uuid.New().String(), EmployeeID: uuid.New().String(), Role: domain.RoleEmployee}
	cycleID := uuid.New().String()
	body := `{"review_cycle_id":"` + cycleID + `"}`

	t.Run("created", func(t *testing.T) {
		svc.EXPECT().CreateOrGetReview(gomock.Any(), actor, performance.CreateReviewRequest{ReviewCycleID: cycleID}).
			Return(performance.ReviewResponse{ID: uuid.New().String(), Status: performance.ReviewNotStarted}, true, nil)

		c, w := newContext(http.MethodPost, "/reviews", body, actor)
		h.CreateOrGetReview(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("existing", func(t *testing.T) {
		svc.EXPECT().CreateOrGetReview(gomock.Any(), actor, gomock.Any()).
			Return(performance.ReviewResponse{ID: uuid.New().String()}, false, nil)

		c, w := newContext(http.MethodPost, "/reviews", body, actor)
		h.CreateOrGetReview(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("cycle not active", func(t *testing.T) {
		svc.EXPECT().CreateOrGetReview(gomock.Any(), actor, gomock.Any()).
			Return(performance.ReviewResponse{}, false, performanceerrors.ErrCycleNotActive)

		c, w := newContext(http.MethodPost, "/reviews", body, actor)
		h.CreateOrGetReview(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_STATE", mustDecodeEnvelope(t, w.Body.Bytes()).Code)
	})
}

func TestHandler_SubmitSelfReview(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := performanceMock.NewMockService(ctrl)
	h := performance.NewHandler(svc)

	actor := domain.Actor{UserID: uuid.New().String(), EmployeeID: uuid.New().String(), Role: domain.RoleEmployee}
	id := uuid.New().String()

	t.Run("rating out of range", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/reviews/"+id+"/self", `{"self_rating":6}`, actor)
		c.Params = []gin.Param{{Key: "id", Value: id}}
		h.SubmitSelfReview(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_INPUT", mustDecodeEnvelope(t, w.Body.Bytes()).Code)
	})

	t.Run("submitted", func(t *testing.T) {
		svc.EXPECT().SubmitSelfReview(gomock.Any(), actor, id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.Actor, _ string, req performance.SelfReviewRequest) (performance.ReviewResponse, error) {
				assert.Equal(t, 4, req.SelfRating)
				assert.Equal(t, 80, *req.Goals[0].FinalProgress)
				return performance.ReviewResponse{ID: id, Status: performance.ReviewSelfSubmitted}, nil
			})

		goalID := uuid.New().String()
		body := `{"self_rating":4,"goals":[{"goal_id":"` + goalID + `","final_progress":80}]}`
		c, w := newContext(http.MethodPost, "/reviews/"+id+"/self", body, actor)
		c.Params = []gin.Param{{Key: "id", Value: id}}
		h.SubmitSelfReview(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Self review submitted", mustDecodeEnvelope(t, w.Body.Bytes()).Message)
	})
}

func TestHandler_FinalizeReview_Forbidden(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := performanceMock.NewMockService(ctrl)
	h := performance.NewHandler(svc)

	actor := domain.Actor{UserID: uuid.New().String(), EmployeeID: uuid.New().String(), Role: domain.RoleManager}
	id := uuid.New().String()
	svc.EXPECT().FinalizeReview(gomock.Any(), actor, id).Return(performance.ReviewResponse{}, performanceerrors.ErrHRRoleRequired)

	c, w := newContext(http.MethodPost, "/reviews/"+id+"/finalize", "", actor)
	c.Params = []gin.Param{{Key: "id", Value: id}}
	h.FinalizeReview(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", mustDecodeEnvelope(t, w.Body.Bytes()).Code)
}

func TestHandler_UpdateCycleStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := performanceMock.NewMockService(ctrl)
	h := performance.NewHandler(svc)

	id := uuid.New().String()
	svc.EXPECT().UpdateCycleStatus(gomock.Any(), id, performance.CycleActive).
		Return(performance.CycleResponse{ID: id, Status: performance.CycleActive}, nil)

	c, w := newContext(http.MethodPatch, "/review-cycles/"+id+"/status", `{"status":"active"}`, hrActor)
	c.Params = []gin.Param{{Key: "id", Value: id}}
	h.UpdateCycleStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext(http.MethodPatch, "/review-cycles/"+id+"/status", `{"status":"upcoming"}`, hrActor)
	c.Params = []gin.Param{{Key: "id", Value: id}}
	h.UpdateCycleStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
