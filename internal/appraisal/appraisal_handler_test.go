package appraisal_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/appraisal"
	appraisalerrors "go-hrms/internal/appraisal/errors"
	appraisalMock "go-hrms/internal/appraisal/mock"
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

func TestHandler_Propose(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := appraisalMock.NewMockService(ctrl)
	h := appraisal.NewHandler(svc)

	body := `{"employee_id":"` + uuid.New().String() + `","appraisal_cycle_id":"` + uuid.New().String() +
		`","increment_type":"fixed","increment_value":"5000"}`

	t.Run("created", func(t *testing.T) {
		svc.EXPECT().ProposeIncrement(gomock.Any(), hr, gomock.Any()).
			Return(appraisal.RecordResponse{Status: appraisal.StatusProposed, NewCTC: "55000.00"}, nil)

		c, w := newContext(http.MethodPost, "/appraisals", body, hr)
		h.Propose(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp appraisal.RecordResponse
		assert.NoError(t, json.Unmarshal(mustDecodeEnvelope(t, w.Body.Bytes()).Data, &resp))
		assert.Equal(t, "55000.00", resp.NewCTC)
	})

	t.Run("unknown increment type", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/appraisals", strings.Replace(body, "fixed", "bonus", 1), hr)
		h.Propose(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_INPUT", mustDecodeEnvelope(t, w.Body.Bytes()).Code)
	})

	t.Run("review not finalized", func(t *testing.T) {
		svc.EXPECT().ProposeIncrement(gomock.Any(), hr, gomock.Any()).
			Return(appraisal.RecordResponse{}, appraisalerrors.ErrNoFinalizedReview)

		c, w := newContext(http.MethodPost, "/appraisals", body, hr)
		h.Propose(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_STATE", mustDecodeEnvelope(t, w.Body.Bytes()).Code)
	})
}

func TestHandler_ApproveAndReject(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := appraisalMock.NewMockService(ctrl)
	h := appraisal.NewHandler(svc)
	id := uuid.New().String()

	svc.EXPECT().ApproveAppraisal(gomock.Any(), hr, id).
		Return(appraisal.RecordResponse{ID: id, Status: appraisal.StatusApproved}, nil)
	c, w := newContext(http.MethodPost, "/appraisals/"+id+"/approve", "", hr)
	c.Params = []gin.Param{{Key: "id", Value: id}}
	h.Approve(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Appraisal approved", mustDecodeEnvelope(t, w.Body.Bytes()).Message)

	c, w = newContext(http.MethodPost, "/appraisals/"+id+"/reject", `{}`, hr)
	c.Params = []gin.Param{{Key: "id", Value: id}}
	h.Reject(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_INPUT", mustDecodeEnvelope(t, w.Body.Bytes()).Code)

	svc.EXPECT().RejectAppraisal(gomock.Any(), hr, id, "budget freeze").
		Return(appraisal.RecordResponse{}, appraisalerrors.ErrRecordNotFound)
	c, w = newContext(http.MethodPost, "/appraisals/"+id+"/reject", `{"reason":"budget freeze"}`, hr)
	c.Params = []gin.Param{{Key: "id", Value: id}}
	h.Reject(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListRecords(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := appraisalMock.NewMockService(ctrl)
	h := appraisal.NewHandler(svc)

	svc.EXPECT().ListRecords(gomock.Any(), appraisal.ListRecordsFilter{Status: appraisal.StatusProposed}).
		Return([]appraisal.RecordResponse{{}, {}, {}}, nil)

	c, w := newContext(http.MethodGet, "/appraisals?status=proposed&page=2&page_size=2", "", hr)
	h.ListRecords(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":3,"totalPages":2,"page":2,"pageSize":2}`, string(mustDecodeEnvelope(t, w.Body.Bytes()).Meta))
}
