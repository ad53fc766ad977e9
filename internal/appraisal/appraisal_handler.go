package appraisal

import (
	"net/http"

	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service, logger: zap.L().Named("appraisal.handler")}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := response.FromError(c, err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("appraisal request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
}

func (h *Handler) CreateCycle(c *gin.Context) {
	var req CreateCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.CreateCycle(c.Request.Context(), middleware.CurrentActor(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdateCycleStatus(c *gin.Context) {
	var req UpdateCycleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.UpdateCycleStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Appraisal cycle updated", resp)
}

func (h *Handler) ListCycles(c *gin.Context) {
	resp, err := h.service.ListCycles(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Propose(c *gin.Context) {
	var req ProposeIncrementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.ProposeIncrement(c.Request.Context(), middleware.CurrentActor(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	resp, err := h.service.ApproveAppraisal(c.Request.Context(), middleware.CurrentActor(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Appraisal approved", resp)
}

func (h *Handler) Reject(c *gin.Context) {
	var req RejectAppraisalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.RejectAppraisal(c.Request.Context(), middleware.CurrentActor(c), c.Param("id"), req.Reason)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Appraisal rejected", resp)
}

func (h *Handler) ListRecords(c *gin.Context) {
	var filter ListRecordsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.ListRecords(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}
