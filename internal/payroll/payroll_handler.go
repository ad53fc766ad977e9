package payroll

import (
	"net/http"

	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service, logger: zap.L().Named("payroll.handler")}
}

// NewHandlerWithRedis stores generate results for idempotent replay.
func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	h := NewHandler(service)
	h.rdb = rdb
	return h
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := response.FromError(c, err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("payroll request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
}

func (h *Handler) Generate(c *gin.Context) {
	var stored any
	defer func() { middleware.IdempotencyFinish(c, h.rdb, stored) }()

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), middleware.CurrentActor(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	stored = resp
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var filter ListPayrollsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

// Mine lists the caller's own payslips.
func (h *Handler) Mine(c *gin.Context) {
	var filter ListPayrollsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BindError(c, err)
		return
	}
	filter.EmployeeID = middleware.CurrentActor(c).EmployeeID

	resp, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), middleware.CurrentActor(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	resp, err := h.service.Approve(c.Request.Context(), middleware.CurrentActor(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Payroll approved", resp)
}

func (h *Handler) Lock(c *gin.Context) {
	resp, err := h.service.Lock(c.Request.Context(), middleware.CurrentActor(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Payroll locked", resp)
}

func (h *Handler) ExportRegister(c *gin.Context) {
	var req ExportRegisterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.ExportRegister(c.Request.Context(), req.Month, req.Year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
