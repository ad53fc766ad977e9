package appraisal

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	cycles := r.Group("/appraisal-cycles")
	{
		cycles.GET("", middleware.RBACAuthorize(rbacService, "appraisal", "read"), handler.ListCycles)
		cycles.POST("", middleware.RBACAuthorize(rbacService, "appraisal", "create"), handler.CreateCycle)
		cycles.PATCH("/:id/status", middleware.RBACAuthorize(rbacService, "appraisal", "update"), handler.UpdateCycleStatus)
	}

	records := r.Group("/appraisals")
	{
		records.GET("", middleware.RBACAuthorize(rbacService, "appraisal", "read"), handler.ListRecords)
		records.POST("", middleware.RBACAuthorize(rbacService, "appraisal", "propose"), handler.Propose)
		records.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "appraisal", "approve"), handler.Approve)
		records.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "appraisal", "approve"), handler.Reject)
	}
}
