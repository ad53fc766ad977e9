package leave

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	types := r.Group("/leave-types")
	{
		types.GET("", middleware.RBACAuthorize(rbacService, "leave_type", "read"), handler.ListLeaveTypes)
		types.POST("", middleware.RBACAuthorize(rbacService, "leave_type", "create"), handler.CreateLeaveType)
		types.GET("/policies", middleware.RBACAuthorize(rbacService, "leave_type", "read"), handler.ListPolicies)
		types.PUT("/policies", middleware.RBACAuthorize(rbacService, "leave_type", "update"), handler.UpsertPolicy)
	}

	leaves := r.Group("/leaves")
	{
		leaves.GET("", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetAll)
		leaves.GET("/me", middleware.RBACAuthorize(rbacService, "leave", "apply"), handler.Mine)
		leaves.GET("/balance", middleware.RBACAuthorize(rbacService, "leave", "balance"), handler.Balance)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, "leave", "apply"), handler.GetById)
		leaves.POST("", middleware.RBACAuthorize(rbacService, "leave", "apply"), handler.Apply)
		leaves.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "leave", "approve"), handler.Approve)
		leaves.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "leave", "approve"), handler.Reject)
		leaves.POST("/:id/cancel", middleware.RBACAuthorize(rbacService, "leave", "cancel"), handler.Cancel)
	}
}
