package attendance

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
) {
	attendances := r.Group("/attendances")
	{
		attendances.GET("", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.Query)
		attendances.GET("/me", middleware.RBACAuthorize(rbacService, "attendance", "self"), h.Mine)
		attendances.GET("/export", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.Export)
		attendances.POST("/check-in", middleware.RBACAuthorize(rbacService, "attendance", "self"), h.CheckIn)
		attendances.POST("/check-out", middleware.RBACAuthorize(rbacService, "attendance", "self"), h.CheckOut)
		attendances.PUT("/manual", middleware.RBACAuthorize(rbacService, "attendance", "create"), h.ManualEntry)
		attendances.POST("/bulk", middleware.RBACAuthorize(rbacService, "attendance", "create"), h.BulkMark)
		attendances.POST("/lock", middleware.RBACAuthorize(rbacService, "attendance", "update"), h.ToggleLock)
	}
}
