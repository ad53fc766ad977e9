package salarystructure

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
) {
	structures := r.Group("/salary-structures")
	{
		structures.POST("", middleware.RBACAuthorize(rbacService, "salary_structure", "create"), h.Create)
		structures.GET("/employee/:employeeId", middleware.RBACAuthorize(rbacService, "salary_structure", "read"), h.GetActive)
		structures.GET("/employee/:employeeId/history", middleware.RBACAuthorize(rbacService, "salary_structure", "read"), h.History)
	}
}
