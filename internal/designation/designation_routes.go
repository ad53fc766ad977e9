package designation

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
) {
	designations := r.Group("/designations")
	{
		designations.GET("", middleware.RBACAuthorize(rbacService, "designation", "read"), h.GetAll)
		designations.POST("", middleware.RBACAuthorize(rbacService, "designation", "create"), h.Create)
		designations.GET("/:id", middleware.RBACAuthorize(rbacService, "designation", "read"), h.GetById)
		designations.POST("/:id/deactivate", middleware.RBACAuthorize(rbacService, "designation", "update"), h.Deactivate)
	}
}
