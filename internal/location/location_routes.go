package location

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
) {
	locations := r.Group("/locations")
	{
		locations.GET("", middleware.RBACAuthorize(rbacService, "location", "read"), h.GetAll)
		locations.POST("", middleware.RBACAuthorize(rbacService, "location", "create"), h.Create)
		locations.GET("/:id", middleware.RBACAuthorize(rbacService, "location", "read"), h.GetById)
		locations.POST("/:id/deactivate", middleware.RBACAuthorize(rbacService, "location", "update"), h.Deactivate)
	}
}
