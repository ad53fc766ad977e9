package calendar

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	r.GET("/calendar/events", middleware.RBACAuthorize(rbacService, "calendar", "read"), h.List)
}
