package payroll

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	payrolls := r.Group("/payrolls")
	{
		payrolls.GET("", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetAll)
		payrolls.GET("/me", middleware.RBACAuthorize(rbacService, "payroll", "self"), handler.Mine)
		payrolls.GET("/export", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.ExportRegister)
		payrolls.GET("/:id", middleware.RBACAuthorize(rbacService, "payroll", "self"), handler.GetById)
		if redisClient != nil {
			payrolls.POST(
				"/generate",
				middleware.RBACAuthorize(rbacService, "payroll", "create"),
				middleware.Idempotency(redisClient),
				handler.Generate,
			)
		} else {
			payrolls.POST("/generate", middleware.RBACAuthorize(rbacService, "payroll", "create"), handler.Generate)
		}
		payrolls.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "payroll", "approve"), handler.Approve)
		payrolls.POST("/:id/lock", middleware.RBACAuthorize(rbacService, "payroll", "lock"), handler.Lock)
	}
}
