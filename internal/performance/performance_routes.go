package performance

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	cycles := r.Group("/review-cycles")
	{
		cycles.GET("", middleware.RBACAuthorize(rbacService, "review_cycle", "read"), handler.ListCycles)
		cycles.POST("", middleware.RBACAuthorize(rbacService, "review_cycle", "create"), handler.CreateCycle)
		cycles.PATCH("/:id/status", middleware.RBACAuthorize(rbacService, "review_cycle", "update"), handler.UpdateCycleStatus)
	}

	goals := r.Group("/goals")
	{
		goals.GET("", middleware.RBACAuthorize(rbacService, "goal", "read"), handler.ListGoals)
		goals.POST("", middleware.RBACAuthorize(rbacService, "goal", "create"), handler.CreateGoal)
		goals.PATCH("/:id/progress", middleware.RBACAuthorize(rbacService, "goal", "update"), handler.UpdateGoalProgress)
	}

	reviews := r.Group("/reviews")
	{
		reviews.GET("", middleware.RBACAuthorize(rbacService, "review", "read"), handler.ListReviews)
		reviews.POST("", middleware.RBACAuthorize(rbacService, "review", "self"), handler.CreateOrGetReview)
		reviews.GET("/:id", middleware.RBACAuthorize(rbacService, "review", "read"), handler.GetReview)
		reviews.POST("/:id/self", middleware.RBACAuthorize(rbacService, "review", "self"), handler.SubmitSelfReview)
		reviews.POST("/:id/manager", middleware.RBACAuthorize(rbacService, "review", "manager"), handler.SubmitManagerReview)
		reviews.POST("/:id/hr", middleware.RBACAuthorize(rbacService, "review", "hr"), handler.SubmitHRReview)
		reviews.POST("/:id/finalize", middleware.RBACAuthorize(rbacService, "review", "finalize"), handler.FinalizeReview)
	}
}
