package performance

import (
	"odyssey-hcm/internal/middleware"
	"odyssey-hcm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	performance := r.Group("/performance")
	performance.Use(middleware.AuthMiddleware())
	{
		goals := performance.Group("/goals")
		{
			goals.GET("", middleware.RBACAuthorize(rbacService, "goal", "read"), handler.GetGoals)
			goals.GET("/:goalId", middleware.RBACAuthorize(rbacService, "goal", "read"), handler.GetGoal)
			goals.POST("", middleware.RBACAuthorize(rbacService, "goal", "create"), handler.CreateGoal)
			goals.PUT("/:goalId", middleware.RBACAuthorize(rbacService, "goal", "update"), handler.UpdateGoal)
			goals.DELETE("/:goalId", middleware.RBACAuthorize(rbacService, "goal", "delete"), handler.DeleteGoal)

			goals.GET("/:goalId/progress", middleware.RBACAuthorize(rbacService, "goal", "read"), handler.GetProgressHistory)
			goals.POST("/:goalId/progress", middleware.RBACAuthorize(rbacService, "goal", "update"), handler.UpdateProgress)

			goals.POST("/:goalId/key-results", middleware.RBACAuthorize(rbacService, "goal", "update"), handler.AddKeyResult)
			goals.PUT("/:goalId/key-results/:id", middleware.RBACAuthorize(rbacService, "goal", "update"), handler.UpdateKeyResult)
			goals.DELETE("/:goalId/key-results/:id", middleware.RBACAuthorize(rbacService, "goal", "delete"), handler.DeleteKeyResult)
		}
	}
}
