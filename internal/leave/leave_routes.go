package leave

import (
	"odyssey-hcm/internal/middleware"
	"odyssey-hcm/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	leave := r.Group("/leave")
	leave.Use(middleware.AuthMiddleware())
	leave.Use(middleware.Idempotency(rdb))
	{
		policies := leave.Group("/policies")
		{
			policies.GET("", middleware.RBACAuthorize(rbacService, "leave_policy", "read"), handler.GetPolicies)
			policies.GET("/:id", middleware.RBACAuthorize(rbacService, "leave_policy", "read"), handler.GetPolicy)
			policies.POST("", middleware.RBACAuthorize(rbacService, "leave_policy", "create"), handler.CreatePolicy)
			policies.PUT("/:id", middleware.RBACAuthorize(rbacService, "leave_policy", "update"), handler.UpdatePolicy)
		}

		requests := leave.Group("/requests")
		{
			requests.GET("", middleware.RBACAuthorize(rbacService, "leave_request", "read"), handler.GetAll)
			requests.GET("/:id", middleware.RBACAuthorize(rbacService, "leave_request", "read"), handler.GetById)
			requests.POST("", middleware.RBACAuthorize(rbacService, "leave_request", "create"), handler.Submit)
			requests.POST("/:id/action", middleware.RBACAuthorize(rbacService, "leave_request", "approve"), handler.Action)
			requests.POST("/:id/cancel", middleware.RBACAuthorize(rbacService, "leave_request", "create"), handler.Cancel)
		}

		balances := leave.Group("/balances")
		{
			balances.GET("", middleware.RBACAuthorize(rbacService, "leave_balance", "read"), handler.GetBalances)
			balances.POST("/recalculate", middleware.RBACAuthorize(rbacService, "leave_balance", "update"), handler.RecalculateBalance)
		}
	}
}
