package recruitment

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
	rec := r.Group("/recruitment")
	rec.Use(middleware.AuthMiddleware())
	rec.Use(middleware.Idempotency(rdb))
	{
		requisitions := rec.Group("/requisitions")
		{
			requisitions.GET("", middleware.RBACAuthorize(rbacService, "requisition", "read"), handler.GetRequisitions)
			requisitions.GET("/:id", middleware.RBACAuthorize(rbacService, "requisition", "read"), handler.GetRequisition)
			requisitions.POST("", middleware.RBACAuthorize(rbacService, "requisition", "create"), handler.CreateRequisition)
			requisitions.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "requisition", "approve"), handler.ApproveRequisition)
			requisitions.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "requisition", "approve"), handler.RejectRequisition)
		}

		offers := rec.Group("/offers")
		{
			offers.GET("", middleware.RBACAuthorize(rbacService, "offer", "read"), handler.GetOffers)
			offers.GET("/:id", middleware.RBACAuthorize(rbacService, "offer", "read"), handler.GetOffer)
			offers.POST("", middleware.RBACAuthorize(rbacService, "offer", "create"), handler.CreateOffer)
			offers.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "offer", "approve"), handler.ApproveOffer)
			offers.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "offer", "approve"), handler.RejectOffer)
		}

		applications := rec.Group("/applications")
		{
			applications.GET("", middleware.RBACAuthorize(rbacService, "application", "read"), handler.GetApplications)
			applications.GET("/:id", middleware.RBACAuthorize(rbacService, "application", "read"), handler.GetApplication)
			applications.GET("/:id/history", middleware.RBACAuthorize(rbacService, "application", "read"), handler.GetStageHistory)
			applications.POST("", middleware.RBACAuthorize(rbacService, "application", "create"), handler.CreateApplication)
			applications.PUT("/stage/bulk", middleware.RBACAuthorize(rbacService, "application", "update_stage"), handler.BulkTransitionStage)
			applications.PUT("/:id/stage", middleware.RBACAuthorize(rbacService, "application", "update_stage"), handler.TransitionStage)
		}
	}
}
