package rbac

import (
	"speed-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService Service) {
	group := r.Group("/rbac")
	{
		group.POST("/enforce", middleware.RateLimitByUser(5, 20), handler.Enforce)
		group.GET("/policies",
			middleware.RBACAuthorize(rbacService, "rbac", "read"),
			handler.Policies,
		)
	}
}
