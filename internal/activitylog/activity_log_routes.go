package activitylog

import (
	"speed-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	logs := r.Group("/activity-logs")
	{
		logs.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "activity_log", "read"),
			handler.GetAll,
		)
	}
}
