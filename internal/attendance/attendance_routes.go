package attendance

import (
	"speed-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	attendances := r.Group("/attendances")
	{
		attendances.GET("", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.GetAll)
		attendances.GET("/:id", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.GetByID)
		attendances.POST("/clock-in",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "attendance", "create"),
			h.ClockIn,
		)
		attendances.POST("/clock-out",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "attendance", "update"),
			h.ClockOut,
		)
		attendances.DELETE("/:id", middleware.RBACAuthorize(rbacService, "attendance", "delete"), h.Delete)
	}
}
