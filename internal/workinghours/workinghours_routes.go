package workinghours

import (
	"speed-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
) {
	policies := r.Group("/working-hours-policies")
	{
		policies.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "working_hours_policy", "read"),
			h.GetAll,
		)
		policies.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "working_hours_policy", "read"),
			h.GetByID,
		)
		policies.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "working_hours_policy", "create"),
			h.Create,
		)
		policies.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "working_hours_policy", "update"),
			h.Update,
		)
		policies.DELETE("/bulk",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "working_hours_policy", "delete"),
			middleware.Idempotency(rdb),
			h.BulkDelete,
		)
		policies.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "working_hours_policy", "delete"),
			h.Delete,
		)
	}
}
