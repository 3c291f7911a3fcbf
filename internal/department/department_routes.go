package department

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
	departments := r.Group("/departments")
	{
		departments.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "department", "read"),
			h.GetAll,
		)
		departments.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "department", "read"),
			h.GetByID,
		)
		departments.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "department", "create"),
			h.Create,
		)
		departments.POST("/bulk",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "department", "create"),
			middleware.Idempotency(rdb),
			h.BulkCreate,
		)
		departments.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "department", "update"),
			h.Update,
		)
		departments.DELETE("/bulk",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "department", "delete"),
			middleware.Idempotency(rdb),
			h.BulkDelete,
		)
		departments.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "department", "delete"),
			h.Delete,
		)
	}
}
